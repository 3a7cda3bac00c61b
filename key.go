package bento

// Key identifies a physical keyboard key, independent of layout or
// modifier state.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyLeftControl
	KeyLeftShift
	KeyLeftAlt
	KeyRightControl
	KeyRightShift
	KeyRightAlt
	KeyLeftBracket
	KeyRightBracket
	KeySemicolon
	KeyComma
	KeyPeriod
	KeyQuote
	KeySlash
	KeyBackslash
	KeyEqual
	KeyMinus
	KeySpace
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyNumpadAdd
	KeyNumpadDecimal
)

// String returns the text a key press produces, so pressed keys can be
// appended straight to a string. Letters are lowercase, Enter is
// "\r\n", and keys with no text form return "".
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string('a' + rune(k-KeyA))
	case k >= KeyNum0 && k <= KeyNum9:
		return string('0' + rune(k-KeyNum0))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return string('0' + rune(k-KeyNumpad0))
	}
	switch k {
	case KeyEnter:
		return "\r\n"
	case KeySpace:
		return " "
	case KeyComma:
		return ","
	case KeyQuote:
		return "'"
	default:
		return ""
	}
}
