package bento

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Mouse holds the pointer state for the current frame. Pressed flags
// persist while a button is held; the Just flags and the deltas are
// valid for a single frame and are cleared by EndFrame.
type Mouse struct {
	X, Y   float32
	DX, DY float32

	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool

	RightPressed      bool
	RightJustPressed  bool
	RightJustReleased bool

	MiddlePressed      bool
	MiddleJustPressed  bool
	MiddleJustReleased bool

	ScrollX, ScrollY float32
}

// Over reports whether the cursor is inside the rectangle. All edges
// are inclusive, so touching elements both report the cursor on their
// shared edge.
func (m *Mouse) Over(r Rect) bool {
	return r.Contains(m.X, m.Y)
}

// Keyboard tracks held keys plus the keys that changed state this
// frame.
type Keyboard struct {
	pressed      map[Key]bool
	justPressed  map[Key]bool
	justReleased map[Key]bool
}

func newKeyboard() Keyboard {
	return Keyboard{
		pressed:      make(map[Key]bool),
		justPressed:  make(map[Key]bool),
		justReleased: make(map[Key]bool),
	}
}

// IsPressed reports whether the key is currently held.
func (k *Keyboard) IsPressed(key Key) bool {
	return k.pressed[key]
}

// IsJustPressed reports whether the key went down this frame.
func (k *Keyboard) IsJustPressed(key Key) bool {
	return k.justPressed[key]
}

// IsJustReleased reports whether the key came up this frame.
func (k *Keyboard) IsJustReleased(key Key) bool {
	return k.justReleased[key]
}

// JustPressed returns the keys that went down this frame in key
// order, so typed characters can be appended deterministically.
func (k *Keyboard) JustPressed() []Key {
	if len(k.justPressed) == 0 {
		return nil
	}
	keys := make([]Key, 0, len(k.justPressed))
	for key := KeyUnknown; key <= KeyNumpadDecimal; key++ {
		if k.justPressed[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// Input is the complete device state handed to the app each frame.
type Input struct {
	Mouse    Mouse
	Keyboard Keyboard
}

// NewInput returns input state with nothing pressed.
func NewInput() *Input {
	return &Input{Keyboard: newKeyboard()}
}

// MoveTo moves the cursor to an absolute position, accumulating the
// distance into this frame's deltas.
func (in *Input) MoveTo(x, y float32) {
	in.Mouse.DX += x - in.Mouse.X
	in.Mouse.DY += y - in.Mouse.Y
	in.Mouse.X = x
	in.Mouse.Y = y
}

// Scroll accumulates wheel movement for this frame.
func (in *Input) Scroll(dx, dy float32) {
	in.Mouse.ScrollX += dx
	in.Mouse.ScrollY += dy
}

// PressButton records a button going down. The Just flag is only set
// when the button was up, so repeated presses while held are ignored.
func (in *Input) PressButton(b MouseButton) {
	switch b {
	case MouseLeft:
		if !in.Mouse.LeftPressed {
			in.Mouse.LeftJustPressed = true
		}
		in.Mouse.LeftPressed = true
	case MouseRight:
		if !in.Mouse.RightPressed {
			in.Mouse.RightJustPressed = true
		}
		in.Mouse.RightPressed = true
	case MouseMiddle:
		if !in.Mouse.MiddlePressed {
			in.Mouse.MiddleJustPressed = true
		}
		in.Mouse.MiddlePressed = true
	}
}

// ReleaseButton records a button coming up.
func (in *Input) ReleaseButton(b MouseButton) {
	switch b {
	case MouseLeft:
		if in.Mouse.LeftPressed {
			in.Mouse.LeftJustReleased = true
		}
		in.Mouse.LeftPressed = false
	case MouseRight:
		if in.Mouse.RightPressed {
			in.Mouse.RightJustReleased = true
		}
		in.Mouse.RightPressed = false
	case MouseMiddle:
		if in.Mouse.MiddlePressed {
			in.Mouse.MiddleJustReleased = true
		}
		in.Mouse.MiddlePressed = false
	}
}

// PressKey records a key going down.
func (in *Input) PressKey(key Key) {
	if !in.Keyboard.pressed[key] {
		in.Keyboard.justPressed[key] = true
	}
	in.Keyboard.pressed[key] = true
}

// ReleaseKey records a key coming up.
func (in *Input) ReleaseKey(key Key) {
	if in.Keyboard.pressed[key] {
		in.Keyboard.justReleased[key] = true
	}
	delete(in.Keyboard.pressed, key)
}

// EndFrame clears the single-frame state after the app has seen it.
// Cursor position and held buttons and keys carry over; deltas,
// scroll, and every Just flag reset.
func (in *Input) EndFrame() {
	in.Mouse.DX = 0
	in.Mouse.DY = 0
	in.Mouse.LeftJustPressed = false
	in.Mouse.LeftJustReleased = false
	in.Mouse.RightJustPressed = false
	in.Mouse.RightJustReleased = false
	in.Mouse.MiddleJustPressed = false
	in.Mouse.MiddleJustReleased = false
	in.Mouse.ScrollX = 0
	in.Mouse.ScrollY = 0
	clear(in.Keyboard.justPressed)
	clear(in.Keyboard.justReleased)
}
