package bento

// Overflow controls whether a container clips its children.
type Overflow uint8

const (
	// OverflowVisible lets children paint outside the container.
	OverflowVisible Overflow = iota
	// OverflowHidden clips children to the container's bounds.
	OverflowHidden
	// OverflowScroll clips children, reserving the clip for scrolled
	// content.
	OverflowScroll
)

// String returns the overflow mode name.
func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Style holds an element's visual properties. Layout inputs live in
// LayoutStyle; the two are configured through the same element options.
type Style struct {
	// Background fills the border box. Nil is no fill for containers;
	// Rect elements always carry one.
	Background *Color

	// BorderColor and BorderWidth stroke the box outline. A nil
	// BorderColor draws no border.
	BorderColor *Color
	BorderWidth float32

	// CornerRadius rounds the box corners.
	CornerRadius float32

	// Opacity multiplies the alpha of this element's own fill, border,
	// and shadow. It does not propagate to children or text.
	Opacity float32

	// Shadow is drawn behind the box when ShadowColor has alpha and
	// ShadowBlur is positive.
	ShadowColor   Color
	ShadowBlur    float32
	ShadowOffsetX float32
	ShadowOffsetY float32

	// Overflow clips children when Hidden or Scroll.
	Overflow Overflow
}

// defaultVisual returns the visual defaults for a new element.
func defaultVisual() Style {
	return Style{Opacity: 1}
}

// Button chrome. A button's natural size wraps its label, and its fill
// brightens as the pointer interacts with it.
const (
	buttonPadX = 24.0
	buttonPadY = 12.0

	buttonHoverBrighten = 0.08
	buttonPressBrighten = 0.15
)

var (
	buttonDefaultBG  = RGB(0.25, 0.25, 0.35)
	buttonHoverBG    = RGB(0.35, 0.35, 0.45)
	buttonPressBG    = RGB(0.5, 0.5, 0.6)
	buttonLabelColor = RGB(0.92, 0.92, 0.95)
)

// buttonFill picks a button's background for the current interaction
// state. Explicit backgrounds brighten per state; elements without one
// use the fixed fallbacks.
func buttonFill(bg *Color, hovered, pressed bool) Color {
	switch {
	case pressed:
		if bg != nil {
			return bg.brighten(buttonPressBrighten)
		}
		return buttonPressBG
	case hovered:
		if bg != nil {
			return bg.brighten(buttonHoverBrighten)
		}
		return buttonHoverBG
	default:
		if bg != nil {
			return *bg
		}
		return buttonDefaultBG
	}
}
