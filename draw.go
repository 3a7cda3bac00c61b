package bento

// Clip is a scissor rectangle in absolute coordinates, stored as
// corners. A nil *Clip means unclipped. Intersections are not
// normalized; an inverted clip simply draws nothing.
type Clip struct {
	X0, Y0, X1, Y1 float32
}

// clipOf converts a placement rectangle into a clip.
func clipOf(r Rect) Clip {
	return Clip{X0: r.X, Y0: r.Y, X1: r.X + r.Width, Y1: r.Y + r.Height}
}

// Intersect returns the overlap of two clips: max of the mins, min of
// the maxes. Either side may be nil, meaning unclipped.
func (c *Clip) Intersect(other *Clip) *Clip {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	return &Clip{
		X0: max32(c.X0, other.X0),
		Y0: max32(c.Y0, other.Y0),
		X1: min32(c.X1, other.X1),
		Y1: min32(c.Y1, other.Y1),
	}
}

// Outside reports whether a rectangle lies fully outside the clip, in
// which case drawing it can be skipped entirely. Rectangles touching
// the clip edge are kept.
func (c *Clip) Outside(r Rect) bool {
	if c == nil {
		return false
	}
	return r.X+r.Width < c.X0 || r.Y+r.Height < c.Y0 || r.X > c.X1 || r.Y > c.Y1
}

// Empty reports whether the clip admits no pixels.
func (c *Clip) Empty() bool {
	return c != nil && (c.X1 <= c.X0 || c.Y1 <= c.Y0)
}

// DrawCmd is one drawing operation in a frame's flattened output.
type DrawCmd interface {
	isDrawCmd()
}

// RectCmd fills and optionally strokes a rectangle.
type RectCmd struct {
	Rect         Rect
	Fill         Color
	Border       Color
	BorderWidth  float32
	CornerRadius float32
	Clip         *Clip
}

// TextCmd draws a text run with its top-left corner at X, Y.
type TextCmd struct {
	X, Y    float32
	Content string
	Font    string
	Color   Color
	Clip    *Clip
}

// ShadowCmd draws a blurred shadow behind the shape it precedes.
// Shadows are culled with their owner but never scissored.
type ShadowCmd struct {
	Rect             Rect
	Color            Color
	CornerRadius     float32
	Blur             float32
	OffsetX, OffsetY float32
}

func (RectCmd) isDrawCmd()   {}
func (TextCmd) isDrawCmd()   {}
func (ShadowCmd) isDrawCmd() {}

// DrawList is the ordered, flattened output of a frame, consumed by a
// Surface. Parents appear before children, shadows before the shapes
// that cast them.
type DrawList struct {
	Cmds []DrawCmd
}

// Len returns the number of commands in the list.
func (dl *DrawList) Len() int {
	return len(dl.Cmds)
}

// BuildDrawList flattens a measured and laid-out tree into draw
// commands. Containers with Overflow Hidden or Scroll clip their
// descendants; elements fully outside the active clip are culled.
// Button chrome is derived from the current pointer: the fill
// brightens while hovered and flashes on the frame the left button is
// pressed.
func BuildDrawList(root *Element, in *Input, fonts textMeasurer) (*DrawList, error) {
	dl := &DrawList{}
	if err := dl.emit(root, in, fonts, nil); err != nil {
		return nil, err
	}
	return dl, nil
}

func (dl *DrawList) emit(e *Element, in *Input, fonts textMeasurer, clip *Clip) error {
	switch e.kind {
	case KindEmpty:
		return nil

	case KindRect:
		r := e.layout.Rect
		if clip.Outside(r) {
			return nil
		}
		dl.emitShadow(e, r)
		dl.emitShape(e, r, fillOf(e), clip)
		return nil

	case KindText:
		r := e.layout.Rect
		if clip.Outside(r) {
			return nil
		}
		dl.Cmds = append(dl.Cmds, TextCmd{
			X:       e.layout.ContentRect.X,
			Y:       e.layout.ContentRect.Y,
			Content: e.text,
			Font:    e.fontName,
			Color:   e.textColor,
			Clip:    clip,
		})
		return nil

	case KindButton:
		r := e.layout.Rect
		if clip.Outside(r) {
			return nil
		}
		hovered := in.Mouse.Over(r)
		pressed := hovered && in.Mouse.LeftJustPressed
		dl.emitShadow(e, r)
		dl.emitShape(e, r, buttonFill(e.visual.Background, hovered, pressed), clip)

		tw, th, err := fonts.Measure(e.fontName, e.text)
		if err != nil {
			return err
		}
		dl.Cmds = append(dl.Cmds, TextCmd{
			X:       r.X + (r.Width-tw)/2,
			Y:       r.Y + (r.Height-th)/2,
			Content: e.text,
			Font:    e.fontName,
			Color:   buttonLabelColor,
			Clip:    clip,
		})
		return nil

	case KindRow, KindColumn:
		r := e.layout.Rect
		dl.emitShadow(e, r)
		if e.visual.Background != nil {
			dl.emitShape(e, r, *e.visual.Background, clip)
		}
		childClip := clip
		if e.visual.Overflow == OverflowHidden || e.visual.Overflow == OverflowScroll {
			own := clipOf(r)
			childClip = clip.Intersect(&own)
		}
		for _, child := range e.children {
			if err := dl.emit(child, in, fonts, childClip); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// emitShape appends the element's rectangle with its fill and border.
// Opacity scales the element's own fill and border alpha only.
func (dl *DrawList) emitShape(e *Element, r Rect, fill Color, clip *Clip) {
	border := Transparent
	if e.visual.BorderColor != nil {
		border = *e.visual.BorderColor
	}
	dl.Cmds = append(dl.Cmds, RectCmd{
		Rect:         r,
		Fill:         fill.WithOpacity(e.visual.Opacity),
		Border:       border.WithOpacity(e.visual.Opacity),
		BorderWidth:  e.visual.BorderWidth,
		CornerRadius: e.visual.CornerRadius,
		Clip:         clip,
	})
}

// emitShadow appends the element's shadow when it has one. A shadow
// needs a visible color and a positive blur.
func (dl *DrawList) emitShadow(e *Element, r Rect) {
	v := e.visual
	if v.ShadowColor.A <= 0 || v.ShadowBlur <= 0 {
		return
	}
	dl.Cmds = append(dl.Cmds, ShadowCmd{
		Rect:         r,
		Color:        v.ShadowColor.WithOpacity(v.Opacity),
		CornerRadius: v.CornerRadius,
		Blur:         v.ShadowBlur,
		OffsetX:      v.ShadowOffsetX,
		OffsetY:      v.ShadowOffsetY,
	})
}

func fillOf(e *Element) Color {
	if e.visual.Background == nil {
		return Transparent
	}
	return *e.visual.Background
}
