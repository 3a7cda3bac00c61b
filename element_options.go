package bento

// Option configures an element at construction time.
type Option func(*Element)

// --- Layout Options ---

// WithWidth sets the width request.
func WithWidth(v Value) Option {
	return func(e *Element) {
		e.style.Width = v
	}
}

// WithHeight sets the height request.
func WithHeight(v Value) Option {
	return func(e *Element) {
		e.style.Height = v
	}
}

// WithSize sets both size requests at once.
func WithSize(w, h Value) Option {
	return func(e *Element) {
		e.style.Width = w
		e.style.Height = h
	}
}

// WithMinWidth sets the lower width bound. Minimums win over
// maximums when the two conflict.
func WithMinWidth(v Value) Option {
	return func(e *Element) {
		e.style.MinWidth = v
	}
}

// WithMinHeight sets the lower height bound.
func WithMinHeight(v Value) Option {
	return func(e *Element) {
		e.style.MinHeight = v
	}
}

// WithMaxWidth sets the upper width bound.
func WithMaxWidth(v Value) Option {
	return func(e *Element) {
		e.style.MaxWidth = v
	}
}

// WithMaxHeight sets the upper height bound.
func WithMaxHeight(v Value) Option {
	return func(e *Element) {
		e.style.MaxHeight = v
	}
}

// WithDirection sets the axis children flow along.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithPadding insets the element's content box.
func WithPadding(edges Edges) Option {
	return func(e *Element) {
		e.style.Padding = edges
	}
}

// WithMargin reserves space around the element inside its parent.
func WithMargin(edges Edges) Option {
	return func(e *Element) {
		e.style.Margin = edges
	}
}

// WithGap sets the spacing between adjacent children.
func WithGap(gap float32) Option {
	return func(e *Element) {
		e.style.Gap = gap
	}
}

// WithGrow sets the weight used when splitting leftover space among
// Fill siblings. Zero weights split leftover space equally.
func WithGrow(grow float32) Option {
	return func(e *Element) {
		e.style.Grow = grow
	}
}

// WithShrink sets the weight used when reclaiming overflow from this
// element. Zero exempts it from shrinking.
func WithShrink(shrink float32) Option {
	return func(e *Element) {
		e.style.Shrink = shrink
	}
}

// WithAlignX sets horizontal child alignment for containers.
func WithAlignX(a Align) Option {
	return func(e *Element) {
		e.style.AlignX = a
	}
}

// WithAlignY sets vertical child alignment for containers.
func WithAlignY(a Align) Option {
	return func(e *Element) {
		e.style.AlignY = a
	}
}

// WithAlignSelf overrides the parent's cross-axis alignment for this
// element only.
func WithAlignSelf(a Align) Option {
	return func(e *Element) {
		e.style.AlignSelf = &a
	}
}

// WithPosition sets how the element is placed. Absolute elements are
// removed from the flow and anchored to the parent's content box.
func WithPosition(p Position) Option {
	return func(e *Element) {
		e.style.Position = p
	}
}

// WithInset sets the offsets an absolute element is anchored at.
func WithInset(edges Edges) Option {
	return func(e *Element) {
		e.style.Inset = edges
	}
}

// --- Visual Options ---

// WithBackground fills the element's rectangle with a color.
func WithBackground(c Color) Option {
	return func(e *Element) {
		e.visual.Background = &c
	}
}

// WithBorder strokes the element's edge with a color and width.
func WithBorder(c Color, width float32) Option {
	return func(e *Element) {
		e.visual.BorderColor = &c
		e.visual.BorderWidth = width
	}
}

// WithCornerRadius rounds the element's corners. The radius also
// shapes the border, the shadow, and any clip the element introduces.
func WithCornerRadius(r float32) Option {
	return func(e *Element) {
		e.visual.CornerRadius = r
	}
}

// WithOpacity scales the alpha of the element's own fill, border, and
// shadow. It is not inherited by children and does not affect text.
func WithOpacity(o float32) Option {
	return func(e *Element) {
		e.visual.Opacity = o
	}
}

// WithShadow draws a blurred shadow behind the element. The shadow is
// skipped when the color is fully transparent or the blur is zero.
func WithShadow(c Color, blur, offsetX, offsetY float32) Option {
	return func(e *Element) {
		e.visual.ShadowColor = c
		e.visual.ShadowBlur = blur
		e.visual.ShadowOffsetX = offsetX
		e.visual.ShadowOffsetY = offsetY
	}
}

// WithOverflow sets how content outside the element's bounds is
// handled. Hidden and Scroll clip descendants to the element's
// rectangle.
func WithOverflow(o Overflow) Option {
	return func(e *Element) {
		e.visual.Overflow = o
	}
}

// --- Text Options ---

// WithFont renders the element's text with a registered font instead
// of the default.
func WithFont(name string) Option {
	return func(e *Element) {
		e.fontName = name
	}
}

// --- Interaction Options ---

// WithKey gives the element an explicit identity for hover tracking
// across frames. Without a key, identity derives from the element's
// kind, text, and position among identical siblings.
func WithKey(key string) Option {
	return func(e *Element) {
		e.key = key
	}
}

// WithOnClick invokes fn when the cursor is over the element on the
// frame the left button is first pressed.
func WithOnClick(fn func()) Option {
	return func(e *Element) {
		e.onClick = fn
	}
}

// WithOnHover invokes fn every frame the cursor is over the element.
func WithOnHover(fn func()) Option {
	return func(e *Element) {
		e.onHover = fn
	}
}

// WithOnJustHovered invokes fn on the first frame the cursor is over
// the element after a frame it was not.
func WithOnJustHovered(fn func()) Option {
	return func(e *Element) {
		e.onJustHovered = fn
	}
}

// WithOnJustUnhovered invokes fn on the first frame the cursor is no
// longer over the element.
func WithOnJustUnhovered(fn func()) Option {
	return func(e *Element) {
		e.onJustUnhovered = fn
	}
}
