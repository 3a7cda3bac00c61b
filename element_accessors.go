package bento

// Kind returns what the element draws.
func (e *Element) Kind() Kind {
	return e.kind
}

// Parent returns the element's parent, or nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children in paint order.
func (e *Element) Children() []*Element {
	return e.children
}

// Text returns the element's text content. It is the label for
// buttons and the run content for text elements.
func (e *Element) Text() string {
	return e.text
}

// TextColor returns the color text is drawn in.
func (e *Element) TextColor() Color {
	return e.textColor
}

// FontName returns the registered font the element renders text with.
// Empty means the registry default.
func (e *Element) FontName() string {
	return e.fontName
}

// Key returns the explicit identity set with WithKey, or empty when
// identity is derived from content.
func (e *Element) Key() string {
	return e.key
}

// Visual returns the element's drawing style.
func (e *Element) Visual() Style {
	return e.visual
}

// Bounds returns the rectangle the element was placed in this frame.
func (e *Element) Bounds() Rect {
	return e.layout.Rect
}

// ContentBounds returns this frame's placement rectangle inset by
// padding.
func (e *Element) ContentBounds() Rect {
	return e.layout.ContentRect
}
