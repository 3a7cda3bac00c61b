package bento

// Kind identifies what an element draws and how it measures.
type Kind uint8

const (
	// KindRect is a solid rectangle.
	KindRect Kind = iota
	// KindText is a colored text run.
	KindText
	// KindButton is a clickable labeled box with hover and press
	// states.
	KindButton
	// KindRow lays out children left to right.
	KindRow
	// KindColumn lays out children top to bottom.
	KindColumn
	// KindEmpty occupies no space and draws nothing.
	KindEmpty
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Element is one node in a frame's UI tree. Trees are rebuilt from
// scratch inside App.Update every frame, so elements hold no state
// beyond that frame; identity across frames comes from WithKey or the
// element's content.
type Element struct {
	children []*Element
	parent   *Element

	kind   Kind
	style  LayoutStyle
	visual Style
	layout LayoutResult

	text      string
	textColor Color
	fontName  string

	key string

	// measured is the natural size computed by the measure pass.
	measured Size

	onClick         func()
	onHover         func()
	onJustHovered   func()
	onJustUnhovered func()
}

// Compile-time check that Element implements Layoutable.
var _ Layoutable = (*Element)(nil)

func newElement(kind Kind, opts []Option) *Element {
	e := &Element{
		kind:   kind,
		style:  DefaultLayoutStyle(),
		visual: defaultVisual(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewRect creates a solid rectangle of the given size and color.
// The size can be overridden with WithWidth and WithHeight.
func NewRect(w, h float32, color Color, opts ...Option) *Element {
	e := newElement(KindRect, nil)
	e.style.Width = Fixed(w)
	e.style.Height = Fixed(h)
	e.visual.Background = &color
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewText creates a text run in the given color. The font defaults to
// the registry's default and can be changed with WithFont.
func NewText(content string, color Color, opts ...Option) *Element {
	e := newElement(KindText, nil)
	e.text = content
	e.textColor = color
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewButton creates a clickable labeled box. Its natural size wraps the
// label; the fill brightens on hover and press.
func NewButton(label string, onClick func(), opts ...Option) *Element {
	e := newElement(KindButton, nil)
	e.text = label
	e.onClick = onClick
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewRow creates a container that lays out children left to right.
func NewRow(children []*Element, opts ...Option) *Element {
	e := newElement(KindRow, nil)
	e.style.Direction = Row
	for _, opt := range opts {
		opt(e)
	}
	e.addChildren(children)
	return e
}

// NewColumn creates a container that lays out children top to bottom.
func NewColumn(children []*Element, opts ...Option) *Element {
	e := newElement(KindColumn, nil)
	e.style.Direction = Column
	for _, opt := range opts {
		opt(e)
	}
	e.addChildren(children)
	return e
}

// NewEmpty creates an element that occupies no space and draws nothing.
func NewEmpty() *Element {
	return newElement(KindEmpty, nil)
}

// LayoutStyle returns the element's layout inputs.
func (e *Element) LayoutStyle() LayoutStyle {
	return e.style
}

// LayoutChildren returns the element's children in paint order.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// IntrinsicSize returns the natural size computed by the measure pass.
func (e *Element) IntrinsicSize() Size {
	return e.measured
}

// SetLayout stores the computed layout on the element.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the layout computed for the current frame.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}
