package layout

// Layoutable is the node interface the engine computes layouts for.
// The tree is rebuilt every frame, so results are written back onto
// the node rather than kept in a parallel structure.
type Layoutable interface {
	// LayoutStyle returns the node's layout inputs.
	LayoutStyle() Style

	// LayoutChildren returns the node's children in paint order.
	LayoutChildren() []Layoutable

	// IntrinsicSize returns the node's natural content size, used to
	// resolve Auto dimensions. For text this is the measured extent;
	// containers report the packed size of their children.
	IntrinsicSize() Size

	// SetLayout stores the computed result on the node.
	SetLayout(Layout)

	// GetLayout returns the result stored by the last pass.
	GetLayout() Layout
}
