package layout

// Size is a width/height pair in pixels.
type Size struct {
	Width  float32
	Height float32
}

// Layout is the computed result for a node after a layout pass.
type Layout struct {
	// Rect is the node's border box in absolute coordinates.
	Rect Rect

	// ContentRect is Rect inset by the node's padding. Children are
	// placed within it.
	ContentRect Rect
}
