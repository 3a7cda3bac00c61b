package layout

// Calculate runs a full layout pass over the tree. The root is sized
// against the given available extent and anchored at the origin, then
// every descendant is positioned relative to it. Results are written
// onto the nodes via SetLayout.
func Calculate(root Layoutable, availWidth, availHeight float32) {
	style := root.LayoutStyle()
	intrinsic := root.IntrinsicSize()

	w := style.Width.Resolve(availWidth, intrinsic.Width)
	w = clampSize(w, style.MinWidth, style.MaxWidth, availWidth)
	h := style.Height.Resolve(availHeight, intrinsic.Height)
	h = clampSize(h, style.MinHeight, style.MaxHeight, availHeight)

	place(root, style, Rect{X: 0, Y: 0, Width: w, Height: h})
}
