// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package bento

import "github.com/grindlemire/bento/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Align specifies how children are distributed along an axis. On the
// main axis all values apply; on the cross axis the space-distributing
// values fall back to Start.
type Align = layout.Align

const (
	AlignStart        = layout.AlignStart
	AlignCenter       = layout.AlignCenter
	AlignEnd          = layout.AlignEnd
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
	AlignSpaceEvenly  = layout.AlignSpaceEvenly
)

// Position specifies whether an element participates in its parent's
// flow or is anchored absolutely against the parent's content box.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Value represents a dimension (fixed, fill, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitFill    = layout.UnitFill
)

// LayoutStyle holds the layout inputs for a node.
type LayoutStyle = layout.Style

// Rect is a rectangle with position and dimensions in pixels.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size is a width/height pair in pixels.
type Size = layout.Size

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// Layoutable is the interface nodes implement for layout calculation.
type Layoutable = layout.Layoutable

// Fixed creates a Value with a fixed pixel size.
func Fixed(px float32) Value {
	return layout.Fixed(px)
}

// Percent creates a Value that resolves to a percentage of the space
// available in the parent.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Fill creates a Value that claims a share of the parent's free space.
func Fill() Value {
	return layout.Fill()
}

// DefaultLayoutStyle returns a LayoutStyle with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(px float32) Edges {
	return layout.EdgeAll(px)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate performs flex layout on the given tree, sizing the root
// against the available extent.
func Calculate(root Layoutable, availableWidth, availableHeight float32) {
	layout.Calculate(root, availableWidth, availableHeight)
}
