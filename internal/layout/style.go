package layout

// Direction controls the main axis along which a container places
// its children.
type Direction uint8

const (
	// Row places children left to right.
	Row Direction = iota
	// Column places children top to bottom.
	Column
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unknown"
	}
}

// Align controls how children are distributed along an axis.
//
// On a container's main axis all six values apply. On the cross axis
// only Start, Center, and End are meaningful; the space-distributing
// values fall back to Start.
type Align uint8

const (
	// AlignStart packs children at the beginning of the axis.
	AlignStart Align = iota
	// AlignCenter centers children along the axis.
	AlignCenter
	// AlignEnd packs children at the end of the axis.
	AlignEnd
	// AlignSpaceBetween distributes free space between children.
	AlignSpaceBetween
	// AlignSpaceAround distributes free space around children, with
	// half-size gaps at the ends.
	AlignSpaceAround
	// AlignSpaceEvenly distributes free space evenly, including the ends.
	AlignSpaceEvenly
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	case AlignSpaceEvenly:
		return "space-evenly"
	default:
		return "unknown"
	}
}

// Position controls whether a node participates in its parent's flow.
type Position uint8

const (
	// PositionRelative nodes are placed by the parent's flex flow.
	PositionRelative Position = iota
	// PositionAbsolute nodes are taken out of the flow and anchored
	// against the parent's content box using the style's Inset.
	PositionAbsolute
)

// Style holds the layout inputs for a single node.
type Style struct {
	// Width and Height size the node's border box. Auto derives the
	// size from content; Fill claims a share of the parent's free space.
	Width  Value
	Height Value

	// Min/Max constrain the resolved size. Min wins over Max when the
	// two conflict.
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Direction is the main axis for this node's children.
	Direction Direction

	// AlignX distributes children horizontally, AlignY vertically.
	// Whichever matches the Direction acts as main-axis justification;
	// the other aligns children on the cross axis.
	AlignX Align
	AlignY Align

	// AlignSelf overrides the parent's cross-axis alignment for this
	// node only. Nil means inherit.
	AlignSelf *Align

	// Gap is the spacing inserted between adjacent in-flow children.
	Gap float32

	// Grow weights this node's share of free space when its size on
	// the main axis is Fill. Zero-weight Fill children share equally.
	Grow float32

	// Shrink weights how much this node gives up when siblings
	// overflow the container. Zero means never shrink.
	Shrink float32

	// Padding insets the content box from the border box.
	Padding Edges

	// Margin spaces the border box away from siblings.
	Margin Edges

	// Position and Inset control absolute placement. Inset.Left and
	// Inset.Top offset the node from the parent's content origin.
	Position Position
	Inset    Edges
}

// DefaultStyle returns a style with auto sizing and no constraints.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Fixed(0),
		MinHeight: Fixed(0),
		MaxWidth:  Auto(),
		MaxHeight: Auto(),
		Shrink:    1,
	}
}

// MainAlign returns the alignment that applies to the main axis.
func (s Style) MainAlign() Align {
	if s.Direction == Row {
		return s.AlignX
	}
	return s.AlignY
}

// CrossAlign returns the alignment that applies to the cross axis.
// Space-distributing values degrade to Start.
func (s Style) CrossAlign() Align {
	a := s.AlignY
	if s.Direction == Column {
		a = s.AlignX
	}
	if a > AlignEnd {
		return AlignStart
	}
	return a
}
