package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitFixed               // Absolute pixels
	UnitPercent             // Percentage of the parent's inner extent
	UnitFill                // Share of the parent's leftover space
)

// Value represents a dimension that can be auto, fixed, percent, or fill.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that resolves to the node's intrinsic size.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
func Fixed(px float32) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the parent's inner
// extent on that axis. The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fill returns a Value that claims a share of the parent's leftover space.
// Inside a container, Fill siblings split the remainder equally (or by their
// Grow weights); resolved in isolation, Fill takes all available space.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// Resolve computes the concrete extent given available space.
// UnitAuto resolves to the fallback, which callers supply as the node's
// intrinsic size. Resolution is pure: the same inputs always produce the
// same output.
func (v Value) Resolve(available, fallback float32) float32 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100
	case UnitFill:
		return available
	default:
		return fallback
	}
}

// IsAuto returns true if this value resolves from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFill returns true if this value claims leftover space.
func (v Value) IsFill() bool {
	return v.Unit == UnitFill
}
