package layout

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies within the rectangle.
// Edges are inclusive on all four sides.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Inset returns the rectangle shrunk inward by the given edges.
// Width and height are clamped at zero.
func (r Rect) Inset(e Edges) Rect {
	w := r.Width - e.Horizontal()
	h := r.Height - e.Vertical()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  w,
		Height: h,
	}
}

// Outset returns the rectangle grown outward by the given edges.
func (r Rect) Outset(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Translate returns the rectangle shifted by dx, dy.
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlapping region of two rectangles.
// Returns a zero rect if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max32(r.X, other.X)
	y0 := max32(r.Y, other.Y)
	x1 := min32(r.Right(), other.Right())
	y1 := min32(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := min32(r.X, other.X)
	y0 := min32(r.Y, other.Y)
	x1 := max32(r.Right(), other.Right())
	y1 := max32(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
