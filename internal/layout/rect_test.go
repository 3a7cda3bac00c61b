package layout

import "testing"

func TestRect_Contains_InclusiveEdges(t *testing.T) {
	type tc struct {
		x, y     float32
		expected bool
	}

	r := NewRect(10, 20, 100, 50)

	tests := map[string]tc{
		"interior point":       {x: 50, y: 40, expected: true},
		"top-left corner":      {x: 10, y: 20, expected: true},
		"bottom-right corner":  {x: 110, y: 70, expected: true},
		"on right edge":        {x: 110, y: 40, expected: true},
		"on bottom edge":       {x: 50, y: 70, expected: true},
		"just past right edge": {x: 110.5, y: 40, expected: false},
		"just above top":       {x: 50, y: 19.5, expected: false},
		"left of rect":         {x: 9, y: 40, expected: false},
		"below rect":           {x: 50, y: 71, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform inset": {
			rect:     NewRect(0, 0, 100, 80),
			edges:    EdgeAll(10),
			expected: NewRect(10, 10, 80, 60),
		},
		"asymmetric inset": {
			rect:     NewRect(5, 5, 100, 100),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(9, 6, 94, 96),
		},
		"inset larger than rect clamps to zero size": {
			rect:     NewRect(0, 0, 10, 10),
			edges:    EdgeAll(20),
			expected: NewRect(20, 20, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Outset(t *testing.T) {
	r := NewRect(10, 10, 50, 40)
	got := r.Outset(EdgeSymmetric(5, 8))
	want := NewRect(2, 5, 66, 50)
	if got != want {
		t.Errorf("Outset() = %+v, want %+v", got, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(50, 50, 100, 100),
			expected: NewRect(50, 50, 50, 50),
		},
		"contained": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(20, 20, 30, 30),
			expected: NewRect(20, 20, 30, 30),
		},
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(50, 50, 10, 10),
			expected: Rect{},
		},
		"touching edges only": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			// Intersection is commutative.
			if got := tt.b.Intersect(tt.a); got != tt.expected {
				t.Errorf("Intersect() reversed = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 30, 10, 10)
	want := NewRect(0, 0, 30, 40)
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	got := r.Translate(5, -5)
	want := NewRect(15, 15, 30, 40)
	if got != want {
		t.Errorf("Translate() = %+v, want %+v", got, want)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %v, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %v, want 4", got)
	}
	if e.IsZero() {
		t.Error("IsZero() = true for non-zero edges")
	}
	if !(Edges{}).IsZero() {
		t.Error("IsZero() = false for zero edges")
	}
	if got := EdgeSymmetric(3, 7); got != (Edges{Top: 3, Right: 7, Bottom: 3, Left: 7}) {
		t.Errorf("EdgeSymmetric(3, 7) = %+v", got)
	}
}
