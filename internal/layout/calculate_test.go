package layout

import "testing"

func TestCalculate_RootSizing(t *testing.T) {
	type tc struct {
		style          Style
		intrinsic      Size
		availableW     float32
		availableH     float32
		expectedWidth  float32
		expectedHeight float32
	}

	tests := map[string]tc{
		"fixed width and height": {
			style:          sized(50, 30),
			availableW:     100,
			availableH:     100,
			expectedWidth:  50,
			expectedHeight: 30,
		},
		"fill claims the full extent": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fill()
				s.Height = Fill()
				return s
			}(),
			availableW:     640,
			availableH:     480,
			expectedWidth:  640,
			expectedHeight: 480,
		},
		"percent of available": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Percent(50)
				s.Height = Percent(25)
				return s
			}(),
			availableW:     200,
			availableH:     100,
			expectedWidth:  100,
			expectedHeight: 25,
		},
		"auto sizes to content": {
			style:          DefaultStyle(),
			intrinsic:      Size{Width: 120, Height: 48},
			availableW:     640,
			availableH:     480,
			expectedWidth:  120,
			expectedHeight: 48,
		},
		"max caps the resolved size": {
			style: func() Style {
				s := sized(500, 30)
				s.MaxWidth = Fixed(200)
				return s
			}(),
			availableW:     640,
			availableH:     480,
			expectedWidth:  200,
			expectedHeight: 30,
		},
		"min wins over max": {
			style: func() Style {
				s := sized(100, 30)
				s.MinWidth = Fixed(300)
				s.MaxWidth = Fixed(200)
				return s
			}(),
			availableW:     640,
			availableH:     480,
			expectedWidth:  300,
			expectedHeight: 30,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := newTestNode(tt.style)
			node.intrinsic = tt.intrinsic
			Calculate(node, tt.availableW, tt.availableH)

			if node.layout.Rect.Width != tt.expectedWidth {
				t.Errorf("Layout.Rect.Width = %v, want %v", node.layout.Rect.Width, tt.expectedWidth)
			}
			if node.layout.Rect.Height != tt.expectedHeight {
				t.Errorf("Layout.Rect.Height = %v, want %v", node.layout.Rect.Height, tt.expectedHeight)
			}
			if node.layout.Rect.X != 0 || node.layout.Rect.Y != 0 {
				t.Errorf("Layout.Rect position = (%v, %v), want (0, 0)",
					node.layout.Rect.X, node.layout.Rect.Y)
			}
		})
	}
}

func TestCalculate_RootWithPadding(t *testing.T) {
	style := sized(100, 80)
	style.Padding = EdgeAll(10)

	node := newTestNode(style)
	Calculate(node, 200, 200)

	// Border box keeps the full size.
	if node.layout.Rect.Width != 100 || node.layout.Rect.Height != 80 {
		t.Errorf("Layout.Rect = %vx%v, want 100x80",
			node.layout.Rect.Width, node.layout.Rect.Height)
	}

	// Content rect is inset by padding.
	if node.layout.ContentRect.X != 10 || node.layout.ContentRect.Y != 10 {
		t.Errorf("ContentRect position = (%v, %v), want (10, 10)",
			node.layout.ContentRect.X, node.layout.ContentRect.Y)
	}
	if node.layout.ContentRect.Width != 80 || node.layout.ContentRect.Height != 60 {
		t.Errorf("ContentRect size = %vx%v, want 80x60",
			node.layout.ContentRect.Width, node.layout.ContentRect.Height)
	}
}

func TestCalculate_ClampIsIdempotent(t *testing.T) {
	type tc struct {
		value    float32
		lo, hi   Value
		expected float32
	}

	tests := map[string]tc{
		"within bounds":       {value: 50, lo: Fixed(10), hi: Fixed(100), expected: 50},
		"below min":           {value: 5, lo: Fixed(10), hi: Fixed(100), expected: 10},
		"above max":           {value: 500, lo: Fixed(10), hi: Fixed(100), expected: 100},
		"min wins over max":   {value: 50, lo: Fixed(80), hi: Fixed(40), expected: 80},
		"auto bounds pass":    {value: 75, lo: Auto(), hi: Auto(), expected: 75},
		"negative clamps to zero": {
			value: -20, lo: Auto(), hi: Auto(), expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			once := clampSize(tt.value, tt.lo, tt.hi, 1000)
			if once != tt.expected {
				t.Errorf("clampSize = %v, want %v", once, tt.expected)
			}
			twice := clampSize(once, tt.lo, tt.hi, 1000)
			if twice != once {
				t.Errorf("clampSize not idempotent: %v then %v", once, twice)
			}
		})
	}
}

func TestCalculate_NestedTree(t *testing.T) {
	// root (200x100 row) -> panel (fill) -> label (fixed 40x20)
	root := newTestNode(sized(200, 100))
	root.style.Direction = Row

	panel := newTestNode(DefaultStyle())
	panel.style.Width = Fill()
	panel.style.Height = Fill()
	panel.style.Padding = EdgeAll(5)

	label := newTestNode(sized(40, 20))

	root.AddChild(panel)
	panel.AddChild(label)
	Calculate(root, 640, 480)

	if panel.layout.Rect != NewRect(0, 0, 200, 100) {
		t.Errorf("panel rect = %+v, want (0,0,200,100)", panel.layout.Rect)
	}
	if panel.layout.ContentRect != NewRect(5, 5, 190, 90) {
		t.Errorf("panel content = %+v, want (5,5,190,90)", panel.layout.ContentRect)
	}
	if label.layout.Rect.X != 5 || label.layout.Rect.Y != 5 {
		t.Errorf("label position = (%v, %v), want (5, 5)",
			label.layout.Rect.X, label.layout.Rect.Y)
	}
	if label.layout.Rect.Width != 40 || label.layout.Rect.Height != 20 {
		t.Errorf("label size = %vx%v, want 40x20",
			label.layout.Rect.Width, label.layout.Rect.Height)
	}
}
