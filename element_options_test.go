package bento

import "testing"

func TestLayoutOptions(t *testing.T) {
	type tc struct {
		opt    Option
		verify func(t *testing.T, e *Element)
	}

	tests := map[string]tc{
		"WithWidth": {
			opt: WithWidth(Percent(30)),
			verify: func(t *testing.T, e *Element) {
				if e.style.Width != Percent(30) {
					t.Errorf("Width = %+v", e.style.Width)
				}
			},
		},
		"WithHeight": {
			opt: WithHeight(Fixed(12)),
			verify: func(t *testing.T, e *Element) {
				if e.style.Height != Fixed(12) {
					t.Errorf("Height = %+v", e.style.Height)
				}
			},
		},
		"WithSize": {
			opt: WithSize(Fill(), Fixed(8)),
			verify: func(t *testing.T, e *Element) {
				if !e.style.Width.IsFill() || e.style.Height != Fixed(8) {
					t.Errorf("size = %+v x %+v", e.style.Width, e.style.Height)
				}
			},
		},
		"WithMinWidth": {
			opt: WithMinWidth(Fixed(5)),
			verify: func(t *testing.T, e *Element) {
				if e.style.MinWidth != Fixed(5) {
					t.Errorf("MinWidth = %+v", e.style.MinWidth)
				}
			},
		},
		"WithMaxHeight": {
			opt: WithMaxHeight(Percent(80)),
			verify: func(t *testing.T, e *Element) {
				if e.style.MaxHeight != Percent(80) {
					t.Errorf("MaxHeight = %+v", e.style.MaxHeight)
				}
			},
		},
		"WithDirection": {
			opt: WithDirection(Column),
			verify: func(t *testing.T, e *Element) {
				if e.style.Direction != Column {
					t.Errorf("Direction = %v", e.style.Direction)
				}
			},
		},
		"WithPadding": {
			opt: WithPadding(EdgeAll(6)),
			verify: func(t *testing.T, e *Element) {
				if e.style.Padding != EdgeAll(6) {
					t.Errorf("Padding = %+v", e.style.Padding)
				}
			},
		},
		"WithMargin": {
			opt: WithMargin(EdgeSymmetric(2, 3)),
			verify: func(t *testing.T, e *Element) {
				if e.style.Margin != EdgeSymmetric(2, 3) {
					t.Errorf("Margin = %+v", e.style.Margin)
				}
			},
		},
		"WithGap": {
			opt: WithGap(10),
			verify: func(t *testing.T, e *Element) {
				if e.style.Gap != 10 {
					t.Errorf("Gap = %v", e.style.Gap)
				}
			},
		},
		"WithGrow": {
			opt: WithGrow(2),
			verify: func(t *testing.T, e *Element) {
				if e.style.Grow != 2 {
					t.Errorf("Grow = %v", e.style.Grow)
				}
			},
		},
		"WithShrink": {
			opt: WithShrink(0),
			verify: func(t *testing.T, e *Element) {
				if e.style.Shrink != 0 {
					t.Errorf("Shrink = %v", e.style.Shrink)
				}
			},
		},
		"WithAlignX": {
			opt: WithAlignX(AlignCenter),
			verify: func(t *testing.T, e *Element) {
				if e.style.AlignX != AlignCenter {
					t.Errorf("AlignX = %v", e.style.AlignX)
				}
			},
		},
		"WithAlignY": {
			opt: WithAlignY(AlignEnd),
			verify: func(t *testing.T, e *Element) {
				if e.style.AlignY != AlignEnd {
					t.Errorf("AlignY = %v", e.style.AlignY)
				}
			},
		},
		"WithAlignSelf": {
			opt: WithAlignSelf(AlignEnd),
			verify: func(t *testing.T, e *Element) {
				if e.style.AlignSelf == nil || *e.style.AlignSelf != AlignEnd {
					t.Errorf("AlignSelf = %v", e.style.AlignSelf)
				}
			},
		},
		"WithPosition": {
			opt: WithPosition(PositionAbsolute),
			verify: func(t *testing.T, e *Element) {
				if e.style.Position != PositionAbsolute {
					t.Errorf("Position = %v", e.style.Position)
				}
			},
		},
		"WithInset": {
			opt: WithInset(Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}),
			verify: func(t *testing.T, e *Element) {
				want := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
				if e.style.Inset != want {
					t.Errorf("Inset = %+v", e.style.Inset)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEmpty()
			tt.opt(e)
			tt.verify(t, e)
		})
	}
}

func TestVisualOptions(t *testing.T) {
	e := NewEmpty()
	WithBackground(Red)(e)
	WithBorder(Blue, 2)(e)
	WithCornerRadius(4)(e)
	WithOpacity(0.5)(e)
	WithShadow(Black, 8, 1, 2)(e)
	WithOverflow(OverflowHidden)(e)

	v := e.Visual()
	if v.Background == nil || *v.Background != Red {
		t.Errorf("Background = %v, want Red", v.Background)
	}
	if v.BorderColor == nil || *v.BorderColor != Blue || v.BorderWidth != 2 {
		t.Errorf("Border = %v width %v, want Blue width 2", v.BorderColor, v.BorderWidth)
	}
	if v.CornerRadius != 4 {
		t.Errorf("CornerRadius = %v, want 4", v.CornerRadius)
	}
	if v.Opacity != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", v.Opacity)
	}
	if v.ShadowColor != Black || v.ShadowBlur != 8 || v.ShadowOffsetX != 1 || v.ShadowOffsetY != 2 {
		t.Errorf("Shadow = %+v blur %v offset (%v, %v)", v.ShadowColor, v.ShadowBlur, v.ShadowOffsetX, v.ShadowOffsetY)
	}
	if v.Overflow != OverflowHidden {
		t.Errorf("Overflow = %v, want hidden", v.Overflow)
	}
}

func TestInteractionOptions(t *testing.T) {
	var hovered, entered, left bool
	e := NewRect(10, 10, Red,
		WithKey("panel"),
		WithOnHover(func() { hovered = true }),
		WithOnJustHovered(func() { entered = true }),
		WithOnJustUnhovered(func() { left = true }),
	)

	if e.Key() != "panel" {
		t.Errorf("Key = %q, want %q", e.Key(), "panel")
	}
	e.onHover()
	e.onJustHovered()
	e.onJustUnhovered()
	if !hovered || !entered || !left {
		t.Error("callbacks not wired")
	}
}

func TestOption_BackgroundCopiesColor(t *testing.T) {
	// The option captures the color by value, so mutating the original
	// variable afterward must not change the element.
	c := Red
	e := NewEmpty()
	WithBackground(c)(e)
	c = Blue

	if *e.Visual().Background != Red {
		t.Errorf("Background = %+v, want the value at option time", *e.Visual().Background)
	}
}
