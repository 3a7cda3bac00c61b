package bento

import "testing"

func TestButtonFill(t *testing.T) {
	base := RGB(0.2, 0.4, 0.6)

	type tc struct {
		bg      *Color
		hovered bool
		pressed bool
		want    Color
	}

	tests := map[string]tc{
		"idle default": {
			want: buttonDefaultBG,
		},
		"hovered default": {
			hovered: true,
			want:    buttonHoverBG,
		},
		"pressed default": {
			pressed: true,
			want:    buttonPressBG,
		},
		"pressed wins over hovered": {
			hovered: true,
			pressed: true,
			want:    buttonPressBG,
		},
		"idle explicit": {
			bg:   &base,
			want: base,
		},
		"hovered explicit brightens": {
			bg:      &base,
			hovered: true,
			want:    base.brighten(buttonHoverBrighten),
		},
		"pressed explicit brightens more": {
			bg:      &base,
			pressed: true,
			want:    base.brighten(buttonPressBrighten),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := buttonFill(tt.bg, tt.hovered, tt.pressed); !colorApprox(got, tt.want) {
				t.Errorf("buttonFill = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultVisual(t *testing.T) {
	v := defaultVisual()
	if v.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", v.Opacity)
	}
	if v.Background != nil {
		t.Errorf("Background = %+v, want nil", v.Background)
	}
	if v.Overflow != OverflowVisible {
		t.Errorf("Overflow = %v, want visible", v.Overflow)
	}
}
