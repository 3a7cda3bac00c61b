package bento

import "strconv"

// Color is an RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	White       = RGB(1, 1, 1)
	Black       = RGB(0, 0, 0)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGB creates an opaque color from channel values in [0, 1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from channel values in [0, 1].
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses "#rgb", "#rrggbb", or "#rrggbbaa". The leading # is
// optional. Invalid input returns Black.
func Hex(s string) Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		r := hexByte(string([]byte{s[0], s[0]}))
		g := hexByte(string([]byte{s[1], s[1]}))
		b := hexByte(string([]byte{s[2], s[2]}))
		return RGB(r, g, b)
	case 6:
		return RGB(hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6]))
	case 8:
		return RGBA(hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6]), hexByte(s[6:8]))
	default:
		return Black
	}
}

func hexByte(s string) float32 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float32(v) / 255
}

// HSL creates an opaque color from hue (0-360), saturation (0-1), and
// lightness (0-1).
func HSL(h, s, l float32) Color {
	return HSLA(h, s, l, 1)
}

// HSLA creates a color from hue, saturation, lightness, and alpha.
func HSLA(h, s, l, a float32) Color {
	r, g, b := hslToRGB(h, s, l)
	return Color{R: r, G: g, B: b, A: a}
}

// HWB creates an opaque color from hue (0-360), whiteness (0-1), and
// blackness (0-1).
func HWB(h, w, b float32) Color {
	return HWBA(h, w, b, 1)
}

// HWBA creates a color from hue, whiteness, blackness, and alpha. The
// pure hue is mixed toward white and black; whiteness and blackness
// summing to 1 or more yields the gray they mix to.
func HWBA(h, w, bk, a float32) Color {
	if w+bk >= 1 {
		gray := w / (w + bk)
		return Color{R: gray, G: gray, B: gray, A: a}
	}
	r, g, b := hslToRGB(h, 1, 0.5)
	f := 1 - w - bk
	return Color{R: r*f + w, G: g*f + w, B: b*f + w, A: a}
}

// Lighten raises the color's lightness by amount, clamping at 1.
func (c Color) Lighten(amount float32) Color {
	h, s, l := rgbToHSL(c.R, c.G, c.B)
	l += amount
	if l > 1 {
		l = 1
	}
	return HSLA(h, s, l, c.A)
}

// Darken lowers the color's lightness by amount, clamping at 0.
func (c Color) Darken(amount float32) Color {
	h, s, l := rgbToHSL(c.R, c.G, c.B)
	l -= amount
	if l < 0 {
		l = 0
	}
	return HSLA(h, s, l, c.A)
}

// WithAlpha returns the color with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// WithOpacity returns the color with its alpha multiplied by opacity.
func (c Color) WithOpacity(opacity float32) Color {
	c.A *= opacity
	return c
}

// brighten raises each channel by amount, clamping at 1. The result is
// always opaque; widget chrome paints solid fills.
func (c Color) brighten(amount float32) Color {
	return RGB(clamp1(c.R+amount), clamp1(c.G+amount), clamp1(c.B+amount))
}

func clamp1(v float32) float32 {
	if v > 1 {
		return 1
	}
	return v
}

func hslToRGB(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	h /= 360
	return hueToRGB(p, q, h+1.0/3.0), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3.0)
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func rgbToHSL(r, g, b float32) (h, s, l float32) {
	max := max32(r, max32(g, b))
	min := min32(r, min32(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6 * 360, s, l
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
