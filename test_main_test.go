package bento

import (
	"strings"
	"unicode/utf8"
)

// approx32 compares float32 values with a small tolerance for results
// that pass through non-representable division.
func approx32(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.001
}

// fakeFonts measures text with fixed-width glyphs so tests can assert
// exact extents: 10 units per rune, 20 units per line.
type fakeFonts struct{}

var _ textMeasurer = fakeFonts{}

func (fakeFonts) Measure(name, text string) (w, h float32, err error) {
	if text == "" {
		return 0, 0, nil
	}
	var widest float32
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := float32(10 * utf8.RuneCountInString(line)); w > widest {
			widest = w
		}
	}
	return widest, float32(len(lines)) * 20, nil
}
