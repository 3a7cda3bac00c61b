package font

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// measureKey identifies one memoized measurement. Sizes are quantized
// to tenths of a pixel so that animated sizes do not flood the cache.
type measureKey struct {
	font int
	text string
	size uint32
}

type measured struct {
	width  float32
	height float32
}

// faceKey identifies a rasterizer face at a quantized size.
type faceKey struct {
	font int
	size uint32
}

type cachedFace struct {
	face font.Face
}

func quantize(size float32) uint32 {
	return uint32(size * 10)
}

// LineHeight returns the baseline-to-baseline advance for a font size.
func LineHeight(size float32) float32 {
	return size * lineHeightFactor
}

// Measure returns the pixel extent of text in the named font at the
// size it was registered with. Width is the widest line; height is the
// line count times the line height. Empty text measures zero in both
// axes.
func (r *Registry) Measure(name, text string) (w, h float32, err error) {
	e, err := r.resolve(name)
	if err != nil {
		return 0, 0, err
	}
	return r.measureAt(e, text, e.size)
}

// MeasureSized measures text at an explicit pixel size instead of the
// font's registered size.
func (r *Registry) MeasureSized(name, text string, size float32) (w, h float32, err error) {
	e, err := r.resolve(name)
	if err != nil {
		return 0, 0, err
	}
	return r.measureAt(e, text, size)
}

func (r *Registry) measureAt(e *entry, text string, size float32) (w, h float32, err error) {
	if text == "" {
		return 0, 0, nil
	}

	key := measureKey{font: e.id, text: text, size: quantize(size)}
	if m, ok := r.measures[key]; ok {
		return m.width, m.height, nil
	}

	face, err := r.faceFor(e, size)
	if err != nil {
		return 0, 0, err
	}

	lines := strings.Split(text, "\n")
	var widest fixed.Int26_6
	for _, line := range lines {
		if adv := font.MeasureString(face, line); adv > widest {
			widest = adv
		}
	}

	m := measured{
		width:  float32(widest) / 64,
		height: float32(len(lines)) * LineHeight(size),
	}
	r.measures[key] = m
	return m.width, m.height, nil
}

// Face returns a rasterizer face for the named font at its registered
// size. Faces are cached per font and quantized size.
func (r *Registry) Face(name string) (font.Face, error) {
	e, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return r.faceFor(e, e.size)
}

// FaceSized returns a rasterizer face at an explicit pixel size.
func (r *Registry) FaceSized(name string, size float32) (font.Face, error) {
	e, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return r.faceFor(e, size)
}

func (r *Registry) faceFor(e *entry, size float32) (font.Face, error) {
	key := faceKey{font: e.id, size: quantize(size)}
	if c, ok := r.faces[key]; ok {
		return c.face, nil
	}

	// The face is built from the quantized size so it always matches
	// its cache bucket. DPI 72 makes the point size equal the pixel
	// size.
	face, err := opentype.NewFace(e.font, &opentype.FaceOptions{
		Size:    float64(key.size) / 10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	r.faces[key] = cachedFace{face: face}
	return face, nil
}
