package bento

import (
	"golang.org/x/image/font/gofont/goregular"

	"github.com/grindlemire/bento/internal/font"
)

// fonts.go re-exports the font registry from internal/font.
// Any changes to internal/font types must be mirrored here.

// FontRegistry holds parsed fonts by name along with the measurement
// caches. Fonts register under a name and a pixel size; the first one
// added becomes the default.
type FontRegistry = font.Registry

// NewFontRegistry returns an empty font registry.
func NewFontRegistry() *FontRegistry {
	return font.NewRegistry()
}

var (
	// ErrNoDefaultFont is returned when text must be measured or drawn
	// and no font has been registered.
	ErrNoDefaultFont = font.ErrNoDefaultFont

	// ErrUnknownFont is returned when a named font is not in the
	// registry.
	ErrUnknownFont = font.ErrUnknownFont
)

// The registry serves the measure pass directly.
var _ textMeasurer = (*FontRegistry)(nil)

// BuiltinFontName is the name the bundled face registers under.
const BuiltinFontName = "go-regular"

// RegisterBuiltinFont adds the bundled Go Regular face at the given
// pixel size, so apps and tests never need font files on disk. The
// runner calls this automatically when setup ends with an empty
// registry.
func RegisterBuiltinFont(fonts *FontRegistry, size float32) error {
	return fonts.Add(BuiltinFontName, goregular.TTF, size)
}
