package bento

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings configures the runner: surface dimensions, background, and
// the fonts to register before the first frame. Settings can be built
// in code or loaded from a TOML file.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Fonts  []FontSetting  `toml:"fonts"`
}

// WindowSettings describes the surface the app renders to.
type WindowSettings struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// Background is a hex color such as "#1e1e2e".
	Background string `toml:"background"`
}

// FontSetting declares one font to register at startup.
type FontSetting struct {
	Name string `toml:"name"`
	Path string `toml:"path"`

	// Size is the pixel size text in this font renders at. Zero means
	// 16.
	Size float32 `toml:"size"`

	// Default marks this font as the fallback for elements that name
	// no font.
	Default bool `toml:"default"`
}

// DefaultSettings returns the settings used when no file is loaded:
// an 800x600 surface with a black background and no fonts.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Title:      "bento",
			Width:      800,
			Height:     600,
			Background: "#000000",
		},
	}
}

// LoadSettings reads a TOML settings file over the defaults, so a file
// only needs the keys it changes.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %q: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("settings %q: %w", path, err)
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Window.Width < 1 || s.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d is not positive", s.Window.Width, s.Window.Height)
	}
	for i, f := range s.Fonts {
		if f.Name == "" {
			return fmt.Errorf("font %d has no name", i)
		}
		if f.Path == "" {
			return fmt.Errorf("font %q has no path", f.Name)
		}
		if f.Size < 0 {
			return fmt.Errorf("font %q has negative size %v", f.Name, f.Size)
		}
	}
	return nil
}

// BackgroundColor parses the window background. Malformed values
// yield black, like Hex.
func (s *Settings) BackgroundColor() Color {
	return Hex(s.Window.Background)
}

// registerFonts adds every declared font to the registry and applies
// the default marker. The first font added becomes the default until a
// Default entry overrides it.
func (s *Settings) registerFonts(fonts *FontRegistry) error {
	for _, f := range s.Fonts {
		size := f.Size
		if size == 0 {
			size = 16
		}
		if err := fonts.AddFile(f.Name, f.Path, size); err != nil {
			return err
		}
	}
	for _, f := range s.Fonts {
		if f.Default {
			if err := fonts.SetDefault(f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
