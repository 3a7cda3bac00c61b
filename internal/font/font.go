// Package font manages the parsed font registry and text measurement
// for the UI. Fonts are registered once at startup under a name and a
// pixel size; measurement results are memoized because the same strings
// are re-measured every frame in an immediate-mode loop.
package font

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/image/font/sfnt"
)

var (
	// ErrNoDefaultFont is returned when an operation needs a font but
	// none has been registered.
	ErrNoDefaultFont = errors.New("font: no default font registered")

	// ErrUnknownFont is returned when a named font is not in the registry.
	ErrUnknownFont = errors.New("font: unknown font")
)

// lineHeightFactor converts a font size into the advance between
// baselines. Text blocks are sized as lines * size * factor.
const lineHeightFactor = 1.4

type entry struct {
	id   int
	name string
	size float32
	font *sfnt.Font
}

// Registry holds parsed fonts by name along with the measurement and
// face caches. The UI runs single threaded, so the registry does no
// locking.
type Registry struct {
	entries     map[string]*entry
	defaultName string
	nextID      int

	measures map[measureKey]measured
	faces    map[faceKey]cachedFace
}

// NewRegistry returns an empty registry. The first font added becomes
// the default.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]*entry),
		measures: make(map[measureKey]measured),
		faces:    make(map[faceKey]cachedFace),
	}
}

// Add parses TTF or OTF data and registers it under the given name at
// a pixel size. Text drawn with the font uses this size unless a
// sized variant is requested explicitly. Registering an existing name
// replaces the font; the new entry gets a fresh id, so stale cache
// entries are never served.
func (r *Registry) Add(name string, data []byte, size float32) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	r.entries[name] = &entry{id: r.nextID, name: name, size: size, font: f}
	r.nextID++
	if r.defaultName == "" {
		r.defaultName = name
	}
	return nil
}

// AddFile reads a font file from disk and registers it under the given
// name at a pixel size.
func (r *Registry) AddFile(name, path string, size float32) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %q: %w", name, err)
	}
	return r.Add(name, data, size)
}

// SetDefault marks a registered font as the fallback used when an
// element names no font, or names one that is missing.
func (r *Registry) SetDefault(name string) error {
	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	r.defaultName = name
	return nil
}

// DefaultName returns the name of the default font, or "" when the
// registry is empty.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Has reports whether a font is registered under the given name.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Size returns the pixel size the named font was registered at. Empty
// or unknown names resolve to the default font.
func (r *Registry) Size(name string) (float32, error) {
	e, err := r.resolve(name)
	if err != nil {
		return 0, err
	}
	return e.size, nil
}

// Names returns the registered font names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve maps a requested font name to a registry entry. Empty or
// unknown names fall back to the default font.
func (r *Registry) resolve(name string) (*entry, error) {
	if name != "" {
		if e, ok := r.entries[name]; ok {
			return e, nil
		}
	}
	if r.defaultName == "" {
		return nil, ErrNoDefaultFont
	}
	return r.entries[r.defaultName], nil
}
