package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.Add("go-regular", goregular.TTF, 16); err != nil {
		t.Fatalf("Add(go-regular) failed: %v", err)
	}
	return r
}

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry()

	if r.DefaultName() != "" {
		t.Errorf("empty registry DefaultName = %q, want \"\"", r.DefaultName())
	}
	if _, _, err := r.Measure("", "hi"); !errors.Is(err, ErrNoDefaultFont) {
		t.Errorf("Measure on empty registry: err = %v, want ErrNoDefaultFont", err)
	}

	if err := r.Add("go-regular", goregular.TTF, 16); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if r.DefaultName() != "go-regular" {
		t.Errorf("DefaultName = %q, want go-regular (first font becomes default)", r.DefaultName())
	}
	if !r.Has("go-regular") {
		t.Error("Has(go-regular) = false after Add")
	}

	if err := r.Add("broken", []byte("not a font"), 16); err == nil {
		t.Error("Add with garbage data should fail")
	}
}

func TestRegistry_SetDefault(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Add("second", goregular.TTF, 20); err != nil {
		t.Fatalf("Add(second) failed: %v", err)
	}

	if err := r.SetDefault("second"); err != nil {
		t.Fatalf("SetDefault(second) failed: %v", err)
	}
	if r.DefaultName() != "second" {
		t.Errorf("DefaultName = %q, want second", r.DefaultName())
	}

	if err := r.SetDefault("missing"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("SetDefault(missing): err = %v, want ErrUnknownFont", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Add("another", goregular.TTF, 16); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "another" || names[1] != "go-regular" {
		t.Errorf("Names() = %v, want [another go-regular]", names)
	}
}

func TestRegistry_Size(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Add("big", goregular.TTF, 32); err != nil {
		t.Fatalf("Add(big) failed: %v", err)
	}

	if got, err := r.Size("big"); err != nil || got != 32 {
		t.Errorf("Size(big) = (%v, %v), want (32, nil)", got, err)
	}
	// Empty and unknown names resolve to the default entry.
	if got, err := r.Size(""); err != nil || got != 16 {
		t.Errorf("Size(\"\") = (%v, %v), want (16, nil)", got, err)
	}
	if got, err := r.Size("no-such-font"); err != nil || got != 16 {
		t.Errorf("Size(no-such-font) = (%v, %v), want (16, nil)", got, err)
	}
}

func TestRegistry_Measure(t *testing.T) {
	r := newTestRegistry(t)

	w, h, err := r.Measure("", "")
	if err != nil || w != 0 || h != 0 {
		t.Errorf("empty text = (%v, %v, %v), want (0, 0, nil)", w, h, err)
	}

	short, _, err := r.Measure("", "Hi")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	long, _, err := r.Measure("", "Hi there")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if short <= 0 {
		t.Errorf("width of %q = %v, want > 0", "Hi", short)
	}
	if long <= short {
		t.Errorf("longer text measured %v, not wider than %v", long, short)
	}
}

func TestRegistry_MeasureUsesRegisteredSize(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Add("big", goregular.TTF, 32); err != nil {
		t.Fatalf("Add(big) failed: %v", err)
	}

	wSmall, hSmall, err := r.Measure("go-regular", "sized")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	wBig, hBig, err := r.Measure("big", "sized")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if wBig <= wSmall {
		t.Errorf("32px width = %v, want wider than 16px width %v", wBig, wSmall)
	}
	if hSmall != LineHeight(16) || hBig != LineHeight(32) {
		t.Errorf("heights = (%v, %v), want (%v, %v)", hSmall, hBig, LineHeight(16), LineHeight(32))
	}
}

func TestRegistry_MeasureSized(t *testing.T) {
	type tc struct {
		text  string
		size  float32
		lines float32
	}

	tests := map[string]tc{
		"single line":             {text: "hello", size: 16, lines: 1},
		"two lines":               {text: "a\nb", size: 16, lines: 2},
		"trailing newline counts": {text: "a\n", size: 16, lines: 2},
		"three lines bigger size": {text: "a\nb\nc", size: 24, lines: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := newTestRegistry(t)
			_, h, err := r.MeasureSized("", tt.text, tt.size)
			if err != nil {
				t.Fatalf("MeasureSized failed: %v", err)
			}
			want := tt.lines * LineHeight(tt.size)
			if h != want {
				t.Errorf("height = %v, want %v", h, want)
			}
		})
	}
}

func TestRegistry_MeasureCacheStability(t *testing.T) {
	r := newTestRegistry(t)

	w1, h1, err := r.Measure("", "stable")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	w2, h2, err := r.Measure("", "stable")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if w1 != w2 || h1 != h2 {
		t.Errorf("repeat measure = (%v, %v), want (%v, %v)", w2, h2, w1, h1)
	}

	// Sizes within the same tenth-of-a-pixel bucket share a width.
	wa, _, _ := r.MeasureSized("", "bucket", 16.01)
	wb, _, _ := r.MeasureSized("", "bucket", 16.09)
	if wa != wb {
		t.Errorf("sizes in same bucket measured %v and %v", wa, wb)
	}

	// A genuinely different size does not.
	wc, _, _ := r.MeasureSized("", "bucket", 32)
	if wc <= wa {
		t.Errorf("double size measured %v, want wider than %v", wc, wa)
	}
}

func TestRegistry_MeasureUnknownFallsBack(t *testing.T) {
	r := newTestRegistry(t)

	wDefault, _, err := r.Measure("", "fallback")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	wUnknown, _, err := r.Measure("no-such-font", "fallback")
	if err != nil {
		t.Fatalf("Measure with unknown name failed: %v", err)
	}
	if wUnknown != wDefault {
		t.Errorf("unknown font width = %v, want default's %v", wUnknown, wDefault)
	}
}

func TestRegistry_Face(t *testing.T) {
	r := newTestRegistry(t)

	f1, err := r.Face("")
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}
	if f1 == nil {
		t.Fatal("Face returned nil")
	}

	f2, err := r.Face("")
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}
	if f1 != f2 {
		t.Error("Face at the same size should come from the cache")
	}

	f3, err := r.FaceSized("", 24)
	if err != nil {
		t.Fatalf("FaceSized failed: %v", err)
	}
	if f3 == f1 {
		t.Error("FaceSized at a different size should be distinct")
	}
}

func TestLineHeight(t *testing.T) {
	if got := LineHeight(10); got != 14 {
		t.Errorf("LineHeight(10) = %v, want 14", got)
	}
	if got := LineHeight(0); got != 0 {
		t.Errorf("LineHeight(0) = %v, want 0", got)
	}
}
