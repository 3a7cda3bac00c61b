package bento

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// App builds one element tree per frame. Implementations keep their
// state in the struct and read input through the UI; the tree is
// discarded after the frame, so no element references should outlive
// Update.
type App interface {
	// Update builds the frame's tree. Returning nil renders an empty
	// frame.
	Update(ui *UI) *Element
}

// FontLoader is implemented by apps that register fonts during setup,
// before the first frame runs.
type FontLoader interface {
	LoadFonts(fonts *FontRegistry) error
}

// Runner drives the frame loop: read input, update, measure, layout,
// dispatch, draw, present. It owns the only state that crosses frames:
// the input snapshot, the hover set, and the font caches.
type Runner struct {
	app      App
	surface  Surface
	fonts    *FontRegistry
	settings Settings
	log      *slog.Logger

	input   *Input
	hover   *HoverSet
	ui      *UI
	frame   uint64
	intents []Intent

	maxFrames uint64
}

// NewRunner creates a runner for the app. Setup order: options apply,
// settings fonts register, the app's FontLoader runs, and the bundled
// face fills in when the registry is still empty, so text always has a
// default font by the first frame.
func NewRunner(app App, opts ...RunnerOption) (*Runner, error) {
	if app == nil {
		return nil, fmt.Errorf("app is nil")
	}

	r := &Runner{
		app:      app,
		settings: DefaultSettings(),
		fonts:    NewFontRegistry(),
		input:    NewInput(),
		hover:    NewHoverSet(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if err := r.settings.registerFonts(r.fonts); err != nil {
		return nil, fmt.Errorf("settings fonts: %w", err)
	}
	if loader, ok := app.(FontLoader); ok {
		if err := loader.LoadFonts(r.fonts); err != nil {
			return nil, fmt.Errorf("load fonts: %w", err)
		}
	}
	if r.fonts.DefaultName() == "" {
		if err := RegisterBuiltinFont(r.fonts, 16); err != nil {
			return nil, err
		}
	}

	if r.surface == nil {
		img := NewImageSurface(r.settings.Window.Width, r.settings.Window.Height, r.fonts)
		img.SetBackground(r.settings.BackgroundColor())
		r.surface = img
	}

	r.ui = &UI{input: r.input, fonts: r.fonts}
	return r, nil
}

// RunFrame advances one frame. It reports false when the app asked to
// exit or the frame limit was reached. A lost surface skips the
// present and keeps running; every other error stops the loop.
func (r *Runner) RunFrame() (bool, error) {
	if src, ok := r.surface.(InputSource); ok {
		if err := src.ReadInput(r.input); err != nil {
			return false, fmt.Errorf("read input: %w", err)
		}
	}

	w, h := r.surface.Size()
	r.ui.width, r.ui.height = w, h
	r.ui.frame = r.frame

	root := r.app.Update(r.ui)
	if root == nil {
		root = NewEmpty()
	}

	if err := measureTree(root, r.fonts); err != nil {
		return false, fmt.Errorf("measure: %w", err)
	}
	Calculate(root, w, h)
	r.intents = r.hover.Dispatch(root, r.input)

	dl, err := BuildDrawList(root, r.input, r.fonts)
	if err != nil {
		return false, fmt.Errorf("draw: %w", err)
	}
	switch err := r.surface.Present(dl); {
	case errors.Is(err, ErrSurfaceLost):
		r.log.Warn("surface lost, skipping frame", "frame", r.frame)
	case err != nil:
		return false, fmt.Errorf("present: %w", err)
	}

	r.input.EndFrame()
	r.frame++

	if r.ui.exit {
		return false, nil
	}
	if r.maxFrames > 0 && r.frame >= r.maxFrames {
		return false, nil
	}
	return true, nil
}

// Run drives frames until the app exits, the frame limit is reached,
// or a frame fails.
func (r *Runner) Run() error {
	for {
		more, err := r.RunFrame()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Close releases the surface.
func (r *Runner) Close() error {
	return r.surface.Close()
}

// Intents returns the interactions dispatched during the most recent
// frame.
func (r *Runner) Intents() []Intent {
	return r.intents
}

// FrameCount returns the number of completed frames.
func (r *Runner) FrameCount() uint64 {
	return r.frame
}

// Fonts returns the registry text resolves against.
func (r *Runner) Fonts() *FontRegistry {
	return r.fonts
}

// Surface returns the surface frames present to.
func (r *Runner) Surface() Surface {
	return r.surface
}

// Run constructs a runner, drives it to completion, and closes it.
func Run(app App, opts ...RunnerOption) error {
	r, err := NewRunner(app, opts...)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Run()
}
