package bento

// UI is the per-frame facade handed to App.Update: the input
// snapshot, the font registry, the surface extent, and the exit
// signal.
type UI struct {
	input  *Input
	fonts  *FontRegistry
	width  float32
	height float32
	frame  uint64
	exit   bool
}

// Input returns the device state for this frame.
func (ui *UI) Input() *Input {
	return ui.input
}

// Fonts returns the font registry.
func (ui *UI) Fonts() *FontRegistry {
	return ui.fonts
}

// Width returns the surface width in pixels.
func (ui *UI) Width() float32 {
	return ui.width
}

// Height returns the surface height in pixels.
func (ui *UI) Height() float32 {
	return ui.height
}

// Frame returns the number of frames completed before this one.
func (ui *UI) Frame() uint64 {
	return ui.frame
}

// Exit asks the runner to stop once the current frame finishes. It
// never terminates the process itself.
func (ui *UI) Exit() {
	ui.exit = true
}

// Exiting reports whether Exit has been called.
func (ui *UI) Exiting() bool {
	return ui.exit
}
