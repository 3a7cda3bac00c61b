package bento

import "errors"

// ErrSurfaceLost reports that a surface could not present a frame.
// The runner skips the frame and tries again on the next one; the
// tree is stateless and cheap to rebuild.
var ErrSurfaceLost = errors.New("bento: surface lost")

// Surface is where frames end up. The engine resolves layout against
// the surface's size and hands it one DrawList per frame.
type Surface interface {
	// Size returns the drawable extent in pixels.
	Size() (w, h float32)

	// Present draws a frame's command list. Returning ErrSurfaceLost
	// drops the frame without stopping the runner.
	Present(dl *DrawList) error

	// Close releases the surface's resources. Presenting after Close
	// reports ErrSurfaceLost.
	Close() error
}

// InputSource is implemented by surfaces that produce input, such as
// window backends or scripted test surfaces. The runner calls
// ReadInput before each frame's update.
type InputSource interface {
	ReadInput(in *Input) error
}
