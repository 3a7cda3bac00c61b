package bento

import (
	"image"
	"strings"

	"github.com/fogleman/gg"

	"github.com/grindlemire/bento/internal/font"
)

// ImageSurface rasterizes frames into an in-memory RGBA image. It is
// the headless backend used by the CLI and the examples; a window
// system would implement Surface the same way against a real swapchain.
type ImageSurface struct {
	dc         *gg.Context
	fonts      *font.Registry
	width      int
	height     int
	background Color
	closed     bool
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates a rasterizer of the given pixel size drawing
// text through the registry. The background defaults to black.
func NewImageSurface(width, height int, fonts *font.Registry) *ImageSurface {
	return &ImageSurface{
		dc:         gg.NewContext(width, height),
		fonts:      fonts,
		width:      width,
		height:     height,
		background: Black,
	}
}

// SetBackground sets the color the surface clears to before each
// frame.
func (s *ImageSurface) SetBackground(c Color) {
	s.background = c
}

// Size returns the surface extent in pixels.
func (s *ImageSurface) Size() (float32, float32) {
	return float32(s.width), float32(s.height)
}

// Image returns the most recently presented frame.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the most recently presented frame to a file.
func (s *ImageSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Close marks the surface unusable. Subsequent presents report
// ErrSurfaceLost.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// Present replays the draw list into the image, clearing to the
// background first.
func (s *ImageSurface) Present(dl *DrawList) error {
	if s.closed {
		return ErrSurfaceLost
	}

	s.setColor(s.background)
	s.dc.Clear()

	for _, cmd := range dl.Cmds {
		switch c := cmd.(type) {
		case ShadowCmd:
			s.drawShadow(c)
		case RectCmd:
			s.drawRect(c)
		case TextCmd:
			if err := s.drawText(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ImageSurface) setColor(c Color) {
	s.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

// pushClip applies a command's scissor. It reports false when the clip
// admits no pixels and the command should be skipped.
func (s *ImageSurface) pushClip(c *Clip) bool {
	if c == nil {
		return true
	}
	if c.Empty() {
		return false
	}
	s.dc.DrawRectangle(float64(c.X0), float64(c.Y0), float64(c.X1-c.X0), float64(c.Y1-c.Y0))
	s.dc.Clip()
	return true
}

func (s *ImageSurface) popClip(c *Clip) {
	if c != nil {
		s.dc.ResetClip()
	}
}

func (s *ImageSurface) drawRect(c RectCmd) {
	if !s.pushClip(c.Clip) {
		return
	}
	defer s.popClip(c.Clip)

	x, y := float64(c.Rect.X), float64(c.Rect.Y)
	w, h := float64(c.Rect.Width), float64(c.Rect.Height)

	if c.Fill.A > 0 {
		s.setColor(c.Fill)
		s.shapePath(x, y, w, h, float64(c.CornerRadius))
		s.dc.Fill()
	}
	if c.BorderWidth > 0 && c.Border.A > 0 {
		s.setColor(c.Border)
		s.dc.SetLineWidth(float64(c.BorderWidth))
		s.shapePath(x, y, w, h, float64(c.CornerRadius))
		s.dc.Stroke()
	}
}

func (s *ImageSurface) shapePath(x, y, w, h, radius float64) {
	if radius > 0 {
		s.dc.DrawRoundedRectangle(x, y, w, h, radius)
	} else {
		s.dc.DrawRectangle(x, y, w, h)
	}
}

// drawShadow approximates a gaussian blur with layered expanding
// fills at decreasing alpha.
func (s *ImageSurface) drawShadow(c ShadowCmd) {
	steps := int(c.Blur / 2)
	if steps < 1 {
		steps = 1
	}
	if steps > 10 {
		steps = 10
	}

	x := float64(c.Rect.X + c.OffsetX)
	y := float64(c.Rect.Y + c.OffsetY)
	w := float64(c.Rect.Width)
	h := float64(c.Rect.Height)
	base := float64(c.Color.A) / float64(steps)

	for i := 0; i < steps; i++ {
		offset := float64(i) * 2
		alpha := base * (1 - float64(i)/float64(steps))
		s.dc.SetRGBA(float64(c.Color.R), float64(c.Color.G), float64(c.Color.B), alpha)
		s.shapePath(x-offset, y-offset, w+offset*2, h+offset*2, float64(c.CornerRadius)+offset)
		s.dc.Fill()
	}
}

func (s *ImageSurface) drawText(c TextCmd) error {
	if c.Content == "" {
		return nil
	}
	if !s.pushClip(c.Clip) {
		return nil
	}
	defer s.popClip(c.Clip)

	face, err := s.fonts.Face(c.Font)
	if err != nil {
		return err
	}
	size, err := s.fonts.Size(c.Font)
	if err != nil {
		return err
	}
	s.dc.SetFontFace(face)
	s.setColor(c.Color)

	// DrawString wants the baseline; the command carries the top of
	// the text box.
	ascent := float64(face.Metrics().Ascent) / 64
	lineHeight := float64(font.LineHeight(size))
	for i, line := range strings.Split(c.Content, "\n") {
		s.dc.DrawString(line, float64(c.X), float64(c.Y)+float64(i)*lineHeight+ascent)
	}
	return nil
}
