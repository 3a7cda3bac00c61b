package bento

// MockSurface is a mock implementation of Surface for testing. It
// records every presented draw list and plays back scripted per-frame
// input.
type MockSurface struct {
	width, height float32
	presented     []*DrawList
	script        []func(in *Input)
	frame         int
	closed        bool
	failNext      bool
}

// Ensure MockSurface implements Surface and feeds input.
var (
	_ Surface     = (*MockSurface)(nil)
	_ InputSource = (*MockSurface)(nil)
)

// NewMockSurface creates a mock surface with the given dimensions.
func NewMockSurface(width, height float32) *MockSurface {
	return &MockSurface{width: width, height: height}
}

// Size returns the surface dimensions.
func (m *MockSurface) Size() (width, height float32) {
	return m.width, m.height
}

// Present records the frame's draw list.
func (m *MockSurface) Present(dl *DrawList) error {
	if m.closed {
		return ErrSurfaceLost
	}
	if m.failNext {
		m.failNext = false
		return ErrSurfaceLost
	}
	m.presented = append(m.presented, dl)
	return nil
}

// Close marks the surface lost.
func (m *MockSurface) Close() error {
	m.closed = true
	return nil
}

// ReadInput plays the next scripted input step, if any. Frames beyond
// the script leave the input untouched.
func (m *MockSurface) ReadInput(in *Input) error {
	if m.frame < len(m.script) {
		if step := m.script[m.frame]; step != nil {
			step(in)
		}
	}
	m.frame++
	return nil
}

// Script appends per-frame input steps. Step n runs before frame n's
// update; a nil step leaves that frame's input unchanged.
func (m *MockSurface) Script(steps ...func(in *Input)) {
	m.script = append(m.script, steps...)
}

// FailNextPresent makes the next Present report ErrSurfaceLost, then
// recover.
func (m *MockSurface) FailNextPresent() {
	m.failNext = true
}

// --- Test helper methods ---

// FrameCount returns how many frames were presented.
func (m *MockSurface) FrameCount() int {
	return len(m.presented)
}

// Frame returns the i'th presented draw list, or nil when out of
// range.
func (m *MockSurface) Frame(i int) *DrawList {
	if i < 0 || i >= len(m.presented) {
		return nil
	}
	return m.presented[i]
}

// LastFrame returns the most recently presented draw list, or nil
// when nothing was presented.
func (m *MockSurface) LastFrame() *DrawList {
	return m.Frame(len(m.presented) - 1)
}

// Resize changes the surface dimensions for subsequent frames.
func (m *MockSurface) Resize(width, height float32) {
	m.width = width
	m.height = height
}
