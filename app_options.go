package bento

import (
	"fmt"
	"log/slog"
)

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner) error

// WithSurface renders frames to the given surface instead of the
// default image surface. A surface that implements InputSource also
// feeds the input snapshot each frame.
func WithSurface(s Surface) RunnerOption {
	return func(r *Runner) error {
		if s == nil {
			return fmt.Errorf("surface is nil")
		}
		r.surface = s
		return nil
	}
}

// WithSettings replaces the default settings.
func WithSettings(s Settings) RunnerOption {
	return func(r *Runner) error {
		if err := s.validate(); err != nil {
			return err
		}
		r.settings = s
		return nil
	}
}

// WithSettingsFile loads settings from a TOML file. Missing keys keep
// their defaults.
func WithSettingsFile(path string) RunnerOption {
	return func(r *Runner) error {
		s, err := LoadSettings(path)
		if err != nil {
			return err
		}
		r.settings = s
		return nil
	}
}

// WithMaxFrames stops the runner after n frames. Zero means no limit.
// Useful for tests and one-shot rendering.
func WithMaxFrames(n uint64) RunnerOption {
	return func(r *Runner) error {
		r.maxFrames = n
		return nil
	}
}

// WithLogger sets the logger used for frame diagnostics such as
// skipped presents. The default discards everything.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) error {
		if l == nil {
			return fmt.Errorf("logger is nil")
		}
		r.log = l
		return nil
	}
}
