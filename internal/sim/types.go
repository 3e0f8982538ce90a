package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/fireworks/internal/fireworks"
)

var ErrInvalidConfig = errors.New("sim: invalid config")

// Config describes one headless run.
type Config struct {
	Width, Height int
	Frames        int
	Warmup        int
	Seed          int64
	HistoryCap    int
}

// Result summarises the recorded part of a run. Warmup frames are not
// observed by the metrics.
type Result struct {
	Seed    int64
	Frames  int
	Final   fireworks.Census
	Metrics map[string]float64
	History []float64
	Elapsed time.Duration
}

// RunError ties a failure to the run and frame it happened in.
type RunError struct {
	Seed    int64
	Frame   int
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("seed %d, frame %d: %v", e.Seed, e.Frame, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, c.Frames)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must not be negative, got %d", ErrInvalidConfig, c.Warmup)
	}
	return nil
}
