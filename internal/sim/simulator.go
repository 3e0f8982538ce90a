// Package sim runs shows headless on an offscreen framebuffer.
package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/fireworks/internal/fireworks"
	"github.com/san-kum/fireworks/internal/metrics"
	"github.com/san-kum/fireworks/internal/raster"
	"github.com/san-kum/fireworks/internal/rng"
)

// FrameHook sees the framebuffer after every recorded frame.
type FrameHook func(fb *raster.Framebuffer, c fireworks.Census) error

type Simulator struct {
	cfg    Config
	log    *slog.Logger
	hooks  []FrameHook
	extras []metrics.Metric
}

type Option func(*Simulator)

// WithLogger replaces the default logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

func WithFrameHook(h FrameHook) Option {
	return func(s *Simulator) { s.hooks = append(s.hooks, h) }
}

// WithMetric adds a metric on top of the defaults.
func WithMetric(m metrics.Metric) Option {
	return func(s *Simulator) { s.extras = append(s.extras, m) }
}

func New(cfg Config, opts ...Option) *Simulator {
	s := &Simulator{cfg: cfg, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run warms the show up, then records cfg.Frames frames.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.cfg
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	histCap := cfg.HistoryCap
	if histCap <= 0 {
		histCap = cfg.Frames
	}

	fb := raster.New(cfg.Width, cfg.Height)
	pop, ms := metrics.Defaults(histCap)
	ms = append(ms, s.extras...)
	show := fireworks.New(fb, rng.New(cfg.Seed), fireworks.WithLogger(s.log.With("seed", cfg.Seed)))

	if err := fireworks.Run(ctx, show, cfg.Warmup, nil); err != nil {
		return nil, &RunError{Seed: cfg.Seed, Frame: show.Frame(), Wrapped: err}
	}

	for _, m := range ms {
		m.Reset()
		show.AddObserver(m)
	}

	start := time.Now()
	err := fireworks.Run(ctx, show, cfg.Frames, func(c fireworks.Census) error {
		for _, h := range s.hooks {
			if err := h(fb, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &RunError{Seed: cfg.Seed, Frame: show.Frame(), Wrapped: err}
	}

	result := &Result{
		Seed:    cfg.Seed,
		Frames:  cfg.Frames,
		Final:   show.Census(),
		Metrics: make(map[string]float64, len(ms)),
		History: pop.History(),
		Elapsed: time.Since(start),
	}
	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}
	s.log.Debug("run complete", "seed", cfg.Seed, "frames", cfg.Frames, "elapsed", result.Elapsed)
	return result, nil
}
