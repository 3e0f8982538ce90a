package sim

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same show with consecutive seeds in parallel.
type Ensemble struct {
	base      Config
	numRuns   int
	seedStart int64
	log       *slog.Logger
}

func NewEnsemble(base Config, numRuns int, seedStart int64, log *slog.Logger) *Ensemble {
	if log == nil {
		log = slog.Default()
	}
	return &Ensemble{base: base, numRuns: numRuns, seedStart: seedStart, log: log}
}

// Run returns one result per seed, in seed order. The first failing run
// cancels the rest.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if e.numRuns <= 0 {
		return nil, fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, e.numRuns)
	}
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < e.numRuns; i++ {
		i := i
		g.Go(func() error {
			cfg := e.base
			cfg.Seed = e.seedStart + int64(i)
			res, err := New(cfg, WithLogger(e.log)).Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary is the spread of one metric across runs.
type Summary struct {
	Name           string
	Mean, Min, Max float64
}

// Summarize reduces each metric over results, sorted by name.
func Summarize(results []*Result) []Summary {
	byName := make(map[string]*Summary)
	for _, r := range results {
		for name, v := range r.Metrics {
			s, ok := byName[name]
			if !ok {
				byName[name] = &Summary{Name: name, Mean: v, Min: v, Max: v}
				continue
			}
			s.Mean += v
			s.Min = min(s.Min, v)
			s.Max = max(s.Max, v)
		}
	}

	out := make([]Summary, 0, len(byName))
	for _, s := range byName {
		s.Mean /= float64(len(results))
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
