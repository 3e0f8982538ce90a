// Package rng provides the uniform range sampling every stochastic choice
// in the show is drawn from.
package rng

import (
	"math/rand"
	"time"
)

// Range returns a uniformly distributed value in [min, max) from the
// process-wide source.
func Range(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// Source is a seeded generator. It is not safe for concurrent use; each
// show owns its own.
type Source struct {
	r *rand.Rand
}

func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded seeds from the wall clock, like the CLI's default --seed.
func NewTimeSeeded() *Source {
	return New(time.Now().UnixNano())
}

// Range returns a uniformly distributed value in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return s.r.Float64()*(max-min) + min
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}
