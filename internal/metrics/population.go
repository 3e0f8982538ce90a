package metrics

import "github.com/san-kum/fireworks/internal/fireworks"

// Population tracks the live entity count, keeping the most recent
// samples for plotting.
type Population struct {
	name     string
	capacity int
	history  []float64
	sum      float64
	samples  int
}

func NewPopulation(capacity int) *Population {
	if capacity < 1 {
		capacity = 1
	}
	return &Population{
		name:     "mean_population",
		capacity: capacity,
		history:  make([]float64, 0, capacity),
	}
}

func (p *Population) Name() string {
	return p.name
}

func (p *Population) OnTick(c fireworks.Census) {
	n := float64(c.Total())
	p.sum += n
	p.samples++

	p.history = append(p.history, n)
	if len(p.history) > p.capacity {
		copy(p.history, p.history[1:])
		p.history = p.history[:p.capacity]
	}
}

// Value is the mean population over every observed tick.
func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

// History returns a copy of the retained samples, oldest first.
func (p *Population) History() []float64 {
	out := make([]float64, len(p.history))
	copy(out, p.history)
	return out
}

// Last returns the most recent sample.
func (p *Population) Last() float64 {
	if len(p.history) == 0 {
		return 0
	}
	return p.history[len(p.history)-1]
}

func (p *Population) Reset() {
	p.history = p.history[:0]
	p.sum = 0
	p.samples = 0
}
