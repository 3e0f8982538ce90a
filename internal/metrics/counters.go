package metrics

import "github.com/san-kum/fireworks/internal/fireworks"

type Peak struct {
	name string
	peak int
}

func NewPeak() *Peak {
	return &Peak{name: "peak_population"}
}

func (p *Peak) Name() string {
	return p.name
}

func (p *Peak) OnTick(c fireworks.Census) {
	if n := c.Total(); n > p.peak {
		p.peak = n
	}
}

func (p *Peak) Value() float64 {
	return float64(p.peak)
}

func (p *Peak) Reset() {
	p.peak = 0
}

type Launches struct {
	name  string
	count int
}

func NewLaunches() *Launches {
	return &Launches{name: "launches"}
}

func (l *Launches) Name() string {
	return l.name
}

func (l *Launches) OnTick(c fireworks.Census) {
	l.count += c.Launched
}

func (l *Launches) Value() float64 {
	return float64(l.count)
}

func (l *Launches) Reset() {
	l.count = 0
}

type Bursts struct {
	name  string
	count int
}

func NewBursts() *Bursts {
	return &Bursts{name: "bursts"}
}

func (b *Bursts) Name() string {
	return b.name
}

func (b *Bursts) OnTick(c fireworks.Census) {
	b.count += c.Bursts
}

func (b *Bursts) Value() float64 {
	return float64(b.count)
}

func (b *Bursts) Reset() {
	b.count = 0
}
