package fireworks

import (
	"log/slog"
	"math"
	"slices"

	"github.com/san-kum/fireworks/internal/surface"
)

// Show owns the entity registry and drives it one frame per Tick.
type Show struct {
	ctx       surface.Context
	rnd       Random
	log       *slog.Logger
	entities  []Entity
	spare     []Entity
	pending   []Entity
	observers []Observer
	frame     int
}

type Option func(*Show)

func WithLogger(l *slog.Logger) Option {
	return func(s *Show) {
		if l != nil {
			s.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Show) { s.AddObserver(o) }
}

// New creates an empty show drawing on ctx.
func New(ctx surface.Context, rnd Random, opts ...Option) *Show {
	s := &Show{
		ctx:       ctx,
		rnd:       rnd,
		log:       slog.Default(),
		entities:  make([]Entity, 0, 256),
		spare:     make([]Entity, 0, 256),
		pending:   make([]Entity, 0, BurstSize*4),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Show) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Add inserts an entity at the end of the registry.
func (s *Show) Add(e Entity) { s.entities = append(s.entities, e) }

func (s *Show) Len() int   { return len(s.entities) }
func (s *Show) Frame() int { return s.frame }

// Entities returns a copy of the registry in iteration order.
func (s *Show) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Tick runs one frame:
//
//  1. wash the whole surface with FadeAlpha black;
//  2. advance every entity exactly once, dropping the finished ones
//     (arriving rockets hand over their bursts first) and drawing the rest;
//  3. with probability SpawnChance, launch a rocket sized to the surface.
//
// Entities are visited newest first, so older ones are drawn on top.
// Survivors keep their order; new particles are appended after them and
// are first advanced on the next tick.
func (s *Show) Tick() Census {
	s.frame++
	w, h := s.ctx.Size()

	s.ctx.SetFillStyle(fadeColor)
	s.ctx.FillRect(0, 0, w, h)

	// newest first, so older entities are drawn over newer ones
	bursts := 0
	next := s.spare[:0]
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		if !e.Advance() {
			e.Render(s.ctx)
			next = append(next, e)
			continue
		}
		if r, ok := e.(*Rocket); ok {
			for _, p := range r.Explode(s.rnd) {
				s.pending = append(s.pending, p)
			}
			bursts++
			s.log.Debug("burst",
				"frame", s.frame,
				"x", r.target.X,
				"y", r.target.Y,
				"color", r.color,
			)
		}
	}
	slices.Reverse(next)
	next = append(next, s.pending...)

	clear(s.pending)
	s.pending = s.pending[:0]
	clear(s.entities)
	s.entities, s.spare = next, s.entities[:0]

	launched := 0
	if s.rnd.Chance(SpawnChance) {
		r := s.launch(w, h)
		s.entities = append(s.entities, r)
		launched++
		s.log.Debug("launch",
			"frame", s.frame,
			"from_x", r.pos.X,
			"to_x", r.target.X,
			"to_y", r.target.Y,
			"speed", r.speed,
			"color", r.color,
		)
	}

	c := s.count()
	c.Launched, c.Bursts = launched, bursts
	for _, o := range s.observers {
		o.OnTick(c)
	}
	return c
}

// launch builds a rocket rising from a random point on the bottom edge to
// a random point in the upper half.
func (s *Show) launch(w, h float64) *Rocket {
	start := surface.Point{X: s.rnd.Range(0, w), Y: h}
	target := surface.Point{X: s.rnd.Range(0, w), Y: s.rnd.Range(0, h/2)}
	color := surface.HSL(s.rnd.Range(0, 360), 100, 50)
	// the trail is trimmed while len > cap, so a fractional cap rounds down
	trailCap := int(math.Floor(s.rnd.Range(trailCapMin, trailCapMax)))
	return NewRocket(start, target, color, trailCap, s.rnd)
}

// Census counts the registry without ticking.
func (s *Show) Census() Census { return s.count() }

func (s *Show) count() Census {
	c := Census{Frame: s.frame}
	for _, e := range s.entities {
		switch e.(type) {
		case *Rocket:
			c.Rockets++
		case *Particle:
			c.Particles++
		}
	}
	return c
}
