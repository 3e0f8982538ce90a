package fireworks

import "github.com/san-kum/fireworks/internal/surface"

const (
	// BurstSize is the number of particles every arriving rocket releases.
	BurstSize = 30
	// SpawnChance is the per-tick probability of a new launch.
	SpawnChance = 0.05
	// FadeAlpha is the opacity of the black wash laid over each frame.
	FadeAlpha = 0.1

	rocketSpeedMin = 5.0
	rocketSpeedMax = 10.0
	trailCapMin    = 10.0
	trailCapMax    = 20.0

	particleSpeedMin = 1.0
	particleSpeedMax = 5.0
	particleFriction = 0.95
	particleGravity  = 1.0
	particleDecayMin = 0.015
	particleDecayMax = 0.03
	particleRadius   = 2.0
)

var fadeColor = surface.RGBA(0, 0, 0, FadeAlpha)

// Random is the source every stochastic choice is drawn from.
// *rng.Source satisfies it.
type Random interface {
	// Range returns a uniform value in [min, max).
	Range(min, max float64) float64
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// Entity is anything the show advances and draws each tick.
type Entity interface {
	// Advance moves the entity one tick and reports whether it is done.
	Advance() bool
	// Render draws the entity. It must not mutate it.
	Render(ctx surface.Context)
}

// Census counts the registry after a tick.
type Census struct {
	Frame     int
	Rockets   int
	Particles int
	Launched  int
	Bursts    int
}

func (c Census) Total() int { return c.Rockets + c.Particles }

// Observer is notified after every tick.
type Observer interface {
	OnTick(c Census)
}
