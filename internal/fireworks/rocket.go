package fireworks

import (
	"math"

	"github.com/san-kum/fireworks/internal/surface"
)

// Rocket travels from its launch point toward a fixed target at constant
// speed along a constant heading.
type Rocket struct {
	pos      surface.Point
	target   surface.Point
	color    string
	angle    float64
	speed    float64
	trail    []surface.Point
	trailCap int
	distance float64
}

var _ Entity = (*Rocket)(nil)

// NewRocket aims a rocket from launch at target. trailCap below 1 is
// raised to 1.
func NewRocket(launch, target surface.Point, color string, trailCap int, r Random) *Rocket {
	if trailCap < 1 {
		trailCap = 1
	}
	trail := make([]surface.Point, 1, trailCap+1)
	trail[0] = launch
	return &Rocket{
		pos:      launch,
		target:   target,
		color:    color,
		angle:    math.Atan2(target.Y-launch.Y, target.X-launch.X),
		speed:    r.Range(rocketSpeedMin, rocketSpeedMax),
		trail:    trail,
		trailCap: trailCap,
		distance: distance(launch, target),
	}
}

// Advance records the current position in the trail, steps along the
// heading and reports arrival once the target is closer than one step.
// A fixed step can overshoot, so arrival is a tolerance band rather than
// an exact hit.
func (r *Rocket) Advance() bool {
	r.trail = append(r.trail, r.pos)
	if len(r.trail) > r.trailCap {
		copy(r.trail, r.trail[1:])
		r.trail = r.trail[:r.trailCap]
	}

	r.pos.X += math.Cos(r.angle) * r.speed
	r.pos.Y += math.Sin(r.angle) * r.speed
	r.distance = distance(r.pos, r.target)

	return r.distance < r.speed
}

// Explode releases BurstSize particles at the target in the rocket's
// color. The show calls it once, on the tick Advance reports arrival.
func (r *Rocket) Explode(rnd Random) []*Particle {
	burst := make([]*Particle, BurstSize)
	for i := range burst {
		burst[i] = NewParticle(r.target.X, r.target.Y, r.color, rnd)
	}
	return burst
}

// Render strokes the trail, oldest point first.
func (r *Rocket) Render(ctx surface.Context) {
	ctx.SetStrokeStyle(r.color)
	ctx.StrokePolyline(r.trail)
}

func (r *Rocket) Position() surface.Point { return r.pos }
func (r *Rocket) Target() surface.Point   { return r.target }
func (r *Rocket) Color() string           { return r.color }
func (r *Rocket) Angle() float64          { return r.angle }
func (r *Rocket) Speed() float64          { return r.speed }
func (r *Rocket) TrailCap() int           { return r.trailCap }
func (r *Rocket) Distance() float64       { return r.distance }

// Trail returns a copy of the recorded positions.
func (r *Rocket) Trail() []surface.Point {
	out := make([]surface.Point, len(r.trail))
	copy(out, r.trail)
	return out
}

func distance(a, b surface.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
