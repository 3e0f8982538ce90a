package fireworks

import (
	"math"

	"github.com/san-kum/fireworks/internal/surface"
)

// Particle is one piece of burst debris.
type Particle struct {
	pos      surface.Point
	color    string
	angle    float64
	speed    float64
	friction float64
	gravity  float64
	alpha    float64
	decay    float64
}

var _ Entity = (*Particle)(nil)

func NewParticle(x, y float64, color string, r Random) *Particle {
	return &Particle{
		pos:      surface.Point{X: x, Y: y},
		color:    color,
		angle:    r.Range(0, 2*math.Pi),
		speed:    r.Range(particleSpeedMin, particleSpeedMax),
		friction: particleFriction,
		gravity:  particleGravity,
		alpha:    1,
		decay:    r.Range(particleDecayMin, particleDecayMax),
	}
}

// Advance moves the particle, bleeds speed and opacity, and reports it
// finished one decrement early: once opacity is at or below its decay.
// Gravity is a flat per-tick offset, not an acceleration.
func (p *Particle) Advance() bool {
	p.pos.X += math.Cos(p.angle) * p.speed
	p.pos.Y += math.Sin(p.angle)*p.speed + p.gravity
	p.speed *= p.friction
	p.alpha -= p.decay

	return p.alpha <= p.decay
}

// Render fills a small disc at the particle's opacity. The alpha change is
// confined to this call.
func (p *Particle) Render(ctx surface.Context) {
	ctx.Save()
	defer ctx.Restore()

	ctx.SetGlobalAlpha(p.alpha)
	ctx.SetFillStyle(p.color)
	ctx.FillCircle(p.pos.X, p.pos.Y, particleRadius)
}

func (p *Particle) Position() surface.Point { return p.pos }
func (p *Particle) Color() string           { return p.color }
func (p *Particle) Angle() float64          { return p.angle }
func (p *Particle) Speed() float64          { return p.speed }
func (p *Particle) Alpha() float64          { return p.alpha }
func (p *Particle) Decay() float64          { return p.decay }
