// Package fireworks simulates and draws a continuous fireworks show.
//
// Two entity kinds live in a single registry owned by a [Show]:
//
//   - [Rocket]: climbs in a straight line toward a target, trailing a short
//     polyline of its recent positions, and bursts on arrival.
//   - [Particle]: debris from a burst that drifts under gravity and friction
//     while fading out.
//
// Each [Show.Tick] washes the surface with translucent black, advances every
// entity once, drops the ones that finished, draws the rest, and sometimes
// launches a new rocket. Unredrawn pixels therefore fade over several
// frames instead of being cleared, which is what produces the trails.
//
// # Scheduling
//
// A Show never schedules itself. Hosts call Tick once per display frame,
// either from a bubbletea tick (see package viz) or through [Run].
//
// # Thread Safety
//
// Show, Rocket and Particle are NOT safe for concurrent use.
package fireworks
