package game

import "github.com/neonwave/invaders/internal/core"

// Particle is a short-lived explosion fragment. Purely cosmetic: particles
// never collide with anything.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Size   int
	Color  core.Color
}

// Update advances the particle under gravity.
func (p *Particle) Update(dt, gravity float64) {
	p.Age += dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += gravity * dt
}

// Alive reports whether the particle is still within its lifetime.
func (p *Particle) Alive() bool {
	return p.Age < p.Life
}

// spawnBurst emits an explosion of particles at the given point.
func (g *Game) spawnBurst(x, y float64, color core.Color, count int) {
	for i := 0; i < count; i++ {
		g.particles = append(g.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (g.rng.Float64()*2 - 1) * 220,
			VY:    -240 + g.rng.Float64()*300,
			Life:  0.4 + g.rng.Float64()*0.5,
			Size:  1 + g.rng.Intn(3),
			Color: color,
		})
	}
}
