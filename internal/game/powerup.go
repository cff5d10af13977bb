package game

import "github.com/neonwave/invaders/internal/core"

// PowerUpSize is the pickup hitbox side length in logical units.
const PowerUpSize = 20.0

// PowerUp is a falling multishot pickup dropped by a destroyed enemy.
type PowerUp struct {
	X, Y  float64
	VY    float64
	Alive bool
}

// Update advances the pickup and kills it once it falls past the bottom edge.
func (p *PowerUp) Update(dt float64) {
	p.Y += p.VY * dt
	if p.Y > LogicalH+20 {
		p.Alive = false
	}
}

// Rect returns the pickup's collision rectangle.
func (p PowerUp) Rect() core.RectF {
	return core.RectAround(p.X, p.Y, PowerUpSize, PowerUpSize)
}
