package game

import "github.com/neonwave/invaders/internal/core"

// Bullet hitbox dimensions in logical units.
const (
	BulletWidth  = 4.0
	BulletHeight = 18.0

	bulletDespawnY = -40.0
)

// Bullet is a player projectile travelling up the playfield.
type Bullet struct {
	X, Y  float64
	VY    float64
	Alive bool
}

// Update advances the bullet and kills it once it leaves the top edge.
func (b *Bullet) Update(dt float64) {
	b.Y += b.VY * dt
	if b.Y < bulletDespawnY {
		b.Alive = false
	}
}

// Rect returns the bullet's collision rectangle.
func (b Bullet) Rect() core.RectF {
	return core.RectAround(b.X, b.Y, BulletWidth, BulletHeight)
}
