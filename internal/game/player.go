package game

import (
	"math"

	"github.com/neonwave/invaders/internal/config"
	"github.com/neonwave/invaders/internal/core"
)

// Player hitbox dimensions in logical units.
const (
	PlayerWidth  = 36.0
	PlayerHeight = 22.0
)

// Player is the ship at the bottom of the playfield.
type Player struct {
	X, Y      float64
	Cooldown  float64 // Seconds until the next shot is allowed
	Multishot int     // Simultaneous bullets per shot, 1..MaxMultishot
}

// Update applies horizontal movement intent and ticks the fire cooldown.
// dir is -1, 0 or +1.
func (p *Player) Update(dt, dir float64, cfg config.PlayerConfig) {
	p.X += dir * cfg.Speed * dt
	p.X = core.ClampF(p.X, cfg.Margin, LogicalW-cfg.Margin)
	p.Cooldown = math.Max(0, p.Cooldown-dt)
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.RectF {
	return core.RectAround(p.X, p.Y, PlayerWidth, PlayerHeight)
}
