package game

import (
	"math"
	"math/rand"

	"github.com/neonwave/invaders/internal/core"
)

// Enemy kinds cycle per grid row; higher kinds are bigger and sway faster.
const enemyKinds = 4

var enemyKindColors = [enemyKinds]core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorOrange,
}

// Enemy is one invader in the descending grid. X/Y is the rendered centre;
// BaseY is the grid anchor that wobble oscillates around and drift pushes down.
type Enemy struct {
	X, Y  float64
	BaseY float64
	Kind  int
	Phase float64
	Color core.Color
	Alive bool
}

// NewEnemy places an invader at a grid position with a random sway phase.
func NewEnemy(x, y float64, kind int, rng *rand.Rand) Enemy {
	return Enemy{
		X:     x,
		Y:     y,
		BaseY: y,
		Kind:  kind,
		Phase: rng.Float64() * 100,
		Color: enemyKindColors[kind%enemyKinds],
		Alive: true,
	}
}

// Size returns the square hitbox side length for this kind.
func (e *Enemy) Size() float64 {
	return 22 + float64(e.Kind)*4
}

// Wobble returns the vertical oscillation amplitude for this kind.
func (e *Enemy) Wobble() float64 {
	return 8 + float64(e.Kind)*2
}

// SwaySpeed returns the horizontal sway amplitude base for this kind.
func (e *Enemy) SwaySpeed() float64 {
	return 40 + float64(e.Kind)*10
}

// Update advances the sway phase and recomputes the rendered position.
// t is the total elapsed playing time; swayScale is the difficulty multiplier.
func (e *Enemy) Update(dt, t, swayScale float64) {
	e.Phase += dt
	e.Y = e.BaseY + math.Sin(t*2+e.X*0.01)*e.Wobble()
	e.X += math.Sin(t*0.7+e.Phase*0.6) * (e.SwaySpeed() / 2) * swayScale * dt
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() core.RectF {
	return core.RectAround(e.X, e.Y, e.Size(), e.Size())
}
