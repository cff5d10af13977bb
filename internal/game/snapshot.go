package game

// Snapshot is a copy of the observable simulation state at one tick.
// Slices are copied, so a snapshot stays stable while the game advances.
// Used by tests and debugging tools; the render path never needs it.
type Snapshot struct {
	Tick      int
	State     string
	Score     int
	Wave      int
	Lives     int
	Multishot int
	Elapsed   float64
	Shake     float64

	PlayerX, PlayerY float64

	Bullets   []Bullet
	Enemies   []Enemy
	PowerUps  []PowerUp
	Particles []Particle
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		State:     g.state,
		Score:     g.score,
		Wave:      g.wave,
		Lives:     g.lives,
		Multishot: g.player.Multishot,
		Elapsed:   g.elapsed,
		Shake:     g.shake,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Bullets:   append([]Bullet(nil), g.bullets...),
		Enemies:   append([]Enemy(nil), g.enemies...),
		PowerUps:  append([]PowerUp(nil), g.powerups...),
		Particles: append([]Particle(nil), g.particles...),
	}
}
