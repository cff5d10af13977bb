// Package game implements the Neon Invaders simulation: a fixed-tick,
// seed-deterministic core with no knowledge of terminals, audio devices
// or wall-clock time. The platform layer drives it through the
// registry.Game interface and plays back the sound events it emits.
package game

import (
	"math"
	"math/rand"

	"github.com/neonwave/invaders/internal/config"
	"github.com/neonwave/invaders/internal/core"
	"github.com/neonwave/invaders/internal/registry"
)

// Logical playfield dimensions. All simulation coordinates live in this
// space; Render projects them onto whatever cell grid the terminal has.
const (
	LogicalW = 960.0
	LogicalH = 720.0
)

// Game flow states.
const (
	StateTitle    = "title"     // Attract screen, waiting for fire
	StatePlaying  = "playing"   // Simulation running
	StateGameOver = "game_over" // Enemies reached the defence line
)

// Volumes for emitted sound events.
const (
	volumeLaser     = 0.40
	volumeHit       = 0.50
	volumeExplosion = 0.60
	volumePowerUp   = 0.45
)

// playerOffsetY is the ship's distance from the bottom edge.
const playerOffsetY = 80.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Neon Invaders logic.
type Game struct {
	state string

	player    Player
	bullets   []Bullet
	enemies   []Enemy
	powerups  []PowerUp
	particles []Particle
	stars     *StarField

	wave  int
	score int
	lives int

	elapsed   float64 // Playing time in seconds
	shake     float64 // Current screen shake magnitude
	tickCount int
	dt        float64

	rng    *rand.Rand
	events []core.SoundEvent

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
}

// New creates a new Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neon Invaders"
}

// Reset initializes the game from the runtime config. The seed fixes the
// RNG stream, so two games with the same seed and inputs play identically.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.startSession()
	g.state = StateTitle
}

// startSession resets everything that belongs to a single playthrough.
// Used both by Reset and by the restart-after-game-over path, which keeps
// the RNG stream running rather than reseeding.
func (g *Game) startSession() {
	g.player = Player{
		X:         LogicalW / 2,
		Y:         LogicalH - playerOffsetY,
		Multishot: 1,
	}
	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.powerups = g.powerups[:0]
	g.particles = g.particles[:0]
	g.stars = NewStarField(LogicalW, LogicalH, g.cfg.Effects.StarfieldLayers, g.rng)

	g.wave = 1
	g.spawnWave(g.wave)

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.elapsed = 0
	g.shake = 0
	g.tickCount = 0
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.state {
	case StateTitle:
		g.stars.Update(g.dt, g.rng)
		if in.Has(core.ActionFire) {
			g.state = StatePlaying
		}
		return g.result()
	case StateGameOver:
		// Simulation is frozen; only a restart gets us out.
		if in.Has(core.ActionRestart) {
			g.startSession()
			g.state = StatePlaying
		}
		return g.result()
	}

	g.tickCount++
	g.elapsed += g.dt

	// Player movement and firing
	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir -= 1
	}
	if in.Has(core.ActionRight) {
		dir += 1
	}
	g.player.Update(g.dt, dir, g.cfg.Player)
	if in.Has(core.ActionFire) {
		g.fire()
	}

	for i := range g.bullets {
		g.bullets[i].Update(g.dt)
	}

	// Enemy wobble, sway and descent
	swayScale := g.difficulty.Sway(1.0, g.score, g.tickCount)
	drift := g.difficulty.Drift(g.cfg.Enemies.Drift, g.score, g.tickCount)
	loseY := LogicalH - g.cfg.Enemies.LoseMargin
	for i := range g.enemies {
		e := &g.enemies[i]
		e.Update(g.dt, g.elapsed, swayScale)
		e.BaseY += drift * g.dt
		if e.BaseY >= loseY {
			g.state = StateGameOver
		}
	}

	g.collideBullets()
	g.updatePowerUps()
	g.updateParticles()
	g.stars.Update(g.dt, g.rng)

	g.prune()

	// Wave cleared: next wave spawns immediately, same tick
	if g.state == StatePlaying && len(g.enemies) == 0 {
		g.wave++
		g.spawnWave(g.wave)
	}

	g.shake = math.Max(0, g.shake-g.cfg.Effects.ShakeDecay*g.dt)

	return g.result()
}

// fire spawns the player's shot pattern if the cooldown allows it.
// Multishot spreads n bullets symmetrically around the ship's centre.
func (g *Game) fire() {
	if g.player.Cooldown > 0 {
		return
	}
	n := g.player.Multishot
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * g.cfg.Player.Spread
		g.bullets = append(g.bullets, Bullet{
			X:     g.player.X + offset,
			Y:     g.player.Y - 20,
			VY:    -g.cfg.Bullet.Speed,
			Alive: true,
		})
	}
	if n == 1 {
		g.player.Cooldown = g.cfg.Player.CooldownSingle
	} else {
		g.player.Cooldown = g.cfg.Player.CooldownMulti
	}
	g.emit(core.SoundLaser, volumeLaser)
}

// collideBullets resolves bullet/enemy overlaps. A bullet kills at most
// one enemy; both are marked dead immediately so no other pair this tick
// can involve them. Removal happens later in prune.
func (g *Game) collideBullets() {
	for bi := range g.bullets {
		b := &g.bullets[bi]
		if !b.Alive {
			continue
		}
		br := b.Rect()
		for ei := range g.enemies {
			e := &g.enemies[ei]
			if !e.Alive {
				continue
			}
			if !br.Intersects(e.Rect()) {
				continue
			}
			b.Alive = false
			e.Alive = false
			g.score += g.cfg.Gameplay.KillScore
			g.spawnBurst(e.X, e.Y, e.Color, g.cfg.Particles.BurstSize)
			g.emit(core.SoundHit, volumeHit)
			g.emit(core.SoundExplosion, volumeExplosion)
			if g.rng.Float64() < g.cfg.PowerUps.DropChance {
				g.powerups = append(g.powerups, PowerUp{
					X:     e.X,
					Y:     e.Y,
					VY:    g.cfg.PowerUps.FallSpeed,
					Alive: true,
				})
			}
			if g.cfg.Effects.ScreenShake {
				g.shake = g.cfg.Effects.ShakeImpulse
			}
			break
		}
	}
}

// updatePowerUps advances pickups and applies any the player touches.
func (g *Game) updatePowerUps() {
	playerRect := g.player.Rect()
	for i := range g.powerups {
		p := &g.powerups[i]
		p.Update(g.dt)
		if p.Alive && p.Rect().Intersects(playerRect) {
			p.Alive = false
			g.player.Multishot = core.Min(g.cfg.Player.MaxMultishot, g.player.Multishot+1)
			g.emit(core.SoundPowerUp, volumePowerUp)
		}
	}
}

// updateParticles ages the explosion fragments.
func (g *Game) updateParticles() {
	for i := range g.particles {
		g.particles[i].Update(g.dt, g.cfg.Particles.Gravity)
	}
}

// prune compacts every entity slice so only live entities survive the
// tick. Nothing outside this function removes entities.
func (g *Game) prune() {
	n := 0
	for _, b := range g.bullets {
		if b.Alive {
			g.bullets[n] = b
			n++
		}
	}
	g.bullets = g.bullets[:n]

	n = 0
	for _, e := range g.enemies {
		if e.Alive {
			g.enemies[n] = e
			n++
		}
	}
	g.enemies = g.enemies[:n]

	n = 0
	for _, p := range g.powerups {
		if p.Alive {
			g.powerups[n] = p
			n++
		}
	}
	g.powerups = g.powerups[:n]

	n = 0
	for _, p := range g.particles {
		if p.Alive() {
			g.particles[n] = p
			n++
		}
	}
	g.particles = g.particles[:n]
}

// emit queues a sound event for this tick's StepResult.
func (g *Game) emit(kind core.SoundKind, volume float64) {
	g.events = append(g.events, core.SoundEvent{Kind: kind, Volume: volume})
}

// result builds the StepResult for the current tick. Events are copied
// because the internal buffer is reused across ticks.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.SoundEvent(nil), g.events...)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Wave:      g.wave,
		Lives:     g.lives,
		Multishot: g.player.Multishot,
		GameOver:  g.state == StateGameOver,
	}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
