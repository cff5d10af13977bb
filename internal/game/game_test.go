package game

import (
	"testing"

	"github.com/neonwave/invaders/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newPlaying creates a game and advances it past the title screen.
func newPlaying(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	if g.state != StatePlaying {
		t.Fatalf("expected playing state after fire on title, got %q", g.state)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	seed := int64(12345)

	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		inputSequence[i].Set(core.ActionFire)
		if i%7 < 3 {
			inputSequence[i].Set(core.ActionLeft)
		} else {
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(seed))
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score, s2.Score)
	}
	if s1.Wave != s2.Wave {
		t.Errorf("Determinism failed: waves differ. Run1=%d, Run2=%d", s1.Wave, s2.Wave)
	}
	if s1.PlayerX != s2.PlayerX {
		t.Errorf("Determinism failed: player X differs. Run1=%f, Run2=%f", s1.PlayerX, s2.PlayerX)
	}
	if len(s1.Enemies) != len(s2.Enemies) {
		t.Errorf("Determinism failed: enemy counts differ. Run1=%d, Run2=%d", len(s1.Enemies), len(s2.Enemies))
	}
	if len(s1.Particles) != len(s2.Particles) {
		t.Errorf("Determinism failed: particle counts differ. Run1=%d, Run2=%d", len(s1.Particles), len(s2.Particles))
	}
	for i := range s1.Enemies {
		if s1.Enemies[i].X != s2.Enemies[i].X || s1.Enemies[i].Y != s2.Enemies[i].Y {
			t.Fatalf("Determinism failed: enemy %d position differs", i)
		}
	}
}

func TestRenderDoesNotAffectSimulation(t *testing.T) {
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		inputSequence[i].Set(core.ActionFire)
	}

	run := func(render bool) Snapshot {
		g := New()
		g.Reset(testConfig(99))
		screen := core.NewScreen(80, 24)
		for _, in := range inputSequence {
			g.Step(in)
			if render {
				g.Render(screen)
			}
		}
		return g.Snapshot()
	}

	s1 := run(false)
	s2 := run(true)

	if s1.Score != s2.Score || len(s1.Enemies) != len(s2.Enemies) || len(s1.Particles) != len(s2.Particles) {
		t.Error("Render calls changed the simulation outcome")
	}
}

func TestTitleScreen(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.state != StateTitle {
		t.Fatalf("expected title state after reset, got %q", g.state)
	}

	// Movement keys do not start the game
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.state != StateTitle {
		t.Errorf("movement input should not leave the title screen, got %q", g.state)
	}

	// Fire does
	in = core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)
	if g.state != StatePlaying {
		t.Errorf("fire should start the game, got %q", g.state)
	}
}

func TestGameReset(t *testing.T) {
	g := newPlaying(t, 42)

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionFire)
		g.Step(in)
	}

	g.Reset(testConfig(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.wave != 1 {
		t.Errorf("Reset should restart at wave 1, got %d", g.wave)
	}
	if g.state != StateTitle {
		t.Errorf("Reset should return to title, got %q", g.state)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.player.Multishot != 1 {
		t.Errorf("Reset should clear multishot, got %d", g.player.Multishot)
	}
}

func TestWaveGridSize(t *testing.T) {
	g := newPlaying(t, 7)

	// Wave 1: 9 columns, 4+min(3,1)=5 rows
	want := g.cfg.Enemies.Columns * (g.cfg.Enemies.BaseRows + 1)
	if len(g.enemies) != want {
		t.Errorf("wave 1 should spawn %d enemies, got %d", want, len(g.enemies))
	}

	// Deep waves cap at BaseRows+MaxExtraRows rows
	g.enemies = g.enemies[:0]
	g.spawnWave(10)
	want = g.cfg.Enemies.Columns * (g.cfg.Enemies.BaseRows + g.cfg.Enemies.MaxExtraRows)
	if len(g.enemies) != want {
		t.Errorf("wave 10 should spawn %d enemies, got %d", want, len(g.enemies))
	}
}

func TestFireCooldown(t *testing.T) {
	g := newPlaying(t, 3)

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	g.Step(fire)
	if len(g.bullets) != 1 {
		t.Fatalf("first shot should spawn 1 bullet, got %d", len(g.bullets))
	}

	// Cooldown (0.18s) spans several 60Hz ticks; holding fire adds nothing
	g.Step(fire)
	g.Step(fire)
	if len(g.bullets) != 1 {
		t.Errorf("cooldown should block rapid fire, got %d bullets", len(g.bullets))
	}

	// After the cooldown expires the next shot goes out
	for i := 0; i < 12; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Step(fire)
	if len(g.bullets) != 2 {
		t.Errorf("expected second bullet after cooldown, got %d", len(g.bullets))
	}
}

func TestLaserEventOnFire(t *testing.T) {
	g := newPlaying(t, 3)

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	res := g.Step(fire)

	found := false
	for _, ev := range res.Events {
		if ev.Kind == core.SoundLaser {
			found = true
			if ev.Volume != 0.40 {
				t.Errorf("laser volume should be 0.40, got %f", ev.Volume)
			}
		}
	}
	if !found {
		t.Error("firing should emit a laser sound event")
	}
}

func TestMultishotSpread(t *testing.T) {
	g := newPlaying(t, 5)
	g.player.Multishot = 3
	g.player.Cooldown = 0

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	if len(g.bullets) != 3 {
		t.Fatalf("multishot 3 should spawn 3 bullets, got %d", len(g.bullets))
	}

	// Bullets spread symmetrically around the ship centre
	spread := g.cfg.Player.Spread
	wantX := []float64{g.player.X - spread, g.player.X, g.player.X + spread}
	for i, b := range g.bullets {
		if b.X != wantX[i] {
			t.Errorf("bullet %d at X=%f, want %f", i, b.X, wantX[i])
		}
	}

	if g.player.Cooldown != g.cfg.Player.CooldownMulti {
		t.Errorf("multishot should use the longer cooldown, got %f", g.player.Cooldown)
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g := newPlaying(t, 11)

	// Drop a bullet onto a kind-0 enemy (row 0). Wobble amplitude 8 is well
	// inside the combined half-heights, so the overlap is guaranteed.
	e := g.enemies[0]
	g.bullets = append(g.bullets, Bullet{X: e.X, Y: e.BaseY, VY: 0, Alive: true})

	before := len(g.enemies)
	res := g.Step(core.NewInputFrame())

	if len(g.enemies) != before-1 {
		t.Errorf("kill should remove exactly one enemy, had %d now %d", before, len(g.enemies))
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullet should be consumed by the kill, got %d left", len(g.bullets))
	}
	if g.score != g.cfg.Gameplay.KillScore {
		t.Errorf("kill should award %d points, got %d", g.cfg.Gameplay.KillScore, g.score)
	}
	if len(g.particles) != g.cfg.Particles.BurstSize {
		t.Errorf("kill should burst %d particles, got %d", g.cfg.Particles.BurstSize, len(g.particles))
	}
	if g.shake != g.cfg.Effects.ShakeImpulse-g.cfg.Effects.ShakeDecay*g.dt {
		t.Errorf("kill should kick the screen shake, got %f", g.shake)
	}

	var hit, explosion bool
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.SoundHit:
			hit = true
		case core.SoundExplosion:
			explosion = true
		}
	}
	if !hit || !explosion {
		t.Errorf("kill should emit hit and explosion events, got %v", res.Events)
	}
}

func TestBulletKillsAtMostOneEnemy(t *testing.T) {
	g := newPlaying(t, 13)

	// Two enemies stacked on the same spot, one bullet
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies,
		Enemy{X: 480, Y: 300, BaseY: 300, Kind: 0, Color: core.ColorBrightMagenta, Alive: true},
		Enemy{X: 480, Y: 300, BaseY: 300, Kind: 0, Color: core.ColorBrightMagenta, Alive: true},
	)
	g.bullets = append(g.bullets, Bullet{X: 480, Y: 300, VY: 0, Alive: true})

	g.Step(core.NewInputFrame())

	if len(g.enemies) != 1 {
		t.Errorf("one bullet should kill exactly one enemy, %d survived", len(g.enemies))
	}
	if g.score != g.cfg.Gameplay.KillScore {
		t.Errorf("score should count a single kill, got %d", g.score)
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := newPlaying(t, 17)

	g.powerups = append(g.powerups, PowerUp{X: g.player.X, Y: g.player.Y, VY: 0, Alive: true})
	res := g.Step(core.NewInputFrame())

	if g.player.Multishot != 2 {
		t.Errorf("pickup should raise multishot to 2, got %d", g.player.Multishot)
	}
	if len(g.powerups) != 0 {
		t.Errorf("picked-up powerup should be removed, got %d left", len(g.powerups))
	}

	found := false
	for _, ev := range res.Events {
		if ev.Kind == core.SoundPowerUp {
			found = true
		}
	}
	if !found {
		t.Error("pickup should emit a powerup sound event")
	}
}

func TestMultishotCap(t *testing.T) {
	g := newPlaying(t, 17)
	g.player.Multishot = g.cfg.Player.MaxMultishot

	g.powerups = append(g.powerups, PowerUp{X: g.player.X, Y: g.player.Y, VY: 0, Alive: true})
	g.Step(core.NewInputFrame())

	if g.player.Multishot != g.cfg.Player.MaxMultishot {
		t.Errorf("multishot should cap at %d, got %d", g.cfg.Player.MaxMultishot, g.player.Multishot)
	}
}

func TestGameOverWhenEnemiesReachLine(t *testing.T) {
	g := newPlaying(t, 23)

	g.enemies[0].BaseY = LogicalH - g.cfg.Enemies.LoseMargin
	g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("enemy at the defence line should end the game, got %q", g.state)
	}
	if !g.State().GameOver {
		t.Error("GameState.GameOver should be set")
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := newPlaying(t, 23)
	g.enemies[0].BaseY = LogicalH - g.cfg.Enemies.LoseMargin
	g.Step(core.NewInputFrame())

	before := g.Snapshot()

	// Fire and movement do nothing once the game is over
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.Set(core.ActionLeft)
	for i := 0; i < 30; i++ {
		g.Step(in)
	}

	after := g.Snapshot()
	if before.Tick != after.Tick {
		t.Errorf("game over should freeze ticks, %d -> %d", before.Tick, after.Tick)
	}
	if before.PlayerX != after.PlayerX {
		t.Error("game over should freeze the player")
	}
	if len(before.Bullets) != len(after.Bullets) {
		t.Error("game over should freeze bullets")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newPlaying(t, 29)

	// Score something first so the restart visibly clears it
	e := g.enemies[0]
	g.bullets = append(g.bullets, Bullet{X: e.X, Y: e.BaseY, VY: 0, Alive: true})
	g.Step(core.NewInputFrame())
	if g.score == 0 {
		t.Fatal("setup: expected a kill before game over")
	}

	g.enemies[0].BaseY = LogicalH - g.cfg.Enemies.LoseMargin
	g.Step(core.NewInputFrame())
	if g.state != StateGameOver {
		t.Fatalf("setup: expected game over, got %q", g.state)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.state != StatePlaying {
		t.Fatalf("restart should resume play immediately, got %q", g.state)
	}
	if g.score != 0 {
		t.Errorf("restart should clear score, got %d", g.score)
	}
	if g.wave != 1 {
		t.Errorf("restart should return to wave 1, got %d", g.wave)
	}
	want := g.cfg.Enemies.Columns * (g.cfg.Enemies.BaseRows + 1)
	if len(g.enemies) != want {
		t.Errorf("restart should respawn the wave 1 grid, got %d enemies", len(g.enemies))
	}
	if g.player.Multishot != 1 {
		t.Errorf("restart should clear multishot, got %d", g.player.Multishot)
	}
}

func TestWaveProgression(t *testing.T) {
	g := newPlaying(t, 31)

	// Clear the whole grid in one tick: every enemy dies, the next wave
	// spawns before the tick ends.
	for i := range g.enemies {
		g.enemies[i].Alive = false
	}
	g.Step(core.NewInputFrame())

	if g.wave != 2 {
		t.Errorf("clearing the grid should advance to wave 2, got %d", g.wave)
	}
	want := g.cfg.Enemies.Columns * (g.cfg.Enemies.BaseRows + 2)
	if len(g.enemies) != want {
		t.Errorf("wave 2 should spawn %d enemies, got %d", want, len(g.enemies))
	}
}

func TestNoDeadEntitiesAfterStep(t *testing.T) {
	g := newPlaying(t, 37)

	for i := 0; i < 900; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionFire)
		if i%5 == 0 {
			in.Set(core.ActionLeft)
		}
		g.Step(in)

		for _, b := range g.bullets {
			if !b.Alive {
				t.Fatal("dead bullet survived the tick")
			}
		}
		for _, e := range g.enemies {
			if !e.Alive {
				t.Fatal("dead enemy survived the tick")
			}
		}
		for _, p := range g.powerups {
			if !p.Alive {
				t.Fatal("dead powerup survived the tick")
			}
		}
		for pi := range g.particles {
			if !g.particles[pi].Alive() {
				t.Fatal("expired particle survived the tick")
			}
		}
	}
}

func TestBulletDespawnsOffscreen(t *testing.T) {
	g := newPlaying(t, 41)

	g.bullets = append(g.bullets, Bullet{X: 480, Y: 10, VY: -g.cfg.Bullet.Speed, Alive: true})
	// 680 u/s clears the 50 units to the despawn line within a few ticks
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	if len(g.bullets) != 0 {
		t.Errorf("offscreen bullet should despawn, got %d left", len(g.bullets))
	}
}

func TestPlayerClampedToMargins(t *testing.T) {
	g := newPlaying(t, 43)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 600; i++ {
		g.Step(left)
	}
	if g.player.X != g.cfg.Player.Margin {
		t.Errorf("player should stop at the left margin %f, got %f", g.cfg.Player.Margin, g.player.X)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 600; i++ {
		g.Step(right)
	}
	if g.player.X != LogicalW-g.cfg.Player.Margin {
		t.Errorf("player should stop at the right margin, got %f", g.player.X)
	}
}

func TestRegistryRegistration(t *testing.T) {
	g := New()
	if g.ID() != "invaders" {
		t.Errorf("unexpected game ID %q", g.ID())
	}
	if g.Title() != "Neon Invaders" {
		t.Errorf("unexpected title %q", g.Title())
	}
}
