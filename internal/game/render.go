package game

import (
	"fmt"

	"github.com/neonwave/invaders/internal/core"
)

// Render glyphs
const (
	BulletChar  = '│'
	PowerUpChar = '◉'
	LifeChar    = '▲'
)

// Player ship glyphs, left to right.
var shipGlyphs = []rune{'◢', '█', '◣'}

// Enemy glyphs by kind.
var enemyGlyphs = [enemyKinds]rune{'▼', '◆', '▣', '●'}

// Star glyphs by layer depth; nearer layers get brighter dots.
var starGlyphs = []rune{'.', '·', '•'}

// Render draws the current game state into the screen buffer.
// Logical coordinates (960x720) are projected onto the cell grid, so the
// game looks the same at any terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderStars(dst)

	if g.state == StateTitle {
		g.renderTitle(dst)
		return
	}

	// Screen shake: a small horizontal jitter while the impulse is hot.
	// Derived from the tick counter, not the RNG, so rendering never
	// perturbs the simulation's random stream.
	ox := 0
	if g.cfg.Effects.ScreenShake && g.shake > 2 {
		ox = g.tickCount%3 - 1
	}

	g.renderParticles(dst, ox)
	g.renderBullets(dst, ox)
	g.renderEnemies(dst, ox)
	g.renderPowerUps(dst, ox)
	g.renderPlayer(dst, ox)
	g.renderHUD(dst)

	if g.state == StateGameOver {
		g.renderGameOver(dst)
	}
}

// cellX projects a logical x coordinate onto the screen column.
func cellX(dst *core.Screen, x float64) int {
	return int(x / LogicalW * float64(dst.Width()))
}

// cellY projects a logical y coordinate onto the screen row.
func cellY(dst *core.Screen, y float64) int {
	return int(y / LogicalH * float64(dst.Height()))
}

func (g *Game) renderStars(dst *core.Screen) {
	for li, layer := range g.stars.Layers {
		glyph := starGlyphs[core.Min(li, len(starGlyphs)-1)]
		for _, s := range layer.Stars {
			x := cellX(dst, s.X)
			y := cellY(dst, s.Y)
			// Stars never overwrite foreground cells
			if dst.Get(x, y) == ' ' {
				dst.SetCell(x, y, glyph, layer.Color)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, ox int) {
	px := cellX(dst, g.player.X) + ox
	py := cellY(dst, g.player.Y)
	for i, r := range shipGlyphs {
		dst.SetCell(px-1+i, py, r, core.ColorBrightCyan)
	}
}

func (g *Game) renderBullets(dst *core.Screen, ox int) {
	for _, b := range g.bullets {
		dst.SetCell(cellX(dst, b.X)+ox, cellY(dst, b.Y), BulletChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, ox int) {
	for i := range g.enemies {
		e := &g.enemies[i]
		w := core.Max(1, int(e.Size()/LogicalW*float64(dst.Width())))
		ex := cellX(dst, e.X) - w/2 + ox
		ey := cellY(dst, e.Y)
		glyph := enemyGlyphs[e.Kind%enemyKinds]
		for j := 0; j < w; j++ {
			dst.SetCell(ex+j, ey, glyph, e.Color)
		}
	}
}

func (g *Game) renderPowerUps(dst *core.Screen, ox int) {
	for _, p := range g.powerups {
		dst.SetCell(cellX(dst, p.X)+ox, cellY(dst, p.Y), PowerUpChar, core.ColorBrightBlue)
	}
}

func (g *Game) renderParticles(dst *core.Screen, ox int) {
	for i := range g.particles {
		p := &g.particles[i]
		glyph := '*'
		if p.Age > p.Life*0.5 {
			glyph = '·'
		}
		dst.SetCell(cellX(dst, p.X)+ox, cellY(dst, p.Y), glyph, p.Color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score %d", g.score)
	dst.DrawTextColor(1, 0, score, core.ColorBrightWhite)

	wave := fmt.Sprintf("Wave %d", g.wave)
	dst.DrawTextColor(dst.Width()-len(wave)-1, 0, wave, core.ColorBrightMagenta)

	multi := fmt.Sprintf("x%d", g.player.Multishot)
	dst.DrawTextColor(dst.Width()-len(multi)-1, 1, multi, core.ColorBrightYellow)

	for i := 0; i < g.lives; i++ {
		dst.SetCell(1+i*2, 1, LifeChar, core.ColorBrightCyan)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCenteredColor(cy-4, "N E O N   I N V A D E R S", core.ColorBrightMagenta)
	dst.DrawTextCenteredColor(cy-1, "←/→ or A/D to move   Space to shoot", core.ColorWhite)
	dst.DrawTextCenteredColor(cy, "Catch ◉ for multishot", core.ColorBrightBlue)
	dst.DrawTextCenteredColor(cy+3, "Press Space to start", core.ColorBrightGreen)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score %d   Wave %d", g.score, g.wave),
		"Press R to restart",
	}

	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColor(box.Y+1, lines[0], core.ColorBrightRed)
	dst.DrawTextCenteredColor(box.Y+3, lines[1], core.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+4, lines[2], core.ColorBrightGreen)
}
