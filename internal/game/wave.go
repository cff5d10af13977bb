package game

import "github.com/neonwave/invaders/internal/core"

// spawnWave fills the playfield with the invader grid for the given wave.
// Row count grows with the wave number up to BaseRows+MaxExtraRows; columns
// are spread evenly across the logical width. Enemy kind cycles per row.
func (g *Game) spawnWave(wave int) {
	cols := g.cfg.Enemies.Columns
	rows := g.cfg.Enemies.BaseRows + core.Min(g.cfg.Enemies.MaxExtraRows, wave)
	spacingX := LogicalW / float64(cols+1)
	for row := 0; row < rows; row++ {
		y := g.cfg.Enemies.OffsetY + float64(row)*g.cfg.Enemies.SpacingY
		for col := 0; col < cols; col++ {
			x := spacingX * float64(col+1)
			g.enemies = append(g.enemies, NewEnemy(x, y, row%enemyKinds, g.rng))
		}
	}
}
