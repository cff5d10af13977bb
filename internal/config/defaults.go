package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default game configuration.
// Values match the classic tuning: 960x720 logical playfield at 60 ticks/s.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: PlayerConfig{
			Speed:          420,
			Margin:         40,
			CooldownSingle: 0.18,
			CooldownMulti:  0.24,
			Spread:         12,
			MaxMultishot:   5,
		},
		Bullet: BulletConfig{
			Speed: 680,
		},
		Enemies: EnemyConfig{
			Columns:      9,
			BaseRows:     4,
			MaxExtraRows: 3,
			SpacingY:     64,
			OffsetY:      80,
			Drift:        4,
			LoseMargin:   140,
		},
		PowerUps: PowerUpConfig{
			DropChance: 0.07,
			FallSpeed:  120,
		},
		Particles: ParticleConfig{
			BurstSize: 20,
			Gravity:   420,
		},
		Effects: EffectsConfig{
			ScreenShake:     true,
			ShakeImpulse:    8,
			ShakeDecay:      60,
			StarfieldLayers: 3,
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			KillScore: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // three minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SwayMultiplier:  0.5,
				DriftMultiplier: 0.75,
			},
		},
	}
}
