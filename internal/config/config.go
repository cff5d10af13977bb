// Package config provides YAML-based gameplay tuning and difficulty
// management for the game.
package config

// InvadersConfig contains all tuning parameters for the game.
// Defaults mirror the classic values; everything is expressed in logical
// playfield units (960x720) and seconds.
type InvadersConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Particles  ParticleConfig   `yaml:"particles"`
	Effects    EffectsConfig    `yaml:"effects"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines ship movement and firing parameters.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`           // Horizontal speed, units/s
	Margin         float64 `yaml:"margin"`          // Clamp distance from playfield edges
	CooldownSingle float64 `yaml:"cooldown_single"` // Fire cooldown at multishot 1, seconds
	CooldownMulti  float64 `yaml:"cooldown_multi"`  // Fire cooldown at multishot > 1, seconds
	Spread         float64 `yaml:"spread"`          // Horizontal spacing between multishot bullets
	MaxMultishot   int     `yaml:"max_multishot"`   // Multishot level cap
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed float64 `yaml:"speed"` // Upward speed, units/s
}

// EnemyConfig defines the wave grid and enemy motion.
type EnemyConfig struct {
	Columns      int     `yaml:"columns"`        // Grid columns per wave
	BaseRows     int     `yaml:"base_rows"`      // Grid rows at wave 0
	MaxExtraRows int     `yaml:"max_extra_rows"` // Row growth cap across waves
	SpacingY     float64 `yaml:"spacing_y"`      // Vertical grid spacing
	OffsetY      float64 `yaml:"offset_y"`       // Top offset of the first row
	Drift        float64 `yaml:"drift"`          // Downward drift of the base offset, units/s
	LoseMargin   float64 `yaml:"lose_margin"`    // Game over when base offset crosses height - margin
}

// PowerUpConfig defines drop behavior.
type PowerUpConfig struct {
	DropChance float64 `yaml:"drop_chance"` // Probability of a drop per enemy kill
	FallSpeed  float64 `yaml:"fall_speed"`  // Downward speed, units/s
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	BurstSize int     `yaml:"burst_size"` // Particles per explosion
	Gravity   float64 `yaml:"gravity"`    // Downward acceleration, units/s^2
}

// EffectsConfig defines presentation feedback driven by the simulation.
type EffectsConfig struct {
	ScreenShake     bool    `yaml:"screen_shake"`     // Enable shake impulses on kills
	ShakeImpulse    float64 `yaml:"shake_impulse"`    // Shake magnitude set on a kill
	ShakeDecay      float64 `yaml:"shake_decay"`      // Shake decay per second
	StarfieldLayers int     `yaml:"starfield_layers"` // Parallax star layers
}

// GameplayConfig defines session scalars.
type GameplayConfig struct {
	Lives     int `yaml:"lives"`      // Starting lives
	KillScore int `yaml:"kill_score"` // Score per destroyed enemy
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SwayMultiplier  float64 `yaml:"sway_multiplier"`  // Added to enemy sway speed at max difficulty
	DriftMultiplier float64 `yaml:"drift_multiplier"` // Added to enemy descent rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
