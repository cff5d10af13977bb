package core

// SoundKind identifies one of the game's discrete audio triggers.
type SoundKind int

const (
	SoundLaser     SoundKind = iota // player fired
	SoundHit                        // bullet struck an enemy
	SoundExplosion                  // enemy destroyed
	SoundPowerUp                    // powerup collected
)

// String returns a human-readable name for the sound kind.
func (k SoundKind) String() string {
	switch k {
	case SoundLaser:
		return "laser"
	case SoundHit:
		return "hit"
	case SoundExplosion:
		return "explosion"
	case SoundPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// SoundEvent is a fire-and-forget audio trigger emitted by the simulation.
// Volume is a linear scalar in (0, 1].
type SoundEvent struct {
	Kind   SoundKind
	Volume float64
}
