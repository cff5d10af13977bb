// Package audio synthesizes the game's sound effects procedurally with
// beep streamers. There are no sample assets; every sound is an
// oscillator shaped by an exponential decay envelope.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/neonwave/invaders/internal/core"
)

// SampleRate is the fixed synthesis rate.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decayEnvelope multiplies the wrapped stream by exp(-decay*i), which is
// what gives the effects their percussive "pew" character. decay is the
// per-sample coefficient, so higher values die off faster.
type decayEnvelope struct {
	streamer beep.Streamer
	position int
	decay    float64
}

// NewDecayEnvelope wraps a streamer with an exponential decay.
func NewDecayEnvelope(s beep.Streamer, decay float64) beep.Streamer {
	return &decayEnvelope{streamer: s, decay: decay}
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := math.Exp(-e.decay * float64(e.position))
		samples[i][0] *= env
		samples[i][1] *= env
		e.position++
	}
	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear volume.
// math.Log2(0) is -Inf, so zero volume is handled by muting instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// LaserSound is the player shot: a short square-wave zap.
func LaserSound(volume float64) beep.Streamer {
	osc := NewOscillator(1200, 90*time.Millisecond, WaveSquare, SampleRate)
	shaped := NewDecayEnvelope(osc, 0.008)
	return newVolume(shaped, 0.55*volume)
}

// HitSound is the enemy hit thud: a low sine blip.
func HitSound(volume float64) beep.Streamer {
	osc := NewOscillator(320, 60*time.Millisecond, WaveSine, SampleRate)
	shaped := NewDecayEnvelope(osc, 0.02)
	return newVolume(shaped, 0.45*volume)
}

// ExplosionSound is a decaying noise burst.
func ExplosionSound(volume float64) beep.Streamer {
	noise := NewOscillator(0, 400*time.Millisecond, WaveNoise, SampleRate)
	shaped := NewDecayEnvelope(noise, 0.008)
	return newVolume(shaped, 0.6*volume)
}

// PowerUpSound is a rising two-note triangle chime.
func PowerUpSound(volume float64) beep.Streamer {
	n1 := NewOscillator(600, 120*time.Millisecond, WaveTriangle, SampleRate)
	n2 := NewOscillator(900, 120*time.Millisecond, WaveTriangle, SampleRate)
	sequence := beep.Seq(
		NewDecayEnvelope(n1, 0.006),
		NewDecayEnvelope(n2, 0.006),
	)
	return newVolume(sequence, volume)
}

// ForEvent builds the streamer for a simulation sound event.
// Returns nil for unknown kinds.
func ForEvent(ev core.SoundEvent) beep.Streamer {
	switch ev.Kind {
	case core.SoundLaser:
		return LaserSound(ev.Volume)
	case core.SoundHit:
		return HitSound(ev.Volume)
	case core.SoundExplosion:
		return ExplosionSound(ev.Volume)
	case core.SoundPowerUp:
		return PowerUpSound(ev.Volume)
	default:
		return nil
	}
}
