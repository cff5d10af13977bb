package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/neonwave/invaders/internal/core"
)

// drain streams until exhaustion and returns the total sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never terminated")
	return total
}

func TestOscillatorSine(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, SampleRate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, SampleRate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Square wave sample %d should be ±1.0, got %f", i, samples[i][0])
		}
	}
}

func TestOscillatorTriangle(t *testing.T) {
	osc := NewOscillator(600, 50*time.Millisecond, WaveTriangle, SampleRate)

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)

	// Triangle starts at its peak
	if samples[0][0] != 1.0 {
		t.Errorf("Triangle wave should start at 1.0, got %f", samples[0][0])
	}

	min, max := 1.0, -1.0
	for i := 0; i < n; i++ {
		min = math.Min(min, samples[i][0])
		max = math.Max(max, samples[i][0])
	}
	if max > 1.0 || min < -1.0 {
		t.Errorf("Triangle wave out of range: [%f, %f]", min, max)
	}
}

func TestOscillatorDuration(t *testing.T) {
	duration := 90 * time.Millisecond
	osc := NewOscillator(1200, duration, WaveSquare, SampleRate)

	total := drain(t, osc)
	want := SampleRate.N(duration)
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestDecayEnvelopeMonotone(t *testing.T) {
	// A decayed constant-amplitude square must never grow louder
	osc := NewOscillator(1200, 90*time.Millisecond, WaveSquare, SampleRate)
	shaped := NewDecayEnvelope(osc, 0.008)

	buf := make([][2]float64, SampleRate.N(90*time.Millisecond))
	n, _ := shaped.Stream(buf)

	prev := math.Inf(1)
	for i := 0; i < n; i++ {
		amp := math.Abs(buf[i][0])
		if amp > prev+1e-9 {
			t.Fatalf("envelope grew at sample %d: %f -> %f", i, prev, amp)
		}
		prev = amp
	}

	// The tail should be effectively silent
	if math.Abs(buf[n-1][0]) > 1e-6 {
		t.Errorf("envelope tail should be silent, got %f", buf[n-1][0])
	}
}

func TestEffectStreamersTerminate(t *testing.T) {
	tests := []struct {
		name     string
		streamer beep.Streamer
		minDur   time.Duration
	}{
		{"laser", LaserSound(0.40), 90 * time.Millisecond},
		{"hit", HitSound(0.50), 60 * time.Millisecond},
		{"explosion", ExplosionSound(0.60), 400 * time.Millisecond},
		{"powerup", PowerUpSound(0.45), 240 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := drain(t, tt.streamer)
			want := SampleRate.N(tt.minDur)
			if total < want {
				t.Errorf("%s too short: %d samples, want at least %d", tt.name, total, want)
			}
		})
	}
}

func TestForEvent(t *testing.T) {
	kinds := []core.SoundKind{
		core.SoundLaser,
		core.SoundHit,
		core.SoundExplosion,
		core.SoundPowerUp,
	}
	for _, kind := range kinds {
		s := ForEvent(core.SoundEvent{Kind: kind, Volume: 0.5})
		if s == nil {
			t.Errorf("ForEvent returned nil for %s", kind)
		}
	}

	if s := ForEvent(core.SoundEvent{Kind: core.SoundKind(99)}); s != nil {
		t.Error("ForEvent should return nil for unknown kinds")
	}
}

func TestNopSink(t *testing.T) {
	var sink Sink = NopSink{}
	sink.Trigger(core.SoundEvent{Kind: core.SoundLaser, Volume: 1})
	sink.Close()
}
