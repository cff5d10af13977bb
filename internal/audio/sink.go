package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/neonwave/invaders/internal/core"
)

// Sink consumes the sound events emitted by the simulation. The platform
// fans every StepResult's events into its sink; implementations decide
// whether anything is audible.
type Sink interface {
	// Trigger plays the effect for a single sound event. Must be fast and
	// non-blocking: it is called from the tick loop.
	Trigger(ev core.SoundEvent)

	// Close releases the audio device, if any.
	Close()
}

// NopSink swallows all events. Used for --mute, SSH sessions and when no
// audio device is available.
type NopSink struct{}

func (NopSink) Trigger(core.SoundEvent) {}
func (NopSink) Close()                  {}

// SpeakerSink plays events through the local audio device via a shared
// beep mixer. Overlapping effects mix naturally.
type SpeakerSink struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// NewSpeakerSink opens the audio device. On failure (headless hosts,
// missing sound server) the caller should fall back to NopSink.
func NewSpeakerSink() (*SpeakerSink, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(60*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &SpeakerSink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Trigger synthesizes the effect and adds it to the mixer.
func (s *SpeakerSink) Trigger(ev core.SoundEvent) {
	streamer := ForEvent(ev)
	if streamer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences the mixer. beep's speaker has no close, so clearing the
// mixer is the best we can do.
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
