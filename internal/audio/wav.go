package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/neonwave/invaders/internal/core"
)

// ExportWAV renders every sound effect to a WAV file in dir, creating it
// if needed. Existing files are left alone so user tweaks survive.
func ExportWAV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	format := beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	kinds := []core.SoundKind{
		core.SoundLaser,
		core.SoundHit,
		core.SoundExplosion,
		core.SoundPowerUp,
	}

	for _, kind := range kinds {
		path := filepath.Join(dir, kind.String()+".wav")
		if _, err := os.Stat(path); err == nil {
			continue
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}

		streamer := ForEvent(core.SoundEvent{Kind: kind, Volume: 1.0})
		if err := wav.Encode(f, streamer, format); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
	}
	return nil
}
