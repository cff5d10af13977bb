package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/neonwave/invaders/internal/audio"
	"github.com/neonwave/invaders/internal/core"
	"github.com/neonwave/invaders/internal/game"
	"github.com/neonwave/invaders/internal/platform/tui"
	"github.com/neonwave/invaders/internal/registry"
	"github.com/neonwave/invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Neon Invaders.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Space      - Fire (also starts the game)
  R          - Restart (after game over)
  M          - Mute sound
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --seed 42 --fps 30
  invaders play --config ./my-invaders.yaml
  invaders play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size, reserving the bottom row for the help bar
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	gameH := height - 1
	if gameH < 1 {
		gameH = 1
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  gameH,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Config path and difficulty must be set before the game is created
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create("invaders")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Open the audio device unless muted; fall back to silence when the
	// host has no usable output.
	var sink audio.Sink = audio.NopSink{}
	if !flagMute {
		speakerSink, audioErr := audio.NewSpeakerSink()
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			sink = speakerSink
		}
	}

	// Run the game
	runErr := tui.Run(g, store, sink, cfg)

	sink.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
