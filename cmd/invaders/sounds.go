package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neonwave/invaders/internal/audio"
)

var flagSoundsOut string

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Export the sound effects as WAV files",
	Long: `Render the procedural sound effects (laser, hit, explosion,
powerup) to WAV files. Useful for previewing the synthesis or for
tooling that wants the samples. Existing files are not overwritten.

Examples:
  invaders sounds
  invaders sounds --out ./sfx`,
	Args: cobra.NoArgs,
	Run:  runSounds,
}

func init() {
	soundsCmd.Flags().StringVar(&flagSoundsOut, "out", "sounds", "Output directory for WAV files")
}

func runSounds(_ *cobra.Command, _ []string) {
	if err := audio.ExportWAV(flagSoundsOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting sounds: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sound effects written to %s\n", flagSoundsOut)
}
