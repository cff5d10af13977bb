// invaders is a neon-styled space shooter for the terminal.
//
// Usage:
//
//	invaders play            - Play the game
//	invaders scores          - Show high scores and recent sessions
//	invaders serve           - Start SSH server for remote play
//	invaders sounds          - Export the sound effects as WAV files
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/neonwave/invaders/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Neon Invaders - a space shooter in your terminal",
	Long: `Neon Invaders is a terminal-based arcade shooter: steer your ship,
blast the descending waves, and catch powerups for multishot.

Available commands:
  play     - Start a game
  scores   - View high scores and recent sessions
  serve    - Start SSH server for remote play
  sounds   - Export the procedural sound effects as WAV files

Examples:
  invaders play
  invaders play --difficulty hard --seed 42
  invaders scores --plain
  invaders serve --ssh :2222
  invaders sounds --out ./sfx`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(soundsCmd)
}
