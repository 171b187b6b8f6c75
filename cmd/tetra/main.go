// tetra is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetra list                   - List available games
//	tetra play [game]            - Play a game (default: tetra)
//	tetra menu                   - Pick a game interactively
//	tetra scores <game>          - Show high scores for a game
//	tetra board                  - Browse high scores interactively
//	tetra shapes list            - List built-in shape sets
//	tetra shapes inspect <set>   - Show how a shape set normalizes
//	tetra config defaults|show   - Print game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.tetra/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination while the game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetra/internal/games/tetra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - falling blocks in your terminal",
	Long: `Tetra is a falling-block puzzle game for the terminal.

Pieces fall onto a well; complete rows to clear them and score.
Shape sets are data: play the classic tetrominoes, pentominoes,
or your own shapes from a YAML file.

Examples:
  tetra play
  tetra play tetra_pento
  tetra play --difficulty hard --seed 42
  tetra shapes inspect ./my-shapes.yaml
  tetra scores tetra`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetra/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.tetra/tetra.log", "Log file used while the game is running")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}
