package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/registry"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagShapes     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: tetra).

Controls:
  A/D, Left/Right   - Move
  S/Down            - Soft drop
  Space             - Hard drop
  W/Up/X, Z         - Rotate clockwise, counter-clockwise
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Back
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start, ghost piece on, generous lock delay
  normal - Default speed curve
  hard   - Faster start, no ghost, instant lock
  fixed  - No speed-up as the score rises

Examples:
  tetra play
  tetra play tetra_pento --difficulty easy
  tetra play --shapes ./my-shapes.yaml
  tetra play --config ./tetra.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().StringVar(&flagShapes, "shapes", "", "Shape set ID or path to a shape YAML file")
	}
}

// configureGames loads the game config, applies CLI overrides and hands the
// result to the game package.
func configureGames(logger *log.Logger) error {
	cfg, src, err := config.LoadTetra(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyTetraPreset(&cfg, preset)
	}

	if flagShapes != "" {
		if _, err := os.Stat(flagShapes); err == nil {
			cfg.Shapes.Path = flagShapes
		} else {
			cfg.Shapes.Set = flagShapes
			cfg.Shapes.Path = ""
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("config loaded", "source", src, "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"difficulty", preset, "shapes", cfg.Shapes.Set)
	tetra.SetConfig(cfg)
	tetra.SetLogger(logger)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetra"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	if err := configureGames(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	store := openStore(logger)
	_, runErr := tui.Run(game, store, logger, runtimeConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
