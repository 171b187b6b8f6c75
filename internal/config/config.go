// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// TetraConfig contains all configuration for the falling-block game.
type TetraConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Preview    PreviewConfig    `yaml:"preview"`
	Shapes     ShapesConfig     `yaml:"shapes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig is the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds the game clock delays in milliseconds.
type TimingConfig struct {
	StepDelayMs int `yaml:"step_delay_ms"` // Gravity interval
	MoveDelayMs int `yaml:"move_delay_ms"` // Minimum interval between repeated moves
	LockDelayMs int `yaml:"lock_delay_ms"` // Grace period on the ground; 0 locks immediately
}

// PreviewConfig toggles the optional board overlays.
type PreviewConfig struct {
	Ghost bool `yaml:"ghost"`
	Next  bool `yaml:"next"`
}

// ShapesConfig selects the shape set. Path, when set, wins over Set.
type ShapesConfig struct {
	Set  string `yaml:"set"`
	Path string `yaml:"path"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`   // Gravity speed-up at max difficulty
	MinStepDelayMs  int     `yaml:"min_step_delay_ms"` // Floor for the gravity interval
}

// Validate checks the configuration for values the game cannot run with.
func (c TetraConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width %d is below 4", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height %d is below 4", c.Board.Height))
	}
	if c.Timing.StepDelayMs <= 0 {
		errs = append(errs, errors.New("timing.step_delay_ms must be positive"))
	}
	if c.Timing.MoveDelayMs < 0 {
		errs = append(errs, errors.New("timing.move_delay_ms must not be negative"))
	}
	if c.Timing.LockDelayMs < 0 {
		errs = append(errs, errors.New("timing.lock_delay_ms must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyTetraPreset modifies the config based on a difficulty preset.
func ApplyTetraPreset(cfg *TetraConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Preview.Ghost = true
		cfg.Timing.LockDelayMs = max(cfg.Timing.LockDelayMs, 500)
	case DifficultyHard:
		cfg.Preview.Ghost = false
		cfg.Timing.LockDelayMs = 0
	}
}
