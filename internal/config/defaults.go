package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultTetraYAML []byte

// DefaultTetraConfig returns the hardcoded configuration used when no YAML
// can be read, matching defaults/tetra.yaml.
func DefaultTetraConfig() TetraConfig {
	return TetraConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			StepDelayMs: 800,
			MoveDelayMs: 100,
			LockDelayMs: 0,
		},
		Preview: PreviewConfig{
			Ghost: true,
			Next:  true,
		},
		Shapes: ShapesConfig{
			Set: "classic",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 7.0,
				MinStepDelayMs:  80,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetra":
		return defaultTetraYAML
	default:
		return nil
	}
}
