package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StepDelay returns the gravity interval in milliseconds for the current
// difficulty. The interval shrinks from baseMs to baseMs/(1+speedMultiplier)
// and never drops below the configured floor.
func (d *DifficultyManager) StepDelay(baseMs int, score int, ticks int) int {
	level := d.Level(score, ticks)
	delay := int(math.Round(float64(baseMs) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	floor := d.cfg.Scaling.MinStepDelayMs
	if floor <= 0 {
		floor = 1
	}
	if delay < floor {
		delay = floor
	}
	return delay
}

// Tier maps the difficulty level onto a 1-based display level with the given
// number of steps.
func (d *DifficultyManager) Tier(score, ticks, steps int) int {
	if steps <= 1 {
		return 1
	}
	return 1 + int(d.Level(score, ticks)*float64(steps-1))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
