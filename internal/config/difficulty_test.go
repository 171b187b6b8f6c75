package config

import "testing"

func testDifficulty() DifficultyConfig {
	return DefaultTetraConfig().Difficulty
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{5000, 0.5},
		{10000, 1.0},
		{50000, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelFromInitial(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0, 0) = %v, expected 0.5", got)
	}
	if got := d.Level(5000, 0); got != 0.75 {
		t.Errorf("Level(5000, 0) = %v, expected 0.75", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	d := NewDifficultyManager(cfg)

	if got := d.Level(999999, 50); got != 0.5 {
		t.Errorf("Level(_, 50) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(10000, 10000); got != 0.3 {
		t.Errorf("Level() = %v, expected the initial 0.3", got)
	}
}

func TestStepDelay(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score    int
		expected int
	}{
		{0, 800},
		{5000, 178},
		{10000, 100},
	}

	for _, tc := range tests {
		if got := d.StepDelay(800, tc.score, 0); got != tc.expected {
			t.Errorf("StepDelay(800, %d, 0) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	// Floor applies once the scaled delay drops below it.
	if got := d.StepDelay(400, 10000, 0); got != 80 {
		t.Errorf("StepDelay(400, 10000, 0) = %d, expected floor 80", got)
	}
}

func TestTier(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.Tier(0, 0, 10); got != 1 {
		t.Errorf("Tier(0) = %d, expected 1", got)
	}
	if got := d.Tier(10000, 0, 10); got != 10 {
		t.Errorf("Tier(max) = %d, expected 10", got)
	}
	if got := d.Tier(10000, 0, 1); got != 1 {
		t.Errorf("Tier with one step = %d, expected 1", got)
	}
}
