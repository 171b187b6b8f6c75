package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := ParseTetra(GetDefaultYAML("tetra"))
	if err != nil {
		t.Fatalf("ParseTetra(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetraConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTetraConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestParseTetraPartial(t *testing.T) {
	cfg, err := ParseTetra([]byte("board:\n  width: 12\ntiming:\n  lock_delay_ms: 250\n"))
	if err != nil {
		t.Fatalf("ParseTetra error: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if cfg.Timing.LockDelayMs != 250 {
		t.Errorf("Timing.LockDelayMs = %d, expected 250", cfg.Timing.LockDelayMs)
	}
	if cfg.Timing.StepDelayMs != 800 {
		t.Errorf("Timing.StepDelayMs = %d, expected default 800", cfg.Timing.StepDelayMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetraConfig)
		wantErr string
	}{
		{"defaults", func(*TetraConfig) {}, ""},
		{"narrow board", func(c *TetraConfig) { c.Board.Width = 3 }, "board.width"},
		{"short board", func(c *TetraConfig) { c.Board.Height = 2 }, "board.height"},
		{"zero step delay", func(c *TetraConfig) { c.Timing.StepDelayMs = 0 }, "step_delay_ms"},
		{"negative move delay", func(c *TetraConfig) { c.Timing.MoveDelayMs = -1 }, "move_delay_ms"},
		{"negative lock delay", func(c *TetraConfig) { c.Timing.LockDelayMs = -5 }, "lock_delay_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetraConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadTetraCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 8\n  height: 16\nshapes:\n  set: pento\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadTetra(path)
	if err != nil {
		t.Fatalf("LoadTetra error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("board = %+v, expected 8x16", cfg.Board)
	}
	if cfg.Shapes.Set != "pento" {
		t.Errorf("Shapes.Set = %q, expected pento", cfg.Shapes.Set)
	}
}

func TestLoadTetraCustomPathErrors(t *testing.T) {
	if _, _, err := LoadTetra(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadTetra(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadTetra(invalid); err == nil {
		t.Error("invalid custom config should fail validation")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err == nil) != tc.ok || got != tc.expected {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected %q ok=%v", tc.in, got, err, tc.expected, tc.ok)
		}
	}
}

func TestApplyTetraPreset(t *testing.T) {
	cfg := DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Preview.Ghost {
		t.Error("hard preset should hide the ghost")
	}

	cfg = DefaultTetraConfig()
	ApplyTetraPreset(&cfg, DifficultyEasy)
	if cfg.Timing.LockDelayMs != 500 {
		t.Errorf("easy preset lock delay = %d, expected 500", cfg.Timing.LockDelayMs)
	}
}
