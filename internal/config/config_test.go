package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  rows: 20\n  cols: 30\ntiming:\n  tick_ms: 80\nseed: 42\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Rows != 20 || cfg.Board.Cols != 30 {
		t.Errorf("board = %+v, want 20x30", cfg.Board)
	}
	if cfg.Timing.TickInterval() != 80*time.Millisecond {
		t.Errorf("tick = %v, want 80ms", cfg.Timing.TickInterval())
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	// Unspecified fields keep their defaults
	if cfg.Timing.CountdownSteps != 3 || cfg.Timing.DeathFrameMS != 50 {
		t.Errorf("timing defaults lost: %+v", cfg.Timing)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil ||
		!strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected read error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil ||
		!strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"zero rows", func(c *SnakeConfig) { c.Board.Rows = 0 }, false},
		{"negative cols", func(c *SnakeConfig) { c.Board.Cols = -3 }, false},
		{"too narrow", func(c *SnakeConfig) { c.Board.Cols = 3 }, false},
		{"single row", func(c *SnakeConfig) { c.Board.Rows = 1 }, true},
		{"zero tick", func(c *SnakeConfig) { c.Timing.TickMS = 0 }, false},
		{"no countdown", func(c *SnakeConfig) { c.Timing.CountdownSteps = 0 }, true},
		{"negative delay", func(c *SnakeConfig) { c.Timing.DeathFrameMS = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	names := Presets()
	if len(names) != 3 || names[0] != PresetClassic {
		t.Fatalf("Presets() = %v", names)
	}

	cfg := DefaultSnakeConfig()
	if err := ApplyPreset(&cfg, PresetLarge); err != nil {
		t.Fatalf("ApplyPreset() failed: %v", err)
	}
	if cfg.Board != (BoardConfig{Rows: 25, Cols: 25}) {
		t.Errorf("board = %+v, want 25x25", cfg.Board)
	}
	if err := ApplyPreset(&cfg, "huge"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/scores.db")
	if err != nil || got != "/tmp/scores.db" {
		t.Errorf("absolute path changed: %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.snake/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".snake", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}
}
