package main

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestResolveGame(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{arg: "", want: "snake"},
		{arg: "snake", want: "snake"},
		{arg: "snake_large", want: "snake_large"},
		{arg: "classic", want: "snake"},
		{arg: "small", want: "snake_small"},
		{arg: "large", want: "snake_large"},
		{arg: "huge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := resolveGame(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveGame(%q) = %q, want error", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveGame(%q) error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("resolveGame(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestRuntimeConfig(t *testing.T) {
	oldFPS := flagFPS
	flagFPS = 30
	defer func() { flagFPS = oldFPS }()

	cfg := config.DefaultSnakeConfig()
	cfg.Board.Rows = 12
	cfg.Board.Cols = 20
	cfg.Seed = 7

	rc := runtimeConfig(cfg, true)
	if rc.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", rc.TickRate)
	}
	if rc.Seed != 7 {
		t.Errorf("Seed = %d, want 7", rc.Seed)
	}
	if rc.Rows != 12 || rc.Cols != 20 {
		t.Errorf("board = %dx%d, want 12x20", rc.Rows, rc.Cols)
	}
	if rc.MoveInterval != cfg.Timing.TickInterval() {
		t.Errorf("MoveInterval = %v, want %v", rc.MoveInterval, cfg.Timing.TickInterval())
	}
	if rc.CountdownSteps != cfg.Timing.CountdownSteps {
		t.Errorf("CountdownSteps = %d, want %d", rc.CountdownSteps, cfg.Timing.CountdownSteps)
	}

	preset := runtimeConfig(cfg, false)
	if preset.Rows == 12 && preset.Cols == 20 {
		t.Error("board forced without overrideBoard")
	}
}

func TestLoadConfigSeedFlag(t *testing.T) {
	oldSeed, oldConfig := flagSeed, flagConfig
	defer func() { flagSeed, flagConfig = oldSeed, oldConfig }()

	flagConfig = ""
	flagSeed = 99
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
}
