package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Rows: 15,
			Cols: 15,
		},
		Timing: TimingConfig{
			TickMS:         100,
			CountdownSteps: 3,
			CountdownMS:    500,
			DeathFrameMS:   50,
		},
	}
}
