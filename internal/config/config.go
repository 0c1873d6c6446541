// Package config provides YAML-based configuration loading for the snake
// platform: board size, tick cadence and animation timing.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MinCols is the narrowest board the engine accepts.
const MinCols = 4

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Seed   int64        `yaml:"seed"`
}

// BoardConfig defines the playing field size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines tick cadence and animation delays in milliseconds.
type TimingConfig struct {
	TickMS         int `yaml:"tick_ms"`
	CountdownSteps int `yaml:"countdown_steps"`
	CountdownMS    int `yaml:"countdown_ms"`
	DeathFrameMS   int `yaml:"death_frame_ms"`
}

// TickInterval returns the time between snake moves.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// CountdownStep returns the duration of one countdown number.
func (t TimingConfig) CountdownStep() time.Duration {
	return time.Duration(t.CountdownMS) * time.Millisecond
}

// DeathFrame returns the delay between death animation frames.
func (t TimingConfig) DeathFrame() time.Duration {
	return time.Duration(t.DeathFrameMS) * time.Millisecond
}

// Validate checks the configuration. It never clamps values.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.Rows <= 0 {
		errs = append(errs, fmt.Errorf("board.rows must be positive, got %d", c.Board.Rows))
	}
	if c.Board.Cols < MinCols {
		errs = append(errs, fmt.Errorf("board.cols must be at least %d, got %d", MinCols, c.Board.Cols))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.CountdownSteps < 0 {
		errs = append(errs, fmt.Errorf("timing.countdown_steps must not be negative, got %d", c.Timing.CountdownSteps))
	}
	if c.Timing.CountdownMS < 0 || c.Timing.DeathFrameMS < 0 {
		errs = append(errs, errors.New("timing delays must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
