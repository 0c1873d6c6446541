package core

import "time"

// RuntimeConfig is handed to a game on Reset.
// Board dimensions and timing come from the loaded config file and CLI flags;
// screen size comes from the terminal or SSH PTY.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second
	Seed     int64 // RNG seed for food placement, 0 means time-based

	Rows int // Board rows, 0 means game default
	Cols int // Board columns, 0 means game default

	MoveInterval   time.Duration // Time between snake moves
	CountdownSteps int           // Countdown numbers shown before the first move
	CountdownStep  time.Duration // Duration of one countdown number
	DeathFrame     time.Duration // Delay between segments of the death animation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       60,
		MoveInterval:   100 * time.Millisecond,
		CountdownSteps: 3,
		CountdownStep:  500 * time.Millisecond,
		DeathFrame:     50 * time.Millisecond,
	}
}

// Frames converts a duration to a whole number of platform frames, at least 1.
func (c RuntimeConfig) Frames(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := int(d * time.Duration(rate) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Length   int  // Snake length
	Ticks    int  // Simulation moves so far
	Rows     int  // Board rows
	Cols     int  // Board columns
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Moved bool // Whether the simulation advanced this frame
	Ate   bool // Whether food was eaten this frame
	Err   error // Set when the game could not carry out the frame, e.g. a failed restart
}
