// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickID atomic.Int64

// nextTickID returns a fresh tick chain ID. A model only reschedules ticks
// carrying its own ID, so an abandoned chain dies out instead of doubling speed.
func nextTickID() int {
	return int(lastTickID.Add(1))
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after a frame interval.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
