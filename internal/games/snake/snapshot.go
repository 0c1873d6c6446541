package snake

import "github.com/vovakirdan/tui-snake/internal/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame    uint64
	Phase    Phase
	Paused   bool
	TooSmall bool
	Rows     int
	Cols     int
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    g.frame,
		Phase:    g.phase,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		Rows:     g.rows,
		Cols:     g.cols,
	}
	if g.eng != nil {
		s.Engine = g.eng.Snapshot()
	}
	return s
}
