package engine

// Snapshot captures the observable engine state for determinism testing and
// replay comparison. Snapshots are comparable with ==.
type Snapshot struct {
	Tick     uint64
	Score    int
	Len      int
	Head     Position
	Tail     Position
	Dir      Direction
	Pending  int
	Food     Position
	HasFood  bool
	GameOver bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.ticks,
		Score:    e.score,
		Len:      e.body.Len(),
		Head:     e.body.Front(),
		Tail:     e.body.Back(),
		Dir:      e.dir,
		Pending:  e.pending.Len(),
		Food:     e.food,
		HasFood:  e.hasFood,
		GameOver: e.gameOver,
	}
}
