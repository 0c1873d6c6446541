package engine

import "fmt"

// Position addresses a single board cell. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

// P is a shorthand constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Translate returns the neighbouring position one step in direction d.
func (p Position) Translate(d Direction) Position {
	dRow, dCol := d.Offset()
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
