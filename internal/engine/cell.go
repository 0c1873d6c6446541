package engine

// Cell is the content of a single board cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood

	// CellOutside is only produced when classifying a candidate head
	// position. It is never stored in the grid.
	CellOutside
)

// String returns the name of the cell value.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	case CellOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// rune returns the glyph used by Engine.String.
func (c Cell) rune() rune {
	switch c {
	case CellSnake:
		return 'o'
	case CellFood:
		return '*'
	default:
		return '.'
	}
}
