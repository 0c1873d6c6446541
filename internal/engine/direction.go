package engine

import (
	"fmt"
	"strings"
)

// Direction is one of the four orthogonal movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in clockwise order starting from Up.
var Directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Offset returns the (row, col) translation for one step in this direction.
// Rows grow downward, so Up decreases the row.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction (Up<->Down, Left<->Right).
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// ParseDirection converts a name such as "up" or "Left" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return DirUp, fmt.Errorf("engine: unknown direction %q", s)
}
