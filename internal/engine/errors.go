package engine

import "errors"

var (
	// ErrInvalidDimensions is returned by New when the board cannot hold
	// the initial snake.
	ErrInvalidDimensions = errors.New("engine: invalid board dimensions")

	// ErrOutOfBounds is returned by queries addressed outside the board.
	ErrOutOfBounds = errors.New("engine: position out of bounds")

	// ErrGameOver is returned by Advance once the snake has collided.
	ErrGameOver = errors.New("engine: game is over")
)
