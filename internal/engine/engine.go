// Package engine implements the snake simulation: a bounded grid, the snake
// body, queued direction changes, food placement and collision resolution.
// It has no external dependencies and performs no I/O or timing, so it is
// deterministic for a given random source.
package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	// InitialLength is the number of segments the snake starts with.
	InitialLength = 3

	// MaxPendingDirections bounds the direction changes buffered between ticks.
	MaxPendingDirections = 2

	// MinCols is the narrowest board that fits the initial snake at columns 1..3.
	MinCols = InitialLength + 1
)

// Outcome describes what a single Advance did.
type Outcome uint8

const (
	OutcomeMoved    Outcome = iota // Snake translated one cell
	OutcomeAte                     // Snake grew by one and scored
	OutcomeCollided                // Snake hit a wall or itself
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Engine owns the board, the snake and the pending direction queue.
// It is not safe for concurrent use; the caller serialises QueueDirectionChange
// and Advance on a single goroutine.
type Engine struct {
	rows int
	cols int
	grid []Cell // row-major, len rows*cols

	body    *ring[Position] // head at front, tail at back
	pending *ring[Direction]
	dir     Direction

	food    Position
	hasFood bool

	score    int
	ticks    uint64
	gameOver bool

	rng *rand.Rand
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand sets the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds a fresh random source for food placement.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates an engine for a rows x cols board with the snake on the middle
// row at columns 1..3 heading right and one food cell placed at random.
func New(rows, cols int, opts ...Option) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d needs at least %d columns", ErrInvalidDimensions, rows, cols, MinCols)
	}

	e := &Engine{
		rows:    rows,
		cols:    cols,
		grid:    make([]Cell, rows*cols),
		body:    newRing[Position](rows * cols),
		pending: newRing[Direction](MaxPendingDirections),
		dir:     DirRight,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	mid := rows / 2
	for c := 1; c <= InitialLength; c++ {
		e.addHead(Position{Row: mid, Col: c})
	}
	e.placeFood()

	return e, nil
}

// --- Commands ---

// QueueDirectionChange buffers a turn to be applied on a later tick.
// The request is dropped when the queue is full, when d repeats the effective
// last direction, when d reverses it, or when the game is over.
// It reports whether the change was queued.
func (e *Engine) QueueDirectionChange(d Direction) bool {
	if e.gameOver || e.pending.Len() >= MaxPendingDirections {
		return false
	}
	last := e.lastDirection()
	if d == last || d == last.Opposite() {
		return false
	}
	e.pending.PushBack(d)
	return true
}

// Advance moves the simulation forward one tick.
// Calling Advance after the game has ended returns ErrGameOver and leaves
// the state untouched.
func (e *Engine) Advance() (Outcome, error) {
	if e.gameOver {
		return OutcomeCollided, ErrGameOver
	}

	if d, ok := e.pending.PopFront(); ok {
		e.dir = d
	}
	e.ticks++

	newHead := e.body.Front().Translate(e.dir)
	switch e.classify(newHead) {
	case CellOutside, CellSnake:
		e.gameOver = true
		return OutcomeCollided, nil
	case CellFood:
		e.hasFood = false
		e.addHead(newHead)
		e.score++
		e.placeFood()
		return OutcomeAte, nil
	default:
		e.removeTail()
		e.addHead(newHead)
		return OutcomeMoved, nil
	}
}

// classify decides what a head entering p would hit.
// The current tail counts as empty because it vacates on the same tick.
func (e *Engine) classify(p Position) Cell {
	if !e.inBounds(p) {
		return CellOutside
	}
	if p == e.body.Back() {
		return CellEmpty
	}
	return e.grid[e.index(p)]
}

func (e *Engine) addHead(p Position) {
	e.body.PushFront(p)
	e.grid[e.index(p)] = CellSnake
}

func (e *Engine) removeTail() {
	tail, ok := e.body.PopBack()
	if !ok {
		return
	}
	e.grid[e.index(tail)] = CellEmpty
}

// placeFood puts food on a uniformly random empty cell.
// A full board leaves the game running without food.
func (e *Engine) placeFood() {
	empty := e.emptyPositions()
	if len(empty) == 0 {
		e.hasFood = false
		return
	}
	p := empty[e.rng.Intn(len(empty))]
	e.grid[e.index(p)] = CellFood
	e.food = p
	e.hasFood = true
}

func (e *Engine) emptyPositions() []Position {
	empty := make([]Position, 0, len(e.grid)-e.body.Len())
	for i, c := range e.grid {
		if c == CellEmpty {
			empty = append(empty, Position{Row: i / e.cols, Col: i % e.cols})
		}
	}
	return empty
}

func (e *Engine) lastDirection() Direction {
	if e.pending.Len() == 0 {
		return e.dir
	}
	return e.pending.Back()
}

func (e *Engine) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < e.rows && p.Col >= 0 && p.Col < e.cols
}

func (e *Engine) index(p Position) int {
	return p.Row*e.cols + p.Col
}

// --- Queries ---

// CellAt returns the stored value of a board cell.
func (e *Engine) CellAt(row, col int) (Cell, error) {
	p := Position{Row: row, Col: col}
	if !e.inBounds(p) {
		return CellOutside, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, e.rows, e.cols)
	}
	return e.grid[e.index(p)], nil
}

// HeadPosition returns the snake's head.
func (e *Engine) HeadPosition() Position {
	return e.body.Front()
}

// TailPosition returns the snake's last segment.
func (e *Engine) TailPosition() Position {
	return e.body.Back()
}

// SnakePositions returns a copy of the body, head first.
func (e *Engine) SnakePositions() []Position {
	return e.body.Slice()
}

// Len returns the number of snake segments.
func (e *Engine) Len() int {
	return e.body.Len()
}

// CurrentDirection returns the committed direction of travel.
func (e *Engine) CurrentDirection() Direction {
	return e.dir
}

// PendingDirections returns a copy of the queued, not yet applied turns.
func (e *Engine) PendingDirections() []Direction {
	return e.pending.Slice()
}

// FoodPosition returns the food cell, if any is on the board.
func (e *Engine) FoodPosition() (Position, bool) {
	return e.food, e.hasFood
}

// Score returns the number of food cells eaten.
func (e *Engine) Score() int {
	return e.score
}

// Ticks returns how many times Advance has run while the game was live.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// IsGameOver reports whether the snake has collided.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Dimensions returns the board size.
func (e *Engine) Dimensions() (rows, cols int) {
	return e.rows, e.cols
}

// String renders the board as text: '.' empty, 'o' body, '@' head, '*' food.
func (e *Engine) String() string {
	head := e.body.Front()
	var b strings.Builder
	b.Grow(e.rows * (e.cols + 1))
	for r := 0; r < e.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < e.cols; c++ {
			p := Position{Row: r, Col: c}
			if p == head {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(e.grid[e.index(p)].rune())
		}
	}
	return b.String()
}
