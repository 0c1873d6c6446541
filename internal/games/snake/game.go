package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Phase is the round's position in the ready -> countdown -> playing ->
// dying -> game over sequence.
type Phase string

const (
	PhaseReady     Phase = "ready"
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhaseDying     Phase = "dying"
	PhaseGameOver  Phase = "game_over"
)

const (
	hudHeight = 2 // score line + separator
	cellWidth = 2 // terminal cells are roughly twice as tall as wide
)

// Game drives an engine.Engine from platform frames.
// The engine moves once every MoveInterval; in between the game only
// forwards turns, so several turns pressed within one move are queued in order.
type Game struct {
	id     string
	title  string
	preset config.BoardPreset

	eng   *engine.Engine
	cfg   core.RuntimeConfig
	seeds *rand.Rand
	rows  int
	cols  int

	frame  uint64
	phase  Phase
	paused bool

	moveEvery  int
	moveTicker int

	countdown       int // remaining numbers, shown as-is
	countdownEvery  int
	countdownTicker int

	deadBody    []engine.Position
	deadShown   int
	deathEvery  int
	deathTicker int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a classic 15x15 game.
func New() *Game {
	return newPreset("snake", "Snake", config.PresetClassic)
}

// NewSmall creates a 10x10 game.
func NewSmall() *Game {
	return newPreset("snake_small", "Snake (Small)", config.PresetSmall)
}

// NewLarge creates a 25x25 game.
func NewLarge() *Game {
	return newPreset("snake_large", "Snake (Large)", config.PresetLarge)
}

func newPreset(id, title string, preset config.BoardPreset) *Game {
	return &Game{id: id, title: title, preset: preset}
}

func init() {
	registry.Register("snake", func() registry.Game { return New() })
	registry.Register("snake_small", func() registry.Game { return NewSmall() })
	registry.Register("snake_large", func() registry.Game { return NewLarge() })
}

var presetGames = map[config.BoardPreset]string{
	config.PresetClassic: "snake",
	config.PresetSmall:   "snake_small",
	config.PresetLarge:   "snake_large",
}

// GameForPreset returns the registered game ID playing the given board preset.
func GameForPreset(preset config.BoardPreset) (string, bool) {
	id, ok := presetGames[preset]
	return id, ok
}

// CustomScoreID keys the scores of rounds played on a board that matches no preset.
const CustomScoreID = "snake_custom"

// ScoreID returns the key the current round's score is stored under.
// Boards resized by config or flags get CustomScoreID so they do not rank
// against preset boards.
func (g *Game) ScoreID() string {
	board, err := config.PresetBoard(g.preset)
	if err != nil || board.Rows != g.rows || board.Cols != g.cols {
		return CustomScoreID
	}
	return g.id
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new round. Non-zero cfg.Rows/cfg.Cols override the preset board.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	cfg = withDefaults(cfg)

	rows, cols := cfg.Rows, cfg.Cols
	if rows == 0 || cols == 0 {
		board, err := config.PresetBoard(g.preset)
		if err != nil {
			return err
		}
		rows, cols = board.Rows, board.Cols
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))

	eng, err := engine.New(rows, cols, engine.WithSeed(seeds.Int63()))
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}

	g.eng = eng
	g.cfg = cfg
	g.seeds = seeds
	g.rows, g.cols = rows, cols
	g.frame = 0
	g.paused = false
	g.phase = PhaseReady

	g.moveEvery = cfg.Frames(cfg.MoveInterval)
	g.moveTicker = 0
	g.countdownEvery = cfg.Frames(cfg.CountdownStep)
	g.countdown = 0
	g.countdownTicker = 0
	g.deathEvery = cfg.Frames(cfg.DeathFrame)
	g.deathTicker = 0
	g.deadBody = nil
	g.deadShown = 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// withDefaults fills unset timing fields from core.DefaultConfig.
func withDefaults(cfg core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.MoveInterval <= 0 {
		cfg.MoveInterval = def.MoveInterval
	}
	if cfg.CountdownStep <= 0 {
		cfg.CountdownStep = def.CountdownStep
	}
	if cfg.DeathFrame <= 0 {
		cfg.DeathFrame = def.DeathFrame
	}
	return cfg
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.cfg.ScreenW = width
	g.cfg.ScreenH = height

	w, h := g.boardRect().W, g.boardRect().H
	g.tooSmall = width < w || height < h+hudHeight
}

// restart begins a new round on the same board with a fresh food seed.
// On error the finished round stays on screen.
func (g *Game) restart() error {
	cfg := g.cfg
	cfg.Rows, cfg.Cols = g.rows, g.cols
	cfg.Seed = g.seeds.Int63()
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	return g.Reset(cfg)
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	if g.phase == PhaseGameOver && (input.Has(core.ActionRestart) || input.Has(core.ActionConfirm)) {
		err := g.restart()
		return core.StepResult{State: g.State(), Err: err}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && (g.phase == PhasePlaying || g.phase == PhaseCountdown) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var result core.StepResult
	switch g.phase {
	case PhaseReady:
		if !input.Empty() {
			g.startCountdown()
		}
	case PhaseCountdown:
		g.queueTurns(input)
		g.countdownTicker++
		if g.countdownTicker >= g.countdownEvery {
			g.countdownTicker = 0
			g.countdown--
			if g.countdown <= 0 {
				g.phase = PhasePlaying
			}
		}
	case PhasePlaying:
		g.queueTurns(input)
		g.moveTicker++
		if g.moveTicker >= g.moveEvery {
			g.moveTicker = 0
			result = g.move()
		}
	case PhaseDying:
		g.deathTicker++
		if g.deathTicker >= g.deathEvery {
			g.deathTicker = 0
			g.deadShown++
			if g.deadShown >= len(g.deadBody) {
				g.phase = PhaseGameOver
			}
		}
	}

	result.State = g.State()
	return result
}

func (g *Game) startCountdown() {
	g.countdown = g.cfg.CountdownSteps
	g.countdownTicker = 0
	if g.countdown <= 0 {
		g.phase = PhasePlaying
		return
	}
	g.phase = PhaseCountdown
}

// queueTurns forwards direction actions to the engine in press order.
func (g *Game) queueTurns(input core.InputFrame) {
	for _, a := range input.Actions() {
		if d, ok := actionDirection(a); ok {
			g.eng.QueueDirectionChange(d)
		}
	}
}

// move runs a single engine tick.
func (g *Game) move() core.StepResult {
	outcome, err := g.eng.Advance()
	if errors.Is(err, engine.ErrGameOver) {
		g.phase = PhaseGameOver
		return core.StepResult{}
	}

	switch outcome {
	case engine.OutcomeCollided:
		g.phase = PhaseDying
		g.deadBody = g.eng.SnakePositions()
		g.deadShown = 0
		g.deathTicker = 0
		return core.StepResult{}
	case engine.OutcomeAte:
		return core.StepResult{Moved: true, Ate: true}
	default:
		return core.StepResult{Moved: true}
	}
}

// actionDirection maps a steering action to an engine direction.
func actionDirection(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	default:
		return engine.DirUp, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Length:   g.eng.Len(),
		Ticks:    int(g.eng.Ticks()),
		Rows:     g.rows,
		Cols:     g.cols,
		GameOver: g.eng.IsGameOver(),
		Paused:   g.paused,
	}
}

// Board returns the board dimensions of the current round.
func (g *Game) Board() (rows, cols int) {
	return g.rows, g.cols
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.eng == nil {
		return "not started\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Frame: %d, Phase: %s, Score: %d\n", g.frame, g.phase, g.eng.Score())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %v\n",
		g.eng.Len(), g.eng.CurrentDirection(), g.eng.PendingDirections())
	food, ok := g.eng.FoodPosition()
	fmt.Fprintf(&b, "Head: %s, Food: %s (%v)\n", g.eng.HeadPosition(), food, ok)
	b.WriteString(g.eng.String())
	b.WriteByte('\n')
	return b.String()
}
