package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for running one game.
// It feeds key presses into an InputFrame, steps the game once per tick,
// and records the final score when a round ends.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	tickID     int
	inputFrame core.InputFrame
	gameState  core.GameState
	quitOnBack bool // Standalone play exits on back; sessions return to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model for the given game and starts its first round.
// A nil store disables score recording; a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// The help bar takes the last screen line.
	if err := game.Reset(gameConfig(cfg)); err != nil {
		return Model{}, err
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:      store,
		logger:     logger,
		player:     player,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		tickID:     nextTickID(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}, nil
}

// gameConfig reserves the help line below the game screen.
func gameConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-1, 0)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen without restarting the round when the game supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gcfg := gameConfig(m.config)
	m.screen.Resize(gcfg.ScreenW, gcfg.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gcfg.ScreenW, gcfg.ScreenH)
		return m, nil
	}

	if !m.gameState.GameOver {
		if err := m.game.Reset(gcfg); err != nil {
			m.logger.Error("cannot restart game after resize", "game", m.game.ID(), "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick steps the game one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Err != nil {
		m.logger.Error("game step failed", "game", m.game.ID(), "error", result.Err)
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// saveScore records the finished round. Storage failures are logged, never fatal.
func (m *Model) saveScore() {
	st := m.gameState
	preset := m.game.ID()
	if k, ok := m.game.(registry.ScoreKeyer); ok {
		preset = k.ScoreID()
	}
	m.logger.Info("round finished",
		"game", m.game.ID(),
		"preset", preset,
		"player", m.player,
		"score", st.Score,
		"length", st.Length,
		"ticks", st.Ticks,
	)

	if m.store == nil || st.Score == 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		Preset: preset,
		Score:  st.Score,
		Length: st.Length,
		Ticks:  st.Ticks,
		Rows:   st.Rows,
		Cols:   st.Cols,
		Player: m.player,
	})
	if err != nil {
		m.logger.Warn("could not save score", "preset", preset, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", config.AppDir, "screenshots"))
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model, err := NewModel(game, store, logger, cfg, player)
	if err != nil {
		return err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
