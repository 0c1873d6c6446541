package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:        80,
		ScreenH:        30,
		TickRate:       10,
		Seed:           3,
		Rows:           5,
		Cols:           8,
		MoveInterval:   100 * time.Millisecond,
		CountdownSteps: 0,
		CountdownStep:  100 * time.Millisecond,
		DeathFrame:     100 * time.Millisecond,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(snake.NewSmall(), store, nil, testConfig(), "tester")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelRejectsInvalidBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Cols = 2
	if _, err := NewModel(snake.New(), nil, nil, cfg, ""); err == nil {
		t.Fatal("Expected error for a 2-column board")
	}
}

func TestModelStartsAndMoves(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg{ID: m.tickID})
	if cmd == nil {
		t.Fatal("Expected the next tick to be scheduled")
	}

	// Start frame, then one move per frame.
	m, _ = update(t, m, TickMsg{ID: m.tickID})
	if m.State().Ticks != 1 {
		t.Errorf("Expected 1 move, got %d", m.State().Ticks)
	}
	if m.State().Rows != 5 || m.State().Cols != 8 {
		t.Errorf("Expected a 5x8 board, got %dx%d", m.State().Rows, m.State().Cols)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, TickMsg{ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("Stale tick should not reschedule")
	}
	if m.inputFrame.Empty() {
		t.Error("Stale tick should not consume input")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("Expected quit")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	m := newTestModel(t, nil)
	m.quitOnBack = true

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{ID: m.tickID})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() || cmd != nil {
		t.Fatal("Back should be ignored while playing")
	}
	m.inputFrame.Clear()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{ID: m.tickID})
	if !m.State().Paused {
		t.Fatal("Expected paused")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() || cmd == nil {
		t.Error("Back while paused should leave the game")
	}
}

func TestModelPlaysToGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	game := m.game.(*snake.Game)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 100 && !m.State().GameOver; i++ {
		m, _ = update(t, m, TickMsg{ID: m.tickID})
	}
	if !m.State().GameOver {
		t.Fatal("Snake heading into the wall should die")
	}
	if !m.scoreSaved {
		t.Error("Round end should be recorded once")
	}

	for i := 0; i < 100 && game.Phase() != snake.PhaseGameOver; i++ {
		m, _ = update(t, m, TickMsg{ID: m.tickID})
	}
	if game.Phase() != snake.PhaseGameOver {
		t.Fatalf("Expected death animation to finish, got %s", game.Phase())
	}

	// Restart clears the saved flag for the next round.
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{ID: m.tickID})
	if m.State().GameOver || m.scoreSaved {
		t.Errorf("Expected a fresh round after restart: %+v saved=%v", m.State(), m.scoreSaved)
	}
}

func TestModelSaveScore(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m.gameState = core.GameState{Score: 4, Length: 7, Ticks: 40, Rows: 5, Cols: 8, GameOver: true}
	m.saveScore()

	// A 5x8 board is not the small preset, so it ranks separately.
	if best, _ := store.HighScore("snake_small"); best != 0 {
		t.Errorf("Custom board score leaked into snake_small: best %d", best)
	}
	scores, err := store.TopScores(snake.CustomScoreID, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 4 || got.Length != 7 || got.Ticks != 40 || got.Player != "tester" {
		t.Errorf("Unexpected saved record: %+v", got)
	}

	// Zero scores are not recorded.
	m.gameState.Score = 0
	m.saveScore()
	scores, _ = store.TopScores(snake.CustomScoreID, 10)
	if len(scores) != 1 {
		t.Errorf("Zero score should not be saved, got %d records", len(scores))
	}
}

func TestModelSaveScorePresetBoard(t *testing.T) {
	store := openStore(t)
	cfg := testConfig()
	cfg.Rows, cfg.Cols = 0, 0
	m, err := NewModel(snake.NewSmall(), store, nil, cfg, "tester")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	m.gameState = core.GameState{Score: 2, Length: 5, Rows: 10, Cols: 10, GameOver: true}
	m.saveScore()

	if best, err := store.HighScore("snake_small"); err != nil || best != 2 {
		t.Errorf("HighScore(snake_small) = %d, %v; want 2", best, err)
	}
	if best, _ := store.HighScore(snake.CustomScoreID); best != 0 {
		t.Errorf("Preset board score stored as custom: best %d", best)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{ID: m.tickID})
	m, _ = update(t, m, TickMsg{ID: m.tickID})
	before := m.State()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("Expected too small message:\n%s", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen is %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if m.game.State().Ticks != before.Ticks {
		t.Errorf("Resize restarted the round: ticks %d -> %d", before.Ticks, m.game.State().Ticks)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	for _, want := range []string{"SCORE: 0", "Press any key to start", "pause"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, nil, testConfig(), "tester")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewGame || s.gameModel == nil {
		t.Fatalf("Expected game view after selecting a board, got %v", s.view)
	}
	if id := s.gameModel.game.ID(); id != "snake" {
		t.Errorf("Expected first registered board, got %q", id)
	}

	// Start, pause, then back returns to the menu without quitting.
	for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, nil, runeKey('p'), nil} {
		if msg == nil {
			msg = TickMsg{ID: s.gameModel.tickID}
		}
		next, _ = s.Update(msg)
		s = next.(SessionModel)
	}
	if !s.gameModel.State().Paused {
		t.Fatal("Expected paused game")
	}
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	if s.view != viewMenu || s.quitting {
		t.Fatalf("Expected menu after back, got view=%v quitting=%v", s.view, s.quitting)
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreRecord{Preset: "snake", Score: 9, Player: "bob"}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	s := NewSessionModel(store, nil, testConfig(), "tester")
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScores {
		t.Fatalf("Expected scoreboard view, got %v", s.view)
	}
	if !strings.Contains(s.View(), "bob") {
		t.Errorf("Scoreboard should list saved scores:\n%s", s.View())
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	if s.view != viewMenu || s.quitting || cmd != nil {
		t.Errorf("Expected back to menu, got view=%v quitting=%v", s.view, s.quitting)
	}
	if !strings.Contains(s.View(), "best 9") {
		t.Errorf("Menu should show best score:\n%s", s.View())
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSessionModel(nil, nil, testConfig(), "tester")
	next, cmd := s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("Expected session to quit")
	}
}

func TestSessionSeedReproducesRounds(t *testing.T) {
	play := func() []snake.Snapshot {
		s := NewSessionModel(nil, nil, testConfig(), "tester")
		var rounds []snake.Snapshot
		for i := 0; i < 2; i++ {
			next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
			s = next.(SessionModel)
			if s.view != viewGame {
				t.Fatalf("Expected game view, got %v", s.view)
			}
			rounds = append(rounds, s.gameModel.game.(*snake.Game).Snapshot())

			// Start, pause, back to the menu.
			for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, nil, runeKey('p'), nil, tea.KeyMsg{Type: tea.KeyEscape}} {
				if msg == nil {
					msg = TickMsg{ID: s.gameModel.tickID}
				}
				next, _ = s.Update(msg)
				s = next.(SessionModel)
			}
			if s.view != viewMenu {
				t.Fatalf("Expected menu after back, got %v", s.view)
			}
		}
		return rounds
	}

	first, second := play(), play()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("round %d differs with the same seed:\n%+v\n%+v", i, first[i], second[i])
		}
	}
}

func TestSessionRoundSeed(t *testing.T) {
	cfg := testConfig()
	a := NewSessionModel(nil, nil, cfg, "a")
	b := NewSessionModel(nil, nil, cfg, "b")
	for i := 0; i < 3; i++ {
		if sa, sb := a.roundSeed(), b.roundSeed(); sa != sb || sa == 0 {
			t.Fatalf("round %d: seeds %d and %d, want equal and non-zero", i, sa, sb)
		}
	}

	cfg.Seed = 0
	if NewSessionModel(nil, nil, cfg, "c").seeds != nil {
		t.Error("Expected time-based seeds without a configured seed")
	}
}
