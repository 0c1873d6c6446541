package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveScores(t *testing.T, store *storage.Store, preset string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		if _, err := store.SaveScore(storage.ScoreRecord{Preset: preset, Score: s, Length: s + 3, Rows: 15, Cols: 15, Player: "ann"}); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
}

func TestResolveScoreBoard(t *testing.T) {
	tests := []struct {
		arg, want string
	}{
		{"", "snake"},
		{"small", "snake_small"},
		{"custom", snake.CustomScoreID},
		{snake.CustomScoreID, snake.CustomScoreID},
	}
	for _, tt := range tests {
		got, title, err := resolveScoreBoard(tt.arg)
		if err != nil {
			t.Fatalf("resolveScoreBoard(%q): %v", tt.arg, err)
		}
		if got != tt.want || title == "" {
			t.Errorf("resolveScoreBoard(%q) = %q, %q; want %q", tt.arg, got, title, tt.want)
		}
	}
	if _, _, err := resolveScoreBoard("huge"); err == nil {
		t.Error("Expected error for unknown board")
	}
}

func TestPrintScoresLimitAndAll(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "snake", 5, 9, 1)

	var buf bytes.Buffer
	if err := printScores(&buf, store, "snake", "Snake", 2); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "9 ") || !strings.Contains(out, "5 ") {
		t.Errorf("Top scores missing:\n%s", out)
	}
	if strings.Contains(out, "  3     1 ") {
		t.Errorf("Limit 2 should hide the third score:\n%s", out)
	}
	if !strings.Contains(out, "Best: 9  Rounds: 3") {
		t.Errorf("Stats line missing:\n%s", out)
	}

	buf.Reset()
	if err := printScores(&buf, store, "snake", "Snake", 0); err != nil {
		t.Fatalf("printScores all: %v", err)
	}
	if !strings.Contains(buf.String(), "  3     1 ") {
		t.Errorf("All scores should list the third score:\n%s", buf.String())
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printScores(&buf, store, snake.CustomScoreID, "Snake (Custom board)", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("Expected empty message:\n%s", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printSummary(&buf, store); err != nil {
		t.Fatalf("printSummary: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("Expected empty message:\n%s", buf.String())
	}

	saveScores(t, store, "snake_small", 4)
	saveScores(t, store, snake.CustomScoreID, 7, 3)

	buf.Reset()
	if err := printSummary(&buf, store); err != nil {
		t.Fatalf("printSummary: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header plus 2 boards, got %d lines:\n%s", len(lines), buf.String())
	}
	// Sorted by preset key.
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), snake.CustomScoreID+" ") ||
		!strings.HasPrefix(strings.TrimSpace(lines[3]), "snake_small ") {
		t.Errorf("Unexpected summary order:\n%s", buf.String())
	}
	if !strings.Contains(lines[2], " 2 ") || !strings.Contains(lines[2], " 7 ") {
		t.Errorf("Custom board stats wrong: %q", lines[2])
	}
}

func TestClearScoresOnlyTouchesBoard(t *testing.T) {
	store := openTestStore(t)
	saveScores(t, store, "snake", 5)
	saveScores(t, store, snake.CustomScoreID, 8)

	if err := store.ClearScores(snake.CustomScoreID); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}
	if best, _ := store.HighScore(snake.CustomScoreID); best != 0 {
		t.Errorf("Custom scores not cleared, best %d", best)
	}
	if best, _ := store.HighScore("snake"); best != 5 {
		t.Errorf("Classic scores touched, best %d", best)
	}
}
