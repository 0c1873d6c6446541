package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagAll         bool
	flagClear       bool
	flagSummary     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores for a board",
	Long: `Display the top scores for the given board (classic by default).
Rounds played on a board size that matches no preset are listed under
'custom'.

Examples:
  snake scores
  snake scores small --limit 20
  snake scores custom --all
  snake scores large --clear
  snake scores --summary
  snake scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded score instead of the top ones")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the board")
	scoresCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show statistics for every board played")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "clear", "summary", "all")
}

// resolveScoreBoard maps a scores argument to the stored preset key and its title.
func resolveScoreBoard(arg string) (preset, title string, err error) {
	if arg == "custom" || arg == snake.CustomScoreID {
		return snake.CustomScoreID, "Snake (Custom board)", nil
	}
	gameID, err := resolveGame(arg)
	if err != nil {
		return "", "", err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return "", "", err
	}
	return gameID, game.Title(), nil
}

func runScores(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	preset, title, err := resolveScoreBoard(arg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagInteractive:
		width, height := terminalSize()
		_, err := tui.RunScoreboard(store, width, height, preset)
		return err
	case flagSummary:
		return printSummary(out, store)
	case flagClear:
		if err := store.ClearScores(preset); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all scores for %s.\n", title)
		return nil
	}

	limit := flagLimit
	if flagAll {
		limit = 0
	}
	return printScores(out, store, preset, title, limit)
}

// printScores writes the board's score table and stats. A limit of 0 lists every score.
func printScores(out io.Writer, store *storage.Store, preset, title string, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(preset, limit)
	} else {
		scores, err = store.AllScores(preset)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-7s  %-12s  %s\n", "Rank", "Score", "Length", "Board", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-7s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		board := fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-7s  %-12s  %s\n",
			i+1, entry.Score, entry.Length, board, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(preset)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Rounds: %d  Average: %.1f  Longest snake: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.MaxLength)
	return nil
}

// printSummary writes one stats line per board that has scores.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	presets := make([]string, 0, len(all))
	for p := range all {
		presets = append(presets, p)
	}
	sort.Strings(presets)

	fmt.Fprintf(out, "  %-13s  %-6s  %-6s  %-7s  %-7s  %s\n", "Board", "Rounds", "Best", "Average", "Longest", "Last played")
	fmt.Fprintf(out, "  %-13s  %-6s  %-6s  %-7s  %-7s  %s\n", "-----", "------", "----", "-------", "-------", "-----------")
	for _, p := range presets {
		st := all[p]
		fmt.Fprintf(out, "  %-13s  %-6d  %-6d  %-7.1f  %-7d  %s\n",
			p, st.GamesCount, st.HighScore, st.AvgScore, st.MaxLength, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
