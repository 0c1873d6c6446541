package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagRows int
	flagCols int
	flagTick int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing on the given board. The preset is a board name
(small, classic, large) or a game ID from 'snake list'. Without one the
classic board from the config file is used.

Controls:
  Arrows/WASD/hjkl - Steer
  Enter/Space      - Start
  P                - Pause
  R                - Restart (after game over)
  Esc              - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play small
  snake play --rows 20 --cols 40 --tick 80
  snake play large --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides preset and config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides preset and config)")
	playCmd.Flags().IntVar(&flagTick, "tick", 0, "Milliseconds between snake moves (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveGame(arg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The classic game plays the configured board; other presets start
	// from their own size. --rows/--cols override either.
	if gameID != "snake" {
		for _, p := range config.Presets() {
			if id, _ := snake.GameForPreset(p); id == gameID {
				if err := config.ApplyPreset(&cfg, p); err != nil {
					return err
				}
			}
		}
	}
	if cmd.Flags().Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Board.Cols = flagCols
	}
	if cmd.Flags().Changed("tick") {
		cfg.Timing.TickMS = flagTick
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig(cfg, true)
	rc.ScreenW, rc.ScreenH = terminalSize()

	logger.Info("starting game", "game", gameID, "rows", rc.Rows, "cols", rc.Cols, "seed", rc.Seed)
	return tui.Run(game, store, logger, rc, playerName())
}
