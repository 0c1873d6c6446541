// snake is a terminal snake game with a deterministic simulation engine.
//
// Usage:
//
//	snake                    - Pick a board from the menu
//	snake list               - List board presets
//	snake play [preset]      - Play a board directly
//	snake serve              - Start SSH server for remote play
//	snake scores [preset]    - Show high scores for a board
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/configs/snake.yaml)
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game. Steer with the arrows, WASD or hjkl,
eat food to grow, and avoid the walls and your own tail.

Running snake without a command opens the board picker.

Available commands:
  list     - Show board presets
  play     - Play a board directly
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake
  snake play small
  snake play --rows 20 --cols 40
  snake serve --ssh :2222
  snake scores large`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to snake config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}

// newFileLogger logs to ~/.snake/snake.log so output does not tear the alt screen.
// The returned close function is never nil.
func newFileLogger() (*log.Logger, func(), error) {
	path, err := config.ExpandHome(filepath.Join("~", config.AppDir, "snake.log"))
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}

// loadConfig reads the config file and applies the global flags.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// runtimeConfig turns a validated config into the per-round settings.
// Board size is only forced when overrideBoard is set; otherwise each game uses its preset.
func runtimeConfig(cfg config.SnakeConfig, overrideBoard bool) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = cfg.Seed
	rc.MoveInterval = cfg.Timing.TickInterval()
	rc.CountdownSteps = cfg.Timing.CountdownSteps
	rc.CountdownStep = cfg.Timing.CountdownStep()
	rc.DeathFrame = cfg.Timing.DeathFrame()
	if overrideBoard {
		rc.Rows = cfg.Board.Rows
		rc.Cols = cfg.Board.Cols
	}
	return rc
}

// terminalSize returns the current terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// resolveGame accepts a game ID or a preset name and returns the game ID.
func resolveGame(arg string) (string, error) {
	if arg == "" {
		return "snake", nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	if id, ok := snake.GameForPreset(config.BoardPreset(arg)); ok {
		return id, nil
	}
	return "", fmt.Errorf("unknown board %q, run 'snake list' to see available boards", arg)
}

// playerName is the local user name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// openStore opens the score database. Failure is logged and play continues without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
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

	rc := runtimeConfig(cfg, false)
	rc.ScreenW, rc.ScreenH = terminalSize()

	return tui.RunSession(store, logger, rc, playerName())
}
