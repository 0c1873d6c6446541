package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board presets",
	Long:  `Shows every registered board with its preset name and size.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	presets := make(map[string]config.BoardPreset)
	for _, p := range config.Presets() {
		if id, ok := snake.GameForPreset(p); ok {
			presets[id] = p
		}
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-8s  %-7s  %s\n", maxIDLen, "ID", "Preset", "Size", "Title")
	fmt.Printf("  %-*s  %-8s  %-7s  %s\n", maxIDLen, "--", "------", "----", "-----")

	for _, g := range games {
		preset, size := "-", "-"
		if p, ok := presets[g.ID]; ok {
			preset = string(p)
			if b, err := config.PresetBoard(p); err == nil {
				size = fmt.Sprintf("%dx%d", b.Rows, b.Cols)
			}
		}
		fmt.Printf("  %-*s  %-8s  %-7s  %s\n", maxIDLen, g.ID, preset, size, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <preset>' to play a board.")
}
