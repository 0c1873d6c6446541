package config

import (
	"fmt"
	"sort"
)

// BoardPreset is a named board size.
type BoardPreset string

const (
	PresetSmall   BoardPreset = "small"
	PresetClassic BoardPreset = "classic"
	PresetLarge   BoardPreset = "large"
)

var presetBoards = map[BoardPreset]BoardConfig{
	PresetSmall:   {Rows: 10, Cols: 10},
	PresetClassic: {Rows: 15, Cols: 15},
	PresetLarge:   {Rows: 25, Cols: 25},
}

// Presets returns all preset names, sorted.
func Presets() []BoardPreset {
	names := make([]BoardPreset, 0, len(presetBoards))
	for p := range presetBoards {
		names = append(names, p)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// PresetBoard returns the board size of a preset.
func PresetBoard(preset BoardPreset) (BoardConfig, error) {
	b, ok := presetBoards[preset]
	if !ok {
		return BoardConfig{}, fmt.Errorf("config: unknown board preset %q", preset)
	}
	return b, nil
}

// ApplyPreset overwrites the board size with the preset's.
func ApplyPreset(cfg *SnakeConfig, preset BoardPreset) error {
	b, err := PresetBoard(preset)
	if err != nil {
		return err
	}
	cfg.Board = b
	return nil
}
