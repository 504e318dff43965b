package config

import (
	_ "embed"
)

//go:embed defaults/colorrush.yaml
var defaultColorRushYAML []byte

// DefaultColorRushConfig returns the default Color Rush configuration.
func DefaultColorRushConfig() ColorRushConfig {
	return ColorRushConfig{
		Board: BoardConfig{
			Size:  8,
			Kinds: 7,
		},
		Timed: TimedConfig{
			DurationSeconds: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "colorrush", "colorrush_timed", "colorrush_endless":
		return defaultColorRushYAML
	default:
		return nil
	}
}
