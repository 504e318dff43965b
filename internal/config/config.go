// Package config provides YAML-based game configuration loading and
// difficulty management for the Color Rush platform.
package config

// ColorRushConfig contains all tunable configuration for Color Rush.
// Campaign levels carry their own targets and budgets; this config
// governs the board shape, the timed mode clock and the endless mode
// intensity curve.
type ColorRushConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timed      TimedConfig      `yaml:"timed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board shape for timed and endless modes.
type BoardConfig struct {
	Size  int `yaml:"size"`  // Board side length (min 4)
	Kinds int `yaml:"kinds"` // Number of tile colors in play (3-7)
}

// TimedConfig defines the timed mode clock.
type TimedConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
