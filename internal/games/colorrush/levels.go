// Package colorrush implements the Color Rush match-3 puzzle with
// campaign, timed and endless modes.
package colorrush

// Level defines a campaign level with a score target and a move budget.
type Level struct {
	ID         int
	Name       string
	Target     int // Score to reach
	MoveBudget int // Moves available to reach it
	Kinds      int // Number of tile colors in play
}

// Levels defines the 10 campaign levels with increasing difficulty.
// Early levels use fewer colors so matches come easily; later levels
// add colors and tighten the move budget.
var Levels = []Level{
	{ID: 1, Name: "First Splash", Target: 500, MoveBudget: 20, Kinds: 5},
	{ID: 2, Name: "Warming Up", Target: 1000, MoveBudget: 20, Kinds: 5},
	{ID: 3, Name: "Triple Trouble", Target: 1500, MoveBudget: 22, Kinds: 6},
	{ID: 4, Name: "Chain Reaction", Target: 2500, MoveBudget: 24, Kinds: 6},
	{ID: 5, Name: "Color Storm", Target: 3500, MoveBudget: 25, Kinds: 6},
	{ID: 6, Name: "Deep Cascade", Target: 5000, MoveBudget: 26, Kinds: 7},
	{ID: 7, Name: "Power Surge", Target: 7000, MoveBudget: 28, Kinds: 7},
	{ID: 8, Name: "Rush Hour", Target: 9000, MoveBudget: 28, Kinds: 7},
	{ID: 9, Name: "Master Mixer", Target: 12000, MoveBudget: 30, Kinds: 7},
	{ID: 10, Name: "Grand Finale", Target: 16000, MoveBudget: 30, Kinds: 7},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
