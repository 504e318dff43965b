package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/games/colorrush"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show campaign levels and progress",
	Long: `Display all campaign levels with their targets, move budgets,
and your best recorded result for each.

Examples:
  colorrush levels
  colorrush levels --db ./scores.db`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	// Best results are optional, the level list still shows without a database
	var bests map[int]storage.LevelResult
	highest := 0

	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
		if b, bErr := store.BestLevelResults(); bErr == nil {
			bests = b
		}
		if h, hErr := store.HighestClearedLevel(); hErr == nil {
			highest = h
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	}

	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-8s  %-6s  %-10s  %s\n", "Lvl", "Name", "Target", "Moves", "Best", "Status")
	fmt.Printf("  %-3s  %-16s  %-8s  %-6s  %-10s  %s\n", "---", "----", "------", "-----", "----", "------")

	for _, level := range colorrush.Levels {
		best := "-"
		status := ""
		if r, ok := bests[level.ID]; ok {
			best = fmt.Sprintf("%d", r.Score)
			if r.Cleared {
				status = "cleared"
			}
		}
		fmt.Printf("  %-3d  %-16s  %-8d  %-6d  %-10s  %s\n",
			level.ID, level.Name, level.Target, level.MoveBudget, best, status)
	}

	fmt.Println()
	if highest > 0 {
		fmt.Printf("Progress: cleared through level %d of %d\n", highest, colorrush.LevelCount())
	} else {
		fmt.Println("No levels cleared yet. Run 'colorrush play' to start the campaign.")
	}
}
