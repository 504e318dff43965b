// colorrush is a terminal match-3 puzzle game.
//
// Usage:
//
//	colorrush list              - List available game modes
//	colorrush play [mode]       - Play a mode (shows mode selector by default)
//	colorrush menu              - Start the interactive menu
//	colorrush serve             - Start SSH server for remote play
//	colorrush scores <mode>     - Show high scores for a mode
//	colorrush levels            - Show campaign levels and progress
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.colorrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/RepousiosJim/Color-Rush-sub001/internal/games/colorrush"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorrush",
	Short: "Color Rush - Match-3 puzzle in your terminal",
	Long: `Color Rush is a terminal match-3 puzzle game. Swap adjacent tiles
to line up three or more of the same color, chain cascades for
multiplied scores, and create power-ups with bigger matches.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - View campaign levels and progress

Examples:
  colorrush play
  colorrush play colorrush_timed
  colorrush menu
  colorrush serve --ssh :2222
  colorrush scores colorrush`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorrush/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
