package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/games/colorrush"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/platform/tui"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/registry"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Color Rush",
	Long: `Start playing Color Rush. With no argument, shows the mode selector.

Controls:
  Arrows/WASD - Move cursor
  Space/Enter - Select tile / confirm swap
  B/Esc       - Cancel selection
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 tile colors, longer timer
  normal - Default colors and timer
  hard   - 7 tile colors, shorter timer
  fixed  - No endless progression, stays at config's initial level

Examples:
  colorrush play
  colorrush play colorrush
  colorrush play colorrush_timed --difficulty hard
  colorrush play colorrush --level 5
  colorrush play colorrush --config ./my-colorrush.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-10)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	colorrush.SetConfigPath(flagConfig)
	colorrush.SetDifficultyPreset(flagDifficulty)

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'colorrush list' to see available modes.")
			os.Exit(1)
		}
		if flagLevel > 0 {
			if flagLevel > colorrush.LevelCount() {
				fmt.Fprintf(os.Stderr, "Error: level %d does not exist (1-%d)\n", flagLevel, colorrush.LevelCount())
				os.Exit(1)
			}
			colorrush.SetStartLevel(flagLevel)
		}
	} else {
		// No mode given, show the mode/level selector
		selection, updatedCfg, selErr := tui.RunColorRushModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		switch selection.Mode {
		case tui.ColorRushModeTimed:
			gameID = "colorrush_timed"
		case tui.ColorRushModeEndless:
			gameID = "colorrush_endless"
		default:
			gameID = "colorrush"
		}
		if selection.Level > 0 {
			colorrush.SetStartLevel(selection.Level)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
