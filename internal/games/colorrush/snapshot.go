package colorrush

import (
	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/games/colorrush/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // Current level (1-indexed for display)
	Target    int
	Score     int
	MovesLeft int
	TimeLeft  int
	Cursor    core.Coord
	Board     [][]engine.Cell
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	b := g.session.Board()
	board := make([][]engine.Cell, b.Size)
	for y := 0; y < b.Size; y++ {
		board[y] = make([]engine.Cell, b.Size)
		for x := 0; x < b.Size; x++ {
			board[y][x] = b.Get(core.C(x, y))
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.levelIndex + 1,
		Target:    g.session.Target(),
		Score:     g.Score(),
		MovesLeft: g.session.MovesLeft(),
		TimeLeft:  g.timeLeft,
		Cursor:    g.cursor,
		Board:     board,
		State:     state,
	}
}
