package colorrush

import (
	"fmt"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/config"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/games/colorrush/engine"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeTimed    Mode = "timed"
	ModeEndless  Mode = "endless"
)

const (
	boardSize = engine.DefaultBoardSize

	// Duration of the level-cleared banner and match flashes.
	levelClearDuration = 120
	flashDuration      = 30
	toastDuration      = 90

	// Endless mode ramps from few colors to the full palette as the
	// intensity curve rises.
	endlessMinKinds = 5
)

// Game adapts an engine session to the platform game interface.
// It owns the cursor, the tile selection and the per-mode flow
// (campaign level progression, the timed countdown); all board
// mutation goes through the session.
type Game struct {
	mode Mode
	seed int64
	tick uint64

	cfg        config.ColorRushConfig
	difficulty *config.DifficultyManager

	session *engine.Session
	size    int // Board side length of the active session

	levelIndex   int
	bankedScore  int // Score from completed campaign levels
	timeLeft     int // Remaining ticks, timed mode only
	tickRate     int
	endlessKinds int // Active color count in endless mode

	cursor       core.Coord
	selected     core.Coord
	hasSelection bool

	// Presentation state fed by session events.
	flashCells []core.Coord
	flashTicks int
	toast      string
	toastTicks int
	lastDelta  int

	screenW int
	screenH int

	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	moveProcessed   bool

	// Finished campaign levels not yet collected by the platform.
	pendingOutcomes []LevelOutcome
}

// LevelOutcome records the result of a finished campaign level.
type LevelOutcome struct {
	LevelID   int
	Score     int
	MovesUsed int
	Cleared   bool
}

// Package-level variables for config
var (
	selectedStartLevel int
	configPath         string
	difficultyPreset   config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewTimed creates a new timed mode game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("colorrush", func() registry.Game {
		return New()
	})
	registry.Register("colorrush_timed", func() registry.Game {
		return NewTimed()
	})
	registry.Register("colorrush_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeTimed:
		return "colorrush_timed"
	case ModeEndless:
		return "colorrush_endless"
	default:
		return "colorrush"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeTimed:
		return "Color Rush (Timed)"
	case ModeEndless:
		return "Color Rush (Endless)"
	default:
		return "Color Rush"
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.bankedScore = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.moveProcessed = false
	g.hasSelection = false
	g.flashCells = nil
	g.flashTicks = 0
	g.toast = ""
	g.toastTicks = 0
	g.lastDelta = 0
	g.timeLeft = 0
	g.endlessKinds = 0
	g.pendingOutcomes = nil

	loaded, err := config.LoadColorRush(configPath)
	if err != nil {
		loaded = config.DefaultColorRushConfig()
	}
	config.ApplyColorRushPreset(&loaded, difficultyPreset)
	g.cfg = loaded
	g.difficulty = config.NewDifficultyManager(loaded.Difficulty)

	if g.mode == ModeTimed {
		g.timeLeft = g.cfg.Timed.DurationSeconds * g.tickRate
	}

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.startSession()
	g.cursor = core.C(g.size/2, g.size/2)
	g.checkScreenSize()
}

// startSession creates and starts the session for the current level
// and mode. Each campaign level gets its own seed so restarting a later
// level does not replay an earlier board.
func (g *Game) startSession() {
	p := engine.Params{
		Size:  g.cfg.Board.Size,
		Kinds: g.cfg.Board.Kinds,
		Seed:  g.seed + int64(g.levelIndex),
	}
	if p.Size <= 0 {
		p.Size = boardSize
	}

	if g.mode == ModeCampaign {
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		p.Kinds = level.Kinds
		p.Target = level.Target
		p.MoveBudget = level.MoveBudget
	}

	if g.mode == ModeEndless {
		if g.endlessKinds == 0 {
			maxKinds := g.cfg.Board.Kinds
			if maxKinds < endlessMinKinds {
				maxKinds = endlessMinKinds
			}
			g.endlessKinds = g.difficulty.Kinds(endlessMinKinds, maxKinds, g.bankedScore, int(g.tick))
		}
		p.Kinds = g.endlessKinds
	}

	g.session = engine.NewSession(p, g)
	g.size = g.session.Board().Size
	g.cursor = g.clampToBoard(g.cursor)
	g.session.Start()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (2 columns per tile plus borders) + HUD
	minW := g.size*2 + 4
	minH := g.size + 6
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.flashTicks > 0 {
		g.flashTicks--
	}
	if g.toastTicks > 0 {
		g.toastTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDuration {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	// Endless intensity ramp: when the curve reaches the next color
	// count, bank the score and reshuffle with one more color in play.
	if g.mode == ModeEndless && g.difficulty.IsEnabled() {
		maxKinds := g.cfg.Board.Kinds
		if maxKinds < endlessMinKinds {
			maxKinds = endlessMinKinds
		}
		kinds := g.difficulty.Kinds(endlessMinKinds, maxKinds, g.Score(), int(g.tick))
		if kinds > g.endlessKinds {
			g.endlessKinds = kinds
			g.bankedScore += g.session.Score()
			g.startSession()
			g.showToast("New color!")
		}
	}

	// Timed countdown runs only while actively playing.
	if g.mode == ModeTimed && g.timeLeft > 0 {
		g.timeLeft--
		if g.timeLeft == 0 {
			g.session.ExpireTime()
			g.gameOver = true
			return core.StepResult{State: g.State()}
		}
	}

	g.handleInput(in)
	g.settleSessionStatus()

	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor and processes tile selection.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor = g.clampToBoard(g.cursor.Add(0, -1))
	case in.Has(core.ActionDown):
		g.cursor = g.clampToBoard(g.cursor.Add(0, 1))
	case in.Has(core.ActionLeft):
		g.cursor = g.clampToBoard(g.cursor.Add(-1, 0))
	case in.Has(core.ActionRight):
		g.cursor = g.clampToBoard(g.cursor.Add(1, 0))
	}

	if (in.Has(core.ActionSelect) || in.Has(core.ActionConfirm)) && !g.moveProcessed {
		g.handleSelect()
		g.moveProcessed = true
	}

	if in.Has(core.ActionBack) {
		g.hasSelection = false
	}
}

// handleSelect implements the two-step swap: the first select anchors a
// tile, the second commits an adjacent swap or re-anchors. Selecting the
// anchored tile again activates it if it is a special tile.
func (g *Game) handleSelect() {
	if !g.hasSelection {
		g.selected = g.cursor
		g.hasSelection = true
		return
	}

	switch {
	case g.cursor.Equal(g.selected):
		if cleared := g.session.Activate(g.cursor); cleared != nil {
			g.flashCells = cleared
			g.flashTicks = flashDuration
		}
		g.hasSelection = false

	case g.cursor.Manhattan(g.selected) == 1:
		res := g.session.TryMove(g.selected, g.cursor)
		if !res.Accepted {
			g.showToast("No match")
		}
		g.hasSelection = false

	default:
		// Too far for a swap: re-anchor on the cursor.
		g.selected = g.cursor
	}
}

// settleSessionStatus folds terminal session states into the mode flow.
func (g *Game) settleSessionStatus() {
	switch g.session.Status() {
	case engine.StatusCompleted:
		if g.mode == ModeCampaign && !g.levelCleared {
			g.levelCleared = true
			g.levelClearTicks = 0
			g.recordLevelOutcome(true)
		}
	case engine.StatusFailed:
		if !g.gameOver {
			g.recordLevelOutcome(false)
		}
		g.gameOver = true
	}
}

// recordLevelOutcome queues a finished campaign level for persistence.
func (g *Game) recordLevelOutcome(cleared bool) {
	if g.mode != ModeCampaign {
		return
	}
	level := GetLevel(g.levelIndex)
	if level == nil {
		return
	}
	g.pendingOutcomes = append(g.pendingOutcomes, LevelOutcome{
		LevelID:   level.ID,
		Score:     g.session.Score(),
		MovesUsed: level.MoveBudget - g.session.MovesLeft(),
		Cleared:   cleared,
	})
}

// ConsumeLevelOutcome pops the oldest uncollected campaign level result.
// The platform drains these after each tick to persist campaign progress.
func (g *Game) ConsumeLevelOutcome() (LevelOutcome, bool) {
	if len(g.pendingOutcomes) == 0 {
		return LevelOutcome{}, false
	}
	out := g.pendingOutcomes[0]
	g.pendingOutcomes = g.pendingOutcomes[1:]
	return out, true
}

// advanceLevel moves to the next campaign level, banking the level score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.bankedScore += g.session.Score()
	g.hasSelection = false

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.startSession()
}

// Score returns the total score including banked campaign levels.
func (g *Game) Score() int {
	return g.bankedScore + g.session.Score()
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastTicks = toastDuration
}

func (g *Game) clampToBoard(c core.Coord) core.Coord {
	return core.C(core.Clamp(c.X, 0, g.size-1), core.Clamp(c.Y, 0, g.size-1))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// OnBoardChanged implements engine.Listener.
func (g *Game) OnBoardChanged(*engine.Board) {}

// OnMatch implements engine.Listener. Deep cascades earn a toast.
func (g *Game) OnMatch(groupsByDepth [][]engine.Group) {
	var cells []core.Coord
	for _, grp := range groupsByDepth[0] {
		cells = append(cells, grp.Cells...)
	}
	g.flashCells = cells
	g.flashTicks = flashDuration

	if depth := len(groupsByDepth) - 1; depth >= 1 {
		g.showToast(fmt.Sprintf("Cascade x%.1f!", engine.Multiplier(depth)))
	}
}

// OnScoreChanged implements engine.Listener.
func (g *Game) OnScoreChanged(delta, total int) {
	g.lastDelta = delta
}

// OnPowerUpCreated implements engine.Listener.
func (g *Game) OnPowerUpCreated(at core.Coord, effect engine.Effect) {
	g.showToast(effect.String() + "!")
}

// OnSessionEnded implements engine.Listener. Terminal states are folded
// into the mode flow on the next tick.
func (g *Game) OnSessionEnded(engine.Status) {}
