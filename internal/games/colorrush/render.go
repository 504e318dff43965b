package colorrush

import (
	"fmt"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
	"github.com/RepousiosJim/Color-Rush-sub001/internal/games/colorrush/engine"
)

const tileWidth = 2 // Each tile renders as a rune plus a spacer column

// kindColors maps tile kinds to terminal colors.
var kindColors = map[engine.TileKind]core.Color{
	engine.KindRed:    core.ColorRed,
	engine.KindOrange: core.ColorOrange,
	engine.KindYellow: core.ColorYellow,
	engine.KindGreen:  core.ColorGreen,
	engine.KindBlue:   core.ColorBlue,
	engine.KindPurple: core.ColorMagenta,
	engine.KindPink:   core.ColorPink,
}

// effectRunes maps special tile effects to their board glyphs.
// Ordinary tiles render as a filled circle.
var effectRunes = map[engine.Effect]rune{
	engine.EffectNone:       '●',
	engine.EffectLineClear:  '━',
	engine.EffectColorClear: '◆',
	engine.EffectAreaClear:  '✸',
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.size*tileWidth + 3 // Border plus inner padding
	boardH := g.size + 2
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderToast(dst, boardX, boardY+boardH, boardW)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score line and per-mode progress info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.Score())
	if g.lastDelta > 0 {
		scoreStr += fmt.Sprintf(" (+%d)", g.lastDelta)
	}
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	switch g.mode {
	case ModeCampaign:
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d  Moves: %d",
			g.levelIndex+1, LevelCount(), g.session.Target(), g.session.MovesLeft())
	case ModeTimed:
		secs := g.timeLeft / g.tickRate
		infoStr = fmt.Sprintf("Time: %d:%02d", secs/60, secs%60)
	default:
		intensity := g.difficulty.Level(g.Score(), int(g.tick))
		infoStr = fmt.Sprintf("Endless  Intensity: %d%%", int(intensity*100))
	}

	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 2, infoStr)
}

// renderBoard draws the tile grid, the cursor and the selection anchor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	boardW := g.size*tileWidth + 3
	boardH := g.size + 2
	dst.DrawBox(core.Rect{X: boardX, Y: boardY, W: boardW, H: boardH})

	b := g.session.Board()
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := core.C(x, y)
			px := boardX + 2 + x*tileWidth
			py := boardY + 1 + y

			cell := b.Get(c)
			if cell.Filled {
				glyph := effectRunes[cell.Tile.Effect]
				color := kindColors[cell.Tile.Kind]
				if g.flashTicks > 0 && containsCoord(g.flashCells, c) {
					color = core.ColorBrightWhite
				}
				dst.SetCell(px, py, glyph, color)
			}

			// Selection anchor brackets take priority over the cursor.
			switch {
			case g.hasSelection && c.Equal(g.selected):
				dst.SetCell(px-1, py, '[', core.ColorBrightYellow)
				dst.SetCell(px+1, py, ']', core.ColorBrightYellow)
			case c.Equal(g.cursor):
				dst.SetCell(px-1, py, '[', core.ColorWhite)
				dst.SetCell(px+1, py, ']', core.ColorWhite)
			}
		}
	}
}

// renderToast draws the transient message line under the board.
func (g *Game) renderToast(dst *core.Screen, boardX, y, boardW int) {
	if g.toastTicks <= 0 || g.toast == "" {
		return
	}
	x := boardX + (boardW-len(g.toast))/2
	dst.DrawTextColored(x, y, g.toast, core.ColorBrightCyan)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.session.Target())
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: %s", Levels[g.levelIndex+1].Name)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You cleared every level!", "Press R to restart")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Final score: %d", g.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Cursor | Space/Enter: Select & Swap | P: Pause | R: Restart | Q: Quit"
}

func containsCoord(cells []core.Coord, c core.Coord) bool {
	for _, cc := range cells {
		if cc.Equal(c) {
			return true
		}
	}
	return false
}
