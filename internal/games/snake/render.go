package snake

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// headGlyphs points the head in the direction of travel.
var headGlyphs = map[engine.Direction]rune{
	engine.DirUp:    '^',
	engine.DirRight: '>',
	engine.DirDown:  'v',
	engine.DirLeft:  '<',
}

// boardRect is the bordered playing field, centered below the HUD.
func (g *Game) boardRect() core.Rect {
	w := g.cols*cellWidth + 2
	h := g.rows + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.eng == nil {
		return
	}

	board := g.boardRect()
	dst.DrawBox(board, core.ColorGray)
	g.renderFood(dst, board)
	g.renderSnake(dst, board)

	switch {
	case g.phase == PhaseReady:
		g.renderOverlay(dst, "Press any key to start", "Arrows/WASD to steer")
	case g.phase == PhaseCountdown:
		g.renderOverlay(dst, "Get ready", strconv.Itoa(g.countdown))
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", g.eng.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score := 0
	if g.eng != nil {
		score = g.eng.Score()
	}
	dst.DrawText(1, 0, fmt.Sprintf("SCORE: %d", score), core.ColorBrightWhite)

	info := fmt.Sprintf("%s %dx%d ", g.title, g.rows, g.cols)
	dst.DrawText(dst.Width()-len(info), 0, info, core.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// cellOrigin maps a board position to the screen cell of its glyph.
func cellOrigin(board core.Rect, p engine.Position) (x, y int) {
	return board.X + 1 + p.Col*cellWidth, board.Y + 1 + p.Row
}

func (g *Game) renderFood(dst *core.Screen, board core.Rect) {
	food, ok := g.eng.FoodPosition()
	if !ok {
		return
	}
	x, y := cellOrigin(board, food)
	dst.SetColored(x, y, '*', core.ColorBrightRed)
}

// renderSnake draws the body tail-first so the head ends on top.
// While dying, segments turn dead one by one from the head.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	body := g.eng.SnakePositions()
	if g.phase == PhaseDying || g.phase == PhaseGameOver {
		body = g.deadBody
	}

	for i := len(body) - 1; i >= 0; i-- {
		x, y := cellOrigin(board, body[i])
		dead := g.deadBody != nil && i < g.deadShown
		switch {
		case dead && i == 0:
			dst.SetColored(x, y, 'X', core.ColorRed)
		case dead:
			dst.SetColored(x, y, 'x', core.ColorRed)
		case i == 0:
			dst.SetColored(x, y, headGlyphs[g.eng.CurrentDirection()], core.ColorBrightGreen)
		default:
			dst.SetColored(x, y, 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
