package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Each board cell is drawn two runes wide so the well looks square in a
// terminal font.
const (
	cellRuneW  = 2
	minScreenW = 44
	minScreenH = 23
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW := BoardWidth*cellRuneW + 2 // +2 for borders
	wellH := BoardHeight + 2

	wellX := (g.runtime.ScreenW - wellW - sidePanelW) / 2
	if wellX < 0 {
		wellX = 0
	}
	wellY := (g.runtime.ScreenH - wellH) / 2
	if wellY < 0 {
		wellY = 0
	}

	g.renderWell(dst, wellX, wellY)
	g.renderSidePanel(dst, wellX+wellW+2, wellY)
	g.renderOverlays(dst, wellX+wellW/2, wellY+wellH/2)
}

const sidePanelW = 16

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.runtime.ScreenW - len(msg)) / 2
	y := g.runtime.ScreenH / 2
	dst.DrawText(x, y, msg)

	hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
	hintX := (g.runtime.ScreenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderWell draws the playfield frame, locked cells, the ghost outline and
// the falling piece. Cells above the visible well (row < 0) are skipped.
func (g *Game) renderWell(dst *core.Screen, wellX, wellY int) {
	dst.DrawBox(core.NewRect(wellX, wellY, BoardWidth*cellRuneW+2, BoardHeight+2))

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			c := g.board.At(col, row)
			if c == CellEmpty {
				continue
			}
			g.drawCell(dst, wellX, wellY, col, row, '█', c.Type().Color())
		}
	}

	// Ghost first so the live piece draws over it when they overlap.
	ghost := g.current
	ghost.Row = GhostRow(g.board, g.current)
	if ghost.Row > g.current.Row {
		ghost.EachCell(func(col, row int) {
			if row >= 0 {
				g.drawCell(dst, wellX, wellY, col, row, '░', g.current.Type.Color())
			}
		})
	}

	g.current.EachCell(func(col, row int) {
		if row >= 0 {
			g.drawCell(dst, wellX, wellY, col, row, '█', g.current.Type.Color())
		}
	})
}

// drawCell fills one board cell (cellRuneW runes) inside the well frame.
func (g *Game) drawCell(dst *core.Screen, wellX, wellY, col, row int, r rune, color core.Color) {
	px := wellX + 1 + col*cellRuneW
	py := wellY + 1 + row
	for i := 0; i < cellRuneW; i++ {
		dst.SetColored(px+i, py, r, color)
	}
}

// renderSidePanel draws the next-piece preview and the score block.
func (g *Game) renderSidePanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawText(panelX, panelY, "NEXT")

	previewW := 4*cellRuneW + 2
	dst.DrawBox(core.NewRect(panelX, panelY+1, previewW, 6))

	shape := Shape(g.next, Orient0)
	shapeH := len(shape)
	shapeW := len(shape[0])
	offX := (4 - shapeW) / 2
	offY := (4 - shapeH) / 2
	for y, rowCells := range shape {
		for x, v := range rowCells {
			if v == 0 {
				continue
			}
			px := panelX + 1 + (offX+x)*cellRuneW
			py := panelY + 2 + offY + y
			for i := 0; i < cellRuneW; i++ {
				dst.SetColored(px+i, py, '█', g.next.Color())
			}
		}
	}

	infoY := panelY + 8
	dst.DrawText(panelX, infoY, fmt.Sprintf("Score  %d", g.score))
	dst.DrawText(panelX, infoY+1, fmt.Sprintf("Level  %d", g.level))
	dst.DrawText(panelX, infoY+2, fmt.Sprintf("Lines  %d", g.lines))
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
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

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑/X: Rotate | Z: Rotate CCW | ↓: Soft drop | Space: Hard drop | P: Pause | Q: Quit"
}
