package tetra

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
)

const (
	cellW      = 2 // Terminal columns per board cell
	hudHeight  = 2
	panelGap   = 2
	panelWidth = 16
)

var clearLabels = []string{"", "Single", "Double", "Triple", "Tetra"}

// clearLabel names a line clear of n rows.
func clearLabel(n int) string {
	if n < len(clearLabels) {
		return clearLabels[n]
	}
	return fmt.Sprintf("%d lines!", n)
}

func (g *Game) boardScreenW() int { return g.cfg.Board.Width*cellW + 2 }
func (g *Game) boardScreenH() int { return g.cfg.Board.Height + 2 }

func (g *Game) requiredWidth() int {
	return g.boardScreenW() + panelGap + panelWidth
}

func (g *Game) requiredHeight() int {
	return hudHeight + g.boardScreenH()
}

// boardOrigin returns the top-left corner of the board frame on screen.
func (g *Game) boardOrigin(dst *platformcore.Screen) (int, int) {
	x := (dst.Width() - g.requiredWidth()) / 2
	return platformcore.Clamp(x, 0, dst.Width()), hudHeight
}

// toScreen maps a board coordinate to the screen column/row of its left half.
func (g *Game) toScreen(ox, oy int, c core.Coord) (int, int) {
	b := g.board.Bounds()
	sx := ox + 1 + (c.X-b.XMin)*cellW
	sy := oy + 1 + (b.YMax - 1 - c.Y)
	return sx, sy
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Cannot start game", g.loadErr.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	ox, oy := g.boardOrigin(dst)
	g.renderBoard(dst, ox, oy)
	g.renderPanel(dst, ox+g.boardScreenW()+panelGap, oy)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s | Score: %d  Lines: %d  Level: %d", g.Title(), st.Score, st.Lines, st.Level)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	dst.DrawBox(platformcore.NewRect(ox, oy, g.boardScreenW(), g.boardScreenH()), platformcore.ColorGray)

	b := g.board.Bounds()
	for y := b.YMin; y < b.YMax; y++ {
		for x := b.XMin; x < b.XMax; x++ {
			c := core.C(x, y)
			sx, sy := g.toScreen(ox, oy, c)
			if color := g.board.At(c); color != core.ColorNone {
				g.drawCell(dst, sx, sy, '█', platformcore.Color(color))
				continue
			}
			dst.SetWithColor(sx, sy, ' ', platformcore.ColorDefault)
			dst.SetWithColor(sx+1, sy, '·', platformcore.ColorDim)
		}
	}

	if g.cfg.Preview.Ghost && !g.gameOver {
		for _, c := range g.engine.Ghost() {
			if g.board.At(c) != core.ColorNone {
				continue
			}
			sx, sy := g.toScreen(ox, oy, c)
			g.drawCell(dst, sx, sy, '░', platformcore.ColorGray)
		}
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, sx, sy int, r rune, c platformcore.Color) {
	for i := range cellW {
		dst.SetWithColor(sx+i, sy, r, c)
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *platformcore.Screen, px, py int) {
	y := py
	if g.cfg.Preview.Next {
		dst.DrawText(px, y, "Next")
		if next := g.engine.Next(); next != nil {
			g.renderPreview(dst, px, y+1, next)
		}
		y += 7
	}

	lines, pieces := g.Stats()
	rows := []struct {
		label string
		value int
	}{
		{"Score", g.score()},
		{"High", max(g.highScore, g.score())},
		{"Lines", lines},
		{"Pieces", pieces},
	}
	for _, r := range rows {
		dst.DrawText(px, y, fmt.Sprintf("%-7s%8d", r.label, r.value))
		y++
	}
	if g.newBest {
		dst.DrawTextColor(px, y, "New best!", platformcore.ColorYellow)
	}
	y++

	if g.flashTicks > 0 && g.lastClear > 0 {
		dst.DrawTextColor(px, y, clearLabel(g.lastClear), platformcore.ColorCyan)
	}
	y += 2

	help := []string{"←/→ move", "↓ soft drop", "space drop", "↑/x z rotate", "p pause  q quit"}
	for _, h := range help {
		if y >= dst.Height() {
			break
		}
		dst.DrawTextColor(px, y, h, platformcore.ColorDim)
		y++
	}
}

// renderPreview draws a shape in its spawn orientation with its top-left
// cell at (px, py).
func (g *Game) renderPreview(dst *platformcore.Screen, px, py int, s *core.Shape) {
	cells := s.Cells()
	minX, maxY := cells[0].Offset.X, cells[0].Offset.Y
	for _, c := range cells[1:] {
		minX = min(minX, c.Offset.X)
		maxY = max(maxY, c.Offset.Y)
	}
	for _, c := range cells {
		sx := px + (c.Offset.X-minX)*cellW
		sy := py + (maxY - c.Offset.Y)
		g.drawCell(dst, sx, sy, '█', platformcore.Color(c.Color))
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := min(maxLen+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH), platformcore.ColorWhite)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
