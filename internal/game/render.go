package game

import (
	"fmt"

	"github.com/breakout-tui/breakout/internal/core"
)

// fieldX, fieldY offset the playfield one cell in from the screen edge so
// the border fits around it.
const (
	fieldX = 1
	fieldY = 1
)

// blockBg maps a block color to the background it is painted with.
func blockBg(c BlockColor) core.Color {
	switch c {
	case BlockRed:
		return core.ColorRed
	case BlockBlue:
		return core.ColorBlue
	case BlockGreen:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderBorder(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderBorder draws the box around the playing field.
func (g *Game) renderBorder(dst *core.Screen) {
	w, h := g.board.W, g.board.H

	for x := fieldX; x < fieldX+w; x++ {
		dst.SetCell(x, 0, core.Cell{Rune: BorderBar, Fg: core.ColorGreen})
		dst.SetCell(x, h+1, core.Cell{Rune: BorderBar, Fg: core.ColorGreen})
	}
	for y := fieldY; y < fieldY+h; y++ {
		dst.SetCell(0, y, core.Cell{Rune: BorderSide, Fg: core.ColorGreen})
		dst.SetCell(w+1, y, core.Cell{Rune: BorderSideR, Fg: core.ColorGreen})
	}
	dst.SetCell(0, h+1, core.Cell{Rune: BorderSide, Fg: core.ColorGreen})
	dst.SetCell(w+1, h+1, core.Cell{Rune: BorderSideR, Fg: core.ColorGreen})
}

// renderBoard projects every board tile into the screen buffer. Blocks are
// painted as background color with alternating bracket glyphs so the player
// can see that they are two cells wide.
func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			t := g.board.At(x, y)
			sx, sy := fieldX+x, fieldY+y

			switch t.Kind {
			case TileBall:
				dst.Set(sx, sy, BallChar)
			case TilePaddle:
				dst.SetCell(sx, sy, core.Cell{Rune: ' ', Bg: core.ColorMagenta})
			case TileBlock:
				glyph := ')'
				if x%2 == 1 {
					glyph = '('
				}
				dst.SetCell(sx, sy, core.Cell{Rune: glyph, Fg: core.ColorBlack, Bg: blockBg(t.Color)})
			}
		}
	}
}

// renderFooter draws the title and the lives/level/score counters on the
// bottom border row.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.board.H + 1
	x := footerX

	dst.DrawStyledText(x, y, footerTitle, core.ColorCyan, core.ColorDefault)
	x += len(footerTitle) + footerGap

	dst.DrawStyledText(x, y, footerLives, core.ColorBrightMagenta, core.ColorDefault)
	dst.DrawText(x+len(footerLives), y, fmt.Sprintf("%02d", g.lives))
	x += len(footerLives) + footerGap

	dst.DrawStyledText(x, y, footerLevel, core.ColorYellow, core.ColorDefault)
	dst.DrawText(x+len(footerLevel), y, fmt.Sprintf("%02d", g.level))
	x += len(footerLevel) + footerGap

	dst.DrawStyledText(x, y, footerScore, core.ColorBrightCyan, core.ColorDefault)
	dst.DrawText(x+len(footerScore), y, fmt.Sprintf("%08d", g.score))
}

// renderOverlay draws the modal messages for non-playing states.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateLevelIntro:
		var lines []string
		if g.firstIntro {
			lines = append(lines,
				"ASCII Breakout",
				"Press J and K to move the paddle",
				"")
		}
		lines = append(lines,
			fmt.Sprintf("Level: %02d", g.level),
			fmt.Sprintf("Lives remaining: %02d", g.lives),
			"Press SPACE to continue")
		g.drawCenteredLines(dst, lines)

	case StateLevelClear:
		g.drawCenteredLines(dst, []string{
			fmt.Sprintf("Level %d complete!", g.level),
			"Press SPACE to continue",
		})

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredLines centers a block of text lines on the playfield.
func (g *Game) drawCenteredLines(dst *core.Screen, lines []string) {
	startY := fieldY + g.board.H/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCentered(startY+i, line)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
