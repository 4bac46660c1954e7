package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/board"
)

const (
	cellWidth = 2 // Glyph plus spacer
	boardTop  = 2 // Title line and a blank line above the board
)

var (
	winLines  = []string{"CONGRATULATIONS!", "YOU WIN!"}
	loseLines = []string{"Game Over!", "You hit a mine!"}
	endHint   = "R: new game  Q: quit"
)

// minScreenSize returns the smallest screen the layout fits in.
func (g *Game) minScreenSize() (w, h int) {
	status := statusLine(-g.mines, -g.mines) // widest plausible counters
	w = core.Max(g.cols*cellWidth, len(status))
	w = core.Max(w, len(winLines[0])+4)
	// board, blank, status, blank, boxed message
	statusY := boardTop + g.rows + 1
	h = statusY + 2 + len(winLines) + 1 + 2
	return w, h
}

func statusLine(mines, flags int) string {
	return fmt.Sprintf("Mines remaining: %d | Flags remaining: %d", mines, flags)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	snap := g.board.Snapshot()
	boardW := snap.Cols*cellWidth - 1
	boardX := (g.screenW - boardW) / 2

	dst.DrawTextCentered(0, "MINESWEEPER")
	g.renderBoard(dst, snap, boardX, boardTop)

	statusY := boardTop + snap.Rows + 1
	dst.DrawTextCentered(statusY, statusLine(snap.MinesRemaining, snap.FlagsRemaining))

	switch snap.State {
	case board.StateWon:
		g.drawMessage(dst, statusY+2, g.theme.WinColor, append(winLines, endHint)...)
	case board.StateLost:
		g.drawMessage(dst, statusY+2, g.theme.LoseColor, append(loseLines, endHint)...)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws every cell, highlighting the cursor.
func (g *Game) renderBoard(dst *core.Screen, snap board.Snapshot, x0, y0 int) {
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			cell := g.cellGlyph(snap.At(row, col))
			cell.Reverse = snap.Cursor == board.P(row, col)
			dst.SetCell(x0+col*cellWidth, y0+row, cell)
		}
	}
}

// cellGlyph maps a cell's display state to a styled screen cell.
func (g *Game) cellGlyph(c board.CellSnapshot) core.Cell {
	switch c.View {
	case board.ViewFlagged:
		return core.Cell{Rune: g.theme.Flag, Color: g.theme.FlagColor}
	case board.ViewMine:
		return core.Cell{Rune: g.theme.Mine, Color: g.theme.MineColor}
	case board.ViewNumber:
		n := core.Max(0, core.Min(c.Number, len(g.theme.Numbers)-1))
		return core.Cell{Rune: rune('0' + n), Color: g.theme.Numbers[n]}
	default:
		return core.Cell{Rune: g.theme.Hidden}
	}
}

// drawMessage draws a boxed, centered block of lines starting at y.
func (g *Game) drawMessage(dst *core.Screen, y int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxX := (g.screenW - boxW) / 2
	dst.DrawBox(core.NewRect(boxX, y, boxW, len(lines)+2), c)

	for i, line := range lines {
		x := boxX + (boxW-len(line))/2
		dst.DrawTextColor(x, y+1+i, line, c)
	}
}
