package board

// CellView is what the player may see of a cell.
type CellView uint8

const (
	ViewHidden  CellView = iota // Unrevealed, unflagged
	ViewFlagged                 // Unrevealed, flagged
	ViewNumber                  // Revealed safe cell; see CellSnapshot.Number
	ViewMine                    // Revealed mine, or any mine once the game is lost
)

// CellSnapshot is the display state of one cell.
type CellSnapshot struct {
	View   CellView
	Number int // Adjacent mines, only meaningful for ViewNumber
}

// Snapshot is a read-only copy of everything a display needs.
type Snapshot struct {
	Rows           int
	Cols           int
	Cells          [][]CellSnapshot // [row][col]
	Cursor         Pos
	MinesRemaining int
	FlagsRemaining int
	RevealedSafe   int
	State          State
}

// At returns the snapshot of the cell at (row, col).
func (s Snapshot) At(row, col int) CellSnapshot {
	return s.Cells[row][col]
}

// Snapshot captures the current display state. Once the game is lost,
// every unflagged mine is reported as ViewMine so the layout can be shown.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]CellSnapshot, b.rows)
	for row := range cells {
		cells[row] = make([]CellSnapshot, b.cols)
		for col := range cells[row] {
			cells[row][col] = b.viewOf(*b.at(P(row, col)))
		}
	}

	return Snapshot{
		Rows:           b.rows,
		Cols:           b.cols,
		Cells:          cells,
		Cursor:         b.cursor,
		MinesRemaining: b.minesRemaining,
		FlagsRemaining: b.flagsRemaining,
		RevealedSafe:   b.revealedSafe,
		State:          b.state,
	}
}

func (b *Board) viewOf(c Cell) CellSnapshot {
	switch {
	case c.Revealed && c.Mine:
		return CellSnapshot{View: ViewMine}
	case c.Revealed:
		return CellSnapshot{View: ViewNumber, Number: c.NeighborMines}
	case c.Flagged:
		return CellSnapshot{View: ViewFlagged}
	case c.Mine && b.state == StateLost:
		return CellSnapshot{View: ViewMine}
	default:
		return CellSnapshot{View: ViewHidden}
	}
}
