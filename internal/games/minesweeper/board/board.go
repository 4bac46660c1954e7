package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when the grid cannot hold the requested mines.
	ErrInvalidConfig = errors.New("board: invalid configuration")

	// ErrMinesPlaced is returned when mines are placed a second time.
	ErrMinesPlaced = errors.New("board: mines already placed")
)

// neighborOffsets lists the 8 surrounding positions. The center is excluded.
var neighborOffsets = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board owns the grid and every state transition of a single game.
// It is not safe for concurrent use.
type Board struct {
	rows      int
	cols      int
	mineCount int
	cells     []Cell // Row-major, rows*cols

	minesRemaining int
	flagsRemaining int
	revealedSafe   int
	minesPlaced    bool

	state  State
	cursor Pos
}

// New allocates a rows x cols board with every cell zeroed.
// mineCount must leave at least one safe cell, otherwise placement could
// never terminate and ErrInvalidConfig is returned.
func New(rows, cols, mineCount int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, rows, cols)
	}
	if mineCount < 0 || mineCount >= rows*cols {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d grid", ErrInvalidConfig, mineCount, rows, cols)
	}

	return &Board{
		rows:           rows,
		cols:           cols,
		mineCount:      mineCount,
		cells:          make([]Cell, rows*cols),
		minesRemaining: mineCount,
		flagsRemaining: mineCount,
		state:          StatePlaying,
	}, nil
}

// Rows returns the grid height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the grid width.
func (b *Board) Cols() int { return b.cols }

// MinesRemaining is informational and stays at the mine count.
func (b *Board) MinesRemaining() int { return b.minesRemaining }

// FlagsRemaining is mine count minus flags placed. It may go negative.
func (b *Board) FlagsRemaining() int { return b.flagsRemaining }

// RevealedSafe returns how many non-mine cells are revealed.
func (b *Board) RevealedSafe() int { return b.revealedSafe }

// State returns the current game state.
func (b *Board) State() State { return b.state }

// IsGameOver reports whether a mine has been revealed.
func (b *Board) IsGameOver() bool { return b.state == StateLost }

// IsWon reports whether every mine has been flagged.
func (b *Board) IsWon() bool { return b.state == StateWon }

// Cursor returns the cursor position.
func (b *Board) Cursor() Pos { return b.cursor }

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Cell returns a copy of the cell at (row, col).
// ok is false for out-of-bounds positions.
func (b *Board) Cell(row, col int) (c Cell, ok bool) {
	p := P(row, col)
	if !b.InBounds(p) {
		return Cell{}, false
	}
	return *b.at(p), true
}

func (b *Board) at(p Pos) *Cell {
	return &b.cells[p.Row*b.cols+p.Col]
}

// PlaceMines places the configured number of mines uniformly at random by
// rejection sampling: pick a random cell, skip it if it is already a mine.
// New guarantees a free cell always exists, so the loop terminates.
func (b *Board) PlaceMines(rng Rand) error {
	if b.minesPlaced {
		return ErrMinesPlaced
	}
	if rng == nil {
		return fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	for placed := 0; placed < b.mineCount; {
		p := P(rng.Intn(b.rows), rng.Intn(b.cols))
		if b.at(p).Mine {
			continue
		}
		b.addMine(p)
		placed++
	}

	b.minesPlaced = true
	return nil
}

// PlaceMinesAt places mines at explicit positions. The number of positions
// must match the board's mine count and each must be distinct and in bounds.
// Nothing is mutated when validation fails.
func (b *Board) PlaceMinesAt(positions ...Pos) error {
	if b.minesPlaced {
		return ErrMinesPlaced
	}
	if len(positions) != b.mineCount {
		return fmt.Errorf("%w: got %d mine positions, want %d", ErrInvalidConfig, len(positions), b.mineCount)
	}

	seen := make(map[Pos]struct{}, len(positions))
	for _, p := range positions {
		if !b.InBounds(p) {
			return fmt.Errorf("%w: mine position %v out of bounds", ErrInvalidConfig, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: duplicate mine position %v", ErrInvalidConfig, p)
		}
		seen[p] = struct{}{}
	}

	for _, p := range positions {
		b.addMine(p)
	}
	b.minesPlaced = true
	return nil
}

// addMine marks p as a mine and bumps the count of every in-bounds neighbor.
// Mine cells accumulate counts from adjacent mines too; the value is never
// displayed for them.
func (b *Board) addMine(p Pos) {
	b.at(p).Mine = true
	for _, n := range b.neighbors(p) {
		b.at(n).NeighborMines++
	}
}

// neighbors returns the in-bounds positions surrounding p.
func (b *Board) neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := P(p.Row+off.Row, p.Col+off.Col)
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ToggleFlag places or removes a flag on an unrevealed cell and then checks
// the win condition. Out-of-bounds, revealed cells and terminal boards are
// ignored.
func (b *Board) ToggleFlag(row, col int) Outcome {
	p := P(row, col)
	if b.state.Terminal() || !b.InBounds(p) {
		return OutcomeNone
	}

	c := b.at(p)
	if c.Revealed {
		return OutcomeNone
	}

	outcome := OutcomeFlagged
	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flagsRemaining--
	} else {
		b.flagsRemaining++
		outcome = OutcomeUnflagged
	}

	if b.CheckWin() {
		b.state = StateWon
		return OutcomeWon
	}
	return outcome
}

// CheckWin reports whether every mine cell is flagged. Flags on safe cells
// do not matter.
func (b *Board) CheckWin() bool {
	for i := range b.cells {
		if b.cells[i].Mine && !b.cells[i].Flagged {
			return false
		}
	}
	return true
}

// MoveCursor moves the cursor one cell, wrapping around the grid edges.
func (b *Board) MoveCursor(d Dir) {
	dRow, dCol := d.Delta()
	b.cursor.Row = (b.cursor.Row + dRow + b.rows) % b.rows
	b.cursor.Col = (b.cursor.Col + dCol + b.cols) % b.cols
}
