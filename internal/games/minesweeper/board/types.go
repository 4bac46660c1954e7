// Package board implements the Minesweeper board engine: grid state, mine
// placement, flood-fill reveal, flag accounting and win/loss detection.
// This package is UI-agnostic; callers read state through Snapshot.
package board

import "fmt"

// Pos addresses a cell by row and column.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is the per-position record of the grid.
type Cell struct {
	Mine          bool // Set once at placement
	Revealed      bool // Monotonic false -> true
	Flagged       bool // Only toggled while unrevealed
	NeighborMines int  // Mines among the 8 adjacent cells, fixed at placement
}

// State is the whole-game state.
type State uint8

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further mutation is accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Outcome is the result of a mutating call.
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // Nothing changed
	OutcomeRevealed                 // One or more safe cells revealed
	OutcomeMineHit                  // A mine was revealed; the game is lost
	OutcomeFlagged                  // A flag was placed
	OutcomeUnflagged                // A flag was removed
	OutcomeWon                      // The toggle completed the win condition
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRevealed:
		return "revealed"
	case OutcomeMineHit:
		return "mine-hit"
	case OutcomeFlagged:
		return "flagged"
	case OutcomeUnflagged:
		return "unflagged"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Dir is a cursor movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dRow, dCol) offset for one step in this direction.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Rand is the random source used for mine placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
