// Package minesweeper wires the board engine into the platform: it maps
// semantic actions to engine calls, keeps score and draws the board.
package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/board"
)

// Board dimensions. The game is played on a single fixed size.
const (
	Rows  = 10
	Cols  = 10
	Mines = 10
)

// ID is the identifier used for stored results.
const ID = "minesweeper"

// Game implements core.Game for Minesweeper.
type Game struct {
	rows, cols, mines int

	theme Theme
	board *board.Board
	seed  int64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	lastOutcome board.Outcome
}

var _ core.Game = (*Game)(nil)

// New creates a game on the standard 10x10 board.
func New(theme config.Theme) *Game {
	g, err := NewWithSize(Rows, Cols, Mines, theme)
	if err != nil {
		// Constants are valid by construction.
		panic(err)
	}
	return g
}

// NewWithSize creates a game with explicit dimensions. It fails if the mine
// count cannot fit the grid.
func NewWithSize(rows, cols, mines int, theme config.Theme) (*Game, error) {
	// Validate once up front so Reset cannot fail.
	if _, err := board.New(rows, cols, mines); err != nil {
		return nil, fmt.Errorf("minesweeper: %w", err)
	}
	return &Game{
		rows:  rows,
		cols:  cols,
		mines: mines,
		theme: NewTheme(theme),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset starts a new game with mines placed from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	b, err := board.New(g.rows, g.cols, g.mines)
	if err != nil {
		panic(err) // validated in NewWithSize
	}
	if err := b.PlaceMines(rand.New(rand.NewSource(cfg.Seed))); err != nil {
		panic(err)
	}

	g.board = b
	g.seed = cfg.Seed
	g.lastOutcome = board.OutcomeNone
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// ResetWithMines starts a new game with mines at fixed positions.
func (g *Game) ResetWithMines(cfg core.RuntimeConfig, mines ...board.Pos) error {
	b, err := board.New(g.rows, g.cols, len(mines))
	if err != nil {
		return fmt.Errorf("minesweeper: %w", err)
	}
	if err := b.PlaceMinesAt(mines...); err != nil {
		return fmt.Errorf("minesweeper: %w", err)
	}

	g.board = b
	g.seed = cfg.Seed
	g.lastOutcome = board.OutcomeNone
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize records new screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one frame of input. Cursor moves are applied before
// reveal and flag so a combined frame acts on the new position.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.board == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	moves := []struct {
		action core.Action
		dir    board.Dir
	}{
		{core.ActionUp, board.DirUp},
		{core.ActionDown, board.DirDown},
		{core.ActionLeft, board.DirLeft},
		{core.ActionRight, board.DirRight},
	}
	for _, m := range moves {
		if in.Has(m.action) {
			g.board.MoveCursor(m.dir)
		}
	}

	cursor := g.board.Cursor()
	switch {
	case in.Has(core.ActionReveal):
		g.lastOutcome = g.board.Reveal(cursor.Row, cursor.Col)
	case in.Has(core.ActionFlag):
		g.lastOutcome = g.board.ToggleFlag(cursor.Row, cursor.Col)
	}

	return core.StepResult{State: g.State()}
}

// Score is the number of safe cells revealed, plus one point per grid cell
// for a win.
func (g *Game) Score() int {
	if g.board == nil {
		return 0
	}
	score := g.board.RevealedSafe()
	if g.board.IsWon() {
		score += g.rows * g.cols
	}
	return score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.board.State().Terminal(),
		Won:      g.board.IsWon(),
		Paused:   g.tooSmall,
	}
}

// Seed returns the seed of the current board.
func (g *Game) Seed() int64 {
	return g.seed
}

// LastOutcome returns the engine outcome of the most recent reveal or flag.
func (g *Game) LastOutcome() board.Outcome {
	return g.lastOutcome
}

// Snapshot returns the engine snapshot of the current board.
func (g *Game) Snapshot() board.Snapshot {
	return g.board.Snapshot()
}
