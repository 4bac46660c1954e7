package board

import "github.com/gammazero/deque"

// Reveal opens the cell at (row, col).
//
// Out-of-bounds, revealed and flagged cells are no-ops, as is any call on a
// terminal board. Revealing a mine loses the game. Revealing a cell with no
// adjacent mines flood-fills the connected zero region and its numbered
// border.
func (b *Board) Reveal(row, col int) Outcome {
	p := P(row, col)
	if b.state.Terminal() || !b.revealable(p) {
		return OutcomeNone
	}

	c := b.at(p)
	c.Revealed = true
	if c.Mine {
		b.state = StateLost
		return OutcomeMineHit
	}

	b.revealedSafe++
	if c.NeighborMines == 0 {
		b.flood(p)
	}
	return OutcomeRevealed
}

// revealable reports whether p is on the grid, hidden and unflagged.
func (b *Board) revealable(p Pos) bool {
	if !b.InBounds(p) {
		return false
	}
	c := b.at(p)
	return !c.Revealed && !c.Flagged
}

// flood expands from an already revealed zero cell. Cells are marked
// revealed before they are queued, so each is visited at most once. Only
// zero cells are expanded, so the numbered ring is revealed but never
// crossed. A zero cell has no mine neighbors, so no mine is ever opened here.
func (b *Board) flood(start Pos) {
	var queue deque.Deque[Pos]
	queue.PushBack(start)

	for queue.Len() > 0 {
		p := queue.PopFront()
		for _, n := range b.neighbors(p) {
			if !b.revealable(n) {
				continue
			}
			c := b.at(n)
			c.Revealed = true
			b.revealedSafe++
			if c.NeighborMines == 0 {
				queue.PushBack(n)
			}
		}
	}
}
