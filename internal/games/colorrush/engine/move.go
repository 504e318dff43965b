package engine

import (
	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// Move is a request to swap two adjacent tiles.
type Move struct {
	From core.Coord
	To   core.Coord
}

// Adjacent reports whether the move connects two 4-adjacent cells.
func (m Move) Adjacent() bool {
	return m.From.Manhattan(m.To) == 1
}

// MoveResult reports whether a move was committed and, if so, the full
// cascade trace it produced.
type MoveResult struct {
	Accepted bool
	Outcome  Outcome
}

// TryMove validates and applies a swap. Non-adjacent coordinates are
// rejected with no mutation. An adjacent swap that produces no match is
// exactly reverted and rejected, leaving the board bit-for-bit unchanged.
// A productive swap is committed and resolved through the cascade loop.
func (r *Resolver) TryMove(b *Board, from, to core.Coord) MoveResult {
	m := Move{From: from, To: to}
	if !m.Adjacent() {
		return MoveResult{}
	}

	b.Swap(from, to)

	groups := FindMatches(b)
	if len(groups) == 0 {
		// Non-productive swap: exact revert.
		b.Swap(from, to)
		return MoveResult{}
	}

	return MoveResult{
		Accepted: true,
		Outcome:  r.Resolve(b, groups),
	}
}
