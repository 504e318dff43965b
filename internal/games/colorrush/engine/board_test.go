package engine

import (
	"math/rand"
	"testing"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// newCheckerBoard builds a deterministic 8x8 board with no runs:
// even rows alternate Red/Green, odd rows alternate Blue/Yellow.
// Orange, Purple and Pink stay free for tests to place scenarios.
func newCheckerBoard() *Board {
	b := NewEmptyBoard(DefaultBoardSize)
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			var kind TileKind
			switch {
			case y%2 == 0 && x%2 == 0:
				kind = KindRed
			case y%2 == 0:
				kind = KindGreen
			case x%2 == 0:
				kind = KindBlue
			default:
				kind = KindYellow
			}
			b.Set(core.C(x, y), FilledCell(Tile{Kind: kind}))
		}
	}
	return b
}

func setKind(b *Board, x, y int, kind TileKind) {
	b.Set(core.C(x, y), FilledCell(Tile{Kind: kind}))
}

func TestCheckerBoardIsMatchless(t *testing.T) {
	if groups := FindMatches(newCheckerBoard()); len(groups) != 0 {
		t.Fatalf("fixture board should have no matches, got %d groups", len(groups))
	}
}

func TestNewBoardHasNoMatches(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBoard(DefaultBoardSize, 7, rng)

		if got := b.FilledCount(); got != DefaultBoardSize*DefaultBoardSize {
			t.Fatalf("seed %d: expected full board, got %d filled cells", seed, got)
		}
		if groups := FindMatches(b); len(groups) != 0 {
			t.Errorf("seed %d: freshly initialized board has %d match groups", seed, len(groups))
		}
	}
}

func TestNewBoardMinimumKinds(t *testing.T) {
	// Three kinds is the tightest case for the safe-kind fallback:
	// one kind can be excluded per axis, leaving at least one choice.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBoard(DefaultBoardSize, 3, rng)
		if groups := FindMatches(b); len(groups) != 0 {
			t.Errorf("seed %d: 3-kind board has %d match groups", seed, len(groups))
		}
	}
}

func TestSwapExchangesCells(t *testing.T) {
	b := newCheckerBoard()
	a, c := core.C(0, 0), core.C(1, 0)
	before := b.Get(a)
	after := b.Get(c)

	b.Swap(a, c)

	if b.Get(a) != after || b.Get(c) != before {
		t.Error("swap did not exchange the two cells")
	}

	b.Swap(a, c)
	if b.Get(a) != before || b.Get(c) != after {
		t.Error("second swap did not restore the original cells")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	b := newCheckerBoard()

	defer func() {
		if recover() == nil {
			t.Error("Get with out-of-range coordinate should panic")
		}
	}()
	b.Get(core.C(-1, 0))
}

func TestSwapOutOfRangePanics(t *testing.T) {
	b := newCheckerBoard()

	defer func() {
		if recover() == nil {
			t.Error("Swap with out-of-range coordinate should panic")
		}
	}()
	b.Swap(core.C(0, 0), core.C(0, b.Size))
}

func TestCloneIsIndependent(t *testing.T) {
	b := newCheckerBoard()
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	clone.SetEmpty(core.C(3, 3))
	if b.Equal(clone) {
		t.Error("mutating the clone should not affect the original")
	}
	if !b.Get(core.C(3, 3)).Filled {
		t.Error("original board was mutated through the clone")
	}
}

func TestColumnReadsTopToBottom(t *testing.T) {
	b := NewEmptyBoard(4)
	setKind(b, 1, 0, KindRed)
	setKind(b, 1, 2, KindGreen)
	setKind(b, 1, 3, KindBlue)

	col := b.Column(1)
	want := []TileKind{KindRed, KindGreen, KindBlue}
	if len(col) != len(want) {
		t.Fatalf("expected %d tiles in column, got %d", len(want), len(col))
	}
	for i, k := range want {
		if col[i].Kind != k {
			t.Errorf("column[%d]: expected %v, got %v", i, k, col[i].Kind)
		}
	}
}
