package engine

import (
	"reflect"
	"testing"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

func TestFindMatchesHorizontalRun(t *testing.T) {
	b := newCheckerBoard()
	setKind(b, 2, 4, KindOrange)
	setKind(b, 3, 4, KindOrange)
	setKind(b, 4, 4, KindOrange)

	groups := FindMatches(b)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	if g.Kind != KindOrange || g.Axis != AxisRow || g.Len() != 3 {
		t.Errorf("unexpected group: kind=%v axis=%v len=%d", g.Kind, g.Axis, g.Len())
	}
	want := []core.Coord{core.C(2, 4), core.C(3, 4), core.C(4, 4)}
	if !reflect.DeepEqual(g.Cells, want) {
		t.Errorf("expected cells %v, got %v", want, g.Cells)
	}
}

func TestFindMatchesVerticalRun(t *testing.T) {
	b := newCheckerBoard()
	setKind(b, 5, 1, KindPurple)
	setKind(b, 5, 2, KindPurple)
	setKind(b, 5, 3, KindPurple)

	groups := FindMatches(b)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Axis != AxisCol || g.Len() != 3 || g.Kind != KindPurple {
		t.Errorf("unexpected group: kind=%v axis=%v len=%d", g.Kind, g.Axis, g.Len())
	}
}

func TestFindMatchesEmitsWholeRun(t *testing.T) {
	// A run of 5 must come back as one group of 5, not a group of 3
	// plus leftovers.
	b := newCheckerBoard()
	for x := 1; x <= 5; x++ {
		setKind(b, x, 2, KindOrange)
	}

	groups := FindMatches(b)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Len() != 5 {
		t.Errorf("expected whole run of 5, got %d", groups[0].Len())
	}
}

func TestFindMatchesCrossAxisNotDeduplicated(t *testing.T) {
	// An L of orange tiles: (1,3)(2,3)(3,3) horizontal and
	// (3,3)(3,4)(3,5) vertical. The shared corner cell belongs to
	// both groups; the detector must report both.
	b := newCheckerBoard()
	setKind(b, 1, 3, KindOrange)
	setKind(b, 2, 3, KindOrange)
	setKind(b, 3, 3, KindOrange)
	setKind(b, 3, 4, KindOrange)
	setKind(b, 3, 5, KindOrange)

	groups := FindMatches(b)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups (row and column), got %d", len(groups))
	}

	var haveRow, haveCol bool
	corner := core.C(3, 3)
	for _, g := range groups {
		inGroup := false
		for _, c := range g.Cells {
			if c.Equal(corner) {
				inGroup = true
			}
		}
		if !inGroup {
			t.Errorf("group %v/%v does not contain the corner cell", g.Axis, g.Kind)
		}
		switch g.Axis {
		case AxisRow:
			haveRow = true
		case AxisCol:
			haveCol = true
		}
	}
	if !haveRow || !haveCol {
		t.Errorf("expected one row and one column group, got row=%v col=%v", haveRow, haveCol)
	}
}

func TestSpecialTilesTerminateRuns(t *testing.T) {
	// orange orange [special orange] orange orange: the special breaks
	// the run and joins neither side.
	b := newCheckerBoard()
	setKind(b, 0, 6, KindOrange)
	setKind(b, 1, 6, KindOrange)
	b.Set(core.C(2, 6), FilledCell(Tile{Kind: KindOrange, Effect: EffectLineClear}))
	setKind(b, 3, 6, KindOrange)
	setKind(b, 4, 6, KindOrange)

	if groups := FindMatches(b); len(groups) != 0 {
		t.Errorf("special tile should terminate the run, got %d groups", len(groups))
	}
}

func TestEmptyCellsTerminateRuns(t *testing.T) {
	b := newCheckerBoard()
	setKind(b, 0, 0, KindOrange)
	setKind(b, 1, 0, KindOrange)
	b.SetEmpty(core.C(2, 0))
	setKind(b, 3, 0, KindOrange)

	if groups := FindMatches(b); len(groups) != 0 {
		t.Errorf("empty cell should terminate the run, got %d groups", len(groups))
	}
}

func TestFindMatchesIsIdempotent(t *testing.T) {
	b := newCheckerBoard()
	for x := 2; x <= 5; x++ {
		setKind(b, x, 1, KindPink)
	}
	before := b.Clone()

	first := FindMatches(b)
	second := FindMatches(b)

	if !reflect.DeepEqual(first, second) {
		t.Error("two scans of the same board returned different results")
	}
	if !b.Equal(before) {
		t.Error("FindMatches mutated the board")
	}
}

func TestGroupMidpoint(t *testing.T) {
	cells := func(n int) []core.Coord {
		cs := make([]core.Coord, n)
		for i := range cs {
			cs[i] = core.C(i, 0)
		}
		return cs
	}

	tests := []struct {
		size int
		want core.Coord
	}{
		{3, core.C(1, 0)},
		{4, core.C(1, 0)}, // even length: lower-middle index
		{5, core.C(2, 0)},
		{6, core.C(2, 0)},
	}
	for _, tt := range tests {
		g := Group{Kind: KindRed, Axis: AxisRow, Cells: cells(tt.size)}
		if got := g.Midpoint(); !got.Equal(tt.want) {
			t.Errorf("size %d: expected midpoint %v, got %v", tt.size, tt.want, got)
		}
	}
}
