package engine

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

func newTestResolver(kinds int, seed int64) *Resolver {
	return NewResolver(kinds, rand.New(rand.NewSource(seed)))
}

func TestGravityPreservesColumnOrder(t *testing.T) {
	b := newCheckerBoard()

	// Punch holes at varying heights in several columns.
	holes := []core.Coord{
		core.C(0, 7), core.C(0, 3),
		core.C(2, 0), core.C(2, 5),
		core.C(5, 2), core.C(5, 3), core.C(5, 4),
	}
	for _, c := range holes {
		b.SetEmpty(c)
	}

	before := make([][]Tile, b.Size)
	for x := 0; x < b.Size; x++ {
		before[x] = b.Column(x)
	}

	applyGravity(b)

	for x := 0; x < b.Size; x++ {
		after := b.Column(x)
		if !reflect.DeepEqual(before[x], after) {
			t.Errorf("column %d: order changed, before=%v after=%v", x, before[x], after)
		}
	}

	// All empties must sit above the compacted stack.
	for x := 0; x < b.Size; x++ {
		seenFilled := false
		for y := 0; y < b.Size; y++ {
			filled := b.Get(core.C(x, y)).Filled
			if filled {
				seenFilled = true
			} else if seenFilled {
				t.Errorf("column %d: empty cell at y=%d below a filled cell", x, y)
			}
		}
	}
}

func TestRemoveMatchesClearsAllGroupCells(t *testing.T) {
	b := newCheckerBoard()
	for x := 2; x <= 4; x++ {
		setKind(b, x, 3, KindOrange)
	}
	groups := FindMatches(b)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	created := removeMatches(b, groups)
	if len(created) != 0 {
		t.Errorf("group of 3 should create no power-up, got %d", len(created))
	}
	for x := 2; x <= 4; x++ {
		if b.Get(core.C(x, 3)).Filled {
			t.Errorf("cell (%d,3) should be empty after removal", x)
		}
	}
}

func TestRemoveMatchesWritesPowerUpAtMidpoint(t *testing.T) {
	// A run of exactly 4 leaves a line-clear special at the group
	// midpoint and the other three cells empty.
	b := newCheckerBoard()
	for x := 1; x <= 4; x++ {
		setKind(b, x, 5, KindPink)
	}
	groups := FindMatches(b)
	if len(groups) != 1 || groups[0].Len() != 4 {
		t.Fatalf("expected one group of 4, got %v", groups)
	}

	created := removeMatches(b, groups)
	if len(created) != 1 {
		t.Fatalf("expected 1 power-up, got %d", len(created))
	}

	mid := core.C(2, 5) // lower-middle of x=1..4
	if !created[0].At.Equal(mid) {
		t.Errorf("expected power-up at %v, got %v", mid, created[0].At)
	}
	if created[0].Effect != EffectLineClear {
		t.Errorf("expected line clear, got %v", created[0].Effect)
	}

	cell := b.Get(mid)
	if !cell.Filled || !cell.Tile.Special() || cell.Tile.Kind != KindPink {
		t.Errorf("midpoint should hold a pink special tile, got %+v", cell)
	}
	for _, x := range []int{1, 3, 4} {
		if b.Get(core.C(x, 5)).Filled {
			t.Errorf("cell (%d,5) should be empty after removal", x)
		}
	}
}

func TestResolveSettlesBoard(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := newCheckerBoard()
		for x := 2; x <= 4; x++ {
			setKind(b, x, 6, KindOrange)
		}
		r := newTestResolver(7, seed)

		out := r.Resolve(b, FindMatches(b))

		if out.Depth >= r.MaxDepth {
			continue // a capped run can leave matches behind
		}
		if groups := FindMatches(b); len(groups) != 0 {
			t.Errorf("seed %d: settled board still has %d match groups", seed, len(groups))
		}
		if b.FilledCount() != b.Size*b.Size {
			t.Errorf("seed %d: settled board has empty cells", seed)
		}
	}
}

func TestResolveScoreMatchesTrace(t *testing.T) {
	// The cumulative delta must equal the per-depth trace scored with
	// the per-depth multiplier, whatever the refill draws.
	for seed := int64(0); seed < 20; seed++ {
		b := newCheckerBoard()
		for x := 3; x <= 5; x++ {
			setKind(b, x, 2, KindPurple)
		}
		r := newTestResolver(7, seed)

		out := r.Resolve(b, FindMatches(b))

		want := 0
		for depth, groups := range out.GroupsByDepth {
			want += ScoreFor(groups, depth)
		}
		if out.ScoreDelta != want {
			t.Errorf("seed %d: expected delta %d from trace, got %d", seed, want, out.ScoreDelta)
		}
		if out.Depth != len(out.GroupsByDepth)-1 {
			t.Errorf("seed %d: depth %d inconsistent with %d trace levels",
				seed, out.Depth, len(out.GroupsByDepth))
		}
	}
}

func TestResolveCascadeFromGravity(t *testing.T) {
	// Column 2 holds a vertical orange run at y=5..7 with a pink tile
	// above it; pink tiles already sit at (0,7) and (1,7). Removing the
	// run drops the pink tile to (2,7), completing a second match at
	// depth 1 regardless of what the refill draws into column 2's top.
	b := newCheckerBoard()
	setKind(b, 2, 5, KindOrange)
	setKind(b, 2, 6, KindOrange)
	setKind(b, 2, 7, KindOrange)
	setKind(b, 2, 4, KindPink)
	setKind(b, 0, 7, KindPink)
	setKind(b, 1, 7, KindPink)

	initial := FindMatches(b)
	if len(initial) != 1 || initial[0].Axis != AxisCol || initial[0].Len() != 3 {
		t.Fatalf("expected one vertical group of 3, got %v", initial)
	}

	r := newTestResolver(7, 1)
	out := r.Resolve(b, initial)

	if out.Depth < 1 {
		t.Fatalf("expected cascade depth >= 1, got %d", out.Depth)
	}

	// Depth 1 must include the pink row completed by gravity.
	foundPink := false
	for _, g := range out.GroupsByDepth[1] {
		if g.Kind == KindPink && g.Axis == AxisRow {
			foundPink = true
		}
	}
	if !foundPink {
		t.Errorf("depth 1 should contain the pink row group, got %v", out.GroupsByDepth[1])
	}

	// Score delta is the depth-0 score plus deeper levels scaled by
	// their multipliers.
	want := 0
	for depth, groups := range out.GroupsByDepth {
		want += ScoreFor(groups, depth)
	}
	if out.ScoreDelta != want {
		t.Errorf("expected delta %d, got %d", want, out.ScoreDelta)
	}
	if got := ScoreFor(out.GroupsByDepth[0], 0); got != 50 {
		t.Errorf("triggering match should score 50 at depth 0, got %d", got)
	}
}

func TestResolveDepthCap(t *testing.T) {
	// With a single kind every refill re-matches the whole board, so
	// resolution must halt at the cap instead of looping forever.
	b := NewEmptyBoard(4)
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			setKind(b, x, y, KindRed)
		}
	}
	r := newTestResolver(1, 42)

	out := r.Resolve(b, FindMatches(b))

	if out.Depth != r.MaxDepth {
		t.Errorf("expected depth capped at %d, got %d", r.MaxDepth, out.Depth)
	}
	if out.ScoreDelta <= 0 {
		t.Error("capped resolution should still report the accumulated score")
	}
}

func TestActivateLineClear(t *testing.T) {
	b := newCheckerBoard()
	at := core.C(3, 6)
	b.Set(at, FilledCell(Tile{Kind: KindOrange, Effect: EffectLineClear}))
	r := newTestResolver(7, 7)

	cleared, _, ok := r.Activate(b, at)
	if !ok {
		t.Fatal("activation of a special tile should succeed")
	}
	if len(cleared) != b.Size {
		t.Errorf("line clear should remove the whole row, got %d cells", len(cleared))
	}
	for _, c := range cleared {
		if c.Y != at.Y {
			t.Errorf("line clear removed cell %v outside row %d", c, at.Y)
		}
	}
	if b.FilledCount() != b.Size*b.Size {
		t.Error("board should be refilled after activation")
	}
}

func TestActivateColorClear(t *testing.T) {
	b := newCheckerBoard()
	at := core.C(4, 4)
	b.Set(at, FilledCell(Tile{Kind: KindRed, Effect: EffectColorClear}))

	// Count ordinary red tiles before activation.
	wantRed := 0
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			cell := b.Get(core.C(x, y))
			if cell.Filled && !cell.Tile.Special() && cell.Tile.Kind == KindRed {
				wantRed++
			}
		}
	}

	r := newTestResolver(7, 9)
	cleared, _, ok := r.Activate(b, at)
	if !ok {
		t.Fatal("activation should succeed")
	}
	if len(cleared) != wantRed+1 {
		t.Errorf("expected %d cleared cells (reds plus the special), got %d", wantRed+1, len(cleared))
	}
}

func TestActivateAreaClear(t *testing.T) {
	b := newCheckerBoard()
	at := core.C(0, 0) // corner: the 3x3 block clips to 2x2
	b.Set(at, FilledCell(Tile{Kind: KindGreen, Effect: EffectAreaClear}))
	r := newTestResolver(7, 11)

	cleared, _, ok := r.Activate(b, at)
	if !ok {
		t.Fatal("activation should succeed")
	}
	if len(cleared) != 4 {
		t.Errorf("corner area clear should remove 4 cells, got %d", len(cleared))
	}
}

func TestActivateOrdinaryTileIsNoOp(t *testing.T) {
	b := newCheckerBoard()
	before := b.Clone()
	r := newTestResolver(7, 13)

	cleared, out, ok := r.Activate(b, core.C(2, 2))
	if ok || cleared != nil || out.ScoreDelta != 0 {
		t.Error("activating an ordinary tile should be a rejected no-op")
	}
	if !b.Equal(before) {
		t.Error("board must be unchanged after rejected activation")
	}
}
