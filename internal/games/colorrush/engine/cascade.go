package engine

import (
	"math/rand"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// MaxCascadeDepth is the hard cap on cascade depth. Natural play settles
// well before this; only degenerate boards (very few kinds) reach it.
const MaxCascadeDepth = 10

// PowerUp records a special tile written to the board during a cascade.
type PowerUp struct {
	At     core.Coord
	Effect Effect
}

// Outcome is the full trace of one cascade resolution following a
// committed move. GroupsByDepth[0] holds the triggering match groups.
type Outcome struct {
	ScoreDelta    int
	Depth         int
	GroupsByDepth [][]Group
	PowerUps      []PowerUp
}

// Resolver runs the remove / gravity / refill / rescan loop.
// It owns the refill RNG but not the board; the session passes its board
// into every call.
type Resolver struct {
	Kinds    int
	MaxDepth int
	rng      *rand.Rand
}

// NewResolver creates a resolver drawing refills from kinds color kinds.
func NewResolver(kinds int, rng *rand.Rand) *Resolver {
	return &Resolver{
		Kinds:    kinds,
		MaxDepth: MaxCascadeDepth,
		rng:      rng,
	}
}

// Resolve consumes the initial match groups of a committed move and runs
// the cascade loop to a stable board or the depth cap. Each round clears
// every matched cell, writes power-ups for groups of four or more,
// compacts columns downward and refills from the top, then rescans.
// A rescan that finds new matches starts the next depth level.
func (r *Resolver) Resolve(b *Board, initial []Group) Outcome {
	var out Outcome
	depth := 0
	groups := initial

	for len(groups) > 0 {
		out.GroupsByDepth = append(out.GroupsByDepth, groups)
		out.ScoreDelta += ScoreFor(groups, depth)
		out.PowerUps = append(out.PowerUps, removeMatches(b, groups)...)

		applyGravity(b)
		r.refill(b)

		groups = FindMatches(b)
		if len(groups) == 0 {
			break
		}
		depth++
		if depth >= r.MaxDepth {
			// Halt at the cap and report what has accumulated.
			break
		}
	}

	out.Depth = depth
	return out
}

// removeMatches clears every cell referenced by any group, then writes a
// power-up tile at the midpoint of each group of four or more. The
// power-up is written after the clear so it survives its own creating
// match.
func removeMatches(b *Board, groups []Group) []PowerUp {
	for _, g := range groups {
		for _, c := range g.Cells {
			b.SetEmpty(c)
		}
	}

	var created []PowerUp
	for _, g := range groups {
		tile, ok := PowerUpFor(g)
		if !ok {
			continue
		}
		at := g.Midpoint()
		b.Set(at, FilledCell(tile))
		created = append(created, PowerUp{At: at, Effect: tile.Effect})
	}
	return created
}

// applyGravity compacts each column independently: all filled cells move
// down preserving their top-to-bottom order, and the cells above the
// compacted stack become empty.
func applyGravity(b *Board) {
	for x := 0; x < b.Size; x++ {
		write := b.Size - 1
		for y := b.Size - 1; y >= 0; y-- {
			cell := b.Get(core.C(x, y))
			if !cell.Filled {
				continue
			}
			if y != write {
				b.Set(core.C(x, write), cell)
				b.SetEmpty(core.C(x, y))
			}
			write--
		}
	}
}

// refill assigns a fresh random kind to every empty cell. Unlike board
// initialization there is no match-avoidance here: a refill may legally
// create a new run, which the next rescan treats as a new cascade level.
func (r *Resolver) refill(b *Board) {
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			c := core.C(x, y)
			if !b.Get(c).Filled {
				kind := TileKind(r.rng.Intn(r.Kinds))
				b.Set(c, FilledCell(Tile{Kind: kind}))
			}
		}
	}
}

// Activate triggers the special tile at c and feeds the cleared cells
// through the same remove / gravity / refill / rescan pipeline as an
// ordinary match. It returns the set of cells cleared by the effect
// itself plus the outcome of any cascades the clearing caused, scored
// from depth 0. Activating a cell that holds no special tile is a no-op
// and reports ok=false.
func (r *Resolver) Activate(b *Board, c core.Coord) ([]core.Coord, Outcome, bool) {
	tile, filled := b.At(c)
	if !filled || !tile.Special() {
		return nil, Outcome{}, false
	}

	cleared := r.clearedBy(b, c, tile)
	for _, cc := range cleared {
		b.SetEmpty(cc)
	}

	applyGravity(b)
	r.refill(b)

	out := r.Resolve(b, FindMatches(b))
	return cleared, out, true
}

// clearedBy returns the cells removed by activating tile at c.
// Line clear removes the tile's row; color clear removes every ordinary
// tile of the tile's own kind plus the special itself; area clear
// removes the block around the tile, clipped to the board.
func (r *Resolver) clearedBy(b *Board, c core.Coord, tile Tile) []core.Coord {
	var cleared []core.Coord

	switch tile.Effect {
	case EffectLineClear:
		for x := 0; x < b.Size; x++ {
			cc := core.C(x, c.Y)
			if b.Get(cc).Filled {
				cleared = append(cleared, cc)
			}
		}

	case EffectColorClear:
		for y := 0; y < b.Size; y++ {
			for x := 0; x < b.Size; x++ {
				cc := core.C(x, y)
				cell := b.Get(cc)
				if !cell.Filled {
					continue
				}
				if cc.Equal(c) || (!cell.Tile.Special() && cell.Tile.Kind == tile.Kind) {
					cleared = append(cleared, cc)
				}
			}
		}

	case EffectAreaClear:
		for dy := -areaClearRadius; dy <= areaClearRadius; dy++ {
			for dx := -areaClearRadius; dx <= areaClearRadius; dx++ {
				cc := c.Add(dx, dy)
				if b.InBounds(cc) && b.Get(cc).Filled {
					cleared = append(cleared, cc)
				}
			}
		}
	}

	return cleared
}
