package engine

import (
	"fmt"
	"math/rand"

	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// DefaultBoardSize is the standard board dimension.
const DefaultBoardSize = 8

// maxDrawAttempts bounds the random redraws before falling back to a
// deterministic scan for a kind that cannot complete a run.
const maxDrawAttempts = 8

// Board is a square grid of cells stored in row-major order:
// index = y*Size + x. The board is a dumb container; match detection,
// move validation and cascade resolution live in their own files.
type Board struct {
	Size  int
	cells []Cell
}

// NewEmptyBoard creates a board with every cell empty.
func NewEmptyBoard(size int) *Board {
	return &Board{
		Size:  size,
		cells: make([]Cell, size*size),
	}
}

// NewBoard creates a board filled with random tiles drawn from kinds
// color kinds, such that no horizontal or vertical run of three or more
// identical kinds exists. Each cell is drawn randomly with a bounded
// number of redraws; if the budget is exhausted, a deterministic scan
// picks a kind that cannot complete a run with the already-placed left
// and upper neighbors. With kinds >= 3 such a kind always exists, so the
// returned board is always matchless.
func NewBoard(size, kinds int, rng *rand.Rand) *Board {
	b := NewEmptyBoard(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.C(x, y)
			kind := b.drawKind(c, kinds, rng)
			b.Set(c, FilledCell(Tile{Kind: kind}))
		}
	}
	return b
}

// drawKind picks a random kind for the cell that does not form an
// immediate 3-run with its left or upper neighbors.
func (b *Board) drawKind(c core.Coord, kinds int, rng *rand.Rand) TileKind {
	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		kind := TileKind(rng.Intn(kinds))
		if !b.completesRun(c, kind) {
			return kind
		}
	}
	// At most two kinds are excluded (one per axis), so a linear scan
	// always finds a safe kind for kinds >= 3.
	for k := 0; k < kinds; k++ {
		if !b.completesRun(c, TileKind(k)) {
			return TileKind(k)
		}
	}
	return TileKind(rng.Intn(kinds))
}

// completesRun reports whether placing kind at c would form a run of
// three with the two cells to the left or the two cells above.
func (b *Board) completesRun(c core.Coord, kind TileKind) bool {
	if b.kindAt(c.Add(-1, 0)) == kind && b.kindAt(c.Add(-2, 0)) == kind {
		return true
	}
	if b.kindAt(c.Add(0, -1)) == kind && b.kindAt(c.Add(0, -2)) == kind {
		return true
	}
	return false
}

// kindAt returns the kind at c, or KindCount for empty, special or
// out-of-bounds cells so that comparisons against real kinds fail.
func (b *Board) kindAt(c core.Coord) TileKind {
	if !b.InBounds(c) {
		return KindCount
	}
	cell := b.cells[b.index(c)]
	if !cell.Filled || cell.Tile.Special() {
		return KindCount
	}
	return cell.Tile.Kind
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c core.Coord) int {
	return c.Y*b.Size + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < b.Size && c.Y >= 0 && c.Y < b.Size
}

// Get returns the cell at the given coordinate.
// Out-of-range access indicates a caller bug and panics.
func (b *Board) Get(c core.Coord) Cell {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("engine: coordinate %v out of range for board size %d", c, b.Size))
	}
	return b.cells[b.index(c)]
}

// At returns the tile at the given coordinate and whether the cell is
// filled. Out-of-range access panics, as with Get.
func (b *Board) At(c core.Coord) (Tile, bool) {
	cell := b.Get(c)
	return cell.Tile, cell.Filled
}

// Set places a cell at the given coordinate.
func (b *Board) Set(c core.Coord, cell Cell) {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("engine: coordinate %v out of range for board size %d", c, b.Size))
	}
	b.cells[b.index(c)] = cell
}

// SetEmpty clears the cell at the given coordinate.
func (b *Board) SetEmpty(c core.Coord) {
	b.Set(c, EmptyCell())
}

// Swap exchanges the two cells in place. Pure mutation, no validation;
// move legality is the validator's job.
func (b *Board) Swap(a, c core.Coord) {
	ia, ic := b.index(a), b.index(c)
	if !b.InBounds(a) || !b.InBounds(c) {
		panic(fmt.Sprintf("engine: swap %v <-> %v out of range for board size %d", a, c, b.Size))
	}
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{Size: b.Size, cells: cells}
}

// Equal returns true if two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.Size != other.Size {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// Column returns the tiles of column x from top to bottom, skipping
// empty cells. Used by gravity and by tests checking order preservation.
func (b *Board) Column(x int) []Tile {
	tiles := make([]Tile, 0, b.Size)
	for y := 0; y < b.Size; y++ {
		if cell := b.Get(core.C(x, y)); cell.Filled {
			tiles = append(tiles, cell.Tile)
		}
	}
	return tiles
}
