package engine

import (
	"github.com/RepousiosJim/Color-Rush-sub001/internal/core"
)

// MinRunLength is the shortest run that counts as a match.
const MinRunLength = 3

// Axis identifies the orientation of a match group.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "Row"
	case AxisCol:
		return "Col"
	default:
		return "Unknown"
	}
}

// Group is a run of three or more same-kind tiles along one axis.
// Cells are ordered left-to-right for rows and top-to-bottom for columns.
type Group struct {
	Kind  TileKind
	Axis  Axis
	Cells []core.Coord
}

// Len returns the run length of the group.
func (g Group) Len() int {
	return len(g.Cells)
}

// Midpoint returns the group's midpoint cell. For even-length groups
// this is the lower-middle index.
func (g Group) Midpoint() core.Coord {
	return g.Cells[(len(g.Cells)-1)/2]
}

// FindMatches scans the board and returns every horizontal and vertical
// run of MinRunLength or more identical, non-special tiles. The two axis
// passes are independent: a cell appearing in both a row group and a
// column group is reported in both, with no deduplication. The function
// has no side effects and is idempotent given the same board.
func FindMatches(b *Board) []Group {
	var groups []Group

	// Horizontal pass, row by row.
	for y := 0; y < b.Size; y++ {
		x := 0
		for x < b.Size {
			run := scanRun(b, core.C(x, y), 1, 0)
			if len(run) >= MinRunLength {
				groups = append(groups, Group{
					Kind:  b.Get(run[0]).Tile.Kind,
					Axis:  AxisRow,
					Cells: run,
				})
			}
			x += max(len(run), 1)
		}
	}

	// Vertical pass, column by column.
	for x := 0; x < b.Size; x++ {
		y := 0
		for y < b.Size {
			run := scanRun(b, core.C(x, y), 0, 1)
			if len(run) >= MinRunLength {
				groups = append(groups, Group{
					Kind:  b.Get(run[0]).Tile.Kind,
					Axis:  AxisCol,
					Cells: run,
				})
			}
			y += max(len(run), 1)
		}
	}

	return groups
}

// scanRun collects the maximal run of identical, non-special tiles
// starting at c and stepping by (dx, dy). Empty and special cells never
// start or extend a run.
func scanRun(b *Board, c core.Coord, dx, dy int) []core.Coord {
	cell := b.Get(c)
	if !cell.Filled || cell.Tile.Special() {
		return nil
	}

	kind := cell.Tile.Kind
	run := []core.Coord{c}
	next := c.Add(dx, dy)
	for b.InBounds(next) {
		nc := b.Get(next)
		if !nc.Filled || nc.Tile.Special() || nc.Tile.Kind != kind {
			break
		}
		run = append(run, next)
		next = next.Add(dx, dy)
	}
	return run
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
