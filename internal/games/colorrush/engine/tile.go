// Package engine provides the core match-3 logic for Color Rush.
// This package is UI-agnostic and deterministic.
package engine

// TileKind identifies one of the ordinary tile colors.
type TileKind uint8

const (
	KindRed TileKind = iota
	KindOrange
	KindYellow
	KindGreen
	KindBlue
	KindPurple
	KindPink
	KindCount // Sentinel for counting kinds
)

// String returns the color name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case KindRed:
		return "Red"
	case KindOrange:
		return "Orange"
	case KindYellow:
		return "Yellow"
	case KindGreen:
		return "Green"
	case KindBlue:
		return "Blue"
	case KindPurple:
		return "Purple"
	case KindPink:
		return "Pink"
	default:
		return "Unknown"
	}
}

// Effect identifies the activation effect carried by a special tile.
type Effect uint8

const (
	EffectNone       Effect = iota
	EffectLineClear         // Clears the line the tile occupies
	EffectColorClear        // Clears every tile of the designated kind
	EffectAreaClear         // Clears a fixed-radius block around the tile
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectLineClear:
		return "LineClear"
	case EffectColorClear:
		return "ColorClear"
	case EffectAreaClear:
		return "AreaClear"
	default:
		return "Unknown"
	}
}

// Tile is a single cell's content: a color kind plus an optional
// special effect. Tiles have no identity beyond their kind and effect;
// position is implicit in the board.
type Tile struct {
	Kind   TileKind
	Effect Effect
}

// Special returns true if the tile carries an activation effect.
// Special tiles never participate in runs and always terminate one.
func (t Tile) Special() bool {
	return t.Effect != EffectNone
}

// Cell represents a single board cell. A cell may be transiently empty
// while a cascade is being resolved, never in a settled board.
type Cell struct {
	Filled bool
	Tile   Tile
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{Filled: false}
}

// FilledCell returns a filled cell holding the given tile.
func FilledCell(t Tile) Cell {
	return Cell{Filled: true, Tile: t}
}
