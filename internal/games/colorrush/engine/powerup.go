package engine

// Power-up creation thresholds by group size.
const (
	lineClearSize  = 4
	colorClearSize = 5
	areaClearSize  = 6
)

// areaClearRadius is the half-width of the block removed by an
// area-clear activation (radius 1 clears a 3x3 block).
const areaClearRadius = 1

// PowerUpFor converts a match group into a special tile. Groups of four
// produce a line clear, five a color clear, six or more an area clear.
// The returned tile keeps the group's kind so a color clear knows its
// designated color. Groups smaller than four produce nothing.
func PowerUpFor(g Group) (Tile, bool) {
	var effect Effect
	switch {
	case g.Len() >= areaClearSize:
		effect = EffectAreaClear
	case g.Len() == colorClearSize:
		effect = EffectColorClear
	case g.Len() == lineClearSize:
		effect = EffectLineClear
	default:
		return Tile{}, false
	}
	return Tile{Kind: g.Kind, Effect: effect}, true
}
