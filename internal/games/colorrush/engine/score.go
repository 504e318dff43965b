package engine

// Base scores by group size. Groups of six or more earn the long-run
// bonus on top of the size-6 base.
const (
	scoreRun3     = 50
	scoreRun4     = 150
	scoreRun5     = 300
	scoreRun6     = 500
	scoreLongStep = 100
)

// GroupScore returns the base score of a single group of the given size.
func GroupScore(size int) int {
	switch {
	case size < MinRunLength:
		return 0
	case size == 3:
		return scoreRun3
	case size == 4:
		return scoreRun4
	case size == 5:
		return scoreRun5
	default:
		return scoreRun6 + scoreLongStep*(size-6)
	}
}

// ScoreFor returns the score for all groups resolved at one cascade
// depth. Simultaneous groups are summed, then the sum is scaled by the
// cascade multiplier. Depth 0 is the triggering match.
//
// The multiplier is the linear form 1 + depth/2, computed in integer
// arithmetic as sum*(depth+2)/2 to keep scores exact.
func ScoreFor(groups []Group, depth int) int {
	sum := 0
	for _, g := range groups {
		sum += GroupScore(g.Len())
	}
	if depth < 0 {
		depth = 0
	}
	return sum * (depth + 2) / 2
}

// Multiplier returns the cascade multiplier applied at the given depth,
// for display purposes. It matches the scaling used by ScoreFor.
func Multiplier(depth int) float64 {
	if depth < 0 {
		depth = 0
	}
	return 1 + float64(depth)/2
}
