package metrics

import "math"

// LevelsToReturns converts a series of price levels to simple returns.
// The first element is NaN, matching the one-observation shortening of a
// percentage change.
func LevelsToReturns(levels []float64) []float64 {
	returns := make([]float64, len(levels))
	if len(levels) == 0 {
		return returns
	}
	returns[0] = math.NaN()
	for i := 1; i < len(levels); i++ {
		returns[i] = levels[i]/levels[i-1] - 1
	}
	return returns
}

// ReturnsToLevels compounds a series of simple returns into price levels
// starting from 1. NaN entries are treated as zero returns.
func ReturnsToLevels(returns []float64) []float64 {
	levels := make([]float64, len(returns))
	level := 1.0
	for i, r := range returns {
		if !math.IsNaN(r) {
			level *= 1 + r
		}
		levels[i] = level
	}
	return levels
}
