package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RealizedReturn computes the annualized realized return of a daily returns
// series.
func RealizedReturn(returns []float64) float64 {
	return stat.Mean(dropNaN(returns), nil) * TradingDaysPerYear
}

// ExcessReturn subtracts an annualized risk free rate from a daily returns
// series.
func ExcessReturn(returns []float64, riskFreeRate float64) []float64 {
	out := make([]float64, len(returns))
	for i, r := range returns {
		out[i] = r - riskFreeRate
	}
	return out
}

// SharpeRatio computes the annualized Sharpe ratio of a daily returns series.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	return RealizedReturn(ExcessReturn(returns, riskFreeRate)) / RealizedVolatility(returns)
}

// Drawdown computes the drawdown series of a daily returns series.
func Drawdown(returns []float64) []float64 {
	nav := ReturnsToLevels(returns)
	out := make([]float64, len(nav))
	peak := math.Inf(-1)
	for i, level := range nav {
		if level > peak {
			peak = level
		}
		out[i] = level/peak - 1
	}
	return out
}

// MaxDrawdown computes the maximum drawdown (most negative value of the
// drawdown series).
func MaxDrawdown(returns []float64) float64 {
	min := 0.0
	for _, dd := range Drawdown(returns) {
		if dd < min {
			min = dd
		}
	}
	return min
}

// CalmarRatio computes the annualized return over the maximum drawdown.
// Returns +Inf when the series never draws down.
func CalmarRatio(returns []float64) float64 {
	maxDD := -MaxDrawdown(returns)
	if maxDD == 0 {
		return math.Inf(1)
	}
	return RealizedReturn(returns) / maxDD
}
