package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization factor for daily return series.
const TradingDaysPerYear = 252

// RealizedVolatility computes the annualized realized volatility of a daily
// returns series using the sample standard deviation.
func RealizedVolatility(returns []float64) float64 {
	return stat.StdDev(dropNaN(returns), nil) * math.Sqrt(TradingDaysPerYear)
}

// RollingRealizedVolatility computes the rolling annualized realized
// volatility over the given window. Entries before the window fills are NaN.
func RollingRealizedVolatility(returns []float64, window int) []float64 {
	out := make([]float64, len(returns))
	for i := range out {
		if i+1 < window {
			out[i] = math.NaN()
			continue
		}
		out[i] = RealizedVolatility(returns[i+1-window : i+1])
	}
	return out
}

func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
