// Package metrics provides return-series and calibration error metrics:
// realized volatility, Sharpe, drawdowns, and distance measures.
package metrics
