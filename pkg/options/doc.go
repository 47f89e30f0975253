// Package options selects option contracts against strike and maturity
// targets, and turns multi-leg specifications into daily position series
// ready for backtesting.
package options
