// Package pricing implements Black-Scholes pricing, greeks, and implied
// volatility inversion for European options.
package pricing
