// Package surface implements implied volatility smile and surface smoothing
// via the SABR, raw SVI, and SSVI parameterizations, calibrated against
// market implied volatilities.
package surface
