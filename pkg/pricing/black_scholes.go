package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

func d1d2(s, k, t, r, sigma float64) (float64, float64) {
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	return d1, d1 - sigma*math.Sqrt(t)
}

// Price returns the Black-Scholes price of a European option.
//
// s is the underlying price, k the strike, t the time to maturity in years,
// r the continuously compounded risk-free rate and sigma the implied
// volatility.
func Price(s, k, t, r, sigma float64, right Right) float64 {
	d1, d2 := d1d2(s, k, t, r, sigma)
	if right == RightCall {
		return s*stdNormal.CDF(d1) - k*math.Exp(-r*t)*stdNormal.CDF(d2)
	}
	return k*math.Exp(-r*t)*stdNormal.CDF(-d2) - s*stdNormal.CDF(-d1)
}

// Delta returns the Black-Scholes delta.
func Delta(s, k, t, r, sigma float64, right Right) float64 {
	d1, _ := d1d2(s, k, t, r, sigma)
	if right == RightCall {
		return stdNormal.CDF(d1)
	}
	return stdNormal.CDF(d1) - 1
}

// Gamma returns the Black-Scholes gamma. Same for calls and puts.
func Gamma(s, k, t, r, sigma float64) float64 {
	d1, _ := d1d2(s, k, t, r, sigma)
	return stdNormal.Prob(d1) / (s * sigma * math.Sqrt(t))
}

// Vega returns the Black-Scholes vega. Same for calls and puts.
func Vega(s, k, t, r, sigma float64) float64 {
	d1, _ := d1d2(s, k, t, r, sigma)
	return s * stdNormal.Prob(d1) * math.Sqrt(t)
}

// Theta returns the Black-Scholes theta per year.
func Theta(s, k, t, r, sigma float64, right Right) float64 {
	d1, d2 := d1d2(s, k, t, r, sigma)
	term1 := -(s * stdNormal.Prob(d1) * sigma) / (2 * math.Sqrt(t))
	if right == RightCall {
		return term1 - r*k*math.Exp(-r*t)*stdNormal.CDF(d2)
	}
	return term1 + r*k*math.Exp(-r*t)*stdNormal.CDF(-d2)
}

// Rho returns the Black-Scholes rho.
func Rho(s, k, t, r, sigma float64, right Right) float64 {
	_, d2 := d1d2(s, k, t, r, sigma)
	if right == RightCall {
		return k * t * math.Exp(-r*t) * stdNormal.CDF(d2)
	}
	return -k * t * math.Exp(-r*t) * stdNormal.CDF(-d2)
}

// Greeks bundles the first-order sensitivities of an option price.
type Greeks struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// AllGreeks computes every greek for a single option.
func AllGreeks(s, k, t, r, sigma float64, right Right) Greeks {
	return Greeks{
		Delta: Delta(s, k, t, r, sigma, right),
		Gamma: Gamma(s, k, t, r, sigma),
		Vega:  Vega(s, k, t, r, sigma),
		Theta: Theta(s, k, t, r, sigma, right),
		Rho:   Rho(s, k, t, r, sigma, right),
	}
}
