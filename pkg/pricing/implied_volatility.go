package pricing

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// Defaults for the Newton-Raphson implied volatility solver.
const (
	DefaultInitialGuess  = 0.2
	DefaultTolerance     = 1e-7
	DefaultMaxIterations = 10000

	minSigma = 1e-5
	maxSigma = 5.0
)

// ErrShapeMismatch is returned when the vectorized solver receives slices of
// differing lengths.
var ErrShapeMismatch = errors.New("input slices must have the same length")

// ImpliedVol inverts the Black-Scholes price for a single option using
// Newton-Raphson. Returns an error when the iteration fails to converge.
func ImpliedVol(marketPrice, s, k, t, r float64, right Right) (float64, error) {
	sigma := DefaultInitialGuess

	for i := 0; i < DefaultMaxIterations; i++ {
		price := Price(s, k, t, r, sigma, right)
		vega := Vega(s, k, t, r, sigma)

		diff := price - marketPrice
		if math.Abs(diff) < DefaultTolerance {
			return sigma, nil
		}

		sigma -= diff / vega
		if sigma <= minSigma {
			sigma = minSigma
		}
	}
	return 0, fmt.Errorf("implied volatility did not converge for price=%v s=%v k=%v t=%v", marketPrice, s, k, t)
}

// IVOptions tunes the vectorized implied volatility solver.
type IVOptions struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
}

func (o IVOptions) withDefaults() IVOptions {
	if o.InitialGuess == 0 {
		o.InitialGuess = DefaultInitialGuess
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// ImpliedVols computes implied volatilities for a cross section of options
// with a shared Newton-Raphson loop. Entries with vanishing vega keep their
// current estimate for that step, and all estimates are clamped to
// [1e-5, 5.0]. The loop stops once the worst pricing error falls below the
// tolerance.
func ImpliedVols(marketPrices, s, k, t, r []float64, rights []Right, opts IVOptions) ([]float64, error) {
	n := len(marketPrices)
	if len(s) != n || len(k) != n || len(t) != n || len(r) != n || len(rights) != n {
		return nil, ErrShapeMismatch
	}
	opts = opts.withDefaults()

	sigma := make([]float64, n)
	for i := range sigma {
		sigma[i] = opts.InitialGuess
	}
	log.Printf("calculating implied volatility for %d options: guess=%v tol=%v maxIterations=%d",
		n, opts.InitialGuess, opts.Tolerance, opts.MaxIterations)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		maxDiff := 0.0
		for i := 0; i < n; i++ {
			price := Price(s[i], k[i], t[i], r[i], sigma[i], rights[i])
			vega := Vega(s[i], k[i], t[i], r[i], sigma[i])

			diff := marketPrices[i] - price
			if math.Abs(diff) > maxDiff {
				maxDiff = math.Abs(diff)
			}
			// Only step where vega is meaningful to avoid explosion.
			if vega != 0 && !math.IsNaN(vega) {
				sigma[i] += diff / vega
			}
			sigma[i] = math.Min(math.Max(sigma[i], minSigma), maxSigma)
		}
		if maxDiff < opts.Tolerance {
			log.Printf("implied volatility converged after %d iterations", iter+1)
			break
		}
	}
	return sigma, nil
}
