package surface

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFitted is returned by Vol before a successful Fit.
var ErrNotFitted = errors.New("smoother has not been fitted")

// Smoother calibrates a smile parameterization to market implied
// volatilities and evaluates model implied volatilities from it.
type Smoother interface {
	// Fit calibrates the model parameters against market implied vols
	// observed at the given strikes and time to maturity.
	Fit(forward float64, strikes []float64, ttm float64, marketVols []float64) error

	// Vol evaluates the model implied volatility at each strike.
	Vol(forward float64, strikes []float64, ttm float64) ([]float64, error)

	// Params returns the current parameter vector.
	Params() []float64
}

// FitVol fits the smoother and immediately evaluates it on the same strikes.
func FitVol(s Smoother, forward float64, strikes []float64, ttm float64, marketVols []float64) ([]float64, error) {
	if err := s.Fit(forward, strikes, ttm, marketVols); err != nil {
		return nil, err
	}
	return s.Vol(forward, strikes, ttm)
}

// validateInputs enforces the shared preconditions of every smoother: the
// market vols must line up with the strikes and no input may contain NaNs.
func validateInputs(forward float64, strikes []float64, ttm float64, marketVols []float64) error {
	if len(marketVols) != len(strikes) {
		return fmt.Errorf("market vols and strikes must have the same shape: %d != %d", len(marketVols), len(strikes))
	}
	if len(strikes) == 0 {
		return errors.New("at least one strike is required")
	}
	if math.IsNaN(forward) || math.IsNaN(ttm) {
		return errors.New("forward and time to maturity must not be NaN")
	}
	for i, k := range strikes {
		if math.IsNaN(k) {
			return fmt.Errorf("strike %d is NaN", i)
		}
	}
	return nil
}
