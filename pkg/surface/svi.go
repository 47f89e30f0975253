package surface

import (
	"fmt"
	"math"

	"github.com/investlab/vollab/pkg/metrics"
)

// Ensure SVI implements Smoother
var _ Smoother = (*SVI)(nil)

// SVI is the raw Stochastic Volatility Inspired smile parameterization with
// parameters (a, b, rho, m, sigma) over forward log-moneyness.
type SVI struct {
	params []float64
	fitted bool
}

// NewSVI creates an SVI smoother from an initial (a, b, rho, m, sigma)
// guess.
func NewSVI(a, b, rho, m, sigma float64) *SVI {
	return &SVI{params: []float64{a, b, rho, m, sigma}}
}

// Params returns (a, b, rho, m, sigma).
func (s *SVI) Params() []float64 {
	out := make([]float64, len(s.params))
	copy(out, s.params)
	return out
}

// Fit calibrates (a, b, rho, m, sigma) by minimizing the MSE between model
// and market implied vols. Bounds: a > 0, b >= 0, |rho| < 0.999, m free,
// sigma > 0.
func (s *SVI) Fit(forward float64, strikes []float64, ttm float64, marketVols []float64) error {
	if err := validateInputs(forward, strikes, ttm, marketVols); err != nil {
		return fmt.Errorf("svi fit: %w", err)
	}

	bounds := []bound{atLeast(1e-6), atLeast(0), between(-0.999, 0.999), unbounded(), atLeast(1e-6)}
	fitted, err := minimizeBounded("SVI", func(params []float64) float64 {
		model := sviVols(params, forward, strikes, ttm)
		return metrics.MSE(marketVols, model)
	}, s.params, bounds)
	if err != nil {
		return err
	}

	s.params = fitted
	s.fitted = true
	return nil
}

// Vol evaluates the SVI implied volatility at each strike. Negative total
// variance is floored at zero before taking the square root.
func (s *SVI) Vol(forward float64, strikes []float64, ttm float64) ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	return sviVols(s.params, forward, strikes, ttm), nil
}

func sviVols(params []float64, forward float64, strikes []float64, ttm float64) []float64 {
	a, b, rho, m, sigma := params[0], params[1], params[2], params[3], params[4]

	out := make([]float64, len(strikes))
	for i, strike := range strikes {
		k := math.Log(strike / forward)
		w := a + b*(rho*(k-m)+math.Sqrt((k-m)*(k-m)+sigma*sigma))
		if w < 0 {
			w = 0
		}
		out[i] = math.Sqrt(w / ttm)
	}
	return out
}
