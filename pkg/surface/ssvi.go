package surface

import (
	"fmt"
	"math"

	"github.com/investlab/vollab/pkg/metrics"
)

// Ensure SSVI implements Smoother
var _ Smoother = (*SSVI)(nil)

// SSVI is the Surface SVI parameterization with a power-law kernel and
// parameters (sigma, rho, eta, lambda). sigma is the ATM volatility scale,
// and phi(theta) = eta / theta^lambda.
type SSVI struct {
	params []float64
	fitted bool
}

// NewSSVI creates an SSVI smoother from an initial (sigma, rho, eta, lambda)
// guess.
func NewSSVI(sigma, rho, eta, lambda float64) *SSVI {
	return &SSVI{params: []float64{sigma, rho, eta, lambda}}
}

// Params returns (sigma, rho, eta, lambda).
func (s *SSVI) Params() []float64 {
	out := make([]float64, len(s.params))
	copy(out, s.params)
	return out
}

// Fit calibrates (sigma, rho, eta, lambda) by minimizing the MSE between
// model and market TOTAL VARIANCE (vol^2 * ttm). Bounds: sigma > 0,
// |rho| < 0.999, eta in (0, 5], lambda in (0, 0.5]. The lambda cap is a
// necessary condition for no butterfly arbitrage.
func (s *SSVI) Fit(forward float64, strikes []float64, ttm float64, marketVols []float64) error {
	if err := validateInputs(forward, strikes, ttm, marketVols); err != nil {
		return fmt.Errorf("ssvi fit: %w", err)
	}

	marketVariance := make([]float64, len(marketVols))
	for i, v := range marketVols {
		marketVariance[i] = v * v * ttm
	}

	bounds := []bound{atLeast(1e-5), between(-0.999, 0.999), between(1e-6, 5.0), between(1e-6, 0.5)}
	fitted, err := minimizeBounded("SSVI", func(params []float64) float64 {
		model := ssviTotalVariance(params, forward, strikes, ttm)
		return metrics.MSE(marketVariance, model)
	}, s.params, bounds)
	if err != nil {
		return err
	}

	s.params = fitted
	s.fitted = true
	return nil
}

// Vol evaluates the SSVI implied volatility at each strike,
// sqrt(w(k, theta) / ttm).
func (s *SSVI) Vol(forward float64, strikes []float64, ttm float64) ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	w := ssviTotalVariance(s.params, forward, strikes, ttm)
	out := make([]float64, len(w))
	for i := range w {
		out[i] = math.Sqrt(w[i] / ttm)
	}
	return out, nil
}

// TotalVariance evaluates w(k, theta) at each strike.
func (s *SSVI) TotalVariance(forward float64, strikes []float64, ttm float64) ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	return ssviTotalVariance(s.params, forward, strikes, ttm), nil
}

func ssviTotalVariance(params []float64, forward float64, strikes []float64, ttm float64) []float64 {
	sigma, rho, eta, lambda := params[0], params[1], params[2], params[3]

	// ATM total variance and the power-law kernel phi(theta).
	theta := sigma * sigma * ttm
	phi := eta / math.Pow(theta, lambda)

	out := make([]float64, len(strikes))
	for i, strike := range strikes {
		k := math.Log(strike / forward)
		inner := math.Sqrt((phi*k+rho)*(phi*k+rho) + 1 - rho*rho)
		out[i] = 0.5 * theta * (1 + rho*phi*k + inner)
	}
	return out
}
