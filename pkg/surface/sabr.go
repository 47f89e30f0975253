package surface

import (
	"fmt"
	"math"

	"github.com/investlab/vollab/pkg/metrics"
)

// Ensure SABR implements Smoother
var _ Smoother = (*SABR)(nil)

// SABR is the Hagan lognormal SABR smile approximation with parameters
// (alpha, beta, rho, nu).
type SABR struct {
	params []float64
	fitted bool
}

// NewSABR creates a SABR smoother from an initial (alpha, beta, rho, nu)
// guess.
func NewSABR(alpha, beta, rho, nu float64) *SABR {
	return &SABR{params: []float64{alpha, beta, rho, nu}}
}

// Params returns (alpha, beta, rho, nu).
func (s *SABR) Params() []float64 {
	out := make([]float64, len(s.params))
	copy(out, s.params)
	return out
}

// Fit calibrates (alpha, beta, rho, nu) by minimizing the MSE between model
// and market implied vols. Bounds: alpha > 0, beta in [0, 1], |rho| < 0.999,
// nu > 0.
func (s *SABR) Fit(forward float64, strikes []float64, ttm float64, marketVols []float64) error {
	if err := validateInputs(forward, strikes, ttm, marketVols); err != nil {
		return fmt.Errorf("sabr fit: %w", err)
	}

	bounds := []bound{atLeast(1e-6), between(0, 1), between(-0.999, 0.999), atLeast(1e-6)}
	fitted, err := minimizeBounded("SABR", func(params []float64) float64 {
		model := sabrVols(params, forward, strikes, ttm)
		return metrics.MSE(marketVols, model)
	}, s.params, bounds)
	if err != nil {
		return err
	}

	s.params = fitted
	s.fitted = true
	return nil
}

// Vol evaluates the Hagan SABR implied volatility at each strike.
func (s *SABR) Vol(forward float64, strikes []float64, ttm float64) ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	return sabrVols(s.params, forward, strikes, ttm), nil
}

func sabrVols(params []float64, forward float64, strikes []float64, ttm float64) []float64 {
	alpha, beta, rho, nu := params[0], params[1], params[2], params[3]

	out := make([]float64, len(strikes))
	for i, strike := range strikes {
		if forward == strike {
			// ATM limit of the Hagan expansion.
			out[i] = alpha / math.Pow(forward, 1-beta)
			continue
		}

		fkPow := math.Pow(forward*strike, (1-beta)/2)
		logFK := math.Log(forward / strike)

		z := (nu / alpha) * fkPow * logFK
		chi := math.Log((math.Sqrt(1-2*rho*z+z*z) + z - rho) / (1 - rho))

		denom := fkPow * (1 +
			(math.Pow(1-beta, 2)/24)*logFK*logFK +
			(math.Pow(1-beta, 4)/1920)*math.Pow(logFK, 4))

		vol := (alpha / denom) * (z / chi)
		out[i] = vol * math.Sqrt(1+
			(math.Pow(1-beta, 2)/24)*math.Pow(alpha/fkPow, 2)*ttm+
			(rho*beta*nu*alpha/fkPow)*ttm+
			((2-3*rho*rho)/24)*nu*nu*ttm)
	}
	return out
}
