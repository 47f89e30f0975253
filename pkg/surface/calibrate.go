package surface

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/optimize"
)

const maxFitIterations = 1000

// bound is a box constraint on a single parameter. Open ends are expressed
// with +/-Inf.
type bound struct {
	lo, hi float64
}

func unbounded() bound             { return bound{math.Inf(-1), math.Inf(1)} }
func atLeast(lo float64) bound     { return bound{lo, math.Inf(1)} }
func between(lo, hi float64) bound { return bound{lo, hi} }

// toUnconstrained maps a bounded parameter onto the real line so that an
// unconstrained minimizer can search it. fromUnconstrained is the inverse.
func (b bound) toUnconstrained(x float64) float64 {
	switch {
	case math.IsInf(b.lo, -1) && math.IsInf(b.hi, 1):
		return x
	case math.IsInf(b.hi, 1):
		return math.Log(x - b.lo)
	case math.IsInf(b.lo, -1):
		return math.Log(b.hi - x)
	default:
		return math.Log((x - b.lo) / (b.hi - x))
	}
}

func (b bound) fromUnconstrained(u float64) float64 {
	switch {
	case math.IsInf(b.lo, -1) && math.IsInf(b.hi, 1):
		return u
	case math.IsInf(b.hi, 1):
		return b.lo + math.Exp(u)
	case math.IsInf(b.lo, -1):
		return b.hi - math.Exp(u)
	default:
		return b.lo + (b.hi-b.lo)/(1+math.Exp(-u))
	}
}

// clampInterior nudges a starting value strictly inside its bound so the
// transform stays finite.
func (b bound) clampInterior(x float64) float64 {
	const margin = 1e-8
	if !math.IsInf(b.lo, -1) && x <= b.lo {
		x = b.lo + margin
	}
	if !math.IsInf(b.hi, 1) && x >= b.hi {
		x = b.hi - margin
	}
	return x
}

// minimizeBounded minimizes objective over the box described by bounds,
// starting from initial. The search runs Nelder-Mead over the transformed
// (unconstrained) parameters, which preserves the box exactly.
func minimizeBounded(name string, objective func(params []float64) float64, initial []float64, bounds []bound) ([]float64, error) {
	if len(initial) != len(bounds) {
		return nil, fmt.Errorf("%s: %d initial parameters for %d bounds", name, len(initial), len(bounds))
	}

	u0 := make([]float64, len(initial))
	for i, b := range bounds {
		u0[i] = b.toUnconstrained(b.clampInterior(initial[i]))
	}

	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			params := make([]float64, len(u))
			for i, b := range bounds {
				params[i] = b.fromUnconstrained(u[i])
			}
			return objective(params)
		},
	}

	log.Printf("fitting %s model: initial guess %v", name, initial)
	result, err := optimize.Minimize(problem, u0, &optimize.Settings{
		MajorIterations: maxFitIterations,
	}, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%s calibration failed: %w", name, err)
	}

	fitted := make([]float64, len(result.X))
	for i, b := range bounds {
		fitted[i] = b.fromUnconstrained(result.X[i])
	}
	log.Printf("fitted %s model: params %v objective %v", name, fitted, result.F)
	return fitted, nil
}
