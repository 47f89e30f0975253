package rates

import (
	"errors"
	"time"
)

// DaysPerYear converts day counts to year fractions for discounting.
const DaysPerYear = 365

// Tenor is a labelled point on the par-yield curve.
type Tenor struct {
	Label string
	Years float64
}

// ParYieldTenors are the standard columns of the US Treasury par-yield
// curve dataset, in ascending maturity order.
var ParYieldTenors = []Tenor{
	{"1 Mo", 1.0 / 12},
	{"2 Mo", 2.0 / 12},
	{"3 Mo", 3.0 / 12},
	{"4 Mo", 4.0 / 12},
	{"6 Mo", 6.0 / 12},
	{"1 Yr", 1},
	{"2 Yr", 2},
	{"3 Yr", 3},
	{"5 Yr", 5},
	{"7 Yr", 7},
	{"10 Yr", 10},
	{"20 Yr", 20},
	{"30 Yr", 30},
}

// ErrCurveMismatch is returned when tenor and rate slices disagree in length.
var ErrCurveMismatch = errors.New("tenors and rate curve must have the same length")

// Curve is one day's rate curve, rates stored as decimals.
type Curve struct {
	Date   time.Time
	Tenors []float64
	Rates  []float64
}

// Rate interpolates the curve at the given tenor (in years).
func (c Curve) Rate(tenor float64) (float64, error) {
	return Interpolate(tenor, c.Tenors, c.Rates)
}

// Interpolate linearly interpolates a rate at evalTenor from known tenors
// and rates. Outside the known range the nearest rate is used flat.
func Interpolate(evalTenor float64, tenors, rates []float64) (float64, error) {
	if len(tenors) != len(rates) {
		return 0, ErrCurveMismatch
	}
	if len(tenors) == 0 {
		return 0, errors.New("empty rate curve")
	}

	minIdx, maxIdx := 0, 0
	for i := range tenors {
		if tenors[i] < tenors[minIdx] {
			minIdx = i
		}
		if tenors[i] > tenors[maxIdx] {
			maxIdx = i
		}
	}
	if evalTenor <= tenors[minIdx] {
		return rates[minIdx], nil
	}
	if evalTenor >= tenors[maxIdx] {
		return rates[maxIdx], nil
	}

	// Closest known tenor on each side of the evaluation point.
	below, above := minIdx, maxIdx
	for i := range tenors {
		if tenors[i] <= evalTenor && tenors[i] > tenors[below] {
			below = i
		}
		if tenors[i] >= evalTenor && tenors[i] < tenors[above] {
			above = i
		}
	}

	weightAbove := (evalTenor - tenors[below]) / (tenors[above] - tenors[below])
	return (1-weightAbove)*rates[below] + weightAbove*rates[above], nil
}
