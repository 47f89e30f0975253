package pricing

import (
	"math"
	"testing"
)

func TestImpliedVol(t *testing.T) {
	s, k, ttm, r := 100.0, 105.0, 0.5, 0.02
	trueSigma := 0.25

	price := Price(s, k, ttm, r, trueSigma, RightCall)
	got, err := ImpliedVol(price, s, k, ttm, r, RightCall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-trueSigma) > 1e-4 {
		t.Errorf("ImpliedVol = %v, want %v", got, trueSigma)
	}

	// The solver only returns once the repricing error is inside the
	// package tolerance.
	if diff := math.Abs(Price(s, k, ttm, r, got, RightCall) - price); diff >= DefaultTolerance {
		t.Errorf("repricing error %v, want < %v", diff, DefaultTolerance)
	}
}

func TestImpliedVolBelowIntrinsic(t *testing.T) {
	// No volatility can reprice an ITM call below its zero-vol value. The
	// Newton step overshoots negative, lands on the sigma floor, and the
	// solver must end in a clean non-convergence error.
	_, err := ImpliedVol(20.5, 100, 80, 0.25, 0.05, RightCall)
	if err == nil {
		t.Fatal("expected a non-convergence error for a below-intrinsic price")
	}
}

func TestImpliedVolsRoundTrip(t *testing.T) {
	sigmas := []float64{0.15, 0.22, 0.31, 0.45}
	s := []float64{100, 100, 100, 100}
	k := []float64{90, 100, 110, 120}
	ttm := []float64{0.25, 0.25, 0.5, 1}
	r := []float64{0.03, 0.03, 0.03, 0.03}
	rights := []Right{RightPut, RightCall, RightCall, RightCall}

	prices := make([]float64, len(sigmas))
	for i := range sigmas {
		prices[i] = Price(s[i], k[i], ttm[i], r[i], sigmas[i], rights[i])
	}

	got, err := ImpliedVols(prices, s, k, ttm, r, rights, IVOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range sigmas {
		if math.Abs(got[i]-sigmas[i]) > 1e-4 {
			t.Errorf("option %d: implied vol = %v, want %v", i, got[i], sigmas[i])
		}
	}
}

func TestImpliedVolsShapeMismatch(t *testing.T) {
	_, err := ImpliedVols(
		[]float64{1, 2},
		[]float64{100},
		[]float64{100},
		[]float64{1},
		[]float64{0},
		[]Right{RightCall},
		IVOptions{},
	)
	if err != ErrShapeMismatch {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestImpliedVolsClamped(t *testing.T) {
	// A price far above anything attainable drives the estimate into the cap.
	got, err := ImpliedVols(
		[]float64{1000},
		[]float64{100},
		[]float64{100},
		[]float64{0.1},
		[]float64{0},
		[]Right{RightCall},
		IVOptions{MaxIterations: 50},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] > maxSigma || got[0] < minSigma {
		t.Errorf("implied vol %v escaped clamp [%v, %v]", got[0], minSigma, maxSigma)
	}
}
