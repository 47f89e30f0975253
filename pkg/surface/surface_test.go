package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/vollab/pkg/metrics"
)

func TestValidateInputs(t *testing.T) {
	tests := []struct {
		name    string
		forward float64
		strikes []float64
		ttm     float64
		vols    []float64
		wantErr bool
	}{
		{
			name:    "valid",
			forward: 100,
			strikes: []float64{90, 100, 110},
			ttm:     0.5,
			vols:    []float64{0.22, 0.2, 0.21},
		},
		{
			name:    "shape mismatch",
			forward: 100,
			strikes: []float64{90, 100},
			ttm:     0.5,
			vols:    []float64{0.2},
			wantErr: true,
		},
		{
			name:    "empty strikes",
			forward: 100,
			ttm:     0.5,
			wantErr: true,
		},
		{
			name:    "nan forward",
			forward: math.NaN(),
			strikes: []float64{100},
			ttm:     0.5,
			vols:    []float64{0.2},
			wantErr: true,
		},
		{
			name:    "nan strike",
			forward: 100,
			strikes: []float64{math.NaN()},
			ttm:     0.5,
			vols:    []float64{0.2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInputs(tt.forward, tt.strikes, tt.ttm, tt.vols)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBoundTransformRoundTrip(t *testing.T) {
	bounds := []bound{
		unbounded(),
		atLeast(1e-6),
		between(0, 1),
		between(-0.999, 0.999),
	}
	values := []float64{-3.2, 0.45, 0.7, -0.5}

	for i, b := range bounds {
		u := b.toUnconstrained(values[i])
		back := b.fromUnconstrained(u)
		assert.InDelta(t, values[i], back, 1e-9, "bound %d", i)
	}
}

func TestBoundClampInterior(t *testing.T) {
	b := between(0, 1)
	assert.Greater(t, b.clampInterior(0), 0.0)
	assert.Less(t, b.clampInterior(1), 1.0)
	assert.Equal(t, 0.5, b.clampInterior(0.5))
}

func TestSABRATMVol(t *testing.T) {
	s := NewSABR(0.3, 0.5, -0.2, 0.4)
	s.fitted = true

	vols, err := s.Vol(100, []float64{100}, 0.5)
	require.NoError(t, err)
	// ATM limit: alpha / F^(1-beta).
	assert.InDelta(t, 0.3/math.Pow(100, 0.5), vols[0], 1e-12)
}

func TestSABRFitRecoversSmile(t *testing.T) {
	forward, ttm := 100.0, 0.5
	strikes := []float64{80, 90, 95, 100, 105, 110, 120}
	trueParams := []float64{2.0, 0.7, -0.3, 0.9}
	marketVols := sabrVols(trueParams, forward, strikes, ttm)

	s := NewSABR(1.5, 0.5, 0.0, 0.5)
	require.NoError(t, s.Fit(forward, strikes, ttm, marketVols))

	fitted, err := s.Vol(forward, strikes, ttm)
	require.NoError(t, err)
	assert.Less(t, metrics.MSE(marketVols, fitted), 1e-5)

	p := s.Params()
	assert.GreaterOrEqual(t, p[1], 0.0)
	assert.LessOrEqual(t, p[1], 1.0)
	assert.Less(t, math.Abs(p[2]), 1.0)
}

func TestSVIFitRecoversSmile(t *testing.T) {
	forward, ttm := 100.0, 0.25
	strikes := []float64{80, 90, 95, 100, 105, 110, 120}
	trueParams := []float64{0.01, 0.1, -0.4, 0.0, 0.2}
	marketVols := sviVols(trueParams, forward, strikes, ttm)

	s := NewSVI(0.02, 0.2, 0.0, 0.1, 0.3)
	require.NoError(t, s.Fit(forward, strikes, ttm, marketVols))

	fitted, err := s.Vol(forward, strikes, ttm)
	require.NoError(t, err)
	assert.Less(t, metrics.MSE(marketVols, fitted), 1e-5)
}

func TestSVINegativeVarianceFloored(t *testing.T) {
	s := NewSVI(-1, 0, 0, 0, 0.1)
	s.fitted = true

	vols, err := s.Vol(100, []float64{100}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vols[0])
}

func TestSSVIFitRecoversSurfaceSlice(t *testing.T) {
	forward, ttm := 100.0, 0.5
	strikes := []float64{80, 90, 95, 100, 105, 110, 120}
	trueParams := []float64{0.2, -0.5, 1.2, 0.4}

	w := ssviTotalVariance(trueParams, forward, strikes, ttm)
	marketVols := make([]float64, len(w))
	for i := range w {
		marketVols[i] = math.Sqrt(w[i] / ttm)
	}

	s := NewSSVI(0.25, -0.2, 1.0, 0.3)
	require.NoError(t, s.Fit(forward, strikes, ttm, marketVols))

	fitted, err := s.Vol(forward, strikes, ttm)
	require.NoError(t, err)
	assert.Less(t, metrics.MSE(marketVols, fitted), 1e-5)

	p := s.Params()
	assert.LessOrEqual(t, p[3], 0.5)
	assert.Greater(t, p[2], 0.0)
}

func TestVolBeforeFit(t *testing.T) {
	smoothers := []Smoother{
		NewSABR(0.3, 0.5, 0, 0.4),
		NewSVI(0.01, 0.1, 0, 0, 0.2),
		NewSSVI(0.2, 0, 1, 0.3),
	}

	for _, s := range smoothers {
		_, err := s.Vol(100, []float64{100}, 1)
		assert.ErrorIs(t, err, ErrNotFitted)
	}
}

func TestFitVol(t *testing.T) {
	forward, ttm := 100.0, 0.5
	strikes := []float64{90, 100, 110}
	trueParams := []float64{2.0, 0.7, -0.3, 0.9}
	marketVols := sabrVols(trueParams, forward, strikes, ttm)

	fitted, err := FitVol(NewSABR(1.5, 0.5, 0, 0.5), forward, strikes, ttm, marketVols)
	require.NoError(t, err)
	require.Len(t, fitted, len(strikes))
}
