package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFitSurface(t *testing.T) {
	handler := handleFitSurface("svi")

	t.Run("fits and returns vols", func(t *testing.T) {
		body, _ := json.Marshal(FitRequest{
			Model:      "sabr",
			Forward:    100,
			TTM:        0.5,
			Strikes:    []float64{80, 90, 100, 110, 120},
			MarketVols: []float64{0.28, 0.24, 0.21, 0.20, 0.205},
		})

		req := httptest.NewRequest("POST", "/surfaces/fit", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp FitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "sabr", resp.Model)
		assert.Len(t, resp.Params, 4)
		assert.Len(t, resp.FittedVols, 5)
		for _, v := range resp.FittedVols {
			assert.Greater(t, v, 0.0)
		}
	})

	t.Run("defaults to the configured model", func(t *testing.T) {
		body, _ := json.Marshal(FitRequest{
			Forward:    100,
			TTM:        0.5,
			Strikes:    []float64{80, 90, 100, 110, 120},
			MarketVols: []float64{0.28, 0.24, 0.21, 0.20, 0.205},
		})

		req := httptest.NewRequest("POST", "/surfaces/fit", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp FitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "svi", resp.Model)
	})

	t.Run("rejects unknown models", func(t *testing.T) {
		body, _ := json.Marshal(FitRequest{Model: "spline", Forward: 100, TTM: 0.5})

		req := httptest.NewRequest("POST", "/surfaces/fit", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects mismatched inputs", func(t *testing.T) {
		body, _ := json.Marshal(FitRequest{
			Model:      "svi",
			Forward:    100,
			TTM:        0.5,
			Strikes:    []float64{90, 100},
			MarketVols: []float64{0.2},
		})

		req := httptest.NewRequest("POST", "/surfaces/fit", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/surfaces/fit", bytes.NewReader([]byte("{")))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
