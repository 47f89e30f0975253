package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/investlab/vollab/pkg/server"
	"github.com/investlab/vollab/pkg/surface"
)

// FitRequest is the request body for /surfaces/fit
type FitRequest struct {
	Model      string    `json:"model"`
	Forward    float64   `json:"forward"`
	TTM        float64   `json:"ttm"`
	Strikes    []float64 `json:"strikes"`
	MarketVols []float64 `json:"market_vols"`

	// EvalStrikes optionally requests fitted vols on a different grid.
	// Defaults to Strikes.
	EvalStrikes []float64 `json:"eval_strikes,omitempty"`
}

// FitResponse is the response body for /surfaces/fit
type FitResponse struct {
	Model      string    `json:"model"`
	Params     []float64 `json:"params"`
	Strikes    []float64 `json:"strikes"`
	FittedVols []float64 `json:"fitted_vols"`
}

// RegisterSurfaceEndpoints registers the surface fitting endpoints
func RegisterSurfaceEndpoints(s *server.Server) {
	s.Router.HandleFunc("/surfaces/fit", handleFitSurface(s.Config.Smoother)).Methods("POST")
}

func handleFitSurface(defaultModel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		model := req.Model
		if model == "" {
			model = defaultModel
		}
		smoother, err := surface.New(model)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := smoother.Fit(req.Forward, req.Strikes, req.TTM, req.MarketVols); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		evalStrikes := req.EvalStrikes
		if len(evalStrikes) == 0 {
			evalStrikes = req.Strikes
		}
		vols, err := smoother.Vol(req.Forward, evalStrikes, req.TTM)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, FitResponse{
			Model:      model,
			Params:     smoother.Params(),
			Strikes:    evalStrikes,
			FittedVols: vols,
		})
	}
}
