package endpoints

import (
	"errors"
	"net/http"

	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/server"
	"github.com/investlab/vollab/pkg/server/store"
)

// CurveResponse is one par-yield curve in API responses
type CurveResponse struct {
	Date   string    `json:"date"`
	Tenors []float64 `json:"tenors"`
	Rates  []float64 `json:"rates"`
}

// RegisterRatesEndpoints registers the rate curve endpoints
func RegisterRatesEndpoints(s *server.Server) {
	s.Router.HandleFunc("/rates", handleListRates(s.RatesStore)).Methods("GET")
}

func handleListRates(ratesStore store.RatesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, err := parseDateRange(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		curves, err := ratesStore.FetchCurves(start, end)
		if err != nil {
			if errors.Is(err, store.ErrNoCurves) {
				respondWithError(w, http.StatusNotFound, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]CurveResponse, len(curves))
		for i, c := range curves {
			out[i] = CurveResponse{
				Date:   c.Date.Format(marketdata.DateLayout),
				Tenors: c.Tenors,
				Rates:  c.Rates,
			}
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}
