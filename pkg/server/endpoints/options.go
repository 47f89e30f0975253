package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/investlab/vollab/pkg/config"
	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/server"
	"github.com/investlab/vollab/pkg/server/store"
)

// OptionQuoteResponse is one option observation in API responses
type OptionQuoteResponse struct {
	Ticker            string  `json:"ticker"`
	OptionID          string  `json:"option_id"`
	Date              string  `json:"date"`
	Expiration        string  `json:"expiration"`
	Right             string  `json:"right"`
	Strike            float64 `json:"strike"`
	Spot              float64 `json:"spot"`
	Mid               float64 `json:"mid"`
	ImpliedVolatility float64 `json:"implied_volatility"`
	Delta             float64 `json:"delta"`
	DayToExpiration   int     `json:"day_to_expiration"`
}

// RegisterOptionsEndpoints registers the option quote endpoints
func RegisterOptionsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/options", handleListOptions(s.OptionsStore, s.Config)).Methods("GET")
}

func handleListOptions(optionsStore store.OptionsStore, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, err := parseDateRange(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var tickers []string
		if t := r.URL.Query().Get("ticker"); t != "" {
			if !cfg.HasTicker(t) {
				respondWithError(w, http.StatusNotFound, fmt.Sprintf("ticker %s is not served", t))
				return
			}
			tickers = []string{t}
		}

		records, err := optionsStore.FetchQuotes(start, end, tickers...)
		if err != nil {
			if errors.Is(err, store.ErrNoQuotes) {
				respondWithError(w, http.StatusNotFound, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if limit := cfg.ResultsListLimitMax; len(records) > limit {
			records = records[:limit]
		}

		out := make([]OptionQuoteResponse, len(records))
		for i, rec := range records {
			out[i] = OptionQuoteResponse{
				Ticker:            rec.Ticker,
				OptionID:          rec.OptionID,
				Date:              rec.Date.Format(marketdata.DateLayout),
				Expiration:        rec.Expiration.Format(marketdata.DateLayout),
				Right:             rec.Right.Code(),
				Strike:            rec.Strike,
				Spot:              rec.Spot,
				Mid:               rec.Mid,
				ImpliedVolatility: rec.ImpliedVol,
				Delta:             rec.Delta,
				DayToExpiration:   rec.DayToExpiration,
			}
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	start, err := time.Parse(marketdata.DateLayout, r.URL.Query().Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(marketdata.DateLayout, r.URL.Query().Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end must be a YYYY-MM-DD date")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end must not be before start")
	}
	return start, end, nil
}
