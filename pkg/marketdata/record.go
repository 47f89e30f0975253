package marketdata

import (
	"sort"
	"time"

	"github.com/investlab/vollab/pkg/pricing"
)

// OptionRecord is one daily observation of a listed option.
type OptionRecord struct {
	Ticker     string
	OptionID   string
	Date       time.Time
	Expiration time.Time
	Right      pricing.Right
	Strike     float64
	Spot       float64
	Bid        float64
	Mid        float64
	Ask        float64
	Volume     float64
	Delta      float64
	ImpliedVol float64

	// Derived fields, populated by ComputeDerivedFields.
	DayToExpiration int
	Moneyness       float64

	// Populated by the rates layer.
	RiskFreeRate float64
	Forward      float64
}

// SpotPoint is the underlying price observed on a date.
type SpotPoint struct {
	Date time.Time
	Spot float64
}

// ComputeDerivedFields fills DayToExpiration and Moneyness in place.
func ComputeDerivedFields(records []OptionRecord) {
	for i := range records {
		r := &records[i]
		r.DayToExpiration = int(r.Expiration.Sub(r.Date).Hours() / 24)
		if r.Spot != 0 {
			r.Moneyness = r.Strike / r.Spot
		}
	}
}

// SettleExpiring replaces bid/mid/ask with the intrinsic payoff on the
// expiration date, so expiring options mark at their settlement value.
func SettleExpiring(records []OptionRecord) {
	for i := range records {
		r := &records[i]
		if !r.Date.Equal(r.Expiration) {
			continue
		}
		payoff := callPayoff(r.Spot, r.Strike)
		if r.Right == pricing.RightPut {
			payoff = putPayoff(r.Spot, r.Strike)
		}
		r.Bid, r.Mid, r.Ask = payoff, payoff, payoff
	}
}

func callPayoff(spot, strike float64) float64 {
	if spot > strike {
		return spot - strike
	}
	return 0
}

func putPayoff(spot, strike float64) float64 {
	if strike > spot {
		return strike - spot
	}
	return 0
}

// ExtractSpots pulls the daily spot series from a cross section of options,
// keeping the first observation per date, sorted by date.
func ExtractSpots(records []OptionRecord) []SpotPoint {
	seen := make(map[time.Time]bool)
	var out []SpotPoint
	for _, r := range records {
		if seen[r.Date] {
			continue
		}
		seen[r.Date] = true
		out = append(out, SpotPoint{Date: r.Date, Spot: r.Spot})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
