package options

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/rates"
)

// Trade is one leg entry selected on a rebalance day.
type Trade struct {
	marketdata.OptionRecord
	EntryDate time.Time
	LegName   string
	Weight    float64
}

// Position is one daily observation of an open trade, quotes merged in.
type Position struct {
	marketdata.OptionRecord
	EntryDate time.Time
	LegName   string
	Weight    float64

	// Stale marks positions whose quote was carried from a prior day.
	Stale bool
}

// Generator turns leg specifications into daily position series.
type Generator struct {
	// Curves supplies risk-free rates and forwards when the option data
	// has none attached.
	Curves []rates.Curve

	// CostNeutral rescales one side of each entry so premiums net to zero.
	CostNeutral bool
}

// GenerateTrades selects entries for every leg on its rebalance weekdays and
// expands them into business-daily positions until expiry, clipped to
// [start, end]. Quotes are forward-filled on days without an observation.
func (g Generator) GenerateTrades(records []marketdata.OptionRecord, legs []LegSpec, start, end time.Time) ([]Position, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no option data to generate trades from")
	}

	trades, err := g.selectTrades(records, legs)
	if err != nil {
		return nil, err
	}
	if g.CostNeutral {
		trades = neutralizeCost(trades)
	}
	trades = dedupeTrades(trades)

	positions := expandToDaily(trades, records, start, end)
	positions = dedupePositions(positions)
	forwardFill(positions)

	// Day counts drift as positions age past their last quote.
	for i := range positions {
		p := &positions[i]
		p.DayToExpiration = int(p.Expiration.Sub(p.Date).Hours() / 24)
	}

	if needsRates(positions) {
		if len(g.Curves) == 0 {
			return nil, fmt.Errorf("positions carry no risk-free rates and no curves were provided")
		}
		embedded := make([]marketdata.OptionRecord, len(positions))
		for i := range positions {
			embedded[i] = positions[i].OptionRecord
		}
		if err := rates.AttachForwards(embedded, g.Curves); err != nil {
			return nil, fmt.Errorf("attaching forwards: %w", err)
		}
		for i := range positions {
			positions[i].OptionRecord = embedded[i]
		}
	}

	return g.deltaHedge(positions), nil
}

// deltaHedge is a hook for adding an offsetting underlying position per
// date. The base generator holds options unhedged.
func (g Generator) deltaHedge(positions []Position) []Position {
	return positions
}

func (g Generator) selectTrades(records []marketdata.OptionRecord, legs []LegSpec) ([]Trade, error) {
	if len(legs) == 0 {
		return nil, fmt.Errorf("at least one leg is required")
	}

	var trades []Trade
	for _, leg := range legs {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
		log.Printf("selecting options for leg %q: target dte=%d %s=%v right=%s",
			leg.Name, leg.DayToExpiryTarget, leg.Metric, leg.StrikeTarget, leg.Right.Code())

		selected := SelectOptions(records, leg.Right, leg.Metric, leg.StrikeTarget, leg.DayToExpiryTarget)
		sort.SliceStable(selected, func(i, j int) bool { return selected[i].Date.Before(selected[j].Date) })

		rebalance := leg.rebalanceDays()
		lastWeight := math.NaN()
		for _, rec := range selected {
			// Weight in contracts per unit notional; carried forward
			// across days where the spot is missing.
			weight := lastWeight
			if rec.Spot != 0 {
				weight = leg.Weight / rec.Spot
			}
			lastWeight = weight

			if !rebalance[rec.Date.Weekday()] || math.IsNaN(weight) {
				continue
			}
			trades = append(trades, Trade{
				OptionRecord: rec,
				EntryDate:    rec.Date,
				LegName:      leg.Name,
				Weight:       weight,
			})
		}
	}
	return trades, nil
}

// neutralizeCost scales the deficient side of each (entry date, ticker)
// group so that long and short premiums offset.
func neutralizeCost(trades []Trade) []Trade {
	log.Print("adjusting weights to make the strategy cost neutral")

	type key struct {
		entry  time.Time
		ticker string
	}
	longPrem := make(map[key]float64)
	shortPrem := make(map[key]float64)
	for _, t := range trades {
		k := key{t.EntryDate, t.Ticker}
		premium := t.Weight * t.Mid
		if t.Weight > 0 {
			longPrem[k] += premium
		} else {
			shortPrem[k] += premium
		}
	}

	out := make([]Trade, len(trades))
	for i, t := range trades {
		k := key{t.EntryDate, t.Ticker}
		missing := -longPrem[k] - shortPrem[k]

		scale := 1.0
		switch {
		case missing < 0 && t.Weight < 0 && shortPrem[k] != 0:
			scale = (shortPrem[k] + missing) / shortPrem[k]
		case missing > 0 && t.Weight > 0 && longPrem[k] != 0:
			scale = (longPrem[k] + missing) / longPrem[k]
		}

		out[i] = t
		out[i].Weight = t.Weight * scale
	}
	return out
}

func dedupeTrades(trades []Trade) []Trade {
	type key struct {
		entry  time.Time
		leg    string
		ticker string
	}
	seen := make(map[key]bool)
	out := trades[:0]
	for _, t := range trades {
		k := key{t.EntryDate, t.LegName, t.Ticker}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}

// expandToDaily walks each trade from entry to expiration over business
// days and merges in that day's quote when one exists.
func expandToDaily(trades []Trade, records []marketdata.OptionRecord, start, end time.Time) []Position {
	type quoteKey struct {
		date time.Time
		id   string
	}
	quotes := make(map[quoteKey]marketdata.OptionRecord, len(records))
	for _, r := range records {
		quotes[quoteKey{r.Date, r.OptionID}] = r
	}

	log.Printf("converting %d trades to daily time series", len(trades))
	var positions []Position
	for _, t := range trades {
		for d := t.EntryDate; !d.After(t.Expiration); d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				continue
			}
			if !start.IsZero() && d.Before(start) {
				continue
			}
			if !end.IsZero() && d.After(end) {
				continue
			}

			pos := Position{
				EntryDate: t.EntryDate,
				LegName:   t.LegName,
				Weight:    t.Weight,
			}
			if q, ok := quotes[quoteKey{d, t.OptionID}]; ok {
				pos.OptionRecord = q
			} else {
				// Identity only; quote fields fill from the prior day.
				pos.OptionRecord = marketdata.OptionRecord{
					Ticker:     t.Ticker,
					OptionID:   t.OptionID,
					Date:       d,
					Expiration: t.Expiration,
					Right:      t.Right,
					Strike:     t.Strike,
				}
				pos.Stale = true
			}
			positions = append(positions, pos)
		}
	}
	return positions
}

func dedupePositions(positions []Position) []Position {
	type key struct {
		date time.Time
		leg  string
		id   string
	}
	seen := make(map[key]bool)
	out := positions[:0]
	for _, p := range positions {
		k := key{p.Date, p.LegName, p.OptionID}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// forwardFill carries the last observed quote fields forward within each
// option, ordered by date.
func forwardFill(positions []Position) {
	log.Print("forward filling option data for generated positions")

	sort.SliceStable(positions, func(i, j int) bool {
		if positions[i].OptionID != positions[j].OptionID {
			return positions[i].OptionID < positions[j].OptionID
		}
		return positions[i].Date.Before(positions[j].Date)
	})

	var prev *marketdata.OptionRecord
	for i := range positions {
		p := &positions[i]
		if p.Stale && prev != nil && prev.OptionID == p.OptionID {
			date := p.Date
			p.OptionRecord = *prev
			p.Date = date
		}
		prev = &p.OptionRecord
	}
}

func needsRates(positions []Position) bool {
	for _, p := range positions {
		if p.RiskFreeRate != 0 {
			return false
		}
	}
	return len(positions) > 0
}
