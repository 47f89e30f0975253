package rates

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/investlab/vollab/pkg/marketdata"
)

// AttachForwards fills RiskFreeRate and Forward on each option record by
// interpolating that day's curve at the option's time to expiry. When a
// date has no curve, the most recent prior curve is used; records before
// the first curve are an error.
func AttachForwards(records []marketdata.OptionRecord, curves []Curve) error {
	if len(curves) == 0 {
		return fmt.Errorf("no rate curves provided")
	}

	sorted := make([]Curve, len(curves))
	copy(sorted, curves)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	for i := range records {
		r := &records[i]

		curve, ok := curveAsOf(sorted, r.Date)
		if !ok {
			return fmt.Errorf("no rate curve on or before %s", r.Date.Format(marketdata.DateLayout))
		}

		ttm := float64(r.DayToExpiration) / DaysPerYear
		rate, err := curve.Rate(ttm)
		if err != nil {
			return fmt.Errorf("interpolating curve for %s: %w", r.Date.Format(marketdata.DateLayout), err)
		}

		r.RiskFreeRate = rate
		r.Forward = r.Spot * math.Exp(rate*ttm)
	}
	return nil
}

// curveAsOf returns the latest curve dated on or before date.
func curveAsOf(sorted []Curve, date time.Time) (Curve, bool) {
	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Date.After(date) })
	if idx == 0 {
		return Curve{}, false
	}
	return sorted[idx-1], true
}
