package options

import (
	"math"
	"time"

	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/pricing"
)

// SelectOptions finds, per ticker and date, the contract closest to the
// target maturity (in days) and then closest to the target strike under the
// chosen metric. Ties collapse to a single contract per (date, ticker).
func SelectOptions(records []marketdata.OptionRecord, right pricing.Right, metric StrikeMetric, strikeTarget float64, dayToExpiryTarget int) []marketdata.OptionRecord {
	byMaturity := selectClosestMaturity(records, dayToExpiryTarget)
	byStrike := selectClosestStrike(byMaturity, right, metric, strikeTarget)

	type key struct {
		date   time.Time
		ticker string
	}
	seen := make(map[key]bool)
	out := byStrike[:0]
	for _, r := range byStrike {
		k := key{r.Date, r.Ticker}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// selectClosestMaturity keeps, per (date, ticker), the records whose
// day-to-expiration is nearest the target.
func selectClosestMaturity(records []marketdata.OptionRecord, target int) []marketdata.OptionRecord {
	type key struct {
		date   time.Time
		ticker string
	}
	return selectCloseTarget(records, func(r marketdata.OptionRecord) any {
		return key{r.Date, r.Ticker}
	}, func(r marketdata.OptionRecord) float64 {
		return float64(r.DayToExpiration)
	}, float64(target))
}

// selectClosestStrike keeps, per (date, ticker, expiration), the records of
// the requested right whose metric value is nearest the target.
func selectClosestStrike(records []marketdata.OptionRecord, right pricing.Right, metric StrikeMetric, target float64) []marketdata.OptionRecord {
	filtered := make([]marketdata.OptionRecord, 0, len(records))
	for _, r := range records {
		if r.Right == right {
			filtered = append(filtered, r)
		}
	}

	type key struct {
		date       time.Time
		ticker     string
		expiration time.Time
	}
	return selectCloseTarget(filtered, func(r marketdata.OptionRecord) any {
		return key{r.Date, r.Ticker, r.Expiration}
	}, func(r marketdata.OptionRecord) float64 {
		return metricValue(r, metric)
	}, target)
}

func metricValue(r marketdata.OptionRecord, metric StrikeMetric) float64 {
	switch metric {
	case MetricMoneyness:
		return r.Moneyness
	case MetricDelta:
		return r.Delta
	default:
		return r.Strike
	}
}

// selectCloseTarget keeps, within each group, the records minimizing the
// absolute distance between value and target.
func selectCloseTarget(records []marketdata.OptionRecord, groupKey func(marketdata.OptionRecord) any, value func(marketdata.OptionRecord) float64, target float64) []marketdata.OptionRecord {
	best := make(map[any]float64)
	for _, r := range records {
		dist := math.Abs(value(r) - target)
		if cur, ok := best[groupKey(r)]; !ok || dist < cur {
			best[groupKey(r)] = dist
		}
	}

	out := make([]marketdata.OptionRecord, 0, len(best))
	for _, r := range records {
		if math.Abs(value(r)-target) == best[groupKey(r)] {
			out = append(out, r)
		}
	}
	return out
}
