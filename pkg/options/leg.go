package options

import (
	"fmt"
	"time"

	"github.com/investlab/vollab/pkg/pricing"
)

// LegSpec describes one leg of an option strategy: which contract to pick
// and how to hold it.
type LegSpec struct {
	// Name labels the leg in generated trades and reports.
	Name string

	// DayToExpiryTarget is the target maturity in calendar days.
	DayToExpiryTarget int

	// StrikeTarget is interpreted against Metric (an absolute strike, a
	// moneyness ratio, or a delta).
	StrikeTarget float64

	// Metric selects the column the strike target applies to.
	Metric StrikeMetric

	// Right filters the selection to calls or puts.
	Right pricing.Right

	// Weight is the signed notional weight; it is divided by spot at entry.
	Weight float64

	// RebalanceWeekdays are the weekdays on which new entries open.
	// Defaults to Tuesday when empty.
	RebalanceWeekdays []time.Weekday
}

// rebalanceDays returns the effective rebalance weekday set.
func (l LegSpec) rebalanceDays() map[time.Weekday]bool {
	days := l.RebalanceWeekdays
	if len(days) == 0 {
		days = []time.Weekday{time.Tuesday}
	}
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// Validate rejects malformed legs before any selection runs.
func (l LegSpec) Validate() error {
	if l.DayToExpiryTarget <= 0 {
		return fmt.Errorf("leg %q: day-to-expiry target must be positive", l.Name)
	}
	if !l.Metric.IsAStrikeMetric() {
		return fmt.Errorf("leg %q: invalid strike metric", l.Name)
	}
	for _, d := range l.RebalanceWeekdays {
		if d < time.Monday || d > time.Friday {
			return fmt.Errorf("leg %q: rebalance weekday must be a trading day, got %s", l.Name, d)
		}
	}
	return nil
}
