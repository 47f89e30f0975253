// Package strategy ships the builtin book of option strategies as leg
// specifications ready for trade generation.
package strategy

import (
	"fmt"
	"sort"
	"time"

	"github.com/investlab/vollab/pkg/options"
	"github.com/investlab/vollab/pkg/pricing"
)

const (
	week  = 7
	month = 7 * 4
)

var wednesday = []time.Weekday{time.Wednesday}

// CalendarSpread1W1MATMCall sells the 1W ATM call against a quarter-weight
// 1M ATM call.
var CalendarSpread1W1MATMCall = []options.LegSpec{
	{Name: "Short ATM Call 1W", DayToExpiryTarget: week, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1, RebalanceWeekdays: wednesday},
	{Name: "Long ATM Call 1M", DayToExpiryTarget: month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
}

var CalendarSpread1M6MATMCall = []options.LegSpec{
	{Name: "Short ATM Call 1M", DayToExpiryTarget: month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
	{Name: "Long ATM Call 6M", DayToExpiryTarget: 6 * month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: 1.0 / 24, RebalanceWeekdays: wednesday},
}

var CalendarSpread1W1MATMPut = []options.LegSpec{
	{Name: "Short ATM Put 1W", DayToExpiryTarget: week, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: -1, RebalanceWeekdays: wednesday},
	{Name: "Long ATM Put 1M", DayToExpiryTarget: month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
}

var ReverseCalendarSpread1W1MATMCall = []options.LegSpec{
	{Name: "Long ATM Call 1W", DayToExpiryTarget: week, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: 1, RebalanceWeekdays: wednesday},
	{Name: "Short ATM Call 1M", DayToExpiryTarget: month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
}

var ReverseCalendarSpread1M6MATMCall = []options.LegSpec{
	{Name: "Long ATM Call 1M", DayToExpiryTarget: month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
	{Name: "Short ATM Call 6M", DayToExpiryTarget: 6 * month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1.0 / 24, RebalanceWeekdays: wednesday},
}

var ReverseCalendarSpread1W1MATMPut = []options.LegSpec{
	{Name: "Long ATM Put 1W", DayToExpiryTarget: week, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: 1, RebalanceWeekdays: wednesday},
	{Name: "Short ATM Put 1M", DayToExpiryTarget: month, StrikeTarget: 1, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
}

var Short1WStraddle = []options.LegSpec{
	{Name: "Short ATM Put 1W", DayToExpiryTarget: week, StrikeTarget: -0.5, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: -1.0 / 2, RebalanceWeekdays: wednesday},
	{Name: "Short ATM Call 1W", DayToExpiryTarget: week, StrikeTarget: 0.5, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: -1.0 / 2, RebalanceWeekdays: wednesday},
}

var Short1MStraddle = []options.LegSpec{
	{Name: "Short ATM Put 1M", DayToExpiryTarget: month, StrikeTarget: -0.5, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: -1.0 / 2, RebalanceWeekdays: wednesday},
	{Name: "Short ATM Call 1M", DayToExpiryTarget: month, StrikeTarget: 0.5, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: -1.0 / 2, RebalanceWeekdays: wednesday},
}

// Short1WStrangle95105 staggers entries across Monday, Wednesday and Friday.
var Short1WStrangle95105 = []options.LegSpec{
	{Name: "Short K=95% Put 1W", DayToExpiryTarget: week, StrikeTarget: 0.95, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: -1.0 / 6, RebalanceWeekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
	{Name: "Short K=105% Call 1W", DayToExpiryTarget: week, StrikeTarget: 1.05, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1.0 / 6, RebalanceWeekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
}

var Short1WStrangle20D = []options.LegSpec{
	{Name: "Short 20D Put 1W", DayToExpiryTarget: week, StrikeTarget: -0.2, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: -1.0 / 2, RebalanceWeekdays: wednesday},
	{Name: "Short 20D Call 1W", DayToExpiryTarget: week, StrikeTarget: 0.2, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: -1.0 / 2, RebalanceWeekdays: wednesday},
}

var RiskReversal1W15D = []options.LegSpec{
	{Name: "Short 15D Put 1W", DayToExpiryTarget: week, StrikeTarget: -0.15, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: -1, RebalanceWeekdays: wednesday},
	{Name: "Long 15D Call 1W", DayToExpiryTarget: week, StrikeTarget: 0.15, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: 1, RebalanceWeekdays: wednesday},
}

var RiskReversal1M15D = []options.LegSpec{
	{Name: "Short 15D Put 1M", DayToExpiryTarget: month, StrikeTarget: -0.15, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
	{Name: "Long 15D Call 1M", DayToExpiryTarget: month, StrikeTarget: 0.25, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
}

var InverseRiskReversal1W15D = []options.LegSpec{
	{Name: "Long 15D Put 1W", DayToExpiryTarget: week, StrikeTarget: -0.15, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: 1, RebalanceWeekdays: wednesday},
	{Name: "Short 15D Call 1W", DayToExpiryTarget: week, StrikeTarget: 0.15, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: -1, RebalanceWeekdays: wednesday},
}

var InverseRiskReversal1M15D = []options.LegSpec{
	{Name: "Long 15D Put 1M", DayToExpiryTarget: month, StrikeTarget: -0.15, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
	{Name: "Short 15D Call 1M", DayToExpiryTarget: month, StrikeTarget: 0.15, Metric: options.MetricDelta, Right: pricing.RightCall, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
}

var LongCallSpread1M100105 = []options.LegSpec{
	{Name: "Long K=100% Call 1M", DayToExpiryTarget: month, StrikeTarget: 1.0, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
	{Name: "Short K=105% Call 1M", DayToExpiryTarget: month, StrikeTarget: 1.05, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
}

var LongCallSpread1W100105 = []options.LegSpec{
	{Name: "Long K=100% Call 1W", DayToExpiryTarget: week, StrikeTarget: 1.0, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: 1, RebalanceWeekdays: wednesday},
	{Name: "Short K=105% Call 1W", DayToExpiryTarget: week, StrikeTarget: 1.05, Metric: options.MetricMoneyness, Right: pricing.RightCall, Weight: -1, RebalanceWeekdays: wednesday},
}

var ShortPutSpread1W98100 = []options.LegSpec{
	{Name: "Short K=100% Put 1W", DayToExpiryTarget: week, StrikeTarget: 1.0, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: -1, RebalanceWeekdays: wednesday},
	{Name: "Long K=98% Put 1W", DayToExpiryTarget: week, StrikeTarget: 0.98, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: 1, RebalanceWeekdays: wednesday},
}

var ShortPutSpread1M95100 = []options.LegSpec{
	{Name: "Short K=100% Put 1M", DayToExpiryTarget: month, StrikeTarget: 1.0, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: -1.0 / 4, RebalanceWeekdays: wednesday},
	{Name: "Long K=95% Put 1M", DayToExpiryTarget: month, StrikeTarget: 0.95, Metric: options.MetricMoneyness, Right: pricing.RightPut, Weight: 1.0 / 4, RebalanceWeekdays: wednesday},
}

var ShortPutSpread1W20D40D = []options.LegSpec{
	{Name: "Short 30D Put 1W", DayToExpiryTarget: week, StrikeTarget: -0.3, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: -1, RebalanceWeekdays: wednesday},
	{Name: "Long 10D Put 1W", DayToExpiryTarget: week, StrikeTarget: -0.1, Metric: options.MetricDelta, Right: pricing.RightPut, Weight: 1, RebalanceWeekdays: wednesday},
}

// book maps CLI-facing strategy names to their legs.
var book = map[string][]options.LegSpec{
	"calendar-spread-1w-1m-atm-call":         CalendarSpread1W1MATMCall,
	"calendar-spread-1m-6m-atm-call":         CalendarSpread1M6MATMCall,
	"calendar-spread-1w-1m-atm-put":          CalendarSpread1W1MATMPut,
	"reverse-calendar-spread-1w-1m-atm-call": ReverseCalendarSpread1W1MATMCall,
	"reverse-calendar-spread-1m-6m-atm-call": ReverseCalendarSpread1M6MATMCall,
	"reverse-calendar-spread-1w-1m-atm-put":  ReverseCalendarSpread1W1MATMPut,
	"short-1w-straddle":                      Short1WStraddle,
	"short-1m-straddle":                      Short1MStraddle,
	"short-1w-strangle-95-105":               Short1WStrangle95105,
	"short-1w-strangle-20d":                  Short1WStrangle20D,
	"risk-reversal-1w-15d":                   RiskReversal1W15D,
	"risk-reversal-1m-15d":                   RiskReversal1M15D,
	"inverse-risk-reversal-1w-15d":           InverseRiskReversal1W15D,
	"inverse-risk-reversal-1m-15d":           InverseRiskReversal1M15D,
	"long-call-spread-1m-100-105":            LongCallSpread1M100105,
	"long-call-spread-1w-100-105":            LongCallSpread1W100105,
	"short-put-spread-1w-98-100":             ShortPutSpread1W98100,
	"short-put-spread-1m-95-100":             ShortPutSpread1M95100,
	"short-put-spread-1w-20d-40d":            ShortPutSpread1W20D40D,
}

// Lookup returns the legs of a named strategy.
func Lookup(name string) ([]options.LegSpec, error) {
	legs, ok := book[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return legs, nil
}

// Names lists the builtin strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(book))
	for name := range book {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
