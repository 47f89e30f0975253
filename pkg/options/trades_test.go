package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/pricing"
	"github.com/investlab/vollab/pkg/rates"
)

func withRate(r marketdata.OptionRecord, rate float64) marketdata.OptionRecord {
	r.RiskFreeRate = rate
	return r
}

func TestGenerateTradesExpandsAndForwardFills(t *testing.T) {
	entry := day(2024, time.January, 2) // a Tuesday
	exp := day(2024, time.January, 9)

	records := []marketdata.OptionRecord{
		withRate(quote("C100", entry, exp, pricing.RightCall, 100, 100, 1.2), 0.05),
		withRate(quote("C100", day(2024, time.January, 3), exp, pricing.RightCall, 100, 101, 1.0), 0.05),
		withRate(quote("C100", day(2024, time.January, 4), exp, pricing.RightCall, 100, 100, 0.9), 0.05),
		withRate(quote("C100", exp, exp, pricing.RightCall, 100, 102, 2.0), 0.05),
	}

	legs := []LegSpec{{Name: "Long ATM Call 1W", DayToExpiryTarget: 7, StrikeTarget: 1, Metric: MetricMoneyness, Right: pricing.RightCall, Weight: 1}}

	positions, err := Generator{}.GenerateTrades(records, legs, time.Time{}, time.Time{})
	require.NoError(t, err)

	// Business days Jan 2-9 inclusive, weekend skipped.
	require.Len(t, positions, 6)
	for _, p := range positions {
		assert.Equal(t, entry, p.EntryDate)
		assert.InDelta(t, 0.01, p.Weight, 1e-12)
	}

	byDate := make(map[time.Time]Position)
	for _, p := range positions {
		byDate[p.Date] = p
	}

	// Friday and Monday have no quote and carry Thursday's.
	friday := byDate[day(2024, time.January, 5)]
	assert.True(t, friday.Stale)
	assert.Equal(t, 0.9, friday.Mid)
	assert.Equal(t, 4, friday.DayToExpiration)

	monday := byDate[day(2024, time.January, 8)]
	assert.True(t, monday.Stale)
	assert.Equal(t, 0.9, monday.Mid)
	assert.Equal(t, 1, monday.DayToExpiration)

	// Expiry day uses its own quote.
	last := byDate[exp]
	assert.False(t, last.Stale)
	assert.Equal(t, 2.0, last.Mid)
	assert.Equal(t, 0, last.DayToExpiration)
}

func TestGenerateTradesRebalanceWeekdayFilter(t *testing.T) {
	exp := day(2024, time.January, 31)
	records := []marketdata.OptionRecord{
		withRate(quote("C100", day(2024, time.January, 2), exp, pricing.RightCall, 100, 100, 2.0), 0.05),
		withRate(quote("C100", day(2024, time.January, 3), exp, pricing.RightCall, 100, 100, 2.0), 0.05),
	}

	legs := []LegSpec{{
		Name: "leg", DayToExpiryTarget: 28, StrikeTarget: 1, Metric: MetricMoneyness,
		Right: pricing.RightCall, Weight: 1,
		RebalanceWeekdays: []time.Weekday{time.Wednesday},
	}}

	positions, err := Generator{}.GenerateTrades(records, legs, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, positions)
	for _, p := range positions {
		assert.Equal(t, day(2024, time.January, 3), p.EntryDate)
	}
}

func TestGenerateTradesClipsToRange(t *testing.T) {
	entry := day(2024, time.January, 2)
	exp := day(2024, time.January, 9)
	records := []marketdata.OptionRecord{
		withRate(quote("C100", entry, exp, pricing.RightCall, 100, 100, 1.2), 0.05),
	}
	legs := []LegSpec{{Name: "leg", DayToExpiryTarget: 7, StrikeTarget: 1, Metric: MetricMoneyness, Right: pricing.RightCall, Weight: 1}}

	positions, err := Generator{}.GenerateTrades(records, legs, entry, day(2024, time.January, 4))
	require.NoError(t, err)
	require.Len(t, positions, 3)
	assert.Equal(t, day(2024, time.January, 4), positions[len(positions)-1].Date)
}

func TestGenerateTradesAttachesForwards(t *testing.T) {
	entry := day(2024, time.January, 2)
	exp := day(2024, time.January, 9)
	records := []marketdata.OptionRecord{
		quote("C100", entry, exp, pricing.RightCall, 100, 100, 1.2),
	}
	legs := []LegSpec{{Name: "leg", DayToExpiryTarget: 7, StrikeTarget: 1, Metric: MetricMoneyness, Right: pricing.RightCall, Weight: 1}}

	curves := []rates.Curve{{
		Date:   day(2024, time.January, 1),
		Tenors: []float64{1.0 / 12, 1},
		Rates:  []float64{0.05, 0.05},
	}}

	positions, err := Generator{Curves: curves}.GenerateTrades(records, legs, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, positions)
	assert.InDelta(t, 0.05, positions[0].RiskFreeRate, 1e-12)
	assert.Greater(t, positions[0].Forward, 100.0)

	_, err = Generator{}.GenerateTrades(records, legs, time.Time{}, time.Time{})
	assert.ErrorContains(t, err, "no curves were provided")
}

func TestGenerateTradesErrors(t *testing.T) {
	_, err := Generator{}.GenerateTrades(nil, nil, time.Time{}, time.Time{})
	assert.ErrorContains(t, err, "no option data")

	records := []marketdata.OptionRecord{
		quote("C100", day(2024, time.January, 2), day(2024, time.January, 9), pricing.RightCall, 100, 100, 1.2),
	}
	_, err = Generator{}.GenerateTrades(records, nil, time.Time{}, time.Time{})
	assert.ErrorContains(t, err, "at least one leg is required")
}

func TestNeutralizeCost(t *testing.T) {
	entry := day(2024, time.January, 2)
	exp := day(2024, time.January, 9)

	long := Trade{
		OptionRecord: quote("C100", entry, exp, pricing.RightCall, 100, 100, 2.0),
		EntryDate:    entry, LegName: "long", Weight: 0.01,
	}
	short := Trade{
		OptionRecord: quote("P100", entry, exp, pricing.RightPut, 100, 100, 1.0),
		EntryDate:    entry, LegName: "short", Weight: -0.01,
	}

	out := neutralizeCost([]Trade{long, short})
	require.Len(t, out, 2)

	// Short premium is scaled up to offset the long premium.
	assert.InDelta(t, 0.01, out[0].Weight, 1e-12)
	assert.InDelta(t, -0.02, out[1].Weight, 1e-12)

	net := out[0].Weight*out[0].Mid + out[1].Weight*out[1].Mid
	assert.InDelta(t, 0, net, 1e-12)
}

func TestNeutralizeCostScalesLongSide(t *testing.T) {
	entry := day(2024, time.January, 2)
	exp := day(2024, time.January, 9)

	long := Trade{
		OptionRecord: quote("C100", entry, exp, pricing.RightCall, 100, 100, 1.0),
		EntryDate:    entry, LegName: "long", Weight: 0.01,
	}
	short := Trade{
		OptionRecord: quote("P100", entry, exp, pricing.RightPut, 100, 100, 4.0),
		EntryDate:    entry, LegName: "short", Weight: -0.01,
	}

	out := neutralizeCost([]Trade{long, short})
	assert.InDelta(t, 0.04, out[0].Weight, 1e-12)
	assert.InDelta(t, -0.01, out[1].Weight, 1e-12)
}
