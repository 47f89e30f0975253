// Package backtest runs daily PnL-attributed backtests over generated
// option positions and compounds them into a NAV series.
package backtest

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/investlab/vollab/pkg/options"
	"github.com/investlab/vollab/pkg/pricing"
	"github.com/investlab/vollab/pkg/rates"
)

// ErrNotRun is returned by result accessors before Run has completed.
var ErrNotRun = errors.New("backtest has not been run yet, call Run first")

// Row is one dated position observation with its greeks, the unit the
// backtest consumes.
type Row struct {
	Date         time.Time
	OptionID     string
	Weight       float64
	Mid          float64
	EntryDate    time.Time
	Expiration   time.Time
	Spot         float64
	ImpliedVol   float64
	RiskFreeRate float64
	Greeks       pricing.Greeks
}

// PnLPoint is the attributed profit and loss of one date.
type PnLPoint struct {
	Date        time.Time
	PnL         float64
	DeltaPnL    float64
	GammaPnL    float64
	ThetaPnL    float64
	VegaPnL     float64
	RhoPnL      float64
	ResidualPnL float64
}

// NAVPoint is the compounded net asset value on one date.
type NAVPoint struct {
	Date time.Time
	NAV  float64
}

// MetaPoint carries the non-PnL aggregates of one date.
type MetaPoint struct {
	Date     time.Time
	Leverage float64
	Cashflow float64
}

// DriftedRow is a position row after NAV scaling and attribution, kept for
// position-level inspection.
type DriftedRow struct {
	Row
	ScaledWeight float64
	PnL          float64
	DeltaPnL     float64
	GammaPnL     float64
	ThetaPnL     float64
	VegaPnL      float64
	RhoPnL       float64
	ResidualPnL  float64
	Leverage     float64
	Cashflow     float64
}

// Backtester computes daily PnL attribution and NAV over position rows.
// Construct with NewBacktester, then call Run before reading results.
type Backtester struct {
	rows []Row
	ran  bool

	pnl     []PnLPoint
	nav     []NAVPoint
	meta    []MetaPoint
	drifted []DriftedRow
}

// NewBacktester validates the position rows. At least three rows are
// required, each with a date and an option id.
func NewBacktester(rows []Row) (*Backtester, error) {
	if len(rows) <= 2 {
		return nil, fmt.Errorf("positions data is empty or too small to run a backtest")
	}
	for i, r := range rows {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("position row %d is missing a date", i)
		}
		if r.OptionID == "" {
			return nil, fmt.Errorf("position row %d is missing an option id", i)
		}
	}
	return &Backtester{rows: rows}, nil
}

// RowsFromPositions converts generated positions to backtest rows,
// computing greeks from the quoted implied volatility.
func RowsFromPositions(positions []options.Position) []Row {
	rows := make([]Row, len(positions))
	for i, p := range positions {
		ttm := float64(p.DayToExpiration) / rates.DaysPerYear
		rows[i] = Row{
			Date:         p.Date,
			OptionID:     p.OptionID,
			Weight:       p.Weight,
			Mid:          p.Mid,
			EntryDate:    p.EntryDate,
			Expiration:   p.Expiration,
			Spot:         p.Spot,
			ImpliedVol:   p.ImpliedVol,
			RiskFreeRate: p.RiskFreeRate,
			Greeks:       pricing.AllGreeks(p.Spot, p.Strike, ttm, p.RiskFreeRate, p.ImpliedVol, p.Right),
		}
	}
	return rows
}

// deltas holds the day-over-day differences and prior-day greeks of one row.
type deltas struct {
	dv, dr, dsigma, ds float64
	prev               pricing.Greeks
}

// Run executes the backtest. PnL is attributed against the prior day's
// greeks, each day's total is added to the NAV observed the day before, and
// the NAV series is seeded at 1 on the day before the first position date.
func (b *Backtester) Run() error {
	rows := make([]Row, len(b.rows))
	copy(rows, b.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OptionID != rows[j].OptionID {
			return rows[i].OptionID < rows[j].OptionID
		}
		return rows[i].Date.Before(rows[j].Date)
	})

	log.Print("computing period to period differences")
	diffs := computeDeltas(rows)

	byDate := make(map[time.Time][]int)
	var dates []time.Time
	for i, r := range rows {
		if _, ok := byDate[r.Date]; !ok {
			dates = append(dates, r.Date)
		}
		byDate[r.Date] = append(byDate[r.Date], i)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	seed := dates[0].AddDate(0, 0, -1)
	pnl := []PnLPoint{{Date: seed}}
	meta := []MetaPoint{{Date: seed}}
	nav := []NAVPoint{{Date: seed, NAV: 1}}

	log.Printf("starting backtest computation over %d unique dates", len(dates))
	var drifted []DriftedRow
	for _, d := range dates {
		obs := d.AddDate(0, 0, -1)
		navObs := navAsOf(nav, obs)

		var day PnLPoint
		var dayMeta MetaPoint
		day.Date, dayMeta.Date = d, d
		for _, i := range byDate[d] {
			row := computeRow(rows[i], diffs[i], navObs)
			day.PnL += row.PnL
			day.DeltaPnL += row.DeltaPnL
			day.GammaPnL += row.GammaPnL
			day.ThetaPnL += row.ThetaPnL
			day.VegaPnL += row.VegaPnL
			day.RhoPnL += row.RhoPnL
			day.ResidualPnL += row.ResidualPnL
			dayMeta.Leverage += row.Leverage
			dayMeta.Cashflow += row.Cashflow
			drifted = append(drifted, row)
		}

		pnl = append(pnl, day)
		meta = append(meta, dayMeta)
		nav = append(nav, NAVPoint{Date: d, NAV: nav[len(nav)-1].NAV + day.PnL})
	}

	log.Print("backtest computation completed")
	b.pnl, b.nav, b.meta, b.drifted = pnl, nav, meta, drifted
	b.ran = true
	return nil
}

// computeRow scales one position by the observed NAV and attributes its
// day-over-day value change across the greeks.
func computeRow(r Row, d deltas, navObs float64) DriftedRow {
	out := DriftedRow{Row: r, ScaledWeight: r.Weight * navObs}

	const dt = 1
	out.PnL = out.ScaledWeight * d.dv
	out.DeltaPnL = out.ScaledWeight * d.ds * d.prev.Delta
	out.GammaPnL = 0.5 * out.ScaledWeight * d.ds * d.ds * d.prev.Gamma
	out.ThetaPnL = out.ScaledWeight * dt * d.prev.Theta
	out.VegaPnL = out.ScaledWeight * d.dsigma * d.prev.Vega
	out.RhoPnL = out.ScaledWeight * d.dr * d.prev.Rho
	out.ResidualPnL = out.PnL - out.DeltaPnL - out.GammaPnL - out.ThetaPnL - out.VegaPnL - out.RhoPnL
	out.Leverage = out.ScaledWeight * r.Spot

	if r.EntryDate.Equal(r.Date) {
		out.Cashflow = -out.ScaledWeight * r.Mid
	}
	if r.Expiration.Equal(r.Date) {
		out.Cashflow = out.ScaledWeight * r.Mid
	}
	return out
}

// computeDeltas returns, aligned with rows sorted by (option, date), the
// day-over-day differences and the prior day's greeks. The first
// observation of an option has zero differences and borrows its own greeks.
func computeDeltas(rows []Row) []deltas {
	out := make([]deltas, len(rows))
	for i, r := range rows {
		if i == 0 || rows[i-1].OptionID != r.OptionID {
			out[i] = deltas{prev: r.Greeks}
			continue
		}
		prev := rows[i-1]
		out[i] = deltas{
			dv:     r.Mid - prev.Mid,
			dr:     r.RiskFreeRate - prev.RiskFreeRate,
			dsigma: r.ImpliedVol - prev.ImpliedVol,
			ds:     r.Spot - prev.Spot,
			prev:   prev.Greeks,
		}
	}
	return out
}

// navAsOf returns the latest NAV observed on or before the date. The series
// is appended in date order.
func navAsOf(nav []NAVPoint, date time.Time) float64 {
	for i := len(nav) - 1; i >= 0; i-- {
		if !nav[i].Date.After(date) {
			return nav[i].NAV
		}
	}
	return nav[0].NAV
}

// PnL returns the attributed daily PnL series, seeded with a zero row on
// the day before the first position date.
func (b *Backtester) PnL() ([]PnLPoint, error) {
	if !b.ran {
		return nil, ErrNotRun
	}
	return b.pnl, nil
}

// NAV returns the compounded net asset value series.
func (b *Backtester) NAV() ([]NAVPoint, error) {
	if !b.ran {
		return nil, ErrNotRun
	}
	return b.nav, nil
}

// MetaInfo returns the daily leverage and cashflow series.
func (b *Backtester) MetaInfo() ([]MetaPoint, error) {
	if !b.ran {
		return nil, ErrNotRun
	}
	return b.meta, nil
}

// DriftedPositions returns the NAV-scaled position rows with per-position
// attribution.
func (b *Backtester) DriftedPositions() ([]DriftedRow, error) {
	if !b.ran {
		return nil, ErrNotRun
	}
	return b.drifted, nil
}
