package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/investlab/vollab/pkg/pricing"
)

// DateLayout is the date format used across the CSV datasets.
const DateLayout = "2006-01-02"

// Dataset describes one option data file together with its coverage window.
type Dataset struct {
	Path    string
	MinDate time.Time
	MaxDate time.Time
}

// supported file extensions. The original course datasets also shipped as
// parquet; only CSV is wired here.
var supportedExtensions = map[string]bool{".csv": true}

// Load reads option records for the given tickers between start and end
// (inclusive). Zero start/end default to the dataset coverage bounds.
// Records are settled at expiry and derived fields are populated.
func (d Dataset) Load(start, end time.Time, tickers ...string) ([]OptionRecord, error) {
	start, end, err := d.clampRange(start, end)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(d.Path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	log.Printf("reading options between %s and %s from %s",
		start.Format(DateLayout), end.Format(DateLayout), d.Path)

	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	records, err := parseOptionsCSV(f, tickerSet(tickers))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", d.Path, err)
	}

	SettleExpiring(records)
	ComputeDerivedFields(records)

	out := records[:0]
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (d Dataset) clampRange(start, end time.Time) (time.Time, time.Time, error) {
	if start.IsZero() {
		start = d.MinDate
	}
	if end.IsZero() {
		end = d.MaxDate
	}
	if start.After(end) {
		return start, end, fmt.Errorf("start date %s must be before end date %s",
			start.Format(DateLayout), end.Format(DateLayout))
	}
	if start.Before(d.MinDate) || end.After(d.MaxDate) {
		return start, end, fmt.Errorf("data is only available between %s and %s",
			d.MinDate.Format(DateLayout), d.MaxDate.Format(DateLayout))
	}
	return start, end, nil
}

func tickerSet(tickers []string) map[string]bool {
	if len(tickers) == 0 {
		return nil
	}
	set := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		set[t] = true
	}
	return set
}

// parseOptionsCSV reads option quote rows. Required columns: ticker, date,
// expiration, strike, call_put, mid, spot, option_id. Optional: bid, ask,
// volume, delta, implied_volatility. Missing volume parses to 0.
func parseOptionsCSV(r io.Reader, tickers map[string]bool) ([]OptionRecord, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"ticker", "date", "expiration", "strike", "call_put", "mid", "spot", "option_id"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var records []OptionRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		ticker := field("ticker")
		if tickers != nil && !tickers[ticker] {
			continue
		}

		rec := OptionRecord{Ticker: ticker, OptionID: field("option_id")}

		if rec.Date, err = time.Parse(DateLayout, field("date")); err != nil {
			return nil, fmt.Errorf("line %d: bad date: %w", line, err)
		}
		if rec.Expiration, err = time.Parse(DateLayout, field("expiration")); err != nil {
			return nil, fmt.Errorf("line %d: bad expiration: %w", line, err)
		}
		if rec.Right, err = pricing.ParseRightCode(field("call_put")); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		floats := map[string]*float64{
			"strike":             &rec.Strike,
			"spot":               &rec.Spot,
			"bid":                &rec.Bid,
			"mid":                &rec.Mid,
			"ask":                &rec.Ask,
			"volume":             &rec.Volume,
			"delta":              &rec.Delta,
			"implied_volatility": &rec.ImpliedVol,
		}
		for name, dst := range floats {
			raw := field(name)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s %q: %w", line, name, raw, err)
			}
			*dst = v
		}

		records = append(records, rec)
	}
	return records, nil
}
