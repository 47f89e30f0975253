package rates

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/investlab/vollab/pkg/marketdata"
)

// LoadCurvesCSV reads a daily par-yield curve file. The file must have a
// "date" column plus the ParYieldTenors labels; values are percentages and
// are converted to decimals. Missing values forward-fill from the previous
// day, matching the upstream treasury data conventions.
func LoadCurvesCSV(path string) ([]Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rates file: %w", err)
	}
	defer f.Close()

	curves, err := parseCurvesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return curves, nil
}

func parseCurvesCSV(r io.Reader) ([]Curve, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	dateIdx, ok := col["date"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "date")
	}
	var missing []string
	for _, tenor := range ParYieldTenors {
		if _, ok := col[tenor.Label]; !ok {
			missing = append(missing, tenor.Label)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("rates file is missing columns: %s", strings.Join(missing, ", "))
	}

	var curves []Curve
	prev := make([]float64, len(ParYieldTenors))
	havePrev := false

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		date, err := parseFlexibleDate(strings.TrimSpace(row[dateIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date: %w", line, err)
		}

		curve := Curve{
			Date:   date,
			Tenors: make([]float64, len(ParYieldTenors)),
			Rates:  make([]float64, len(ParYieldTenors)),
		}
		for i, tenor := range ParYieldTenors {
			curve.Tenors[i] = tenor.Years

			raw := strings.TrimSpace(row[col[tenor.Label]])
			if raw == "" {
				if !havePrev {
					return nil, fmt.Errorf("line %d: missing %s with no prior value to fill from", line, tenor.Label)
				}
				curve.Rates[i] = prev[i]
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s %q: %w", line, tenor.Label, raw, err)
			}
			curve.Rates[i] = v / 100
		}

		copy(prev, curve.Rates)
		havePrev = true
		curves = append(curves, curve)
	}

	sort.Slice(curves, func(i, j int) bool { return curves[i].Date.Before(curves[j].Date) })
	return curves, nil
}

// parseFlexibleDate accepts both ISO dates and the mm/dd/yyyy format used by
// the treasury download.
func parseFlexibleDate(s string) (time.Time, error) {
	for _, layout := range []string{marketdata.DateLayout, "01/02/2006", "1/2/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
