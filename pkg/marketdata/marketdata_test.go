package marketdata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/vollab/pkg/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const optionsCSV = "ticker,date,expiration,strike,call_put,bid,mid,ask,volume,spot,delta,implied_volatility,option_id\n" +
	"SPY,2021-06-01,2021-06-18,420,C,4.1,4.2,4.3,120,418.5,0.45,0.15,SPY210618C420\n" +
	"SPY,2021-06-01,2021-06-18,410,P,2.0,2.1,2.2,,418.5,-0.30,0.17,SPY210618P410\n" +
	"AAPL,2021-06-01,2021-06-18,130,C,1.5,1.6,1.7,50,126.0,0.35,0.22,AAPL210618C130\n" +
	"SPY,2021-06-18,2021-06-18,410,P,0.5,0.6,0.7,10,405.0,-0.95,0.30,SPY210618P410\n" +
	"SPY,2021-06-18,2021-06-18,420,C,1.0,1.1,1.2,10,405.0,0.05,0.30,SPY210618C420\n"

func writeDataset(t *testing.T) Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.csv")
	require.NoError(t, os.WriteFile(path, []byte(optionsCSV), 0o644))
	return Dataset{
		Path:    path,
		MinDate: date(2021, 1, 1),
		MaxDate: date(2021, 12, 31),
	}
}

func TestDatasetLoad(t *testing.T) {
	ds := writeDataset(t)

	records, err := ds.Load(time.Time{}, time.Time{}, "SPY")
	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, "SPY", first.Ticker)
	assert.Equal(t, pricing.RightCall, first.Right)
	assert.Equal(t, 17, first.DayToExpiration)
	assert.InDelta(t, 420.0/418.5, first.Moneyness, 1e-12)

	// Missing volume parses to zero.
	assert.Zero(t, records[1].Volume)

	// Expiring put settles at intrinsic value: max(410-405, 0) = 5.
	expiringPut := records[2]
	assert.Equal(t, date(2021, 6, 18), expiringPut.Date)
	assert.InDelta(t, 5.0, expiringPut.Mid, 1e-12)
	assert.InDelta(t, 5.0, expiringPut.Bid, 1e-12)

	// Expiring OTM call settles at zero.
	assert.Zero(t, records[3].Mid)
}

func TestDatasetLoadDateFilter(t *testing.T) {
	ds := writeDataset(t)

	records, err := ds.Load(date(2021, 6, 10), date(2021, 6, 30), "SPY")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, date(2021, 6, 18), r.Date)
	}
}

func TestDatasetLoadRangeValidation(t *testing.T) {
	ds := writeDataset(t)

	_, err := ds.Load(date(2021, 7, 1), date(2021, 6, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be before")

	_, err = ds.Load(date(2020, 1, 1), date(2021, 6, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only available between")
}

func TestDatasetLoadUnsupportedExtension(t *testing.T) {
	ds := writeDataset(t)
	ds.Path = ds.Path[:len(ds.Path)-4] + ".parquet"

	_, err := ds.Load(time.Time{}, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestDatasetLoadMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("ticker,date\nSPY,2021-06-01\n"), 0o644))

	ds := Dataset{Path: path, MinDate: date(2021, 1, 1), MaxDate: date(2021, 12, 31)}
	_, err := ds.Load(time.Time{}, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestExtractSpots(t *testing.T) {
	records := []OptionRecord{
		{Date: date(2021, 6, 2), Spot: 101},
		{Date: date(2021, 6, 1), Spot: 100},
		{Date: date(2021, 6, 1), Spot: 100},
	}

	spots := ExtractSpots(records)
	require.Len(t, spots, 2)
	assert.Equal(t, date(2021, 6, 1), spots[0].Date)
	assert.Equal(t, 100.0, spots[0].Spot)
	assert.Equal(t, 101.0, spots[1].Spot)
}
