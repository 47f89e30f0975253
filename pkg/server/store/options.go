package store

import (
	"errors"
	"time"

	"github.com/investlab/vollab/pkg/marketdata"
)

// ErrNoQuotes is returned when a query matches no option quotes
var ErrNoQuotes = errors.New("no option quotes found")

// OptionsStore abstracts option quote storage operations
type OptionsStore interface {
	// SaveQuotes persists a batch of option observations.
	SaveQuotes(records []marketdata.OptionRecord) error

	// FetchQuotes retrieves quotes in [start, end], optionally filtered
	// by ticker. Returns ErrNoQuotes when nothing matches.
	FetchQuotes(start, end time.Time, tickers ...string) ([]marketdata.OptionRecord, error)
}
