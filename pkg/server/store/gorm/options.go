package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/model"
	"github.com/investlab/vollab/pkg/pricing"
	"github.com/investlab/vollab/pkg/server/store"
)

// Ensure OptionsStore implements store.OptionsStore
var _ store.OptionsStore = (*OptionsStore)(nil)

// OptionsStore implements store.OptionsStore using GORM
type OptionsStore struct {
	db *gorm.DB
}

// NewOptionsStore creates a new OptionsStore
func NewOptionsStore(db *gorm.DB) *OptionsStore {
	return &OptionsStore{db: db}
}

// SaveQuotes persists a batch of option observations.
func (s *OptionsStore) SaveQuotes(records []marketdata.OptionRecord) error {
	quotes := make([]model.OptionQuote, len(records))
	for i, r := range records {
		quotes[i] = model.OptionQuote{
			Ticker:            r.Ticker,
			OptionID:          r.OptionID,
			Date:              r.Date,
			Expiration:        r.Expiration,
			Right:             r.Right.Code(),
			Strike:            r.Strike,
			Spot:              r.Spot,
			Bid:               r.Bid,
			Mid:               r.Mid,
			Ask:               r.Ask,
			Volume:            r.Volume,
			Delta:             r.Delta,
			ImpliedVolatility: r.ImpliedVol,
		}
	}
	return s.db.CreateInBatches(quotes, 1000).Error
}

// FetchQuotes retrieves quotes in [start, end], optionally filtered by
// ticker.
func (s *OptionsStore) FetchQuotes(start, end time.Time, tickers ...string) ([]marketdata.OptionRecord, error) {
	query := s.db.Where("date BETWEEN ? AND ?", start, end)
	if len(tickers) > 0 {
		query = query.Where("ticker IN ?", tickers)
	}

	var quotes []model.OptionQuote
	if tx := query.Order("date, option_id").Find(&quotes); tx.Error != nil {
		return nil, tx.Error
	}
	if len(quotes) == 0 {
		return nil, store.ErrNoQuotes
	}

	records := make([]marketdata.OptionRecord, len(quotes))
	for i, q := range quotes {
		right, err := pricing.ParseRightCode(q.Right)
		if err != nil {
			return nil, err
		}
		records[i] = marketdata.OptionRecord{
			Ticker:     q.Ticker,
			OptionID:   q.OptionID,
			Date:       q.Date,
			Expiration: q.Expiration,
			Right:      right,
			Strike:     q.Strike,
			Spot:       q.Spot,
			Bid:        q.Bid,
			Mid:        q.Mid,
			Ask:        q.Ask,
			Volume:     q.Volume,
			Delta:      q.Delta,
			ImpliedVol: q.ImpliedVolatility,
		}
	}
	marketdata.ComputeDerivedFields(records)
	return records, nil
}
