package model

import "time"

// OptionQuote is one persisted daily option observation.
type OptionQuote struct {
	ID                uint `gorm:"primaryKey"`
	Ticker            string
	OptionID          string `gorm:"column:option_id"`
	Date              time.Time
	Expiration        time.Time
	Right             string
	Strike            float64
	Spot              float64
	Bid               float64
	Mid               float64
	Ask               float64
	Volume            float64
	Delta             float64
	ImpliedVolatility float64 `gorm:"column:implied_volatility"`
}

func (q OptionQuote) TableName() string {
	return "option_quotes"
}
