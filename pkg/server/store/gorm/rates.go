package gorm

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/investlab/vollab/pkg/model"
	"github.com/investlab/vollab/pkg/rates"
	"github.com/investlab/vollab/pkg/server/store"
)

// Ensure RatesStore implements store.RatesStore
var _ store.RatesStore = (*RatesStore)(nil)

// RatesStore implements store.RatesStore using GORM
type RatesStore struct {
	db *gorm.DB
}

// NewRatesStore creates a new RatesStore
func NewRatesStore(db *gorm.DB) *RatesStore {
	return &RatesStore{db: db}
}

// SaveCurves persists a batch of par-yield curves.
func (s *RatesStore) SaveCurves(curves []rates.Curve) error {
	var points []model.RatePoint
	for _, c := range curves {
		for i, tenor := range c.Tenors {
			points = append(points, model.RatePoint{
				Date:       c.Date,
				TenorYears: tenor,
				Rate:       c.Rates[i],
			})
		}
	}
	return s.db.CreateInBatches(points, 1000).Error
}

// FetchCurves retrieves curves dated in [start, end], one per date with
// tenors ascending.
func (s *RatesStore) FetchCurves(start, end time.Time) ([]rates.Curve, error) {
	var points []model.RatePoint
	tx := s.db.Where("date BETWEEN ? AND ?", start, end).
		Order("date, tenor_years").
		Find(&points)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(points) == 0 {
		return nil, store.ErrNoCurves
	}

	byDate := make(map[time.Time]*rates.Curve)
	var curves []*rates.Curve
	for _, p := range points {
		c, ok := byDate[p.Date]
		if !ok {
			c = &rates.Curve{Date: p.Date}
			byDate[p.Date] = c
			curves = append(curves, c)
		}
		c.Tenors = append(c.Tenors, p.TenorYears)
		c.Rates = append(c.Rates, p.Rate)
	}

	out := make([]rates.Curve, len(curves))
	for i, c := range curves {
		out[i] = *c
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
