package model

import "time"

// RatePoint is one persisted point of a par-yield curve.
type RatePoint struct {
	ID         uint `gorm:"primaryKey"`
	Date       time.Time
	TenorYears float64 `gorm:"column:tenor_years"`
	Rate       float64
}

func (p RatePoint) TableName() string {
	return "rate_points"
}
