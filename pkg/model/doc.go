// Package model defines the database models for vollab.
//
// This package contains GORM models that map to the vollab PostgreSQL
// schema.
//
// # Core Models
//
//   - OptionQuote: Daily listed option observations
//   - RatePoint: Par-yield curve points by date and tenor
//
// Backtest result tables are written by the backtest package over
// database/sql and have no GORM model.
package model
