// Package marketdata defines the option quote record vocabulary and loads
// daily option data from CSV datasets with date-range validation.
package marketdata
