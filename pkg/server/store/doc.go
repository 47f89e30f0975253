// Package store provides storage abstractions for the vollab server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - OptionsStore: Option quote persistence and range queries
//   - RatesStore: Par-yield curve persistence and range queries
//   - HealthStore: Database connectivity checks
//
// # Usage
//
//	quotes, err := optionsStore.FetchQuotes(start, end, "SPY")
//	if err != nil {
//	    if errors.Is(err, store.ErrNoQuotes) {
//	        // Handle empty range
//	    }
//	}
package store
