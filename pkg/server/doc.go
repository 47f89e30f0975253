// Package server provides the HTTP server for the vollab API.
//
// This package implements the HTTP server that serves market data, fitted
// volatility surfaces and health information. It uses gorilla/mux for
// routing and provides middleware for authentication.
//
// # Server Setup
//
//	srv := server.NewServer(cfg, db, optionsStore, ratesStore, healthStore)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - / - Status and version
//   - /health - Database connectivity
//   - /options - Option quotes over a date range
//   - /rates - Par-yield curves over a date range
//   - /surfaces/fit - Fit a smile model to a market slice
package server
