// Package main provides vollabctl, the command line for the vollab
// volatility trading toolkit.
//
// The toolkit is organized into several packages:
//
//   - pkg/pricing: Black-Scholes pricing, greeks and implied volatility
//   - pkg/surface: SABR, SVI and SSVI smile calibration
//   - pkg/rates: Par-yield curve interpolation and forwards
//   - pkg/marketdata: Option and rate dataset loading
//   - pkg/options: Contract selection and trade generation
//   - pkg/strategy: Builtin strategy book
//   - pkg/backtest: PnL-attributed backtesting
//   - pkg/metrics: Return and risk metrics
//   - pkg/server: HTTP API
//
// # Quick Start
//
//	# Run database migrations
//	vollabctl db migrate
//
//	# Import datasets
//	vollabctl data import-options options.csv
//	vollabctl data import-rates rates.csv
//
//	# Fit a volatility smile
//	vollabctl surface fit --data options.csv --date 2024-01-02 --ticker SPY
//
//	# Run a backtest
//	vollabctl backtest run --strategy short-1w-straddle --data options.csv \
//	    --rates rates.csv --start 2024-01-02 --end 2024-06-28
//
//	# Start the API server
//	vollabctl server
//
//	# Inspect and apply configuration, mint an API token
//	vollabctl config show --output json
//	vollabctl config apply
//	vollabctl token --subject research-notebook
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - RESULTS_DATABASE_URL: Optional separate database for backtest results
//   - VOLLAB_API_SECRET: API token signing secret
//   - VOLLAB_CONFIG_PATH: Directory holding vollab.yml
//   - VOLLAB_LOG_LEVEL: Log level (debug for SQL logging)
package main
