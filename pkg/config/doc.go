// Package config provides configuration management for vollab.
//
// This package handles loading and validating configuration from
// environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - VOLLAB_DATA_DIR: Option and rate dataset directory
//   - VOLLAB_SMOOTHER: Volatility smile model (sabr, svi, ssvi)
//   - VOLLAB_API_SECRET: API token signing secret
//   - DATABASE_URL: Database connection
//   - VOLLAB_LISTEN_ADDRESS: Server listen address
package config
