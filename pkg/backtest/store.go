package backtest

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// Store persists backtest results to a Postgres database.
type Store struct {
	db *sql.DB
}

// NewStore creates a results store from RESULTS_DATABASE_URL.
// Returns nil if RESULTS_DATABASE_URL is not set (persistence disabled).
func NewStore() (*Store, error) {
	dbURL := os.Getenv("RESULTS_DATABASE_URL")
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection
// Useful for testing with sqlmock
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun persists the PnL, NAV and meta series of a completed backtest
// under the given strategy name, in one transaction.
func (s *Store) SaveRun(strategy string, b *Backtester) error {
	if s.db == nil {
		return nil
	}

	pnl, err := b.PnL()
	if err != nil {
		return err
	}
	nav, err := b.NAV()
	if err != nil {
		return err
	}
	meta, err := b.MetaInfo()
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var runID int64
	err = tx.QueryRow(`
		INSERT INTO backtest_runs (strategy, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, strategy, time.Now().UTC()).Scan(&runID)
	if err != nil {
		tx.Rollback()
		return err
	}

	for i, p := range pnl {
		_, err = tx.Exec(`
			INSERT INTO backtest_pnl (run_id, date, pnl, delta_pnl, gamma_pnl, theta_pnl, vega_pnl, rho_pnl, residual_pnl, leverage, cashflow)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, runID, p.Date, p.PnL, p.DeltaPnL, p.GammaPnL, p.ThetaPnL, p.VegaPnL, p.RhoPnL, p.ResidualPnL,
			meta[i].Leverage, meta[i].Cashflow)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, n := range nav {
		_, err = tx.Exec(`
			INSERT INTO backtest_nav (run_id, date, nav)
			VALUES ($1, $2, $3)
		`, runID, n.Date, n.NAV)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// NAVSeries loads the NAV series of a stored run.
func (s *Store) NAVSeries(runID int64) ([]NAVPoint, error) {
	rows, err := s.db.Query(`
		SELECT date, nav FROM backtest_nav
		WHERE run_id = $1
		ORDER BY date
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NAVPoint
	for rows.Next() {
		var p NAVPoint
		if err := rows.Scan(&p.Date, &p.NAV); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DB returns the underlying database connection (for testing)
func (s *Store) DB() *sql.DB {
	return s.db
}
