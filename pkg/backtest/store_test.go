package backtest

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func ranBacktester(t *testing.T) *Backtester {
	t.Helper()
	entry := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{Date: entry, OptionID: "A", Weight: 0.01, Mid: 2.0, EntryDate: entry, Expiration: expiry, Spot: 100},
		{Date: entry.AddDate(0, 0, 1), OptionID: "A", Weight: 0.01, Mid: 2.5, EntryDate: entry, Expiration: expiry, Spot: 101},
		{Date: expiry, OptionID: "A", Weight: 0.01, Mid: 1.8, EntryDate: entry, Expiration: expiry, Spot: 100.5},
	}
	b, err := NewBacktester(rows)
	if err != nil {
		t.Fatalf("NewBacktester() error = %v", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return b
}

func TestStoreSaveRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)
	b := ranBacktester(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO backtest_runs`).
		WithArgs("short-1w-straddle", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	// Seed row plus three position dates for each series.
	for i := 0; i < 4; i++ {
		mock.ExpectExec(`INSERT INTO backtest_pnl`).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	for i := 0; i < 4; i++ {
		mock.ExpectExec(`INSERT INTO backtest_nav`).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	if err := store.SaveRun("short-1w-straddle", b); err != nil {
		t.Errorf("SaveRun() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveRunBeforeRun(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	rows := []Row{
		{Date: time.Now(), OptionID: "A"},
		{Date: time.Now(), OptionID: "A"},
		{Date: time.Now(), OptionID: "A"},
	}
	b, err := NewBacktester(rows)
	if err != nil {
		t.Fatalf("NewBacktester() error = %v", err)
	}

	if err := NewStoreWithDB(db).SaveRun("s", b); err != ErrNotRun {
		t.Errorf("SaveRun() error = %v, want ErrNotRun", err)
	}
}

func TestStoreNAVSeries(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	d1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT date, nav FROM backtest_nav`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"date", "nav"}).
			AddRow(d1, 1.0).
			AddRow(d1.AddDate(0, 0, 1), 1.005))

	nav, err := NewStoreWithDB(db).NAVSeries(7)
	if err != nil {
		t.Fatalf("NAVSeries() error = %v", err)
	}
	if len(nav) != 2 {
		t.Fatalf("NAVSeries() returned %d points, want 2", len(nav))
	}
	if nav[1].NAV != 1.005 {
		t.Errorf("nav[1].NAV = %v, want 1.005", nav[1].NAV)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
