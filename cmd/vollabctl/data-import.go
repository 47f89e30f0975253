package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/investlab/vollab/pkg/db"
	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/rates"
	gormstore "github.com/investlab/vollab/pkg/server/store/gorm"
)

var dataImportOptionsCmd = &cobra.Command{
	Use:   "import-options <file>",
	Short: "Import an option quote CSV into the database",
	Long: `Import an option quote CSV into the database.

The file must carry the columns ticker, date, expiration, strike,
call_put, mid, spot and option_id.

Example:
  vollabctl data import-options spy_options.csv --start 2024-01-02 --end 2024-06-28`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		start, end, err := startEndFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := importOptions(args[0], start, end); err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var dataImportRatesCmd = &cobra.Command{
	Use:   "import-rates <file>",
	Short: "Import a par-yield curve CSV into the database",
	Long: `Import a par-yield curve CSV into the database.

The file must carry a date column and the standard US Treasury tenor
columns (1 Mo through 30 Yr), with rates in percent.

Example:
  vollabctl data import-rates par_yields.csv`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := importRates(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dataImportOptionsCmd.Flags().String("start", "", "first date to import (YYYY-MM-DD)")
	dataImportOptionsCmd.Flags().String("end", "", "last date to import (YYYY-MM-DD)")
	dataCmd.AddCommand(dataImportOptionsCmd)
	dataCmd.AddCommand(dataImportRatesCmd)
}

func startEndFlags(cmd *cobra.Command) (time.Time, time.Time, error) {
	parse := func(name string) (time.Time, error) {
		val, _ := cmd.Flags().GetString(name)
		if val == "" {
			return time.Time{}, fmt.Errorf("--%s is required (YYYY-MM-DD)", name)
		}
		return time.Parse(marketdata.DateLayout, val)
	}

	start, err := parse("start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parse("end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func importOptions(path string, start, end time.Time) error {
	path = resolveDataPath(path)
	dataset := marketdata.Dataset{Path: path, MinDate: start, MaxDate: end}
	records, err := dataset.Load(start, end)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	if err := gormstore.NewOptionsStore(database).SaveQuotes(records); err != nil {
		return err
	}

	fmt.Printf("Imported %d option quotes from %s\n", len(records), path)
	return nil
}

func importRates(path string) error {
	path = resolveDataPath(path)
	curves, err := rates.LoadCurvesCSV(path)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	if err := gormstore.NewRatesStore(database).SaveCurves(curves); err != nil {
		return err
	}

	fmt.Printf("Imported %d rate curves from %s\n", len(curves), path)
	return nil
}
