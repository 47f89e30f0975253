package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/investlab/vollab/pkg/db"
	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/metrics"
	"github.com/investlab/vollab/pkg/rates"
	gormstore "github.com/investlab/vollab/pkg/server/store/gorm"
	"github.com/investlab/vollab/pkg/surface"
)

// surfaceFitCmd represents the surface fit command
var surfaceFitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a smile model per expiration for one observation date",
	Long: `Fit a smile model per expiration for one observation date.

Reads quoted implied volatilities from an option CSV, or from the quote
database when --data is omitted, optionally attaches forwards from a rate
curve CSV, and calibrates the chosen model to each expiration's smile.

Example:
  vollabctl surface fit --data spy_options.csv --date 2024-01-02 \
      --ticker SPY --model svi --rates par_yields.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		dataPath, _ := cmd.Flags().GetString("data")
		dateStr, _ := cmd.Flags().GetString("date")
		ticker, _ := cmd.Flags().GetString("ticker")
		model, _ := cmd.Flags().GetString("model")
		ratesPath, _ := cmd.Flags().GetString("rates")

		if err := fitSurfaces(dataPath, dateStr, ticker, model, ratesPath); err != nil {
			fmt.Fprintf(os.Stderr, "Fit failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	surfaceFitCmd.Flags().String("data", "", "option CSV file (reads from DATABASE_URL when omitted)")
	surfaceFitCmd.Flags().String("date", "", "observation date YYYY-MM-DD (required)")
	surfaceFitCmd.Flags().String("ticker", "", "underlying ticker (required)")
	surfaceFitCmd.Flags().String("model", "svi", "smile model: sabr, svi or ssvi")
	surfaceFitCmd.Flags().String("rates", "", "optional par-yield CSV for forwards")
	_ = surfaceFitCmd.MarkFlagRequired("date")
	_ = surfaceFitCmd.MarkFlagRequired("ticker")
	surfaceCmd.AddCommand(surfaceFitCmd)
}

func fitSurfaces(dataPath, dateStr, ticker, model, ratesPath string) error {
	date, err := time.Parse(marketdata.DateLayout, dateStr)
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}

	var records []marketdata.OptionRecord
	if dataPath != "" {
		dataset := marketdata.Dataset{Path: resolveDataPath(dataPath), MinDate: date, MaxDate: date}
		records, err = dataset.Load(date, date, ticker)
	} else {
		var database *gorm.DB
		database, err = db.Connect(db.Config{})
		if err != nil {
			return err
		}
		records, err = gormstore.NewOptionsStore(database).FetchQuotes(date, date, ticker)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no quotes for %s on %s", ticker, dateStr)
	}

	if ratesPath != "" {
		curves, err := rates.LoadCurvesCSV(resolveDataPath(ratesPath))
		if err != nil {
			return err
		}
		if err := rates.AttachForwards(records, curves); err != nil {
			return err
		}
	}

	byExpiration := make(map[time.Time][]marketdata.OptionRecord)
	for _, r := range records {
		if r.ImpliedVol > 0 {
			byExpiration[r.Expiration] = append(byExpiration[r.Expiration], r)
		}
	}

	expirations := make([]time.Time, 0, len(byExpiration))
	for exp := range byExpiration {
		expirations = append(expirations, exp)
	}
	sort.Slice(expirations, func(i, j int) bool { return expirations[i].Before(expirations[j]) })

	for _, exp := range expirations {
		slice := byExpiration[exp]
		if len(slice) < 5 {
			continue
		}

		strikes := make([]float64, len(slice))
		vols := make([]float64, len(slice))
		for i, r := range slice {
			strikes[i] = r.Strike
			vols[i] = r.ImpliedVol
		}

		forward := slice[0].Forward
		if forward == 0 {
			forward = slice[0].Spot
		}
		ttm := float64(slice[0].DayToExpiration) / rates.DaysPerYear

		smoother, err := surface.New(model)
		if err != nil {
			return err
		}
		if err := smoother.Fit(forward, strikes, ttm, vols); err != nil {
			fmt.Printf("%s  fit failed: %v\n", exp.Format(marketdata.DateLayout), err)
			continue
		}

		fitted, err := smoother.Vol(forward, strikes, ttm)
		if err != nil {
			return err
		}
		fmt.Printf("%s  n=%d  params=%v  mse=%.3e\n",
			exp.Format(marketdata.DateLayout), len(slice), smoother.Params(), metrics.MSE(vols, fitted))
	}
	return nil
}
