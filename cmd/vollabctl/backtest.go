package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/investlab/vollab/pkg/backtest"
	"github.com/investlab/vollab/pkg/config"
	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/metrics"
	"github.com/investlab/vollab/pkg/options"
	"github.com/investlab/vollab/pkg/rates"
	"github.com/investlab/vollab/pkg/strategy"
)

// backtestCmd represents the backtest command
var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run strategy backtests",
	Long:  `Generate trades for a builtin strategy and backtest them.`,
}

// backtestRunCmd represents the backtest run command
var backtestRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Backtest a builtin strategy over an option dataset",
	Long: `Backtest a builtin strategy over an option dataset.

Selects contracts for each strategy leg on its rebalance days, expands
them into daily positions, and attributes daily PnL across the greeks.
When RESULTS_DATABASE_URL is set the result series are persisted.

Example:
  vollabctl backtest run --strategy short-1w-straddle --data spy_options.csv \
      --rates par_yields.csv --start 2024-01-02 --end 2024-06-28`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("strategy")
		dataPath, _ := cmd.Flags().GetString("data")
		ratesPath, _ := cmd.Flags().GetString("rates")
		costNeutral, _ := cmd.Flags().GetBool("cost-neutral")
		tickers, _ := cmd.Flags().GetStringSlice("ticker")

		// Unset flags fall back to the config file.
		cfg := config.Get()
		if len(tickers) == 0 {
			tickers = cfg.Tickers
		}
		if !cmd.Flags().Changed("cost-neutral") {
			costNeutral = cfg.CostNeutral
		}

		start, end, err := startEndFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := runBacktest(name, dataPath, ratesPath, tickers, start, end, costNeutral); err != nil {
			fmt.Fprintf(os.Stderr, "Backtest failed: %v\n", err)
			os.Exit(1)
		}
	},
}

// backtestStrategiesCmd lists the builtin strategies
var backtestStrategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the builtin strategies",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range strategy.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	backtestRunCmd.Flags().String("strategy", "", "builtin strategy name (required)")
	backtestRunCmd.Flags().String("data", "", "option CSV file (required)")
	backtestRunCmd.Flags().String("rates", "", "optional par-yield CSV for forwards")
	backtestRunCmd.Flags().StringSlice("ticker", nil, "restrict to these underlyings")
	backtestRunCmd.Flags().String("start", "", "first date (YYYY-MM-DD)")
	backtestRunCmd.Flags().String("end", "", "last date (YYYY-MM-DD)")
	backtestRunCmd.Flags().Bool("cost-neutral", true, "rescale weights so entry premiums net to zero")
	_ = backtestRunCmd.MarkFlagRequired("strategy")
	_ = backtestRunCmd.MarkFlagRequired("data")

	backtestCmd.AddCommand(backtestRunCmd)
	backtestCmd.AddCommand(backtestStrategiesCmd)
	rootCmd.AddCommand(backtestCmd)
}

func runBacktest(name, dataPath, ratesPath string, tickers []string, start, end time.Time, costNeutral bool) error {
	legs, err := strategy.Lookup(name)
	if err != nil {
		return err
	}

	dataset := marketdata.Dataset{Path: resolveDataPath(dataPath), MinDate: start, MaxDate: end}
	records, err := dataset.Load(start, end, tickers...)
	if err != nil {
		return err
	}

	var curves []rates.Curve
	if ratesPath != "" {
		if curves, err = rates.LoadCurvesCSV(resolveDataPath(ratesPath)); err != nil {
			return err
		}
	}

	generator := options.Generator{Curves: curves, CostNeutral: costNeutral}
	positions, err := generator.GenerateTrades(records, legs, start, end)
	if err != nil {
		return err
	}

	b, err := backtest.NewBacktester(backtest.RowsFromPositions(positions))
	if err != nil {
		return err
	}
	if err := b.Run(); err != nil {
		return err
	}

	if err := printBacktestSummary(name, b); err != nil {
		return err
	}

	store, err := backtest.NewStore()
	if err != nil {
		return err
	}
	if store != nil {
		defer func() { _ = store.Close() }()
		if err := store.SaveRun(name, b); err != nil {
			return err
		}
		fmt.Println("Result series persisted")
	}
	return nil
}

func printBacktestSummary(name string, b *backtest.Backtester) error {
	nav, err := b.NAV()
	if err != nil {
		return err
	}

	levels := make([]float64, len(nav))
	for i, p := range nav {
		levels[i] = p.NAV
	}
	returns := metrics.LevelsToReturns(levels)

	fmt.Printf("Strategy:        %s\n", name)
	fmt.Printf("Days:            %d\n", len(nav)-1)
	fmt.Printf("Final NAV:       %.4f\n", levels[len(levels)-1])
	fmt.Printf("Realized return: %.2f%%\n", 100*metrics.RealizedReturn(returns))
	fmt.Printf("Realized vol:    %.2f%%\n", 100*metrics.RealizedVolatility(returns))
	fmt.Printf("Sharpe ratio:    %.2f\n", metrics.SharpeRatio(returns, 0))
	fmt.Printf("Max drawdown:    %.2f%%\n", 100*metrics.MaxDrawdown(returns))
	return nil
}
