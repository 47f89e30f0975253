package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vollabctl",
	Short: "Volatility lab command line",
	Long:  `Manage option datasets, fit volatility surfaces and run strategy backtests.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
