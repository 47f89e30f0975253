package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// surfaceCmd represents the surface command
var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Fit volatility surfaces",
	Long:  `Fit smile models to quoted option volatilities.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'surface' requires a subcommand (fit, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
}
