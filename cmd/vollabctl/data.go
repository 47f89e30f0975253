package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/investlab/vollab/pkg/config"
)

// dataCmd represents the data command
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage market datasets",
	Long:  `Import option and rate datasets into the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'data' requires a subcommand (import-options, import-rates)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
}

// resolveDataPath resolves a dataset path against the configured data
// directory. Absolute paths and relative paths that exist are used as-is.
func resolveDataPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(config.Get().DataDir, path)
}
