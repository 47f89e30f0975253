package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a strategy's book entry",
	Long:  `Extract the documentation for a specific strategy from the strategy book.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		name, _ := cmd.Flags().GetString("strategy")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		book, err := Parse(content)
		if err != nil {
			return fmt.Errorf("parsing strategy book: %w", err)
		}

		entry := book.FindStrategy(name)
		if entry == nil {
			return fmt.Errorf("strategy %s not found in book", name)
		}

		fmt.Printf("## %s\n\n", entry.Name)
		fmt.Println(entry.Content)

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all strategies in the book",
	Long:  `List all strategy entries found in the strategy book.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		book, err := Parse(content)
		if err != nil {
			return fmt.Errorf("parsing strategy book: %w", err)
		}

		for _, entry := range book.Entries {
			fmt.Println(entry.Name)
		}

		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("file", "f", "docs/STRATEGIES.md", "Path to the strategy book")
	extractCmd.Flags().StringP("strategy", "s", "", "Strategy name to extract")
	_ = extractCmd.MarkFlagRequired("strategy")

	listCmd.Flags().StringP("file", "f", "docs/STRATEGIES.md", "Path to the strategy book")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(listCmd)
}
