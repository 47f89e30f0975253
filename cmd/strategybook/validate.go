package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/investlab/vollab/pkg/strategy"
)

// ValidationError represents a single validation issue
type ValidationError struct {
	Line    int
	Message string
}

// ValidationResult holds all validation errors
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) AddError(line int, message string) {
	r.Errors = append(r.Errors, ValidationError{Line: line, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the strategy book against the builtin strategies",
	Long: `Validate that the strategy book documents the builtin strategy set.

Checks include:
- File has a title (# Strategy Book)
- Every section name matches a builtin strategy
- Every builtin strategy has a section
- Sections document their legs (a "Legs:" list)
- Strategy names are lowercase kebab-case`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		result := Validate(content)

		if result.IsValid() {
			fmt.Println("✓ Strategy book is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(result.Errors))
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Printf("  Line %d: %s\n", e.Line, e.Message)
			} else {
				fmt.Printf("  %s\n", e.Message)
			}
		}

		os.Exit(1)
		return nil
	},
}

var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks the strategy book against the builtin strategy set
func Validate(source []byte) *ValidationResult {
	result := &ValidationResult{}
	lines := strings.Split(string(source), "\n")

	hasTitle := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "strateg") {
				result.AddError(i+1, "Title should mention strategies")
			}
		}
	}
	if !hasTitle {
		result.AddError(0, "Missing book title (# Strategy Book)")
	}

	book, _ := Parse(source)
	if book == nil {
		return result
	}

	documented := make(map[string]bool)
	for _, entry := range book.Entries {
		documented[entry.Name] = true

		if !nameRegex.MatchString(entry.Name) {
			result.AddError(0, fmt.Sprintf("Strategy name '%s' should be lowercase kebab-case", entry.Name))
		}
		if _, err := strategy.Lookup(entry.Name); err != nil {
			result.AddError(0, fmt.Sprintf("Strategy '%s' is not a builtin strategy", entry.Name))
		}
		if !strings.Contains(entry.Content, "Legs:") {
			result.AddError(0, fmt.Sprintf("Strategy '%s' is missing a Legs: list", entry.Name))
		}
	}

	for _, name := range strategy.Names() {
		if !documented[name] {
			result.AddError(0, fmt.Sprintf("Builtin strategy '%s' is not documented", name))
		}
	}

	return result
}

func init() {
	validateCmd.Flags().StringP("file", "f", "docs/STRATEGIES.md", "Path to the strategy book")
	rootCmd.AddCommand(validateCmd)
}
