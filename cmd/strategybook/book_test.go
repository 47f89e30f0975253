package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/vollab/pkg/strategy"
)

const validBook = `# Strategy Book

Each section documents one builtin strategy.

## short-1w-straddle

Sells the weekly 50-delta put and call pair.

Legs:

- Short 1W 50-delta put, weight -1/2
- Short 1W 50-delta call, weight -1/2

## risk-reversal-1w-15d

Sells the 15-delta put to buy the 15-delta call.

Legs:

- Short 1W 15-delta put, weight -1
- Long 1W 15-delta call, weight +1
`

func TestParse(t *testing.T) {
	book, err := Parse([]byte(validBook))
	require.NoError(t, err)
	require.Len(t, book.Entries, 2)

	assert.Equal(t, "short-1w-straddle", book.Entries[0].Name)
	assert.Contains(t, book.Entries[0].Content, "Legs:")
	assert.Contains(t, book.Entries[0].Content, "50-delta put")

	assert.Equal(t, "risk-reversal-1w-15d", book.Entries[1].Name)
	assert.Contains(t, book.Entries[1].Content, "15-delta call")
	// Content of one section must not bleed into the next
	assert.NotContains(t, book.Entries[0].Content, "15-delta")
}

func TestFindStrategy(t *testing.T) {
	book, _ := Parse([]byte(validBook))

	entry := book.FindStrategy("risk-reversal-1w-15d")
	require.NotNil(t, entry)
	assert.Equal(t, "risk-reversal-1w-15d", entry.Name)

	assert.Nil(t, book.FindStrategy("no-such-strategy"))
}

func TestValidatePartialBook(t *testing.T) {
	// The fixture only documents two of the builtin strategies, so
	// validation must flag every missing one.
	result := Validate([]byte(validBook))
	assert.False(t, result.IsValid())
	assert.Len(t, result.Errors, len(strategy.Names())-2)
}

func TestValidateShippedBook(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "docs", "STRATEGIES.md"))
	require.NoError(t, err)

	result := Validate(content)
	for _, e := range result.Errors {
		t.Errorf("unexpected issue: %s", e.Message)
	}
}

func TestValidateFlagsProblems(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{
			"missing title",
			"## short-1w-straddle\n\nLegs:\n\n- Short 1W 50-delta put\n",
			"Missing book title",
		},
		{
			"unknown strategy",
			"# Strategy Book\n\n## made-up-strategy\n\nLegs:\n\n- a leg\n",
			"not a builtin strategy",
		},
		{
			"missing legs",
			"# Strategy Book\n\n## short-1w-straddle\n\nNo legs here.\n",
			"missing a Legs: list",
		},
		{
			"bad name casing",
			"# Strategy Book\n\n## Short_1W_Straddle\n\nLegs:\n\n- a leg\n",
			"lowercase kebab-case",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]byte(tt.source))
			assert.False(t, result.IsValid())

			found := false
			for _, e := range result.Errors {
				if strings.Contains(e.Message, tt.message) {
					found = true
				}
			}
			assert.True(t, found, "expected an issue containing %q, got %v", tt.message, result.Errors)
		})
	}
}
