package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	legs, err := Lookup("short-1w-straddle")
	require.NoError(t, err)
	require.Len(t, legs, 2)
	assert.Equal(t, "Short ATM Put 1W", legs[0].Name)
	assert.Equal(t, "Short ATM Call 1W", legs[1].Name)

	_, err = Lookup("iron-condor")
	assert.EqualError(t, err, `unknown strategy "iron-condor"`)
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	assert.Len(t, names, 19)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestAllStrategiesValidate(t *testing.T) {
	for _, name := range Names() {
		legs, err := Lookup(name)
		require.NoError(t, err)
		for _, leg := range legs {
			assert.NoError(t, leg.Validate(), "%s / %s", name, leg.Name)
		}
	}
}
