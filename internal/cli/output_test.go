package cli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Plain number", input: "1.5", expected: 1.5},
		{name: "Negative number", input: "-3", expected: -3},
		{name: "Full turn", input: "2*pi", expected: 2 * math.Pi},
		{name: "Half turn", input: "pi/2", expected: math.Pi / 2},
		{name: "Exponential", input: "e^2", expected: math.E * math.E},
		{name: "Nested call", input: "cos(0)", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScalar(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestParseScalar_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty input", input: ""},
		{name: "Malformed expression", input: "2*"},
		{name: "Imaginary value", input: "2*i"},
		{name: "Unknown function", input: "nope(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScalar(tt.input)
			assert.Error(t, err)
		})
	}
}
