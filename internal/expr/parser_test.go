package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Rendering(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Precedence of multiplication over addition",
			input:    "1+2*3",
			expected: "(1 + (2 * 3))",
		},
		{
			name:     "Left associative subtraction",
			input:    "1-2-3",
			expected: "((1 - 2) - 3)",
		},
		{
			name:     "Right associative power",
			input:    "z^2^3",
			expected: "(z ^ (2 ^ 3))",
		},
		{
			name:     "Double star power alias",
			input:    "z**2",
			expected: "(z ^ 2)",
		},
		{
			name:     "Unary minus binds tighter than power",
			input:    "-z^2",
			expected: "((-z) ^ 2)",
		},
		{
			name:     "Parentheses override precedence",
			input:    "(1+2)*3",
			expected: "((1 + 2) * 3)",
		},
		{
			name:     "Function call with arguments",
			input:    "pow(z, 2)",
			expected: "pow(z, 2)",
		},
		{
			name:     "Nested calls and constants",
			input:    "exp(i*pi)",
			expected: "exp((i * pi))",
		},
		{
			name:     "Whitespace is insignificant",
			input:    "  z  +  1 ",
			expected: "(z + 1)",
		},
		{
			name:     "Decimal literal",
			input:    "0.5*z",
			expected: "(0.5 * z)",
		},
		{
			name:     "Unary plus is dropped",
			input:    "+z",
			expected: "z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, node.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Unbalanced paren", input: "(z+1"},
		{name: "Trailing operator", input: "z+"},
		{name: "Leading operator", input: "*z"},
		{name: "Stray character", input: "z$1"},
		{name: "Double dot number", input: "1.2.3"},
		{name: "Lone dot", input: "."},
		{name: "Dangling expression", input: "z 1"},
		{name: "Missing call paren", input: "sin(z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
			assert.False(t, errors.Is(err, ErrEmptyExpression))
		})
	}
}

func TestParse_EmptyInputIsDistinct(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := Parse(input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyExpression), "input %q", input)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("z^2 + 1/z"))
	assert.True(t, IsValid("sin(cos(tan(z)))"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("z+"))
	assert.False(t, IsValid("(("))
}

func TestParse_NeverEvaluates(t *testing.T) {
	// A tree over an unknown function parses fine; only evaluation rejects it.
	node, err := Parse("frobnicate(z)")
	require.NoError(t, err)
	assert.Equal(t, "frobnicate(z)", node.String())
}

func TestFreeVariables(t *testing.T) {
	node, err := Parse("z * sin(w) + pi")
	require.NoError(t, err)

	vars := FreeVariables(node)
	assert.True(t, vars["z"])
	assert.True(t, vars["w"])
	assert.False(t, vars["pi"], "constants are not free variables")
}

func TestParse_Snapshot(t *testing.T) {
	inputs := []string{
		"1/(1+z^2)",
		"exp(i*t) * (1 + 0.5*sin(8*t))",
		"-sqrt(z)^2 + log(z*conj(z))",
	}

	var rendered strings.Builder
	for _, input := range inputs {
		node, err := Parse(input)
		require.NoError(t, err)
		rendered.WriteString(input + " => " + node.String() + "\n")
	}

	snaps.MatchSnapshot(t, rendered.String())
}
