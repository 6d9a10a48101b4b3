package expr

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
)

func evalString(t *testing.T, input, freeVar string, binding complex128) complex128 {
	t.Helper()
	compiled, err := CompileString(input, freeVar)
	require.NoError(t, err)
	val, err := compiled.Eval(binding)
	require.NoError(t, err)
	return val
}

func assertComplexNear(t *testing.T, expected, actual complex128, tolerance float64) {
	t.Helper()
	assert.InDelta(t, real(expected), real(actual), tolerance)
	assert.InDelta(t, imag(expected), imag(actual), tolerance)
}

func TestEval_Arithmetic(t *testing.T) {
	i := complex(0, 1)

	testCases := []struct {
		name     string
		input    string
		binding  complex128
		expected complex128
	}{
		{name: "Addition is componentwise", input: "z + (1+2*i)", binding: complex(3, 4), expected: complex(4, 6)},
		{name: "Subtraction is componentwise", input: "z - i", binding: complex(0, 1), expected: 0},
		{name: "Complex multiplication", input: "z * z", binding: complex(1, 1), expected: complex(0, 2)},
		{name: "Complex division", input: "z / i", binding: complex(0, 2), expected: complex(2, 0)},
		{name: "Square of i", input: "z^2", binding: i, expected: complex(-1, 0)},
		{name: "Negation", input: "-z", binding: complex(1, -2), expected: complex(-1, 2)},
		{name: "Constant pi", input: "pi", binding: 0, expected: complex(math.Pi, 0)},
		{name: "Constant e", input: "e", binding: 0, expected: complex(math.E, 0)},
		{name: "Fractional power of real", input: "z^0.5", binding: complex(4, 0), expected: complex(2, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val := evalString(t, tc.input, "z", tc.binding)
			assertComplexNear(t, tc.expected, val, 1e-9)
		})
	}
}

func TestEval_EulerIdentity(t *testing.T) {
	// exp(i*pi) = -1, regardless of the binding: no free variable occurs.
	compiled, err := CompileString("exp(i*pi)", "t")
	require.NoError(t, err)

	for _, binding := range []complex128{0, complex(1, 1), complex(-3, 7)} {
		val, err := compiled.Eval(binding)
		require.NoError(t, err)
		assertComplexNear(t, complex(-1, 0), val, 1e-6)
	}
}

func TestEval_ConstantExpressionIgnoresBinding(t *testing.T) {
	compiled, err := CompileString("2^10 + pi", "z")
	require.NoError(t, err)

	first, err := compiled.Eval(complex(1, 2))
	require.NoError(t, err)
	second, err := compiled.Eval(complex(-99, 0.5))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEval_PowerEdgeCases(t *testing.T) {
	t.Run("Zero to the zero is one", func(t *testing.T) {
		val := evalString(t, "z^0", "z", 0)
		assert.Equal(t, complex(1, 0), val)
	})

	t.Run("Zero to a nonzero power is zero", func(t *testing.T) {
		val := evalString(t, "z^2", "z", 0)
		assert.Equal(t, complex(0, 0), val)

		val = evalString(t, "z^(1+i)", "z", 0)
		assert.Equal(t, complex(0, 0), val)
	})

	t.Run("Complex exponent uses principal branch", func(t *testing.T) {
		// i^i = exp(-pi/2)
		val := evalString(t, "z^z", "z", complex(0, 1))
		assertComplexNear(t, complex(math.Exp(-math.Pi/2), 0), val, 1e-9)
	})
}

func TestEval_SingularitiesAreSentinels(t *testing.T) {
	t.Run("Division by zero", func(t *testing.T) {
		val := evalString(t, "1/z", "z", 0)
		assert.True(t, cplx.IsInvalid(val))
	})

	t.Run("Log of zero", func(t *testing.T) {
		val := evalString(t, "log(z)", "z", 0)
		assert.True(t, cplx.IsInvalid(val))
	})

	t.Run("Sentinel propagates through arithmetic", func(t *testing.T) {
		val := evalString(t, "1/z + 100", "z", 0)
		assert.True(t, cplx.IsInvalid(val))

		val = evalString(t, "sin(1/z)", "z", 0)
		assert.True(t, cplx.IsInvalid(val))
	})
}

func TestEval_SemanticErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Unknown function", input: "frobnicate(z)"},
		{name: "Wrong arity for sin", input: "sin(z, 1)"},
		{name: "Wrong arity for pow", input: "pow(z)"},
		{name: "Undefined variable", input: "w + 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compiled, err := CompileString(tc.input, "z")
			require.NoError(t, err, "these are evaluation errors, not parse errors")

			_, err = compiled.Eval(complex(1, 0))
			require.Error(t, err)

			var evalErr *EvalError
			assert.ErrorAs(t, err, &evalErr)
		})
	}
}

func TestEval_PrincipalBranch(t *testing.T) {
	t.Run("Log of negative real", func(t *testing.T) {
		// principal branch: log(-1) = i*pi
		val := evalString(t, "log(z)", "z", complex(-1, 0))
		assertComplexNear(t, complex(0, math.Pi), val, 1e-9)
	})

	t.Run("Sqrt of negative real", func(t *testing.T) {
		val := evalString(t, "sqrt(z)", "z", complex(-4, 0))
		assertComplexNear(t, complex(0, 2), val, 1e-9)
	})
}

func TestEval_Functions(t *testing.T) {
	z := complex(0.7, -0.3)

	testCases := []struct {
		name     string
		input    string
		expected complex128
	}{
		{name: "sin", input: "sin(z)", expected: cmplx.Sin(z)},
		{name: "cos", input: "cos(z)", expected: cmplx.Cos(z)},
		{name: "tan", input: "tan(z)", expected: cmplx.Tan(z)},
		{name: "exp", input: "exp(z)", expected: cmplx.Exp(z)},
		{name: "ln alias", input: "ln(z)", expected: cmplx.Log(z)},
		{name: "abs is real valued", input: "abs(z)", expected: complex(cmplx.Abs(z), 0)},
		{name: "arg is real valued", input: "arg(z)", expected: complex(cmplx.Phase(z), 0)},
		{name: "re projection", input: "re(z)", expected: complex(real(z), 0)},
		{name: "im projection", input: "im(z)", expected: complex(imag(z), 0)},
		{name: "conj", input: "conj(z)", expected: cmplx.Conj(z)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val := evalString(t, tc.input, "z", z)
			assertComplexNear(t, tc.expected, val, 1e-12)
		})
	}
}

func TestEvalOrInvalid(t *testing.T) {
	compiled, err := CompileString("frobnicate(z)", "z")
	require.NoError(t, err)
	assert.True(t, cplx.IsInvalid(compiled.EvalOrInvalid(0)))

	compiled, err = CompileString("z+1", "z")
	require.NoError(t, err)
	assert.Equal(t, complex(2, 0), compiled.EvalOrInvalid(complex(1, 0)))
}

func TestCompiled_ReuseIsSafe(t *testing.T) {
	compiled := MustCompileString("z^2 - 1", "z")

	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for k := 0; k < 1000; k++ {
				val, err := compiled.Eval(complex(float64(k), 1))
				assert.NoError(t, err)
				assert.False(t, cplx.IsInvalid(val))
			}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}
}

func TestFunctionRegistry_Names(t *testing.T) {
	names := NewFunctionRegistry().Names()
	assert.Contains(t, names, "sin")
	assert.Contains(t, names, "sqrt")
	assert.Contains(t, names, "log")
	assert.GreaterOrEqual(t, len(names), 10, "registry should expose a real function set")
}
