package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCircleEntry(integrand string, steps int) ContourEntry {
	return ContourEntry{
		ID:        "unit-circle",
		Expr:      "exp(i*t)",
		Transform: integrand,
		TMin:      0,
		TMax:      2 * math.Pi,
		Steps:     steps,
		Enabled:   true,
	}
}

func TestIntegrate_ClosedLoopConstantIntegrand(t *testing.T) {
	result := Integrate(unitCircleEntry("1", 2000))
	require.NotNil(t, result)

	// a constant integrand around a closed loop integrates to zero
	assert.InDelta(t, 0, result.FinalValue.Re, 1e-2)
	assert.InDelta(t, 0, result.FinalValue.Im, 1e-2)
}

func TestIntegrate_ResidueOfOneOverZ(t *testing.T) {
	result := Integrate(unitCircleEntry("1/z", 5000))
	require.NotNil(t, result)

	// residue theorem: the integral of 1/z around the unit circle is 2*pi*i
	assert.InDelta(t, 0, result.FinalValue.Re, 1e-2)
	assert.InDelta(t, 2*math.Pi, result.FinalValue.Im, 1e-2)
}

func TestIntegrate_DefaultsIntegrandToOne(t *testing.T) {
	result := Integrate(unitCircleEntry("", 500))
	require.NotNil(t, result)
	assert.Equal(t, "1", result.IntegrandExpr)
}

func TestIntegrate_TraceShapes(t *testing.T) {
	result := Integrate(unitCircleEntry("1", 100))
	require.NotNil(t, result)

	n := len(result.TValues)
	assert.Equal(t, 100, n)
	assert.Len(t, result.CurvePoints, n)
	assert.Len(t, result.Integrands, n)
	assert.Len(t, result.PartialSums, n)

	// parameters are strictly increasing
	for k := 1; k < n; k++ {
		assert.Greater(t, result.TValues[k], result.TValues[k-1])
	}

	// the final value is the last partial sum
	assert.Equal(t, result.PartialSums[n-1], result.FinalValue)
}

func TestIntegrate_SkipsSingularSamples(t *testing.T) {
	// the integrand blows up where the curve crosses zero (t = 0)
	entry := ContourEntry{
		ID:        "line",
		Expr:      "t",
		Transform: "1/z",
		TMin:      -1,
		TMax:      1,
		Steps:     5,
		Enabled:   true,
	}

	result := Integrate(entry)
	require.NotNil(t, result)
	assert.Len(t, result.TValues, 4, "the singular sample is skipped")
}

func TestIntegrate_NilWhenNothingComputable(t *testing.T) {
	t.Run("Curve singular everywhere", func(t *testing.T) {
		entry := ContourEntry{Expr: "1/(t-t)", TMin: 0, TMax: 1, Steps: 50}
		assert.Nil(t, Integrate(entry))
	})

	t.Run("Curve fails to compile", func(t *testing.T) {
		entry := ContourEntry{Expr: "t*(", TMin: 0, TMax: 1, Steps: 50}
		assert.Nil(t, Integrate(entry))
	})

	t.Run("Integrand fails to compile", func(t *testing.T) {
		entry := ContourEntry{Expr: "t", Transform: "z)", TMin: 0, TMax: 1, Steps: 50}
		assert.Nil(t, Integrate(entry))
	})

	t.Run("Zero steps", func(t *testing.T) {
		entry := ContourEntry{Expr: "t", TMin: 0, TMax: 1, Steps: 0}
		assert.Nil(t, Integrate(entry))
	})
}

func TestIntegrate_RealInterval(t *testing.T) {
	// integral of z^2 dz along the real segment [0, 1] is 1/3
	entry := ContourEntry{
		ID:        "segment",
		Expr:      "t",
		Transform: "z^2",
		TMin:      0,
		TMax:      1,
		Steps:     20000,
		Enabled:   true,
	}

	result := Integrate(entry)
	require.NotNil(t, result)
	assert.InDelta(t, 1.0/3.0, result.FinalValue.Re, 1e-3)
	assert.InDelta(t, 0, result.FinalValue.Im, 1e-6)
}

func TestIntegrateFunc_EmitsInOrder(t *testing.T) {
	var seen []IntegralSample
	survived := IntegrateFunc(unitCircleEntry("1", 50), func(s IntegralSample) {
		seen = append(seen, s)
	})

	assert.Equal(t, 50, survived)
	require.Len(t, seen, 50)
	for k := 1; k < len(seen); k++ {
		assert.Greater(t, seen[k].T, seen[k-1].T)
	}
}
