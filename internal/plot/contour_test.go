package plot

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/AdnanKapadia/ComplexPlot/internal/testhelper"
)

func TestSampleContour_UnitCircle(t *testing.T) {
	points := SampleContour("exp(i*t)", "", 0, 2*math.Pi, 200)
	require.Len(t, points, 200)

	for _, z := range points {
		assert.InDelta(t, 1, cmplx.Abs(z), 1e-3)
	}

	// closed curve: first and last samples coincide
	first, last := points[0], points[len(points)-1]
	assert.InDelta(t, 0, cmplx.Abs(first-last), 1e-3)
}

func TestSampleContour_IncludesEndpoints(t *testing.T) {
	points := SampleContour("t", "", -1, 1, 5)
	require.Len(t, points, 5)
	assert.Equal(t, complex(-1, 0), points[0])
	assert.Equal(t, complex(1, 0), points[4])
	assert.Equal(t, complex(0, 0), points[2])
}

func TestSampleContour_Transform(t *testing.T) {
	// gamma(t) = t on [0,2], transformed by f(z) = z^2
	points := SampleContour("t", "z^2", 0, 2, 3)
	require.Len(t, points, 3)
	assert.Equal(t, complex(0, 0), points[0])
	assert.Equal(t, complex(1, 0), points[1])
	assert.Equal(t, complex(4, 0), points[2])
}

func TestSampleContour_DropsNonFiniteSamples(t *testing.T) {
	// 1/t is singular at t=0, which is sampled exactly at the midpoint
	points := SampleContour("1/t", "", -1, 1, 5)
	assert.Len(t, points, 4, "the singular sample is dropped, not replaced")

	for _, z := range points {
		assert.False(t, math.IsNaN(real(z)))
		assert.False(t, math.IsInf(real(z), 0))
	}
}

func TestSampleContour_CompileFailureYieldsEmpty(t *testing.T) {
	assert.Empty(t, SampleContour("t +", "", 0, 1, 10))
	assert.Empty(t, SampleContour("", "", 0, 1, 10))
	assert.Empty(t, SampleContour("t", "z +", 0, 1, 10))
}

func TestSampleContour_SingleStep(t *testing.T) {
	points := SampleContour("t+i", "", 3, 7, 1)
	require.Len(t, points, 1)
	assert.Equal(t, complex(3, 1), points[0])
}

func TestSampleContour_Idempotent(t *testing.T) {
	a := SampleContour("exp(i*t)*sin(3*t)", "", 0, 5, 100)
	b := SampleContour("exp(i*t)*sin(3*t)", "", 0, 5, 100)
	assert.Equal(t, a, b)
}

func TestEvaluateContours_FiltersDisabledAndEmpty(t *testing.T) {
	config := ContourConfig{Contours: []ContourEntry{
		{ID: "on", Expr: "exp(i*t)", TMax: 2 * math.Pi, Steps: 10, Enabled: true},
		{ID: "off", Expr: "exp(i*t)", TMax: 2 * math.Pi, Steps: 10, Enabled: false},
		{ID: "blank", Expr: "   ", TMax: 1, Steps: 10, Enabled: true},
		{ID: "broken", Expr: "t*(", TMax: 1, Steps: 10, Enabled: true},
	}}

	results := EvaluateContours(config)
	require.Len(t, results, 1)
	assert.Equal(t, "on", results[0].ID)
	assert.Len(t, results[0].Points, 10)
}

func TestEvaluateContours_EchoesDisplayMetadata(t *testing.T) {
	config := ContourConfig{Contours: []ContourEntry{{
		ID:      "c1",
		Expr:    "t",
		TMin:    1,
		TMax:    2,
		Steps:   4,
		Enabled: true,
		Color:   "#FF0000",
		Speed:   1.5,
	}}}

	results := EvaluateContours(config)
	require.Len(t, results, 1)
	assert.Equal(t, "#FF0000", results[0].Color)
	assert.Equal(t, 1.5, results[0].Speed)
	assert.Equal(t, 1.0, results[0].TMin)
	assert.Equal(t, 2.0, results[0].TMax)
}
