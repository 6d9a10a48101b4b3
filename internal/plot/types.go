// Package plot contains the numeric generators built on the expression
// engine: the contour sampler, the domain/surface grid samplers, and the
// contour-integral engine. Every generator takes immutable configuration,
// returns freshly allocated results, and contains per-sample failures
// locally instead of aborting a batch.
package plot

import (
	"encoding/json"
	"math"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
)

// Point is the wire form of a complex number.
type Point struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// FromComplex converts a complex128 to its wire form.
func FromComplex(z complex128) Point {
	return Point{Re: real(z), Im: imag(z)}
}

// Complex returns the complex128 a Point represents.
func (p Point) Complex() complex128 {
	return complex(p.Re, p.Im)
}

// Scalar is a float64 whose non-finite values marshal to JSON null, the
// explicit invalid marker for grid cells. null round-trips back to NaN.
type Scalar float64

// IsInvalid reports whether s carries the invalid marker.
func (s Scalar) IsInvalid() bool {
	f := float64(s)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.IsInvalid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(s))
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Scalar(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Scalar(f)
	return nil
}

// ContourEntry configures one parametric curve. Color and Speed are display
// metadata echoed back untouched; the sampler consumes only the id, the
// expressions, the interval, and the sample count.
type ContourEntry struct {
	ID        string  `json:"id" yaml:"id"`
	Expr      string  `json:"expression" yaml:"expression"`
	Transform string  `json:"transform,omitempty" yaml:"transform,omitempty"`
	TMin      float64 `json:"tMin" yaml:"tMin"`
	TMax      float64 `json:"tMax" yaml:"tMax"`
	Steps     int     `json:"steps" yaml:"steps"`
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Color     string  `json:"color,omitempty" yaml:"color,omitempty"`
	Speed     float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
}

// ContourConfig is the batch form consumed by EvaluateContours.
type ContourConfig struct {
	Contours []ContourEntry `json:"contours" yaml:"contours"`
}

// ContourData is one sampled curve. Points may be shorter than Steps:
// non-finite samples are dropped, so positions do not map back to
// parameter values without recomputation.
type ContourData struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	TMin   float64 `json:"tMin"`
	TMax   float64 `json:"tMax"`
	Color  string  `json:"color,omitempty"`
	Speed  float64 `json:"speed,omitempty"`
}

// Region is a rectangle in the complex plane.
type Region struct {
	XMin float64 `json:"xMin" yaml:"xMin"`
	XMax float64 `json:"xMax" yaml:"xMax"`
	YMin float64 `json:"yMin" yaml:"yMin"`
	YMax float64 `json:"yMax" yaml:"yMax"`
}

// DomainColoringConfig configures the 2D scalar-field sampler.
type DomainColoringConfig struct {
	Expr       string          `json:"expression" yaml:"expression"`
	Region     Region          `json:"region" yaml:"region"`
	Resolution int             `json:"resolution" yaml:"resolution"`
	Scalar     cplx.Projection `json:"scalar" yaml:"scalar"`
	Color      cplx.Projection `json:"color" yaml:"color"`
}

// DomainColoringResult holds two row-major resolution x resolution grids.
// Invalid cells are NaN, marshaled as null; grid shape is always preserved.
type DomainColoringResult struct {
	ScalarGrid [][]Scalar `json:"scalarGrid"`
	ColorGrid  [][]Scalar `json:"colorGrid"`
}

// Surface3DConfig configures the 3D height/color sampler.
type Surface3DConfig struct {
	Expr       string          `json:"expression" yaml:"expression"`
	Region     Region          `json:"region" yaml:"region"`
	Resolution int             `json:"resolution" yaml:"resolution"`
	Height     cplx.Projection `json:"height" yaml:"height"`
	Color      cplx.Projection `json:"color" yaml:"color"`
}

// Surface3DResult carries the sampled axes plus height and color grids,
// both projections taken from a single evaluation per cell.
type Surface3DResult struct {
	XAxis      []float64  `json:"xAxis"`
	YAxis      []float64  `json:"yAxis"`
	HeightGrid [][]Scalar `json:"heightGrid"`
	ColorGrid  [][]Scalar `json:"colorGrid"`
}

// ContourIntegralResult traces a line-integral estimate: the surviving
// sample parameters, the curve points and integrand vectors at each, the
// running partial sums, and the final accumulated value.
type ContourIntegralResult struct {
	ID            string    `json:"id"`
	TValues       []float64 `json:"tValues"`
	CurvePoints   []Point   `json:"curvePoints"`
	Integrands    []Point   `json:"integrands"`
	PartialSums   []Point   `json:"partialSums"`
	FinalValue    Point     `json:"finalValue"`
	CurveExpr     string    `json:"curveExpression"`
	IntegrandExpr string    `json:"integrandExpression"`
}
