package plot

import (
	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
	"github.com/AdnanKapadia/ComplexPlot/internal/expr"
)

// derivStepFactor scales the numerical-differentiation step relative to the
// sample spacing dt.
const derivStepFactor = 0.01

// IntegralSample is one surviving quadrature step: the parameter, the curve
// point, the integrand vector f(gamma(t)) * gamma'(t), and the running sum
// after accumulating this step.
type IntegralSample struct {
	T          float64 `json:"t"`
	CurvePoint Point   `json:"curvePoint"`
	Integrand  Point   `json:"integrand"`
	PartialSum Point   `json:"partialSum"`
}

// Integrate estimates the line integral of integrand along the curve over
// [TMin, TMax] by Riemann-sum quadrature, with gamma'(t) from a central
// difference (forward difference as fallback near singular shifts). An
// empty integrand defaults to the constant 1. Returns nil when either
// expression fails to compile or no sample survives: "nothing computable",
// distinct from an error.
func Integrate(entry ContourEntry) *ContourIntegralResult {
	integrandExpr := entry.Transform
	if integrandExpr == "" {
		integrandExpr = "1"
	}

	result := &ContourIntegralResult{
		ID:            entry.ID,
		TValues:       []float64{},
		CurvePoints:   []Point{},
		Integrands:    []Point{},
		PartialSums:   []Point{},
		CurveExpr:     entry.Expr,
		IntegrandExpr: integrandExpr,
	}

	survived := IntegrateFunc(entry, func(s IntegralSample) {
		result.TValues = append(result.TValues, s.T)
		result.CurvePoints = append(result.CurvePoints, s.CurvePoint)
		result.Integrands = append(result.Integrands, s.Integrand)
		result.PartialSums = append(result.PartialSums, s.PartialSum)
		result.FinalValue = s.PartialSum
	})
	if survived == 0 {
		return nil
	}

	return result
}

// IntegrateFunc runs the quadrature, calling emit once per surviving sample
// in parameter order, and returns the number of surviving samples. The
// server uses it to stream partial sums over a WebSocket as they are
// accumulated.
func IntegrateFunc(entry ContourEntry, emit func(IntegralSample)) int {
	curve, err := expr.CompileString(entry.Expr, "t")
	if err != nil {
		return 0
	}

	integrandExpr := entry.Transform
	if integrandExpr == "" {
		integrandExpr = "1"
	}
	integrand, err := expr.CompileString(integrandExpr, "z")
	if err != nil {
		return 0
	}

	steps := entry.Steps
	if steps < 1 {
		return 0
	}
	dt := (entry.TMax - entry.TMin) / float64(max(steps-1, 1))
	h := dt * derivStepFactor

	var sum complex128
	survived := 0

	for step := 0; step < steps; step++ {
		t := entry.TMin + float64(step)*dt

		point := curve.EvalOrInvalid(complex(t, 0))
		if !cplx.IsFinite(point) {
			continue
		}

		deriv, ok := differentiate(curve, t, h)
		if !ok {
			continue
		}

		fz := integrand.EvalOrInvalid(point)
		vector := fz * deriv
		if !cplx.IsFinite(vector) {
			continue
		}

		sum += vector * complex(dt, 0)
		survived++
		emit(IntegralSample{
			T:          t,
			CurvePoint: FromComplex(point),
			Integrand:  FromComplex(vector),
			PartialSum: FromComplex(sum),
		})
	}

	return survived
}

// differentiate estimates gamma'(t) by central difference, falling back to
// a forward difference when a shifted evaluation lands on a singularity.
func differentiate(curve *expr.Compiled, t, h float64) (complex128, bool) {
	ahead := curve.EvalOrInvalid(complex(t+h, 0))
	behind := curve.EvalOrInvalid(complex(t-h, 0))
	if cplx.IsFinite(ahead) && cplx.IsFinite(behind) {
		return (ahead - behind) / complex(2*h, 0), true
	}

	here := curve.EvalOrInvalid(complex(t, 0))
	if cplx.IsFinite(ahead) && cplx.IsFinite(here) {
		return (ahead - here) / complex(h, 0), true
	}

	return 0, false
}
