package plot

import (
	"github.com/rs/zerolog/log"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
	"github.com/AdnanKapadia/ComplexPlot/internal/expr"
)

// SampleContour samples the curve gamma(t) over [tMin, tMax] at steps
// evenly spaced parameters, endpoints included. When transformExpr is
// non-empty the output is f(gamma(t)) with f bound to z. Samples whose
// final value is non-finite are dropped, so the output can be shorter than
// steps. A curve that fails to compile yields an empty sequence.
func SampleContour(curveExpr, transformExpr string, tMin, tMax float64, steps int) []complex128 {
	curve, err := expr.CompileString(curveExpr, "t")
	if err != nil {
		log.Debug().Err(err).Str("expression", curveExpr).Msg("contour expression failed to compile")
		return []complex128{}
	}

	var transform *expr.Compiled
	if transformExpr != "" {
		transform, err = expr.CompileString(transformExpr, "z")
		if err != nil {
			log.Debug().Err(err).Str("expression", transformExpr).Msg("transform expression failed to compile")
			return []complex128{}
		}
	}

	if steps < 1 {
		return []complex128{}
	}
	dt := (tMax - tMin) / float64(max(steps-1, 1))

	points := make([]complex128, 0, steps)
	dropped := 0
	for step := 0; step < steps; step++ {
		t := tMin + float64(step)*dt
		z := curve.EvalOrInvalid(complex(t, 0))
		if transform != nil {
			z = transform.EvalOrInvalid(z)
		}
		if !cplx.IsFinite(z) {
			dropped++
			continue
		}
		points = append(points, z)
	}

	if dropped > 0 {
		log.Debug().
			Str("expression", curveExpr).
			Int("dropped", dropped).
			Int("steps", steps).
			Msg("dropped non-finite contour samples")
	}

	return points
}

// EvaluateContours samples every enabled, non-blank entry. Disabled and
// empty entries are filtered out before sampling, not reported as errors.
func EvaluateContours(config ContourConfig) []ContourData {
	results := make([]ContourData, 0, len(config.Contours))

	for _, entry := range config.Contours {
		if !entry.Enabled || !expr.IsValid(entry.Expr) {
			continue
		}

		samples := SampleContour(entry.Expr, entry.Transform, entry.TMin, entry.TMax, entry.Steps)
		points := make([]Point, len(samples))
		for i, z := range samples {
			points[i] = FromComplex(z)
		}

		results = append(results, ContourData{
			ID:     entry.ID,
			Points: points,
			TMin:   entry.TMin,
			TMax:   entry.TMax,
			Color:  entry.Color,
			Speed:  entry.Speed,
		})
	}

	return results
}
