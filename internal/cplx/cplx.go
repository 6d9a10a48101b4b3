// Package cplx holds the complex-number conventions shared by the
// expression evaluator and the plot generators: the invalid sentinel,
// finiteness checks, and the scalar projections used for display.
package cplx

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Invalid is the sentinel for "no valid numeric result here". It propagates
// through arithmetic the way IEEE-754 NaN does, so a single singular sample
// never aborts a batch.
var Invalid = complex(math.NaN(), math.NaN())

// IsFinite reports whether both components of z are finite numbers.
func IsFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) &&
		!math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}

// IsInvalid reports whether z carries the invalid sentinel (or any other
// non-finite value, which the generators treat identically).
func IsInvalid(z complex128) bool {
	return !IsFinite(z)
}

// Projection selects the scalar extracted from a complex value for display.
type Projection string

const (
	ProjModulus   Projection = "modulus"
	ProjArgument  Projection = "argument"
	ProjReal      Projection = "real"
	ProjImaginary Projection = "imaginary"
)

// Valid reports whether p names a known projection.
func (p Projection) Valid() bool {
	switch p {
	case ProjModulus, ProjArgument, ProjReal, ProjImaginary:
		return true
	}
	return false
}

// Apply extracts the scalar p from z. A non-finite z always maps to NaN so
// grid cells keep an explicit invalid marker rather than a silent zero.
func (p Projection) Apply(z complex128) float64 {
	if !IsFinite(z) {
		return math.NaN()
	}
	switch p {
	case ProjArgument:
		return cmplx.Phase(z)
	case ProjReal:
		return real(z)
	case ProjImaginary:
		return imag(z)
	default:
		return cmplx.Abs(z)
	}
}

// Format renders z in the a+bi form accepted by ParsePoint.
func Format(z complex128) string {
	if !IsFinite(z) {
		return "invalid"
	}
	re := strconv.FormatFloat(real(z), 'g', -1, 64)
	im := strconv.FormatFloat(imag(z), 'g', -1, 64)
	if imag(z) >= 0 {
		return fmt.Sprintf("%s+%si", re, im)
	}
	return fmt.Sprintf("%s%si", re, im)
}

// ParsePoint parses a complex point in any of the forms "a", "bi", "a+bi",
// "a-bi". Used by the CLI to take evaluation points from flags.
func ParsePoint(s string) (complex128, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return 0, fmt.Errorf("empty point")
	}

	if !strings.HasSuffix(s, "i") {
		re, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid point %q: %w", s, err)
		}
		return complex(re, 0), nil
	}

	body := strings.TrimSuffix(s, "i")
	// Split on the last +/-, ignoring a leading sign and exponent signs.
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if body[i] != '+' && body[i] != '-' {
			continue
		}
		if body[i-1] == 'e' || body[i-1] == 'E' {
			continue
		}
		split = i
		break
	}
	if split < 0 {
		im, err := parseImagPart(body)
		if err != nil {
			return 0, fmt.Errorf("invalid point %q: %w", s, err)
		}
		return complex(0, im), nil
	}

	re, err := strconv.ParseFloat(body[:split], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	im, err := parseImagPart(body[split:])
	if err != nil {
		return 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return complex(re, im), nil
}

func parseImagPart(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}
