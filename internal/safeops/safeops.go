// Package safeops wraps the bare differentiation engines with explicit
// errors.
//
// The core never signals domain violations; log of a negative number or a
// division by zero simply propagates NaN/Inf through the result. This layer
// is the one place such conditions are turned into structured errors: it
// pre-validates inputs, delegates the arithmetic to the untouched core, and
// never alters a numeric result it passes through.
package safeops

import (
	"math"

	"github.com/pkg/errors"

	"github.com/grail-ml/grail/internal/dual"
)

// Sentinel error kinds, matchable with errors.Is through any wrapping.
var (
	// ErrDomain marks inputs outside a function's mathematical domain.
	ErrDomain = errors.New("domain error")
	// ErrNumerical marks results that would overflow or divide by zero.
	ErrNumerical = errors.New("numerical error")
	// ErrShape marks mismatched batch or vector lengths.
	ErrShape = errors.New("shape mismatch")
)

// Log returns x.Log(), or ErrDomain when the primal is not positive.
func Log(x dual.Dual) (dual.Dual, error) {
	if x.Primal <= 0 {
		return dual.Dual{}, errors.Wrapf(ErrDomain, "log of non-positive value %g", x.Primal)
	}
	return x.Log(), nil
}

// Sqrt returns x.Sqrt(), or ErrDomain when the primal is negative.
func Sqrt(x dual.Dual) (dual.Dual, error) {
	if x.Primal < 0 {
		return dual.Dual{}, errors.Wrapf(ErrDomain, "sqrt of negative value %g", x.Primal)
	}
	return x.Sqrt(), nil
}

// Pow returns x.Pow(n), or ErrDomain when the primal is negative and the
// exponent is not an integer (the core would produce NaN).
func Pow(x dual.Dual, n float64) (dual.Dual, error) {
	if x.Primal < 0 && n != math.Trunc(n) {
		return dual.Dual{}, errors.Wrapf(ErrDomain, "pow of negative base %g with non-integer exponent %g", x.Primal, n)
	}
	return x.Pow(n), nil
}

// Div returns x.Div(y), or ErrNumerical when the denominator's primal is
// zero.
func Div(x, y dual.Dual) (dual.Dual, error) {
	if y.Primal == 0 {
		return dual.Dual{}, errors.Wrap(ErrNumerical, "division by zero")
	}
	return x.Div(y), nil
}

// CheckFinite returns ErrNumerical if either half of x is NaN or infinite.
// Useful for inspecting a core result after the fact instead of
// pre-validating.
func CheckFinite(x dual.Dual) error {
	if math.IsNaN(x.Primal) || math.IsInf(x.Primal, 0) {
		return errors.Wrapf(ErrNumerical, "non-finite primal %g", x.Primal)
	}
	if math.IsNaN(x.Tangent) || math.IsInf(x.Tangent, 0) {
		return errors.Wrapf(ErrNumerical, "non-finite tangent %g", x.Tangent)
	}
	return nil
}

// CheckLen returns ErrShape unless got equals want. Batch wrappers use it
// to validate vector lengths before delegating to the core.
func CheckLen(got, want int) error {
	if got != want {
		return errors.Wrapf(ErrShape, "got %d elements, want %d", got, want)
	}
	return nil
}
