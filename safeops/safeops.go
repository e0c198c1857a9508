// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package safeops wraps the differentiation core with explicit errors.
//
// The core itself reports domain violations as IEEE NaN/Inf and defines no
// errors at all. This layer pre-validates inputs and converts violations to
// structured errors, classified by the sentinel kinds ErrDomain,
// ErrNumerical and ErrShape (match with errors.Is). Numeric results pass
// through the core unchanged.
package safeops

import (
	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/safeops"
)

// Error kinds.
var (
	ErrDomain    = safeops.ErrDomain
	ErrNumerical = safeops.ErrNumerical
	ErrShape     = safeops.ErrShape
)

// Log returns x.Log(), or ErrDomain when the primal is not positive.
func Log(x dual.Dual) (dual.Dual, error) { return safeops.Log(x) }

// Sqrt returns x.Sqrt(), or ErrDomain when the primal is negative.
func Sqrt(x dual.Dual) (dual.Dual, error) { return safeops.Sqrt(x) }

// Pow returns x.Pow(n), or ErrDomain for a negative base with a
// non-integer exponent.
func Pow(x dual.Dual, n float64) (dual.Dual, error) { return safeops.Pow(x, n) }

// Div returns x.Div(y), or ErrNumerical for a zero denominator.
func Div(x, y dual.Dual) (dual.Dual, error) { return safeops.Div(x, y) }

// CheckFinite returns ErrNumerical if either half of x is NaN or infinite.
func CheckFinite(x dual.Dual) error { return safeops.CheckFinite(x) }

// CheckLen returns ErrShape unless got equals want.
func CheckLen(got, want int) error { return safeops.CheckLen(got, want) }
