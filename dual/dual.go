// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation over dual
// numbers.
//
// A dual number carries a value (primal) together with its derivative
// (tangent). Seeding the input variable with tangent 1 and composing the
// arithmetic methods propagates the chain rule automatically:
//
//	import "github.com/grail-ml/grail/dual"
//
//	func main() {
//	    f := func(x dual.Dual) dual.Dual {
//	        // f(x) = x² + 2x + 1
//	        return x.Mul(x).Add(dual.Constant(2).Mul(x)).Add(dual.Constant(1))
//	    }
//	    v, g := dual.ValueAndGrad(f, 3) // v = 16, g = 8
//	}
package dual

import "github.com/grail-ml/grail/internal/dual"

// Dual is a primal/tangent pair. All arithmetic and elementary functions
// are methods returning new values; see the internal/dual documentation for
// the full operation set and derivative rules.
type Dual = dual.Dual

// New returns a dual number with the given primal and tangent.
func New(primal, tangent float64) Dual {
	return dual.New(primal, tangent)
}

// Constant returns x with zero tangent; constants do not participate in
// differentiation.
func Constant(x float64) Dual {
	return dual.Constant(x)
}

// Seed returns x with tangent 1, marking it as the differentiation
// variable.
func Seed(x float64) Dual {
	return dual.Seed(x)
}

// Grad computes the derivative of f at x.
func Grad(f func(Dual) Dual, x float64) float64 {
	return dual.Grad(f, x)
}

// ValueAndGrad computes f(x) and its derivative in one forward pass.
func ValueAndGrad(f func(Dual) Dual, x float64) (value, grad float64) {
	return dual.ValueAndGrad(f, x)
}

// JVP computes the Jacobian-vector product of f at primal along an
// arbitrary input tangent.
func JVP(f func(Dual) Dual, primal, tangent float64) (outPrimal, outTangent float64) {
	return dual.JVP(f, primal, tangent)
}
