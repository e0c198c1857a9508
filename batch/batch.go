// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package batch vectorizes forward-mode differentiation across slices of
// inputs and computes Jacobians of vector functions.
//
//	import "github.com/grail-ml/grail/batch"
//
//	func main() {
//	    square := func(x batch.Dual) batch.Dual { return x.Mul(x) }
//	    grads := batch.Gradient(square, []float64{1, 2, 3})
//	    // grads[i] = {Value: xs[i]², Grad: 2·xs[i]}
//	}
//
// Elements are independent forward passes over pure functions, so batches
// run in parallel; see the Runner type to control worker settings.
package batch

import (
	"gonum.org/v1/gonum/mat"

	"github.com/grail-ml/grail/internal/batch"
	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/parallel"
)

// Dual re-exports the dual number type for batch callbacks.
type Dual = dual.Dual

// Func is a scalar function over dual numbers.
type Func = batch.Func

// VectorFunc is an n-input, m-output vector function over dual numbers.
type VectorFunc = batch.VectorFunc

// ValueGrad is one element of a batched value-and-derivative evaluation.
type ValueGrad = batch.ValueGrad

// Point is one sample of a range evaluation.
type Point = batch.Point

// Runner executes batch operations under an explicit parallelism config.
type Runner = batch.Runner

// Config controls a Runner's parallelism.
type Config = parallel.Config

// DefaultConfig returns the default parallelism settings.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Apply evaluates f at every x and returns the primal results, in order.
func Apply(f Func, xs []float64) []float64 { return batch.Apply(f, xs) }

// Gradient evaluates f at every x and returns value/derivative pairs.
func Gradient(f Func, xs []float64) []ValueGrad { return batch.Gradient(f, xs) }

// VMap evaluates f at every seeded x and returns the full dual results.
func VMap(f Func, xs []float64) []Dual { return batch.VMap(f, xs) }

// EvaluateRange samples f with value and derivative at steps+1 evenly
// spaced points over [start, end] inclusive; steps <= 0 yields an empty
// result.
func EvaluateRange(f Func, start, end float64, steps int) []Point {
	return batch.EvaluateRange(f, start, end, steps)
}

// Jacobian computes the m×n Jacobian of f at xs, one seeded forward pass
// per input column.
func Jacobian(f VectorFunc, xs []float64) *mat.Dense { return batch.Jacobian(f, xs) }
