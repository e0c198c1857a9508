// Package batch vectorizes forward-mode differentiation across slices of
// inputs.
//
// Every element is an independent forward pass over a pure function, so the
// layer is data-parallel by construction; a Runner fans elements out across
// goroutines with the parallel package, writing each result into its own
// slot. Package-level functions use a shared Runner with default settings.
package batch

import (
	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/parallel"
)

// Func is a scalar function over dual numbers, as composed from the dual
// package's operations.
type Func func(dual.Dual) dual.Dual

// VectorFunc is an n-input, m-output vector function over dual numbers.
type VectorFunc func([]dual.Dual) []dual.Dual

// ValueGrad is one element of a batched value-and-derivative evaluation.
type ValueGrad struct {
	Value float64
	Grad  float64
}

// Runner executes batch operations under an explicit parallelism config.
type Runner struct {
	Config parallel.Config
}

var std = Runner{Config: parallel.DefaultConfig()}

// Apply evaluates f at every x and returns the primal results, in order.
//
// Each input is seeded (tangent 1) exactly as in Gradient; only the primal
// half of the result is kept.
func (r Runner) Apply(f Func, xs []float64) []float64 {
	out := make([]float64, len(xs))
	parallel.For(len(xs), func(i int) {
		out[i] = f(dual.Seed(xs[i])).Primal
	}, r.Config)
	return out
}

// Gradient evaluates f at every x and returns value/derivative pairs, in
// order.
func (r Runner) Gradient(f Func, xs []float64) []ValueGrad {
	out := make([]ValueGrad, len(xs))
	parallel.For(len(xs), func(i int) {
		y := f(dual.Seed(xs[i]))
		out[i] = ValueGrad{Value: y.Primal, Grad: y.Tangent}
	}, r.Config)
	return out
}

// VMap evaluates f at every seeded x and returns the full dual results.
func (r Runner) VMap(f Func, xs []float64) []dual.Dual {
	out := make([]dual.Dual, len(xs))
	parallel.For(len(xs), func(i int) {
		out[i] = f(dual.Seed(xs[i]))
	}, r.Config)
	return out
}

// Apply evaluates f at every x using the default runner.
func Apply(f Func, xs []float64) []float64 { return std.Apply(f, xs) }

// Gradient evaluates f at every x using the default runner.
func Gradient(f Func, xs []float64) []ValueGrad { return std.Gradient(f, xs) }

// VMap evaluates f at every x using the default runner.
func VMap(f Func, xs []float64) []dual.Dual { return std.VMap(f, xs) }
