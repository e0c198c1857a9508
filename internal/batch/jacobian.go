package batch

import (
	"gonum.org/v1/gonum/mat"

	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/parallel"
)

// Jacobian computes the m×n Jacobian of f at xs, one forward pass per input
// dimension.
//
// Column j is produced by seeding input j (tangent 1, all others tangent 0)
// and reading each output's tangent into J[i][j]. A calibration call with
// all inputs held constant discovers m first, so f runs n+1 times in total.
// Columns are independent and run under the runner's parallelism config;
// each writes a disjoint set of matrix cells.
//
// An empty input or output yields an empty matrix.
func (r Runner) Jacobian(f VectorFunc, xs []float64) *mat.Dense {
	n := len(xs)
	if n == 0 {
		return &mat.Dense{}
	}

	in := make([]dual.Dual, n)
	for i, x := range xs {
		in[i] = dual.Constant(x)
	}
	m := len(f(in))
	if m == 0 {
		return &mat.Dense{}
	}

	jac := mat.NewDense(m, n, nil)
	parallel.For(n, func(j int) {
		col := make([]dual.Dual, n)
		for i, x := range xs {
			col[i] = dual.Constant(x)
		}
		col[j] = dual.Seed(xs[j])
		for i, y := range f(col) {
			jac.Set(i, j, y.Tangent)
		}
	}, r.Config)
	return jac
}

// Jacobian computes the Jacobian of f at xs using the default runner.
func Jacobian(f VectorFunc, xs []float64) *mat.Dense { return std.Jacobian(f, xs) }
