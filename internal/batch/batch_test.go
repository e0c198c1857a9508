package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/parallel"
)

func square(x dual.Dual) dual.Dual { return x.Mul(x) }

func TestApply(t *testing.T) {
	got := Apply(square, []float64{1, 2, 3, -4})
	assert.Equal(t, []float64{1, 4, 9, 16}, got)
}

func TestApplyEmpty(t *testing.T) {
	assert.Empty(t, Apply(square, nil))
}

// TestGradientMatchesValueAndGrad checks per-element agreement with the
// unbatched entry point.
func TestGradientMatchesValueAndGrad(t *testing.T) {
	xs := []float64{-2, -0.5, 0, 1.3, 4}
	f := func(x dual.Dual) dual.Dual { return x.Sin().Mul(x) }

	got := Gradient(f, xs)
	require.Len(t, got, len(xs))
	for i, x := range xs {
		v, g := dual.ValueAndGrad(f, x)
		assert.Equal(t, v, got[i].Value, "value at index %d", i)
		assert.Equal(t, g, got[i].Grad, "grad at index %d", i)
	}
}

func TestVMapReturnsFullDuals(t *testing.T) {
	xs := []float64{1, 2, 3}
	got := VMap(square, xs)
	require.Len(t, got, len(xs))
	for i, x := range xs {
		assert.Equal(t, x*x, got[i].Primal)
		assert.Equal(t, 2*x, got[i].Tangent)
	}
}

// TestParallelMatchesSequential runs the same batch under a sequential and
// a parallel runner; results must be identical element for element.
func TestParallelMatchesSequential(t *testing.T) {
	xs := make([]float64, 500)
	for i := range xs {
		xs[i] = float64(i)/100 - 2.5
	}
	f := func(x dual.Dual) dual.Dual { return x.Sigmoid().Mul(x.Cos()) }

	seq := Runner{Config: parallel.Sequential()}
	par := Runner{Config: parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}}

	assert.Equal(t, seq.Gradient(f, xs), par.Gradient(f, xs))
	assert.Equal(t, seq.Apply(f, xs), par.Apply(f, xs))
}

func TestEvaluateRange(t *testing.T) {
	f := func(x dual.Dual) dual.Dual { return x.Exp() }
	pts := EvaluateRange(f, 0, 1, 4)
	require.Len(t, pts, 5)

	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 1.0, pts[4].X)
	for i, p := range pts {
		assert.InDelta(t, float64(i)*0.25, p.X, 1e-12)
		assert.InDelta(t, math.Exp(p.X), p.Value, 1e-12)
		assert.InDelta(t, math.Exp(p.X), p.Grad, 1e-12)
	}
}

// TestEvaluateRangeZeroSteps pins the edge case: zero steps yields an
// empty sequence, not a single point and not an error.
func TestEvaluateRangeZeroSteps(t *testing.T) {
	assert.Empty(t, EvaluateRange(square, 0, 1, 0))
	assert.Empty(t, EvaluateRange(square, 0, 1, -3))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Linspace(0.0, 1.0, 2))
	assert.Nil(t, Linspace(0.0, 1.0, 0))

	// Generic over float32 as well.
	got := Linspace(float32(1), float32(2), 2)
	assert.Equal(t, []float32{1, 1.5, 2}, got)
}

// TestJacobianDiagonal checks the canonical case: f(x) = [x₀², x₁²] has
// Jacobian diag(2a, 2b).
func TestJacobianDiagonal(t *testing.T) {
	f := func(xs []dual.Dual) []dual.Dual {
		return []dual.Dual{xs[0].Mul(xs[0]), xs[1].Mul(xs[1])}
	}
	jac := Jacobian(f, []float64{3, 4})

	r, c := jac.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 6, jac.At(0, 0), 1e-12)
	assert.InDelta(t, 0, jac.At(0, 1), 1e-12)
	assert.InDelta(t, 0, jac.At(1, 0), 1e-12)
	assert.InDelta(t, 8, jac.At(1, 1), 1e-12)
}

// TestJacobianDense checks a non-diagonal rectangular Jacobian:
// f(x, y) = [x·y, x + y, sin(x)] at (2, 3).
func TestJacobianDense(t *testing.T) {
	f := func(xs []dual.Dual) []dual.Dual {
		return []dual.Dual{
			xs[0].Mul(xs[1]),
			xs[0].Add(xs[1]),
			xs[0].Sin(),
		}
	}
	jac := Jacobian(f, []float64{2, 3})

	r, c := jac.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 3, jac.At(0, 0), 1e-12) // ∂(xy)/∂x = y
	assert.InDelta(t, 2, jac.At(0, 1), 1e-12) // ∂(xy)/∂y = x
	assert.InDelta(t, 1, jac.At(1, 0), 1e-12)
	assert.InDelta(t, 1, jac.At(1, 1), 1e-12)
	assert.InDelta(t, math.Cos(2), jac.At(2, 0), 1e-12)
	assert.InDelta(t, 0, jac.At(2, 1), 1e-12)
}

func TestJacobianEmpty(t *testing.T) {
	f := func(xs []dual.Dual) []dual.Dual { return nil }
	jac := Jacobian(f, nil)
	r, c := jac.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

// TestJacobianParallelColumns forces parallel column evaluation and checks
// against the sequential result.
func TestJacobianParallelColumns(t *testing.T) {
	n := 40
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i+1) / 7
	}
	// m outputs mixing all inputs pairwise.
	f := func(in []dual.Dual) []dual.Dual {
		out := make([]dual.Dual, n)
		for i := range out {
			out[i] = in[i].Mul(in[(i+1)%n]).Sin()
		}
		return out
	}

	seq := Runner{Config: parallel.Sequential()}
	par := Runner{Config: parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}}
	assert.True(t, mat.Equal(seq.Jacobian(f, xs), par.Jacobian(f, xs)))
}
