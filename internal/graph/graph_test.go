package graph

import (
	"math"
	"testing"

	"github.com/grail-ml/grail/internal/dual"
)

const tol = 1e-9

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want float64
	}{
		{"leaf", Leaf(4.5), 4.5},
		{"add", Add(Leaf(2), Leaf(3)), 5},
		{"sub", Sub(Leaf(2), Leaf(3)), -1},
		{"mul", Mul(Leaf(2), Leaf(3)), 6},
		{"div", Div(Leaf(3), Leaf(4)), 0.75},
		{"neg", Neg(Leaf(2)), -2},
		{"sin", Sin(Leaf(1)), math.Sin(1)},
		{"cos", Cos(Leaf(1)), math.Cos(1)},
		{"log", Log(Leaf(2)), math.Log(2)},
		{"exp", Exp(Leaf(2)), math.Exp(2)},
		{"nested", Mul(Add(Leaf(1), Leaf(2)), Exp(Leaf(0))), 3},
	}
	for _, tt := range tests {
		if got := Evaluate(tt.node); math.Abs(got-tt.want) > tol {
			t.Errorf("%s: Evaluate = %g, want %g", tt.name, got, tt.want)
		}
	}
}

// TestEvaluateDomainViolations pins IEEE propagation: no error surface
// exists, bad domains flow through as NaN/Inf.
func TestEvaluateDomainViolations(t *testing.T) {
	if v := Evaluate(Log(Leaf(-1))); !math.IsNaN(v) {
		t.Errorf("log(-1) = %g, want NaN", v)
	}
	if v := Evaluate(Div(Leaf(1), Leaf(0))); !math.IsInf(v, 1) {
		t.Errorf("1/0 = %g, want +Inf", v)
	}
	if v := Evaluate(Add(Log(Leaf(-1)), Leaf(5))); !math.IsNaN(v) {
		t.Errorf("NaN + 5 = %g, want NaN", v)
	}
}

// TestBackwardLocalRules drives every node kind with a non-unit seed and
// checks the locally transformed cotangents reaching the leaves.
func TestBackwardLocalRules(t *testing.T) {
	const c = 2.0
	tests := []struct {
		name string
		node Node
		want []LeafGrad
	}{
		{"leaf", Leaf(5), []LeafGrad{{5, c}}},
		{"add", Add(Leaf(3), Leaf(5)), []LeafGrad{{3, c}, {5, c}}},
		{"sub", Sub(Leaf(3), Leaf(5)), []LeafGrad{{3, c}, {5, -c}}},
		{"mul", Mul(Leaf(3), Leaf(5)), []LeafGrad{{3, c * 5}, {5, c * 3}}},
		{"div", Div(Leaf(3), Leaf(5)), []LeafGrad{{3, c / 5}, {5, -c * 3 / 25}}},
		{"neg", Neg(Leaf(3)), []LeafGrad{{3, -c}}},
		{"sin", Sin(Leaf(2)), []LeafGrad{{2, c * math.Cos(2)}}},
		{"cos", Cos(Leaf(2)), []LeafGrad{{2, -c * math.Sin(2)}}},
		{"log", Log(Leaf(2)), []LeafGrad{{2, c / 2}}},
		{"exp", Exp(Leaf(2)), []LeafGrad{{2, c * math.Exp(2)}}},
	}
	for _, tt := range tests {
		got := Backward(tt.node, c)
		if len(got) != len(tt.want) {
			t.Errorf("%s: %d pairs, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].Leaf != tt.want[i].Leaf || math.Abs(got[i].Grad-tt.want[i].Grad) > tol {
				t.Errorf("%s: pair %d = %+v, want %+v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

// TestBackwardOrderIsLeftFirst checks the deterministic concatenation
// order: depth-first, left child before right child at every binary node.
func TestBackwardOrderIsLeftFirst(t *testing.T) {
	// (1 - 2) * (3 + 4): leaves must appear as 1, 2, 3, 4.
	root := Mul(Sub(Leaf(1), Leaf(2)), Add(Leaf(3), Leaf(4)))
	grads := Backward(root, 1)
	want := []float64{1, 2, 3, 4}
	if len(grads) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(grads), len(want))
	}
	for i, lg := range grads {
		if lg.Leaf != want[i] {
			t.Errorf("pair %d reached leaf %g, want %g", i, lg.Leaf, want[i])
		}
	}
}

// TestPolynomialGraph is the canonical scenario: x² + 2x + 1 at x = 3
// evaluates to 16 and the cotangents reaching the three x-leaves sum to 8.
func TestPolynomialGraph(t *testing.T) {
	x := Leaf(3)
	root := Add(Add(Mul(x, x), Mul(Leaf(2), x)), Leaf(1))

	if v := Evaluate(root); v != 16 {
		t.Errorf("f(3) = %g, want 16", v)
	}

	var sum float64
	for _, lg := range Backward(root, 1) {
		if lg.Leaf == 3 {
			sum += lg.Grad
		}
	}
	if sum != 8 {
		t.Errorf("summed cotangent for x = %g, want 8", sum)
	}
}

// TestForwardReverseAgreement builds the same single-use-of-x expressions
// in both representations and compares gradients.
func TestForwardReverseAgreement(t *testing.T) {
	tests := []struct {
		name    string
		forward func(dual.Dual) dual.Dual
		reverse func(Node) Node
		points  []float64
	}{
		{
			name:    "sin",
			forward: func(x dual.Dual) dual.Dual { return x.Sin() },
			reverse: func(x Node) Node { return Sin(x) },
			points:  []float64{-2, -0.5, 0.5, 1.3},
		},
		{
			name:    "exp of sin",
			forward: func(x dual.Dual) dual.Dual { return x.Sin().Exp() },
			reverse: func(x Node) Node { return Exp(Sin(x)) },
			points:  []float64{-1, 0.5, 2},
		},
		{
			name:    "log of shifted",
			forward: func(x dual.Dual) dual.Dual { return x.Add(dual.Constant(5)).Log() },
			reverse: func(x Node) Node { return Log(Add(x, Leaf(5))) },
			points:  []float64{-1, 0.5, 2, 10},
		},
		{
			name:    "scaled negation",
			forward: func(x dual.Dual) dual.Dual { return x.Neg().Mul(dual.Constant(3)) },
			reverse: func(x Node) Node { return Mul(Neg(x), Leaf(3)) },
			points:  []float64{-2, 0.5, 4},
		},
		{
			name:    "reciprocal",
			forward: func(x dual.Dual) dual.Dual { return dual.Constant(1).Div(x) },
			reverse: func(x Node) Node { return Div(Leaf(1), x) },
			points:  []float64{-2, 0.5, 4},
		},
		{
			name:    "cos of log",
			forward: func(x dual.Dual) dual.Dual { return x.Log().Cos() },
			reverse: func(x Node) Node { return Cos(Log(x)) },
			points:  []float64{0.5, 2, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				fwd := dual.Grad(tt.forward, x)
				rev := Grad(tt.reverse, x)
				if math.Abs(fwd-rev) > tol {
					t.Errorf("at %g: forward %g, reverse %g", x, fwd, rev)
				}
			}
		})
	}
}

// TestGrad_DuplicateLeafValuesAreConflated flags a sharp edge of the
// value-keyed gradient lookup, preserved deliberately: when x occurs in
// more than one leaf, Grad returns only the first leaf's cotangent, not
// the accumulated derivative. x·x at 3 has true derivative 6; the first
// x-leaf alone carries 3.
func TestGrad_DuplicateLeafValuesAreConflated(t *testing.T) {
	got := Grad(func(x Node) Node { return Mul(x, x) }, 3)
	if got != 3 {
		t.Errorf("Grad(x·x, 3) = %g; the documented first-match behavior gives 3", got)
	}

	// The full picture is still available from Backward.
	grads := Backward(Mul(Leaf(3), Leaf(3)), 1)
	if sum := Lookup(grads, 3) + grads[1].Grad; sum != 6 {
		t.Errorf("summed cotangents = %g, want 6", sum)
	}

	// A constant leaf that happens to equal x is just as conflated: for
	// 2 - x at x = 2 the true derivative is -1, but the constant's leaf
	// is emitted first and its cotangent +1 wins the scan.
	got = Grad(func(x Node) Node { return Sub(Leaf(2), x) }, 2)
	if got != 1 {
		t.Errorf("Grad(2 - x, 2) = %g; first match is the constant's cotangent +1", got)
	}
}

// TestGrad_UnmatchedLeafReturnsZero flags the silent-zero policy: if no
// leaf compares bit-for-bit equal to x, Grad reports 0 rather than
// failing.
func TestGrad_UnmatchedLeafReturnsZero(t *testing.T) {
	// build ignores its argument entirely.
	if got := Grad(func(Node) Node { return Leaf(7) }, 3); got != 0 {
		t.Errorf("Grad over constant graph = %g, want 0", got)
	}
	// Lookup of a value that never occurs.
	if got := Lookup(Backward(Sin(Leaf(2)), 1), 99); got != 0 {
		t.Errorf("Lookup(missing) = %g, want 0", got)
	}
}

// TestBackwardSeedScaling checks that cotangents are linear in the seed.
func TestBackwardSeedScaling(t *testing.T) {
	root := Mul(Sin(Leaf(1.2)), Leaf(4))
	one := Backward(root, 1)
	three := Backward(root, 3)
	for i := range one {
		if math.Abs(three[i].Grad-3*one[i].Grad) > tol {
			t.Errorf("pair %d: seed 3 gave %g, want %g", i, three[i].Grad, 3*one[i].Grad)
		}
	}
}
