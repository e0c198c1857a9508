package batch

import "golang.org/x/exp/constraints"

// Point is one sample of a range evaluation.
type Point struct {
	X     float64
	Value float64
	Grad  float64
}

// Linspace returns steps+1 evenly spaced values over [start, end] inclusive.
// steps <= 0 yields nil.
func Linspace[F constraints.Float](start, end F, steps int) []F {
	if steps <= 0 {
		return nil
	}
	step := (end - start) / F(steps)
	out := make([]F, steps+1)
	for i := range out {
		out[i] = start + F(i)*step
	}
	return out
}

// EvaluateRange samples f with value and derivative at steps+1 evenly
// spaced points over [start, end] inclusive. steps <= 0 yields an empty
// result rather than an error.
func (r Runner) EvaluateRange(f Func, start, end float64, steps int) []Point {
	xs := Linspace(start, end, steps)
	out := make([]Point, len(xs))
	for i, vg := range r.Gradient(f, xs) {
		out[i] = Point{X: xs[i], Value: vg.Value, Grad: vg.Grad}
	}
	return out
}

// EvaluateRange samples f over [start, end] using the default runner.
func EvaluateRange(f Func, start, end float64, steps int) []Point {
	return std.EvaluateRange(f, start, end, steps)
}
