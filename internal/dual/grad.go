package dual

// Grad computes the derivative of f at x by seeding x with tangent 1 and
// reading the tangent of the result.
func Grad(f func(Dual) Dual, x float64) float64 {
	return f(Seed(x)).Tangent
}

// ValueAndGrad computes f(x) and its derivative in a single forward pass.
func ValueAndGrad(f func(Dual) Dual, x float64) (value, grad float64) {
	y := f(Seed(x))
	return y.Primal, y.Tangent
}

// JVP computes the Jacobian-vector product of f at primal along an
// arbitrary input tangent. Grad is the special case tangent = 1.
func JVP(f func(Dual) Dual, primal, tangent float64) (outPrimal, outTangent float64) {
	y := f(New(primal, tangent))
	return y.Primal, y.Tangent
}
