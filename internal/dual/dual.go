// Package dual implements forward-mode automatic differentiation over
// dual numbers.
//
// A Dual carries a primal value together with its tangent (directional
// derivative). Every operation returns a new Dual whose tangent follows the
// standard forward-mode JVP rule, so composing operations composes the chain
// rule with no extra machinery:
//
//	x := dual.Seed(3.0)            // mark x as the differentiation variable
//	y := x.Mul(x).Add(x.Mul(dual.Constant(2))).Add(dual.Constant(1))
//	// y.Primal == 16, y.Tangent == 8
//
// All values are immutable; operations never mutate their receiver.
package dual

// Dual is a primal/tangent pair. The zero value is a constant zero.
type Dual struct {
	Primal  float64
	Tangent float64
}

// New returns a dual number with the given primal and tangent.
func New(primal, tangent float64) Dual {
	return Dual{Primal: primal, Tangent: tangent}
}

// Constant returns x as a dual number with zero tangent. Constants do not
// participate in differentiation.
func Constant(x float64) Dual {
	return Dual{Primal: x}
}

// Seed returns x with tangent 1, marking it as the variable being
// differentiated with respect to.
func Seed(x float64) Dual {
	return Dual{Primal: x, Tangent: 1}
}
