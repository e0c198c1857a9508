package dual

import "math"

// Add returns x + y.
//
// Tangent rule: d(x+y) = dx + dy.
func (x Dual) Add(y Dual) Dual {
	return Dual{
		Primal:  x.Primal + y.Primal,
		Tangent: x.Tangent + y.Tangent,
	}
}

// Sub returns x - y.
func (x Dual) Sub(y Dual) Dual {
	return Dual{
		Primal:  x.Primal - y.Primal,
		Tangent: x.Tangent - y.Tangent,
	}
}

// Mul returns x * y.
//
// Tangent rule (product rule): d(xy) = dx*y + x*dy.
func (x Dual) Mul(y Dual) Dual {
	return Dual{
		Primal:  x.Primal * y.Primal,
		Tangent: x.Tangent*y.Primal + x.Primal*y.Tangent,
	}
}

// Div returns x / y.
//
// Tangent rule (quotient rule): d(x/y) = (dx*y - x*dy) / y².
// Division by zero follows IEEE semantics and yields ±Inf or NaN.
func (x Dual) Div(y Dual) Dual {
	return Dual{
		Primal:  x.Primal / y.Primal,
		Tangent: (x.Tangent*y.Primal - x.Primal*y.Tangent) / (y.Primal * y.Primal),
	}
}

// Neg returns -x.
func (x Dual) Neg() Dual {
	return Dual{
		Primal:  -x.Primal,
		Tangent: -x.Tangent,
	}
}

// Pow returns x^n for a constant real exponent n.
//
// Tangent rule: d(x^n) = n * x^(n-1) * dx. For negative primals with a
// non-integer exponent the result is NaN, as math.Pow defines; no clamping
// or special-casing is applied.
func (x Dual) Pow(n float64) Dual {
	return Dual{
		Primal:  math.Pow(x.Primal, n),
		Tangent: n * math.Pow(x.Primal, n-1) * x.Tangent,
	}
}

// Sqrt returns the square root of x.
//
// Tangent rule: d(√x) = dx / (2√x). Non-positive primals yield NaN or Inf
// tangents; validating the domain is the caller's concern (see safeops).
func (x Dual) Sqrt() Dual {
	s := math.Sqrt(x.Primal)
	return Dual{
		Primal:  s,
		Tangent: 0.5 / s * x.Tangent,
	}
}
