package dual

import "math"

// Sin returns sin(x). Tangent rule: d(sin x) = cos(x) dx.
func (x Dual) Sin() Dual {
	return Dual{
		Primal:  math.Sin(x.Primal),
		Tangent: math.Cos(x.Primal) * x.Tangent,
	}
}

// Cos returns cos(x). Tangent rule: d(cos x) = -sin(x) dx.
func (x Dual) Cos() Dual {
	return Dual{
		Primal:  math.Cos(x.Primal),
		Tangent: -math.Sin(x.Primal) * x.Tangent,
	}
}

// Tan returns tan(x). Tangent rule: d(tan x) = dx / cos²(x).
func (x Dual) Tan() Dual {
	c := math.Cos(x.Primal)
	return Dual{
		Primal:  math.Tan(x.Primal),
		Tangent: x.Tangent / (c * c),
	}
}

// Sinh returns sinh(x). Tangent rule: d(sinh x) = cosh(x) dx.
func (x Dual) Sinh() Dual {
	return Dual{
		Primal:  math.Sinh(x.Primal),
		Tangent: math.Cosh(x.Primal) * x.Tangent,
	}
}

// Cosh returns cosh(x). Tangent rule: d(cosh x) = sinh(x) dx.
func (x Dual) Cosh() Dual {
	return Dual{
		Primal:  math.Cosh(x.Primal),
		Tangent: math.Sinh(x.Primal) * x.Tangent,
	}
}

// Tanh returns tanh(x). Tangent rule: d(tanh x) = (1 - tanh²(x)) dx.
func (x Dual) Tanh() Dual {
	t := math.Tanh(x.Primal)
	return Dual{
		Primal:  t,
		Tangent: (1 - t*t) * x.Tangent,
	}
}

// Log returns the natural logarithm of x.
//
// Tangent rule: d(ln x) = dx / x. Non-positive primals yield NaN/-Inf per
// IEEE semantics; domain validation belongs to the safeops layer.
func (x Dual) Log() Dual {
	return Dual{
		Primal:  math.Log(x.Primal),
		Tangent: x.Tangent / x.Primal,
	}
}

// Exp returns e^x. Tangent rule: d(e^x) = e^x dx.
func (x Dual) Exp() Dual {
	e := math.Exp(x.Primal)
	return Dual{
		Primal:  e,
		Tangent: e * x.Tangent,
	}
}

// Abs returns |x|.
//
// The derivative at exactly 0 is defined as 0 (sign(0) = 0). This is a
// policy choice at the non-differentiable point, not a numerical accident.
func (x Dual) Abs() Dual {
	var sign float64
	switch {
	case x.Primal > 0:
		sign = 1
	case x.Primal < 0:
		sign = -1
	}
	return Dual{
		Primal:  math.Abs(x.Primal),
		Tangent: sign * x.Tangent,
	}
}

// ReLU returns max(0, x). The derivative at exactly 0 is 0.
func (x Dual) ReLU() Dual {
	if x.Primal > 0 {
		return x
	}
	return Dual{}
}

// Sigmoid returns 1 / (1 + e^-x).
//
// Tangent rule: d(σ(x)) = σ(x)(1 - σ(x)) dx.
func (x Dual) Sigmoid() Dual {
	s := 1 / (1 + math.Exp(-x.Primal))
	return Dual{
		Primal:  s,
		Tangent: s * (1 - s) * x.Tangent,
	}
}
