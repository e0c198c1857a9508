package stage

import (
	"math"

	"github.com/pkg/errors"

	"github.com/grail-ml/grail/internal/dual"
)

// primitive carries both interpretations of one named operation. The scalar
// formula must match the dual package's primal computation exactly.
type primitive struct {
	arity    int
	eval     func(args []float64) float64
	evalDual func(args []dual.Dual) dual.Dual
}

var primitives = map[string]primitive{
	"add": {2,
		func(a []float64) float64 { return a[0] + a[1] },
		func(a []dual.Dual) dual.Dual { return a[0].Add(a[1]) }},
	"sub": {2,
		func(a []float64) float64 { return a[0] - a[1] },
		func(a []dual.Dual) dual.Dual { return a[0].Sub(a[1]) }},
	"mul": {2,
		func(a []float64) float64 { return a[0] * a[1] },
		func(a []dual.Dual) dual.Dual { return a[0].Mul(a[1]) }},
	"div": {2,
		func(a []float64) float64 { return a[0] / a[1] },
		func(a []dual.Dual) dual.Dual { return a[0].Div(a[1]) }},
	"neg": {1,
		func(a []float64) float64 { return -a[0] },
		func(a []dual.Dual) dual.Dual { return a[0].Neg() }},
	"sin": {1,
		func(a []float64) float64 { return math.Sin(a[0]) },
		func(a []dual.Dual) dual.Dual { return a[0].Sin() }},
	"cos": {1,
		func(a []float64) float64 { return math.Cos(a[0]) },
		func(a []dual.Dual) dual.Dual { return a[0].Cos() }},
	"exp": {1,
		func(a []float64) float64 { return math.Exp(a[0]) },
		func(a []dual.Dual) dual.Dual { return a[0].Exp() }},
	"log": {1,
		func(a []float64) float64 { return math.Log(a[0]) },
		func(a []dual.Dual) dual.Dual { return a[0].Log() }},
}

// Run interprets p over scalar arguments bound positionally to p.Inputs.
//
// Structural problems (wrong argument count, unknown primitive, wrong
// arity, unbound variable) are reported as errors. Numeric domain
// violations are not: the primitives follow the core's IEEE semantics.
func Run(p Program, args []float64) ([]float64, error) {
	env, err := bind(p, len(args))
	if err != nil {
		return nil, err
	}
	for i, name := range p.Inputs {
		env[name] = args[i]
	}

	for _, eq := range p.Equations {
		prim, ok := primitives[eq.Prim]
		if !ok {
			return nil, errors.Errorf("stage: unknown primitive %q", eq.Prim)
		}
		if len(eq.Args) != prim.arity {
			return nil, errors.Errorf("stage: primitive %q takes %d args, got %d", eq.Prim, prim.arity, len(eq.Args))
		}
		vals := make([]float64, len(eq.Args))
		for i, a := range eq.Args {
			v, err := resolve(env, a)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		env[eq.Result] = prim.eval(vals)
	}

	out := make([]float64, len(p.Outputs))
	for i, a := range p.Outputs {
		v, err := resolve(env, a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// RunDual interprets p with forward-mode arithmetic: every primitive is
// applied through the dual package, so tangents flow through the staged
// program exactly as they would through direct calls.
func RunDual(p Program, args []dual.Dual) ([]dual.Dual, error) {
	if len(args) != len(p.Inputs) {
		return nil, errors.Errorf("stage: program takes %d inputs, got %d", len(p.Inputs), len(args))
	}
	env := make(map[string]dual.Dual, len(p.Inputs)+len(p.Equations))
	for i, name := range p.Inputs {
		env[name] = args[i]
	}

	for _, eq := range p.Equations {
		prim, ok := primitives[eq.Prim]
		if !ok {
			return nil, errors.Errorf("stage: unknown primitive %q", eq.Prim)
		}
		if len(eq.Args) != prim.arity {
			return nil, errors.Errorf("stage: primitive %q takes %d args, got %d", eq.Prim, prim.arity, len(eq.Args))
		}
		vals := make([]dual.Dual, len(eq.Args))
		for i, a := range eq.Args {
			v, err := resolveDual(env, a)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		env[eq.Result] = prim.evalDual(vals)
	}

	out := make([]dual.Dual, len(p.Outputs))
	for i, a := range p.Outputs {
		v, err := resolveDual(env, a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func bind(p Program, nargs int) (map[string]float64, error) {
	if nargs != len(p.Inputs) {
		return nil, errors.Errorf("stage: program takes %d inputs, got %d", len(p.Inputs), nargs)
	}
	return make(map[string]float64, len(p.Inputs)+len(p.Equations)), nil
}

func resolve(env map[string]float64, a Atom) (float64, error) {
	if a.IsLit {
		return a.Lit, nil
	}
	v, ok := env[a.Name]
	if !ok {
		return 0, errors.Errorf("stage: unbound variable %q", a.Name)
	}
	return v, nil
}

func resolveDual(env map[string]dual.Dual, a Atom) (dual.Dual, error) {
	if a.IsLit {
		return dual.Constant(a.Lit), nil
	}
	v, ok := env[a.Name]
	if !ok {
		return dual.Dual{}, errors.Errorf("stage: unbound variable %q", a.Name)
	}
	return v, nil
}
