// Package stage implements a staged-evaluation intermediate representation
// and its interpreter.
//
// A Program is a straight-line sequence of named-primitive equations over
// variables and literals, with ordered inputs and outputs: a computation
// captured once and interpreted later, independently of the graph package's
// expression trees. Primitive formulas are identical to the dual package's
// primal computations, so the two representations stay numerically
// consistent.
//
//	// f(x) = x * sin(x)
//	p := stage.Program{
//		Inputs: []string{"x"},
//		Equations: []stage.Equation{
//			{Result: "t", Prim: "sin", Args: []stage.Atom{stage.Var("x")}},
//			{Result: "y", Prim: "mul", Args: []stage.Atom{stage.Var("x"), stage.Var("t")}},
//		},
//		Outputs: []stage.Atom{stage.Var("y")},
//	}
//	out, err := stage.Run(p, []float64{2})
package stage

import "strconv"

// Atom is an operand of an equation: either a variable reference or a
// literal constant.
type Atom struct {
	Name  string
	Lit   float64
	IsLit bool
}

// Var returns a variable-reference atom.
func Var(name string) Atom { return Atom{Name: name} }

// Lit returns a literal atom.
func Lit(v float64) Atom { return Atom{Lit: v, IsLit: true} }

// String renders the atom as it appears in a printed program.
func (a Atom) String() string {
	if a.IsLit {
		return strconv.FormatFloat(a.Lit, 'g', -1, 64)
	}
	return a.Name
}

// Equation binds the result of one primitive application to a name.
type Equation struct {
	Result string
	Prim   string
	Args   []Atom
}

// Program is a straight-line computation: inputs are bound positionally,
// equations execute in order, and outputs are read at the end.
type Program struct {
	Inputs    []string
	Equations []Equation
	Outputs   []Atom
}

// String renders the program in a readable let-sequence form.
func (p Program) String() string {
	s := "inputs"
	for _, in := range p.Inputs {
		s += " " + in
	}
	s += "\n"
	for _, eq := range p.Equations {
		s += eq.Result + " = " + eq.Prim + "("
		for i, a := range eq.Args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ")\n"
	}
	s += "outputs"
	for _, out := range p.Outputs {
		s += " " + out.String()
	}
	return s
}
