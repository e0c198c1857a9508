// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stage provides a staged-evaluation intermediate representation:
// straight-line programs of named-primitive equations over variables and
// literals, with ordered inputs and outputs.
//
// Programs can be built directly, or compiled from an infix expression:
//
//	import "github.com/grail-ml/grail/stage"
//
//	func main() {
//	    p, _ := stage.Parse("x * sin(x) + 2")
//	    out, _ := stage.Run(p, []float64{1.5})
//	}
//
// Primitive formulas are identical to the dual package's primal
// computations; RunDual interprets the same program with forward-mode
// arithmetic so staged and direct evaluation agree numerically.
package stage

import (
	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/stage"
)

// Atom is an equation operand: a variable reference or a literal.
type Atom = stage.Atom

// Equation binds the result of one primitive application to a name.
type Equation = stage.Equation

// Program is a straight-line computation.
type Program = stage.Program

// Var returns a variable-reference atom.
func Var(name string) Atom { return stage.Var(name) }

// Lit returns a literal atom.
func Lit(v float64) Atom { return stage.Lit(v) }

// Parse compiles an infix expression into a Program.
func Parse(src string) (Program, error) { return stage.Parse(src) }

// Run interprets p over scalar arguments bound positionally to its inputs.
func Run(p Program, args []float64) ([]float64, error) { return stage.Run(p, args) }

// RunDual interprets p with forward-mode dual arithmetic.
func RunDual(p Program, args []dual.Dual) ([]dual.Dual, error) { return stage.RunDual(p, args) }
