// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides reverse-mode automatic differentiation over an
// explicit expression tree.
//
// Build a tree once with the node constructors, then Evaluate it or run
// Backward to accumulate cotangents per leaf:
//
//	import "github.com/grail-ml/grail/graph"
//
//	func main() {
//	    // f(x) = x² + 2x + 1 at x = 3
//	    g := graph.Grad(func(x graph.Node) graph.Node {
//	        return graph.Add(
//	            graph.Add(graph.Mul(x, x), graph.Mul(graph.Leaf(2), x)),
//	            graph.Leaf(1))
//	    }, 3)
//	    _ = g
//	}
//
// Trees never share subexpressions: leaves holding equal values are
// distinct and Backward reports each separately, keyed by value. Grad's
// convenience lookup returns only the first value match; use Backward
// directly when an input value occurs in several leaves.
package graph

import "github.com/grail-ml/grail/internal/graph"

// Node is a node of an expression tree. The implementation set is closed;
// trees are immutable and each node exclusively owns its children.
type Node = graph.Node

// LeafGrad is one accumulated cotangent, keyed by leaf value.
type LeafGrad = graph.LeafGrad

// Leaf returns a constant/input node holding value.
func Leaf(value float64) Node { return graph.Leaf(value) }

// Add returns the node l + r.
func Add(l, r Node) Node { return graph.Add(l, r) }

// Sub returns the node l - r.
func Sub(l, r Node) Node { return graph.Sub(l, r) }

// Mul returns the node l * r.
func Mul(l, r Node) Node { return graph.Mul(l, r) }

// Div returns the node l / r.
func Div(l, r Node) Node { return graph.Div(l, r) }

// Neg returns the node -x.
func Neg(x Node) Node { return graph.Neg(x) }

// Sin returns the node sin(x).
func Sin(x Node) Node { return graph.Sin(x) }

// Cos returns the node cos(x).
func Cos(x Node) Node { return graph.Cos(x) }

// Log returns the node ln(x).
func Log(x Node) Node { return graph.Log(x) }

// Exp returns the node e^x.
func Exp(x Node) Node { return graph.Exp(x) }

// Evaluate computes the primal value of the tree rooted at n.
func Evaluate(n Node) float64 { return graph.Evaluate(n) }

// Backward distributes seed down the tree and returns the cotangent
// reaching every leaf, depth-first and left-child-first.
func Backward(n Node, seed float64) []LeafGrad { return graph.Backward(n, seed) }

// Lookup returns the first cotangent in grads whose leaf value equals x,
// or 0 if none matches.
func Lookup(grads []LeafGrad, x float64) float64 { return graph.Lookup(grads, x) }

// Grad computes the derivative at x of the function described by build.
func Grad(build func(Node) Node, x float64) float64 { return graph.Grad(build, x) }
