package graph

import (
	"fmt"
	"math"
)

// LeafGrad is one accumulated cotangent, keyed by the value of the leaf it
// reached. Backward emits one LeafGrad per leaf visited; leaves holding
// equal values are not merged.
type LeafGrad struct {
	Leaf float64 // value held by the leaf node
	Grad float64 // cotangent accumulated along this path
}

// Backward distributes seed down the tree rooted at n and returns the
// cotangent reaching every leaf, in depth-first left-child-first order.
//
// At each interior node the incoming cotangent is transformed by the node's
// local derivative before recursing. Child primals needed by the product,
// quotient, and elementary rules are recomputed with Evaluate on the spot;
// no forward pass is memoized, so subtrees are re-evaluated once per use.
// Simple and correct, quadratic in the worst case.
func Backward(n Node, seed float64) []LeafGrad {
	switch n := n.(type) {
	case leafNode:
		return []LeafGrad{{Leaf: n.value, Grad: seed}}
	case addNode:
		return append(Backward(n.left, seed), Backward(n.right, seed)...)
	case subNode:
		return append(Backward(n.left, seed), Backward(n.right, -seed)...)
	case mulNode:
		l := Backward(n.left, seed*Evaluate(n.right))
		r := Backward(n.right, seed*Evaluate(n.left))
		return append(l, r...)
	case divNode:
		rv := Evaluate(n.right)
		l := Backward(n.left, seed/rv)
		r := Backward(n.right, -seed*Evaluate(n.left)/(rv*rv))
		return append(l, r...)
	case negNode:
		return Backward(n.operand, -seed)
	case sinNode:
		return Backward(n.operand, seed*math.Cos(Evaluate(n.operand)))
	case cosNode:
		return Backward(n.operand, -seed*math.Sin(Evaluate(n.operand)))
	case logNode:
		return Backward(n.operand, seed/Evaluate(n.operand))
	case expNode:
		return Backward(n.operand, seed*math.Exp(Evaluate(n.operand)))
	default:
		panic(fmt.Sprintf("graph: unhandled node type %T", n))
	}
}

// Lookup scans grads for the first entry whose leaf value equals x
// bit-for-bit and returns its cotangent, or 0 if no entry matches.
func Lookup(grads []LeafGrad, x float64) float64 {
	for _, lg := range grads {
		if lg.Leaf == x {
			return lg.Grad
		}
	}
	return 0
}

// Grad computes the derivative at x of the function described by build.
//
// build receives Leaf(x) and returns the root of the expression; Backward
// then runs with seed cotangent 1 and the result is the cotangent of the
// first emitted pair whose leaf value equals x bit-for-bit.
//
// The lookup is keyed by value, not leaf identity: if build places x-valued
// leaves in several positions only the first (leftmost) cotangent is
// returned, and if no leaf compares equal to x the result is 0. Callers
// wanting the full picture should use Backward directly.
func Grad(build func(Node) Node, x float64) float64 {
	return Lookup(Backward(build(Leaf(x)), 1), x)
}
