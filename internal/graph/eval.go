package graph

import (
	"fmt"
	"math"
)

// Evaluate computes the primal value of the tree rooted at n, bottom-up.
//
// The formulas mirror the forward-mode primal computations exactly, so a
// function expressed in both representations evaluates identically. Domain
// violations (Log of a non-positive value, division by zero) propagate as
// IEEE NaN/Inf; no error is ever raised.
func Evaluate(n Node) float64 {
	switch n := n.(type) {
	case leafNode:
		return n.value
	case addNode:
		return Evaluate(n.left) + Evaluate(n.right)
	case subNode:
		return Evaluate(n.left) - Evaluate(n.right)
	case mulNode:
		return Evaluate(n.left) * Evaluate(n.right)
	case divNode:
		return Evaluate(n.left) / Evaluate(n.right)
	case negNode:
		return -Evaluate(n.operand)
	case sinNode:
		return math.Sin(Evaluate(n.operand))
	case cosNode:
		return math.Cos(Evaluate(n.operand))
	case logNode:
		return math.Log(Evaluate(n.operand))
	case expNode:
		return math.Exp(Evaluate(n.operand))
	default:
		panic(fmt.Sprintf("graph: unhandled node type %T", n))
	}
}
