// Package graph implements reverse-mode automatic differentiation over an
// explicit expression tree.
//
// A computation is built once as an immutable tree of Node values and then
// evaluated (Evaluate) or differentiated (Backward, Grad). Nodes form a
// tree, never a DAG: sharing a subexpression means duplicating it, and two
// leaves holding the same value are differentiated independently.
//
//	// f(x) = x² + 2x + 1 at x = 3
//	x := graph.Leaf(3)
//	f := graph.Add(graph.Add(graph.Mul(x, x), graph.Mul(graph.Leaf(2), x)), graph.Leaf(1))
//	graph.Evaluate(f)        // 16
//	graph.Backward(f, 1)     // cotangents per leaf, left-to-right
package graph

// Node is a node of an expression tree. The set of implementations is
// closed; Evaluate and Backward switch exhaustively over it, so adding a
// primitive is a single-point change in each.
type Node interface {
	isNode()
}

type leafNode struct{ value float64 }

type addNode struct{ left, right Node }
type subNode struct{ left, right Node }
type mulNode struct{ left, right Node }
type divNode struct{ left, right Node }

type negNode struct{ operand Node }
type sinNode struct{ operand Node }
type cosNode struct{ operand Node }
type logNode struct{ operand Node }
type expNode struct{ operand Node }

func (leafNode) isNode() {}
func (addNode) isNode()  {}
func (subNode) isNode()  {}
func (mulNode) isNode()  {}
func (divNode) isNode()  {}
func (negNode) isNode()  {}
func (sinNode) isNode()  {}
func (cosNode) isNode()  {}
func (logNode) isNode()  {}
func (expNode) isNode()  {}

// Leaf returns a constant/input node holding value.
func Leaf(value float64) Node { return leafNode{value: value} }

// Add returns the node l + r.
func Add(l, r Node) Node { return addNode{left: l, right: r} }

// Sub returns the node l - r.
func Sub(l, r Node) Node { return subNode{left: l, right: r} }

// Mul returns the node l * r.
func Mul(l, r Node) Node { return mulNode{left: l, right: r} }

// Div returns the node l / r.
func Div(l, r Node) Node { return divNode{left: l, right: r} }

// Neg returns the node -x.
func Neg(x Node) Node { return negNode{operand: x} }

// Sin returns the node sin(x).
func Sin(x Node) Node { return sinNode{operand: x} }

// Cos returns the node cos(x).
func Cos(x Node) Node { return cosNode{operand: x} }

// Log returns the node ln(x).
func Log(x Node) Node { return logNode{operand: x} }

// Exp returns the node e^x.
func Exp(x Node) Node { return expNode{operand: x} }
