package tree

import (
	"fmt"
	"math"

	"github.com/ranjeethmahankali/symba/asg/opset"
)

// Kind tags the variant a Node holds.
type Kind uint8

// The four node variants, ordered Constant < Symbol < Unary < Binary per
// the total ordering implemented by Compare.
const (
	KindConstant Kind = iota
	KindSymbol
	KindUnary
	KindBinary
)

// Node is a single entry in a Tree's arena. Exactly one of its fields is
// meaningful, selected by Kind:
//
//	KindConstant: Value holds the literal.
//	KindSymbol:   Label holds the variable name.
//	KindUnary:    UnaryOp holds the operator, A holds the operand index.
//	KindBinary:   BinaryOp holds the operator, A and B hold the lhs/rhs indices.
type Node struct {
	Kind     Kind
	Value    float64
	Label    rune
	UnaryOp  opset.UnaryOp
	BinaryOp opset.BinaryOp
	A, B     int
}

// Constant builds a Constant node holding v. NaN is rejected by Validate
// (and FromNodes) because it breaks the total ordering used by the
// walker's Deterministic mode; neither this function nor New checks for
// NaN.
func Constant(v float64) Node { return Node{Kind: KindConstant, Value: v} }

// Symbol builds a Symbol node with the given label.
func Symbol(label rune) Node { return Node{Kind: KindSymbol, Label: label} }

// Unary builds a Unary node applying op to the node at index i.
func Unary(op opset.UnaryOp, i int) Node { return Node{Kind: KindUnary, UnaryOp: op, A: i} }

// Binary builds a Binary node applying op to the nodes at indices l, r.
func Binary(op opset.BinaryOp, l, r int) Node { return Node{Kind: KindBinary, BinaryOp: op, A: l, B: r} }

// IsNaNConstant reports whether n is a Constant node holding NaN.
func IsNaNConstant(n Node) bool { return n.Kind == KindConstant && math.IsNaN(n.Value) }

// String renders a single node for the pretty-printer, independent of
// its children's content (matches the original's compact per-node format).
func (n Node) String() string {
	switch n.Kind {
	case KindConstant:
		return fmt.Sprintf("Constant(%v)", n.Value)
	case KindSymbol:
		return fmt.Sprintf("Symbol(%c)", n.Label)
	case KindUnary:
		return fmt.Sprintf("%s(%d)", n.UnaryOp, n.A)
	case KindBinary:
		return fmt.Sprintf("%s(%d, %d)", n.BinaryOp, n.A, n.B)
	default:
		return "Node(?)"
	}
}

// Compare implements the total ordering of §3: Constant < Symbol < Unary
// < Binary; within Constant, by float value; within Symbol, by label;
// within Unary or Binary, by operator ordinal. Ties (including ordering
// by child content, deliberately not used) are Equal, reported as 0.
//
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b Node) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	switch a.Kind {
	case KindConstant:
		return compareFloat(a.Value, b.Value)
	case KindSymbol:
		return compareRune(a.Label, b.Label)
	case KindUnary:
		return compareInt(a.UnaryOp.Ordinal(), b.UnaryOp.Ordinal())
	case KindBinary:
		return compareInt(a.BinaryOp.Ordinal(), b.BinaryOp.Ordinal())
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareRune(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
