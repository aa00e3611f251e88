package asg

import (
	"github.com/ranjeethmahankali/symba/asg/dedup"
	"github.com/ranjeethmahankali/symba/asg/hash"
	"github.com/ranjeethmahankali/symba/asg/opset"
	"github.com/ranjeethmahankali/symba/asg/prune"
	"github.com/ranjeethmahankali/symba/asg/tree"
	"github.com/ranjeethmahankali/symba/asg/walk"
)

// Tree is a symbolic mathematical expression: an ordered, arena-backed
// DAG of nodes with the root always last. Trees are built by composing
// constants and symbols with arithmetic operations, or by validating a
// raw node slice produced externally (e.g. by a parser).
type Tree struct {
	inner tree.Tree
}

// NewConstant returns a singleton Tree holding the literal v. NaN is
// rejected because it breaks the total ordering the Deterministic
// walker relies on.
func NewConstant(v float64) (Tree, error) {
	t, err := tree.Validate([]tree.Node{tree.Constant(v)})
	if err != nil {
		return Tree{}, err
	}

	return Tree{inner: t}, nil
}

// NewSymbol returns a singleton Tree holding the variable label.
func NewSymbol(label rune) Tree {
	return Tree{inner: tree.New(tree.Symbol(label))}
}

// FromNodes validates an externally supplied node slice (e.g. from a
// parser) and wraps it as a Tree.
func FromNodes(nodes []tree.Node) (Tree, error) {
	t, err := tree.Validate(nodes)
	if err != nil {
		return Tree{}, err
	}

	return Tree{inner: t}, nil
}

// Nodes returns the Tree's underlying node slice. The caller must not
// mutate it.
func (t Tree) Nodes() []tree.Node { return t.inner.Nodes() }

// Len returns the number of nodes in the Tree.
func (t Tree) Len() int { return t.inner.Len() }

// RootIndex returns the index of the root node.
func (t Tree) RootIndex() int { return t.inner.RootIndex() }

// Root returns the root node.
func (t Tree) Root() tree.Node { return t.inner.Root() }

// Node returns the node at index i.
func (t Tree) Node(i int) tree.Node { return t.inner.Node(i) }

func binary(l, r Tree, op opset.BinaryOp) Tree {
	return Tree{inner: tree.ComposeBinary(l.inner, r.inner, op)}
}

func unary(t Tree, op opset.UnaryOp) Tree {
	return Tree{inner: tree.ComposeUnary(t.inner, op)}
}

// Add returns l + r.
func (l Tree) Add(r Tree) Tree { return binary(l, r, opset.Add) }

// Subtract returns l - r.
func (l Tree) Subtract(r Tree) Tree { return binary(l, r, opset.Subtract) }

// Multiply returns l * r.
func (l Tree) Multiply(r Tree) Tree { return binary(l, r, opset.Multiply) }

// Divide returns l / r.
func (l Tree) Divide(r Tree) Tree { return binary(l, r, opset.Divide) }

// Pow returns base^exponent.
func (base Tree) Pow(exponent Tree) Tree { return binary(base, exponent, opset.Pow) }

// Min returns min(l, r).
func (l Tree) Min(r Tree) Tree { return binary(l, r, opset.Min) }

// Max returns max(l, r).
func (l Tree) Max(r Tree) Tree { return binary(l, r, opset.Max) }

// Negate returns -t.
func (t Tree) Negate() Tree { return unary(t, opset.Negate) }

// Sqrt returns sqrt(t).
func (t Tree) Sqrt() Tree { return unary(t, opset.Sqrt) }

// Abs returns |t|.
func (t Tree) Abs() Tree { return unary(t, opset.Abs) }

// Sin returns sin(t).
func (t Tree) Sin() Tree { return unary(t, opset.Sin) }

// Cos returns cos(t).
func (t Tree) Cos() Tree { return unary(t, opset.Cos) }

// Tan returns tan(t).
func (t Tree) Tan() Tree { return unary(t, opset.Tan) }

// Log returns the natural log of t.
func (t Tree) Log() Tree { return unary(t, opset.Log) }

// Exp returns e^t.
func (t Tree) Exp() Tree { return unary(t, opset.Exp) }

// Hash computes the root's structural fingerprint, reusing the
// caller-owned scratch Hasher h.
func (t Tree) Hash(h *hash.Hasher) uint64 {
	return hash.Tree(h, t.inner)
}

// Deduplicate runs hash-consing followed by pruning, returning a new
// Tree with every duplicate subtree collapsed to one representative and
// every dead node removed.
func (t Tree) Deduplicate() (Tree, error) {
	root := t.inner.RootIndex()
	nodes := tree.TakeNodes(t.inner)

	nodes = dedup.New().Run(nodes)
	trimmed, _ := prune.New().Trim(nodes, root, walk.New())

	out, err := tree.FromNodes(trimmed)
	if err != nil {
		return Tree{}, err
	}

	return Tree{inner: out}, nil
}
