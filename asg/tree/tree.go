package tree

import "github.com/ranjeethmahankali/symba/asg/opset"

// Tree owns a contiguous, topologically ordered sequence of Nodes. The
// root is always the last node. A Tree is immutable from the consumer's
// perspective; transformations consume one Tree and return a new one.
type Tree struct {
	nodes []Node
}

// New returns a singleton Tree holding node. node must not reference any
// index (a bare Constant or Symbol).
func New(node Node) Tree {
	return Tree{nodes: []Node{node}}
}

// Len returns the number of nodes in the Tree.
func (t Tree) Len() int { return len(t.nodes) }

// RootIndex returns the index of the root node, always Len()-1.
func (t Tree) RootIndex() int { return len(t.nodes) - 1 }

// Root returns the root node.
func (t Tree) Root() Node { return t.nodes[t.RootIndex()] }

// Node returns the node at index i.
func (t Tree) Node(i int) Node { return t.nodes[i] }

// Nodes returns the Tree's node slice. The caller must not mutate it.
func (t Tree) Nodes() []Node { return t.nodes }

// ComposeBinary appends rhs's nodes onto lhs's, shifting rhs's interior
// indices by len(lhs.nodes), then appends a Binary(op, ...) node joining
// the two roots. The combined root remains the last node. Invariants 1-5
// are preserved because both operands were valid and the shift is
// uniform across every index in the rhs segment.
func ComposeBinary(lhs, rhs Tree, op opset.BinaryOp) Tree {
	offset := len(lhs.nodes)
	out := make([]Node, 0, len(lhs.nodes)+len(rhs.nodes)+1)
	out = append(out, lhs.nodes...)
	for _, n := range rhs.nodes {
		out = append(out, shift(n, offset))
	}
	out = append(out, Binary(op, lhs.RootIndex(), offset+rhs.RootIndex()))

	return Tree{nodes: out}
}

// ComposeUnary appends Unary(op, root) to t's nodes, making it the new root.
func ComposeUnary(t Tree, op opset.UnaryOp) Tree {
	out := make([]Node, len(t.nodes)+1)
	copy(out, t.nodes)
	out[len(t.nodes)] = Unary(op, t.RootIndex())

	return Tree{nodes: out}
}

func shift(n Node, offset int) Node {
	switch n.Kind {
	case KindUnary:
		n.A += offset
	case KindBinary:
		n.A += offset
		n.B += offset
	}

	return n
}

// TakeNodes consumes t, handing ownership of its node slice to a
// transformation (e.g. dedup.Run, which mutates it in place).
func TakeNodes(t Tree) []Node { return t.nodes }

// FromNodes is the inverse of TakeNodes: it re-validates nodes and wraps
// them in a Tree.
func FromNodes(nodes []Node) (Tree, error) { return Validate(nodes) }

// Validate admits nodes as a Tree only if invariants 1-5 hold:
// non-empty, topological order, bounded indices, and no NaN constants.
// Root-at-end and well-typedness hold by construction of the slice shape.
func Validate(nodes []Node) (Tree, error) {
	if len(nodes) == 0 {
		return Tree{}, ErrEmptyTree
	}
	for i, n := range nodes {
		if IsNaNConstant(n) {
			return Tree{}, ErrNaNConstant
		}
		switch n.Kind {
		case KindUnary:
			if err := checkOperand(n.A, i, len(nodes)); err != nil {
				return Tree{}, err
			}
		case KindBinary:
			if err := checkOperand(n.A, i, len(nodes)); err != nil {
				return Tree{}, err
			}
			if err := checkOperand(n.B, i, len(nodes)); err != nil {
				return Tree{}, err
			}
		}
	}

	return Tree{nodes: nodes}, nil
}

func checkOperand(operand, owner, length int) error {
	if operand < 0 || operand >= length {
		return ErrIndexOutOfRange
	}
	if operand >= owner {
		return ErrWrongNodeOrder
	}

	return nil
}
