package walk

import "github.com/ranjeethmahankali/symba/asg/tree"

// Ordering selects how a Binary node's two children are pushed onto the
// traversal stack.
type Ordering int

const (
	// Original pushes rhs then lhs, so LIFO popping visits lhs first
	// (left-first depth-first order).
	Original Ordering = iota
	// Deterministic sorts the two children of a commutative operator by
	// the total ordering of node content (package tree's Compare), so
	// that commutative mirrors (a+b vs b+a) traverse identically.
	// Children of a non-commutative operator keep the Original order.
	Deterministic
)

// NoParent is the parent value Next returns for the root of a traversal.
const NoParent = -1

// noParent marks the root frame, which has no parent.
const noParent = NoParent

type frame struct {
	index  int
	parent int
}

// Walker owns the scratch buffers for a depth-first traversal: a frame
// stack and a per-node visited vector. Both are cleared and reused on
// each call to Walk, amortizing allocation across repeated traversals of
// the same or similarly sized node slices.
type Walker struct {
	stack   []frame
	visited []bool
}

// New returns a Walker with empty scratch buffers.
func New() *Walker {
	return &Walker{}
}

// Walk prepares a depth-first traversal of nodes starting at root and
// returns an Iterator over it. unique selects first-visit semantics;
// ordering selects child push order. The returned Iterator borrows w's
// buffers and is invalidated by the next call to Walk on the same Walker.
func (w *Walker) Walk(nodes []tree.Node, root int, unique bool, ordering Ordering) *Iterator {
	// 1. Reset the frame stack and seed it with the root.
	w.stack = w.stack[:0]
	w.stack = append(w.stack, frame{index: root, parent: noParent})

	// 2. Reset the visited vector, growing it only if it's too small.
	if cap(w.visited) < len(nodes) {
		w.visited = make([]bool, len(nodes))
	} else {
		w.visited = w.visited[:len(nodes)]
		for i := range w.visited {
			w.visited[i] = false
		}
	}

	return &Iterator{walker: w, nodes: nodes, unique: unique, ordering: ordering}
}

// WalkTree is a convenience wrapper that walks t from its root.
func (w *Walker) WalkTree(t tree.Tree, unique bool, ordering Ordering) *Iterator {
	return w.Walk(t.Nodes(), t.RootIndex(), unique, ordering)
}

// Iterator produces a pre-order depth-first stream of (index, parent)
// pairs over the nodes a Walker was given.
type Iterator struct {
	walker     *Walker
	nodes      []tree.Node
	unique     bool
	ordering   Ordering
	lastPushed int
}

// Next pops the next node from the stack, pushes its children (in the
// requested order), and returns its index and parent. ok is false once
// the traversal is exhausted. parent is noParent (-1) for the root.
func (it *Iterator) Next() (index int, parent int, ok bool) {
	// 1. Pop the stack until we find a node we haven't already visited
	//    (only matters in unique mode; otherwise the first pop wins).
	for {
		if len(it.walker.stack) == 0 {
			it.lastPushed = 0

			return 0, noParent, false
		}
		top := it.walker.stack[len(it.walker.stack)-1]
		it.walker.stack = it.walker.stack[:len(it.walker.stack)-1]
		if it.unique && it.walker.visited[top.index] {
			continue
		}
		index, parent = top.index, top.parent

		break
	}

	// 2. Push children, in an order such that LIFO popping matches
	//    the requested ordering.
	n := it.nodes[index]
	switch n.Kind {
	case tree.KindUnary:
		it.walker.stack = append(it.walker.stack, frame{index: n.A, parent: index})
		it.lastPushed = 1
	case tree.KindBinary:
		l, r := n.A, n.B
		if it.ordering == Deterministic && n.BinaryOp.IsCommutative() &&
			tree.Compare(it.nodes[l], it.nodes[r]) > 0 {
			l, r = r, l
		}
		// rhs first so lhs pops first (left-first when ordering == Original).
		it.walker.stack = append(it.walker.stack, frame{index: r, parent: index})
		it.walker.stack = append(it.walker.stack, frame{index: l, parent: index})
		it.lastPushed = 2
	default:
		it.lastPushed = 0
	}
	it.walker.visited[index] = true

	return index, parent, true
}

// SkipChildren pops the children just pushed by the most recent Next
// call, aborting descent into that subtree. Must be called immediately
// after the Next call it applies to.
func (it *Iterator) SkipChildren() {
	n := it.lastPushed
	if n > len(it.walker.stack) {
		n = len(it.walker.stack)
	}
	it.walker.stack = it.walker.stack[:len(it.walker.stack)-n]
	it.lastPushed = 0
}
