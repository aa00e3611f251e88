package equiv

import (
	"github.com/ranjeethmahankali/symba/asg/tree"
	"github.com/ranjeethmahankali/symba/asg/walk"
)

// Equivalent reports whether the subtree rooted at li in lnodes denotes
// the same expression as the subtree rooted at ri in rnodes, modulo
// commutativity. w1 and w2 are scratch walkers owned by the caller and
// reused across calls.
func Equivalent(li, ri int, lnodes, rnodes []tree.Node, w1, w2 *walk.Walker) bool {
	liter := w1.Walk(lnodes, li, false, walk.Deterministic)
	riter := w2.Walk(rnodes, ri, false, walk.Deterministic)

	// sameSlice lets the same-index shortcut below apply only when both
	// walks are scanning literally the same backing array, e.g. when
	// Equivalent is called with lnodes and rnodes as the same slice.
	sameSlice := sameBackingArray(lnodes, rnodes)

	for {
		li, _, lok := liter.Next()
		ri, _, rok := riter.Next()

		switch {
		case !lok && !rok:
			return true // both iterators ended simultaneously
		case lok != rok:
			return false // one ended prematurely
		}

		if sameSlice && li == ri {
			// Both subtrees are the identical node; no need to descend.
			liter.SkipChildren()
			riter.SkipChildren()

			continue
		}

		if !sameShape(lnodes[li], rnodes[ri]) {
			return false
		}
	}
}

func sameShape(l, r tree.Node) bool {
	if l.Kind != r.Kind {
		return false
	}
	switch l.Kind {
	case tree.KindConstant:
		return l.Value == r.Value
	case tree.KindSymbol:
		return l.Label == r.Label
	case tree.KindUnary:
		return l.UnaryOp == r.UnaryOp
	case tree.KindBinary:
		return l.BinaryOp == r.BinaryOp
	default:
		return false
	}
}

func sameBackingArray(a, b []tree.Node) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0 && &a == &b
	}

	return &a[0] == &b[0]
}
