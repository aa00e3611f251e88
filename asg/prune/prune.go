package prune

import (
	"github.com/ranjeethmahankali/symba/asg/tree"
	"github.com/ranjeethmahankali/symba/asg/walk"
)

// mark pairs a liveness flag with the node's new index once pruned
// (meaningful only where keep is true).
type mark struct {
	keep      bool
	newIndex  int
}

// Pruner owns the scratch buffers for trimming dead nodes: a liveness/
// remap vector and an output buffer, both reused across calls.
type Pruner struct {
	marks   []mark
	trimmed []tree.Node
}

// New returns a Pruner with empty scratch buffers.
func New() *Pruner {
	return &Pruner{}
}

// Trim removes nodes unreachable from root and renumbers operand
// indices accordingly. w is a scratch walker owned by the caller.
// Returns the trimmed node slice and the new root index (always
// len(result)-1).
func (p *Pruner) Trim(nodes []tree.Node, root int, w *walk.Walker) ([]tree.Node, int) {
	// 1. Reset the liveness/remap vector.
	if cap(p.marks) < len(nodes) {
		p.marks = make([]mark, len(nodes))
	} else {
		p.marks = p.marks[:len(nodes)]
	}
	for i := range p.marks {
		p.marks[i] = mark{}
	}

	// 2. Mark every node reachable from root.
	it := w.Walk(nodes, root, true, walk.Original)
	for {
		idx, _, ok := it.Next()
		if !ok {
			break
		}
		p.marks[idx].keep = true
	}

	// 3. Exclusive prefix sum: assign each live node its new index.
	next := 0
	for i := range p.marks {
		if p.marks[i].keep {
			p.marks[i].newIndex = next
			next++
		}
	}

	// 4. Emit live nodes in original relative order, remapping operands.
	if cap(p.trimmed) < next {
		p.trimmed = make([]tree.Node, 0, next)
	} else {
		p.trimmed = p.trimmed[:0]
	}
	for i, n := range nodes {
		if !p.marks[i].keep {
			continue
		}
		switch n.Kind {
		case tree.KindUnary:
			n.A = p.marks[n.A].newIndex
		case tree.KindBinary:
			n.A = p.marks[n.A].newIndex
			n.B = p.marks[n.B].newIndex
		}
		p.trimmed = append(p.trimmed, n)
	}

	out := make([]tree.Node, len(p.trimmed))
	copy(out, p.trimmed)

	return out, len(out) - 1
}
