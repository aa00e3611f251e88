package dedup

import (
	"github.com/ranjeethmahankali/symba/asg/equiv"
	"github.com/ranjeethmahankali/symba/asg/hash"
	"github.com/ranjeethmahankali/symba/asg/tree"
	"github.com/ranjeethmahankali/symba/asg/walk"
)

// Deduplicater owns the scratch buffers for one-pass hash-consing:
// an indices remap, a hasher, two walkers for the equivalence check, and
// a hash-to-first-seen-index map. Reusing one instance across calls
// avoids reallocating these buffers.
type Deduplicater struct {
	indices     []int
	hasher      *hash.Hasher
	walker1     *walk.Walker
	walker2     *walk.Walker
	hashToIndex map[uint64]int
}

// New returns a Deduplicater with empty scratch buffers.
func New() *Deduplicater {
	return &Deduplicater{
		hasher:      hash.New(),
		walker1:     walk.New(),
		walker2:     walk.New(),
		hashToIndex: make(map[uint64]int),
	}
}

// Run deduplicates nodes, assumed topologically sorted, and returns the
// rewired slice. Dead nodes may remain; call prune.Trim to remove them.
//
// nodes is mutated and returned; the caller should not use its previous
// value afterwards.
func (d *Deduplicater) Run(nodes []tree.Node) []tree.Node {
	// 1. Seed indices[i] = i; every node starts as its own representative.
	if cap(d.indices) < len(nodes) {
		d.indices = make([]int, len(nodes))
	} else {
		d.indices = d.indices[:len(nodes)]
	}
	for i := range d.indices {
		d.indices[i] = i
	}

	// 2. Compute the structural hash of every node.
	hashes := d.hasher.Hash(nodes)

	// 3. For each node, look up its hash. First sighting: record it.
	//    Repeat sighting: confirm with a full equivalence check before
	//    treating it as a duplicate.
	clear(d.hashToIndex)
	for i, h := range hashes {
		first, seen := d.hashToIndex[h]
		if !seen {
			d.hashToIndex[h] = i

			continue
		}
		if first != i && equiv.Equivalent(first, i, nodes, nodes, d.walker1, d.walker2) {
			d.indices[i] = first
		}
	}

	// 4. Rewire every node's operand indices through indices[].
	for i, n := range nodes {
		switch n.Kind {
		case tree.KindUnary:
			nodes[i].A = d.indices[n.A]
		case tree.KindBinary:
			nodes[i].A = d.indices[n.A]
			nodes[i].B = d.indices[n.B]
		}
	}

	return nodes
}
