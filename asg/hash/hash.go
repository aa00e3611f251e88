package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/ranjeethmahankali/symba/asg/tree"
)

// Hasher computes a parallel []uint64 fingerprint vector for a node
// slice. It owns a scratch xxhash.Digest and output buffer, both reused
// across calls to Hash.
type Hasher struct {
	digest *xxhash.Digest
	scratch [9]byte // op byte + up to one uint64
	out     []uint64
}

// New returns a Hasher with a fresh scratch digest.
func New() *Hasher {
	return &Hasher{digest: xxhash.New()}
}

// Hash computes hash[i] for every node in nodes, in index order, relying
// on topological order so a node's children are already hashed. Returns
// the Hasher's internal output buffer; the caller must not retain it
// across the next call to Hash.
func (h *Hasher) Hash(nodes []tree.Node) []uint64 {
	if cap(h.out) < len(nodes) {
		h.out = make([]uint64, len(nodes))
	} else {
		h.out = h.out[:len(nodes)]
	}

	for i, n := range nodes {
		switch n.Kind {
		case tree.KindConstant:
			h.out[i] = math.Float64bits(n.Value)
		case tree.KindSymbol:
			h.digest.Reset()
			binary.LittleEndian.PutUint32(h.scratch[:4], uint32(n.Label))
			h.digest.Write(h.scratch[:4])
			h.out[i] = h.digest.Sum64()
		case tree.KindUnary:
			h.digest.Reset()
			h.scratch[0] = byte(n.UnaryOp.Ordinal())
			binary.LittleEndian.PutUint64(h.scratch[1:9], h.out[n.A])
			h.digest.Write(h.scratch[:9])
			h.out[i] = h.digest.Sum64()
		case tree.KindBinary:
			a, b := h.out[n.A], h.out[n.B]
			if n.BinaryOp.IsCommutative() && a > b {
				a, b = b, a // canonicalize commutative operand order
			}
			h.digest.Reset()
			h.scratch[0] = byte(n.BinaryOp.Ordinal())
			binary.LittleEndian.PutUint64(h.scratch[1:9], a)
			h.digest.Write(h.scratch[:9])
			binary.LittleEndian.PutUint64(h.scratch[1:9], b)
			h.digest.Write(h.scratch[1:9])
			h.out[i] = h.digest.Sum64()
		}
	}

	return h.out
}

// Tree computes the root's fingerprint for a whole tree.Tree, reusing a
// scratch Hasher.
func Tree(h *Hasher, t tree.Tree) uint64 {
	hashes := h.Hash(t.Nodes())

	return hashes[t.RootIndex()]
}
