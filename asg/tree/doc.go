// Package tree defines the flat, arena-backed node representation of an
// expression and the Tree container that owns it.
//
// Nodes are stored by value in a single contiguous slice; edges are
// positional indices into that slice rather than pointers. This makes a
// Tree trivially relocatable and copyable, and turns acyclicity into a
// simple index invariant: every operand index of a node is strictly less
// than the node's own position.
//
// Invariants (validated at construction and after every transformation):
//
//  1. Non-empty: len(nodes) >= 1.
//  2. Topological order: operand indices are strictly less than the
//     position of the node that references them.
//  3. Bounded indices: every referenced index lies in [0, len).
//  4. Root at end: the root is always nodes[len-1].
//  5. Well-typedness: operator arity matches node shape, by construction.
//
// Reachability from the root is not an invariant of Tree itself — after
// Deduplication, unreachable nodes are allowed transiently. Pruning
// restores full reachability.
//
// Errors:
//
//	ErrEmptyTree       - a node slice of length zero was supplied.
//	ErrWrongNodeOrder  - a node referenced an operand at or after its own index.
//	ErrIndexOutOfRange - a node referenced an index outside [0, len).
package tree
