// Package dedup implements hash-consing: a one-pass common-subexpression
// elimination that rewires operand indices so that semantically equal
// subtrees share one representative node.
//
// Run assumes nodes are already topologically sorted; if they are not,
// results are undefined (this is a caller contract, not a checked
// error — see package tree's Validate for a checked alternative).
//
// The hash is an acceleration, not an oracle: whenever two nodes collide
// on the same structural hash, Run confirms the match with a full
// equiv.Equivalent check before rewiring, so a hash collision between
// semantically distinct subtrees can never cause an incorrect merge.
//
// Deduplication is deliberately separate from pruning (package prune):
// after Run, nodes unreachable from the root may remain ("dead" nodes).
// Callers that want a fully compacted tree should call prune.Trim next.
//
// Complexity: O(n) hashing plus, for each hash collision, the cost of an
// equiv.Equivalent check bounded by the size of the colliding subtrees.
package dedup
