// Package prune removes nodes unreachable from the root and renumbers
// the remaining operand indices, restoring the reachability closure that
// dedup's hash-consing pass may have broken.
//
// Trim marks live nodes with a unique, order-irrelevant walk, computes an
// exclusive prefix sum over the liveness marks to get an old-to-new index
// mapping, then emits live nodes in their original relative order with
// operand indices rewritten through that mapping. Because the root is
// always live and always the last node reached in topological order, the
// emitted root stays last, preserving the root-at-end invariant.
//
// Complexity: O(n) time and space in the number of input nodes.
package prune
