// Package walk implements a reusable depth-first traversal engine shared
// by every transformation in this module (dedup, prune, equiv, and the
// pretty-printer).
//
// Walker owns two scratch buffers — a stack of (index, parent) frames and
// a per-node visited flag vector — that are cleared and reused across
// calls to Walk, amortizing allocation.
//
// Ordering:
//
//	Original      - pushes a Binary node's children rhs-then-lhs, so LIFO
//	                popping yields lhs before rhs (left-first DFS).
//	Deterministic - for a commutative operator, sorts the two children by
//	                the total ordering of node content (see package tree),
//	                so that commutative mirrors (a+b vs b+a) produce
//	                identical traversals; the children of a non-commutative
//	                operator keep the Original order.
//
// Unique:
//
//	false - every traversal of a node yields it again (multi-visit).
//	true  - a node is yielded at most once; later attempts are silently
//	        popped past (first-visit semantics).
//
// The traversal is pre-order: a node is yielded before its children.
// Iterator.SkipChildren, callable immediately after a Next() that
// yielded a node, pops that node's just-pushed children, aborting
// descent into its subtree.
//
// Complexity: O(V) per full walk, where V is the number of nodes reached.
package walk
