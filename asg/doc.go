// Package asg is the consumer-facing facade over the expression graph
// core: construction, deduplication, inspection, and evaluation of
// symbolic mathematical expressions represented as a flat, arena-backed
// DAG.
//
// Subpackages, leaf-first:
//
//	opset/    - unary/binary operator enums, ordinals, commutativity, apply
//	tree/     - the Node arena and Tree container
//	walk/     - the reusable depth-first traversal engine
//	hash/     - the structural, commutativity-aware hasher
//	equiv/    - structural equivalence of subtrees
//	dedup/    - hash-consing common-subexpression elimination
//	prune/    - dead-node elimination and reindexing
//	eval/     - the linear forward-pass evaluator
//	template/ - validated rewrite-template storage with mirroring
//
// This package wires them together behind a small Tree type: build an
// expression with Constant/Symbol/Unary/Binary composition or
// tree.Validate'd raw nodes, call Deduplicate to canonicalize it, and
// evaluate it with eval.Evaluator.
//
// Complexity and concurrency notes live on each subpackage; this facade
// adds none of its own beyond delegation.
package asg
