// Package eval implements the linear forward-pass evaluator over a
// finalized tree.Tree under a variable binding.
//
// Evaluator holds a register file sized to the tree's node count. SetVar
// writes a value into the register of every Symbol node matching a
// label; Run performs a single O(n) forward pass, relying on topological
// order so a node's operands are always already written, and returns the
// value at the root register.
//
// Errors:
//
//	ErrVariableNotFound     - a Symbol register was never set via SetVar.
//	ErrUninitializedRegister - an operand register was read before being
//	                           written; indicates a malformed or
//	                           non-topological tree.
//
// Floating-point exceptional values (NaN, +/-Inf) produced during
// evaluation are returned as ordinary values, not errors.
package eval
