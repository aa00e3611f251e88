// Package opset defines the unary and binary operator enums used by
// expression nodes, their ordinals, commutativity, and scalar application.
//
// What:
//
//   - UnaryOp: Negate, Sqrt, Abs, Sin, Cos, Tan, Log, Exp.
//   - BinaryOp: Add, Subtract, Multiply, Divide, Pow, Min, Max.
//   - Ordinal(): a stable small integer per operator, used for the total
//     ordering of node content (see the walk package's Deterministic mode).
//   - IsCommutative(): true for Add, Multiply, Min, Max.
//   - ApplyUnary / ApplyBinary: standard IEEE-754 evaluation. Division by
//     zero and domain errors produce ±Inf or NaN rather than errors.
//
// Complexity: all operations here are O(1).
package opset
