// Package equiv decides whether two subtrees denote the same expression,
// modulo commutativity of Add, Multiply, Min, and Max.
//
// Equivalent walks both sides with a walk.Walker in Deterministic
// ordering and multi-visit mode (unique=false), comparing node shape
// only at each paired step. Because Deterministic ordering canonicalizes
// commutative children by content, two commutative mirrors stay in
// lockstep for the length of the comparison.
//
// Equivalence is reflexive, symmetric, and transitive with respect to
// the denoted mathematical expression; it performs no associativity or
// algebraic-identity reasoning beyond operand-order canonicalization.
package equiv
