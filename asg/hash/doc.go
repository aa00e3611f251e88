// Package hash computes a structural fingerprint for every node in an
// expression, in a single linear forward pass that relies on topological
// order (a node's children are always hashed before the node itself).
//
// Commutative binary operators canonicalize their two operand hashes by
// sorting them before mixing, so that a+b and b+a fingerprint identically.
//
// The 64-bit finisher is github.com/cespare/xxhash/v2: a non-cryptographic
// hash with good avalanche behavior, reused via a scratch *xxhash.Digest
// across nodes to avoid reallocating a hasher per node.
package hash
