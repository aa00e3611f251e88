// Package template stores validated (pattern, replacement) node-slice
// pairs for a future rewrite engine. A Template's two sides share a
// common free-variable alphabet; NewTemplate validates each side with
// tree.Validate.
//
// Mirror doubles a list of Templates by also emitting (replacement,
// pattern) for each entry, so that every semantic rewrite is present in
// both directions without the (future) rewrite engine needing to special
// case invertible laws.
//
// Store returns the process-wide, lazily-initialized registry of
// built-in algebraic rewrite templates, seeded once via sync.Once and
// read-only thereafter.
package template
