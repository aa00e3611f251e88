package asg

import "github.com/ranjeethmahankali/symba/asg/eval"

// Evaluator binds variables and evaluates a finalized Tree. Registers
// persist for the Evaluator's lifetime and are overwritten on each Run;
// the caller must SetVar again before Run if a variable's value changed.
type Evaluator struct {
	inner *eval.Evaluator
}

// NewEvaluator returns an Evaluator over t with all registers unset.
func NewEvaluator(t Tree) *Evaluator {
	return &Evaluator{inner: eval.New(t.inner)}
}

// SetVar writes value into the register of every Symbol node matching
// label.
func (e *Evaluator) SetVar(label rune, value float64) {
	e.inner.SetVar(label, value)
}

// Run performs a single forward pass and returns the value at the root.
func (e *Evaluator) Run() (float64, error) {
	return e.inner.Run()
}
