package eval

import (
	"github.com/ranjeethmahankali/symba/asg/opset"
	"github.com/ranjeethmahankali/symba/asg/tree"
)

// register holds one evaluator slot: a value plus whether it has been
// written yet (Go's substitute for Rust's Option<f64>).
type register struct {
	value float64
	set   bool
}

// Evaluator holds a borrowed Tree and a register file sized to its node
// count. Registers persist for the Evaluator's lifetime and are
// overwritten on each Run.
type Evaluator struct {
	tree tree.Tree
	regs []register
}

// New returns an Evaluator over t with all registers unset.
func New(t tree.Tree) *Evaluator {
	return &Evaluator{tree: t, regs: make([]register, t.Len())}
}

// SetVar writes value into the register of every Symbol node matching
// label. Other registers are untouched. Repeated calls overwrite prior
// bindings for that label.
func (e *Evaluator) SetVar(label rune, value float64) {
	for i := 0; i < e.tree.Len(); i++ {
		n := e.tree.Node(i)
		if n.Kind == tree.KindSymbol && n.Label == label {
			e.regs[i] = register{value: value, set: true}
		}
	}
}

// Run performs a single forward pass over the tree and returns the
// value at the root register. VariableNotFound means a Symbol register
// was never set via SetVar; UninitializedRegister indicates a malformed
// or non-topological tree.
func (e *Evaluator) Run() (float64, error) {
	for i := 0; i < e.tree.Len(); i++ {
		n := e.tree.Node(i)
		switch n.Kind {
		case tree.KindConstant:
			e.regs[i] = register{value: n.Value, set: true}
		case tree.KindSymbol:
			if !e.regs[i].set {
				return 0, &variableNotFoundError{label: n.Label}
			}
		case tree.KindUnary:
			x, err := e.read(n.A)
			if err != nil {
				return 0, err
			}
			e.regs[i] = register{value: opset.ApplyUnary(n.UnaryOp, x), set: true}
		case tree.KindBinary:
			a, err := e.read(n.A)
			if err != nil {
				return 0, err
			}
			b, err := e.read(n.B)
			if err != nil {
				return 0, err
			}
			e.regs[i] = register{value: opset.ApplyBinary(n.BinaryOp, a, b), set: true}
		}
	}

	return e.read(e.tree.RootIndex())
}

func (e *Evaluator) read(index int) (float64, error) {
	r := e.regs[index]
	if !r.set {
		return 0, ErrUninitializedRegister
	}

	return r.value, nil
}
