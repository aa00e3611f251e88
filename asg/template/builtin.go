package template

import (
	"sync"

	"github.com/ranjeethmahankali/symba/asg/opset"
	"github.com/ranjeethmahankali/symba/asg/tree"
)

// sym and con build single-node Trees, mirroring how the Tree package's
// own composition operators are used to assemble template expressions
// without a parser (out of scope for this module).
func sym(label rune) tree.Tree     { return tree.New(tree.Symbol(label)) }
func con(v float64) tree.Tree      { return tree.New(tree.Constant(v)) }
func add(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Add) }
func sub(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Subtract) }
func mul(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Multiply) }
func div(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Divide) }
func pow(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Pow) }
func minT(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Min) }
func maxT(l, r tree.Tree) tree.Tree { return tree.ComposeBinary(l, r, opset.Max) }
func sqrtT(x tree.Tree) tree.Tree  { return tree.ComposeUnary(x, opset.Sqrt) }
func absT(x tree.Tree) tree.Tree   { return tree.ComposeUnary(x, opset.Abs) }

func pair(ping, pong tree.Tree) Template {
	t, err := NewTemplate(tree.TakeNodes(ping), tree.TakeNodes(pong))
	if err != nil {
		// Built-in templates are fixed at compile time; a validation
		// failure here is a programmer error in this file, not a
		// runtime condition callers can act on.
		panic("template: built-in template failed to validate: " + err.Error())
	}

	return t
}

// builtinTemplates returns the 18 algebraic rewrite templates this
// module ships, unmirrored. Supplemented from the original Rust source's
// template.rs, which defines the same set under deftemplate!.
func builtinTemplates() []Template {
	k, a, b, x, y, d := sym('k'), sym('a'), sym('b'), sym('x'), sym('y'), sym('d')

	return []Template{
		// Factoring a multiplication out of addition.
		pair(add(mul(k, a), mul(k, b)), mul(k, add(a, b))),
		// Min of two square-roots.
		pair(minT(sqrtT(a), sqrtT(b)), sqrtT(minT(a, b))),
		// Interchangeable fractions.
		pair(mul(div(a, b), div(x, y)), mul(div(a, y), div(x, b))),
		// Cancelling division.
		pair(div(a, a), con(1.0)),
		// Distributing pow over division.
		pair(pow(div(a, b), con(2.0)), div(pow(a, con(2.0)), pow(b, con(2.0)))),
		// Distributing pow over multiplication.
		pair(pow(mul(a, b), con(2.0)), mul(pow(a, con(2.0)), pow(b, con(2.0)))),
		// Square of square-root.
		pair(pow(sqrtT(a), con(2.0)), a),
		// Square root of square.
		pair(sqrtT(pow(a, con(2.0))), a),
		// Combine exponents.
		pair(pow(pow(a, x), y), pow(a, mul(x, y))),
		// Adding fractions.
		pair(add(div(a, d), div(b, d)), div(add(a, b), d)),

		// Identity operations.
		pair(add(x, con(0.0)), x),
		pair(sub(x, con(0.0)), x),
		pair(mul(x, con(1.0)), x),
		pair(pow(x, con(1.0)), x),

		// Other templates.
		pair(mul(x, con(0.0)), con(0.0)),
		pair(pow(x, con(0.0)), con(1.0)),
		// Min/max via abs: https://math.stackexchange.com/questions/1195917
		pair(minT(a, b), div(sub(add(a, b), absT(sub(b, a))), con(2.0))),
		pair(maxT(a, b), div(add(add(a, b), absT(sub(b, a))), con(2.0))),
	}
}

var (
	storeOnce sync.Once
	store     []Template
)

// Store returns the process-wide registry of built-in algebraic rewrite
// templates, mirrored so every rewrite is present in both directions.
// Initialization happens at most once, atomically with respect to
// concurrent first access; the returned slice is read-only thereafter
// and safe to share across goroutines.
func Store() []Template {
	storeOnce.Do(func() {
		store = Mirror(builtinTemplates())
	})

	return store
}
