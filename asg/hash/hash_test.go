package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ranjeethmahankali/symba/asg/hash"
	"github.com/ranjeethmahankali/symba/asg/opset"
	"github.com/ranjeethmahankali/symba/asg/tree"
)

func TestCommutativeOperandsHashEqual(t *testing.T) {
	x := tree.New(tree.Symbol('x'))
	y := tree.New(tree.Symbol('y'))
	xy := tree.ComposeBinary(x, y, opset.Add)
	yx := tree.ComposeBinary(y, x, opset.Add)

	h := hash.New()
	assert.Equal(t, hash.Tree(h, xy), hash.Tree(h, yx))
}

func TestNonCommutativeOperandsHashDiffer(t *testing.T) {
	x := tree.New(tree.Symbol('x'))
	y := tree.New(tree.Symbol('y'))
	xy := tree.ComposeBinary(x, y, opset.Subtract)
	yx := tree.ComposeBinary(y, x, opset.Subtract)

	h := hash.New()
	assert.NotEqual(t, hash.Tree(h, xy), hash.Tree(h, yx))
}

func TestDifferentOperatorsHashDiffer(t *testing.T) {
	x := tree.New(tree.Symbol('x'))
	y := tree.New(tree.Symbol('y'))
	add := tree.ComposeBinary(x, y, opset.Add)
	mul := tree.ComposeBinary(x, y, opset.Multiply)

	h := hash.New()
	assert.NotEqual(t, hash.Tree(h, add), hash.Tree(h, mul))
}

func TestDifferentSymbolsHashDiffer(t *testing.T) {
	h := hash.New()
	hx := hash.Tree(h, tree.New(tree.Symbol('x')))
	hy := hash.Tree(h, tree.New(tree.Symbol('y')))
	assert.NotEqual(t, hx, hy)
}

func TestDifferentUnaryOpsHashDiffer(t *testing.T) {
	x := tree.New(tree.Symbol('x'))
	neg := tree.ComposeUnary(x, opset.Negate)
	sq := tree.ComposeUnary(x, opset.Sqrt)

	h := hash.New()
	assert.NotEqual(t, hash.Tree(h, neg), hash.Tree(h, sq))
}

func TestIdenticalTreesHashEqual(t *testing.T) {
	build := func() tree.Tree {
		x := tree.New(tree.Symbol('x'))
		c := tree.New(tree.Constant(2))
		return tree.ComposeBinary(x, c, opset.Multiply)
	}
	h := hash.New()
	assert.Equal(t, hash.Tree(h, build()), hash.Tree(h, build()))
}

func TestHasherIsReusableAcrossCalls(t *testing.T) {
	h := hash.New()
	a := hash.Tree(h, tree.New(tree.Symbol('x')))
	b := hash.Tree(h, tree.New(tree.Symbol('y')))
	// Recomputing the first tree's hash after interleaved use must be stable.
	a2 := hash.Tree(h, tree.New(tree.Symbol('x')))
	assert.Equal(t, a, a2)
	assert.NotEqual(t, a, b)
}
