package prune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjeethmahankali/symba/asg/opset"
	"github.com/ranjeethmahankali/symba/asg/prune"
	"github.com/ranjeethmahankali/symba/asg/tree"
	"github.com/ranjeethmahankali/symba/asg/walk"
)

func TestTrimRemovesUnreachableNode(t *testing.T) {
	// index0: Symbol x (dead, not reachable from root)
	// index1: Symbol y
	// index2: Symbol z
	// index3: Add(1, 2), the root
	nodes := []tree.Node{
		tree.Symbol('x'),
		tree.Symbol('y'),
		tree.Symbol('z'),
		tree.Binary(opset.Add, 1, 2),
	}

	trimmed, root := prune.New().Trim(nodes, 3, walk.New())

	require.Equal(t, 3, len(trimmed))
	assert.Equal(t, root, len(trimmed)-1)
	assert.Equal(t, tree.KindBinary, trimmed[root].Kind)
}

func TestTrimPreservesReachableStructure(t *testing.T) {
	x := tree.New(tree.Symbol('x'))
	y := tree.New(tree.Symbol('y'))
	sum := tree.ComposeBinary(x, y, opset.Add)
	nodes := tree.TakeNodes(sum)

	trimmed, root := prune.New().Trim(nodes, sum.RootIndex(), walk.New())

	require.Equal(t, len(nodes), len(trimmed))
	assert.Equal(t, root, len(trimmed)-1)
	rootNode := trimmed[root]
	assert.Equal(t, tree.KindBinary, rootNode.Kind)
	assert.Less(t, rootNode.A, root)
	assert.Less(t, rootNode.B, root)
}

func TestTrimRemapsOperandsAfterRemoval(t *testing.T) {
	// index0: Symbol a (dead)
	// index1: Symbol x
	// index2: Unary Negate(1)
	// index3: Symbol b (dead)
	// index4: Unary Sqrt(2), the root
	nodes := []tree.Node{
		tree.Symbol('a'),
		tree.Symbol('x'),
		tree.Unary(opset.Negate, 1),
		tree.Symbol('b'),
		tree.Unary(opset.Sqrt, 2),
	}

	trimmed, root := prune.New().Trim(nodes, 4, walk.New())

	require.Equal(t, 3, len(trimmed))
	assert.Equal(t, tree.KindUnary, trimmed[root].Kind)
	assert.Equal(t, opset.Sqrt, trimmed[root].UnaryOp)
	negate := trimmed[trimmed[root].A]
	assert.Equal(t, opset.Negate, negate.UnaryOp)
	assert.Equal(t, tree.KindSymbol, trimmed[negate.A].Kind)
}

func TestTrimSingletonIsANoop(t *testing.T) {
	nodes := []tree.Node{tree.Constant(3)}
	trimmed, root := prune.New().Trim(nodes, 0, walk.New())
	assert.Equal(t, nodes, trimmed)
	assert.Equal(t, 0, root)
}

func TestPrunerIsReusableAcrossCalls(t *testing.T) {
	p := prune.New()
	w := walk.New()

	first := []tree.Node{tree.Symbol('a'), tree.Symbol('b'), tree.Binary(opset.Add, 0, 1)}
	trimmed1, root1 := p.Trim(first, 2, w)
	assert.Equal(t, 3, len(trimmed1))
	assert.Equal(t, 2, root1)

	second := []tree.Node{tree.Symbol('x'), tree.Symbol('y'), tree.Symbol('z'), tree.Binary(opset.Multiply, 1, 2)}
	trimmed2, root2 := p.Trim(second, 3, w)
	assert.Equal(t, 3, len(trimmed2))
	assert.Equal(t, 2, root2)
}
