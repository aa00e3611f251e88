package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjeethmahankali/symba/asg/opset"
	"github.com/ranjeethmahankali/symba/asg/tree"
	"github.com/ranjeethmahankali/symba/asg/walk"
)

// b + a, with the two symbols deliberately out of alphabetical order so
// Original and Deterministic disagree on traversal order.
func commutativePair() []tree.Node {
	return []tree.Node{
		tree.Symbol('b'),
		tree.Symbol('a'),
		tree.Binary(opset.Add, 0, 1),
	}
}

func collect(it *walk.Iterator) []int {
	var out []int
	for {
		idx, _, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, idx)
	}
	return out
}

func TestOriginalOrderingIsLeftFirst(t *testing.T) {
	nodes := commutativePair()
	w := walk.New()
	it := w.Walk(nodes, 2, false, walk.Original)
	assert.Equal(t, []int{2, 0, 1}, collect(it))
}

func TestDeterministicOrderingSortsByContent(t *testing.T) {
	nodes := commutativePair()
	w := walk.New()
	it := w.Walk(nodes, 2, false, walk.Deterministic)
	// 'a' (index 1) sorts before 'b' (index 0).
	assert.Equal(t, []int{2, 1, 0}, collect(it))
}

func TestDeterministicOrderingIsMirrorInvariant(t *testing.T) {
	ab := []tree.Node{tree.Symbol('a'), tree.Symbol('b'), tree.Binary(opset.Add, 0, 1)}
	ba := []tree.Node{tree.Symbol('b'), tree.Symbol('a'), tree.Binary(opset.Add, 0, 1)}

	w1, w2 := walk.New(), walk.New()
	it1 := w1.Walk(ab, 2, false, walk.Deterministic)
	it2 := w2.Walk(ba, 2, false, walk.Deterministic)

	for {
		i1, _, ok1 := it1.Next()
		i2, _, ok2 := it2.Next()
		require.Equal(t, ok1, ok2)
		if !ok1 {
			break
		}
		assert.Equal(t, ab[i1].Label, ba[i2].Label)
	}
}

// x, -x, sqrt(x), (-x)+sqrt(x): index 0 is shared by both unary parents.
func sharedChildDAG() []tree.Node {
	return []tree.Node{
		tree.Symbol('x'),
		tree.Unary(opset.Negate, 0),
		tree.Unary(opset.Sqrt, 0),
		tree.Binary(opset.Add, 1, 2),
	}
}

func TestNonUniqueWalkRevisitsSharedChild(t *testing.T) {
	nodes := sharedChildDAG()
	w := walk.New()
	it := w.Walk(nodes, 3, false, walk.Original)
	visits := collect(it)
	assert.Equal(t, []int{3, 1, 0, 2, 0}, visits)
}

func TestUniqueWalkVisitsSharedChildOnce(t *testing.T) {
	nodes := sharedChildDAG()
	w := walk.New()
	it := w.Walk(nodes, 3, true, walk.Original)
	visits := collect(it)
	assert.Equal(t, []int{3, 1, 0, 2}, visits)
}

func TestSkipChildrenPrunesSubtree(t *testing.T) {
	nodes := sharedChildDAG()
	w := walk.New()
	it := w.Walk(nodes, 3, false, walk.Original)

	idx, parent, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 3, idx)
	require.Equal(t, walk.NoParent, parent)

	idx, _, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, 1, idx)
	it.SkipChildren() // drop the Negate subtree's child (index 0)

	var rest []int
	for {
		i, _, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, i)
	}
	assert.Equal(t, []int{2, 0}, rest)
}

func TestWalkerBuffersAreReusedAcrossCalls(t *testing.T) {
	w := walk.New()
	first := collect(w.Walk(commutativePair(), 2, false, walk.Original))
	second := collect(w.Walk(sharedChildDAG(), 3, true, walk.Original))
	assert.Equal(t, []int{2, 0, 1}, first)
	assert.Equal(t, []int{3, 1, 0, 2}, second)
}

func TestDeterministicOrderingLeavesNonCommutativeAlone(t *testing.T) {
	nodes := []tree.Node{
		tree.Symbol('b'),
		tree.Symbol('a'),
		tree.Binary(opset.Subtract, 0, 1),
	}
	w := walk.New()
	it := w.Walk(nodes, 2, false, walk.Deterministic)
	// Subtract is not commutative: operand order must be left untouched
	// even though 'a' sorts before 'b'.
	assert.Equal(t, []int{2, 0, 1}, collect(it))
}

func TestWalkTreeMatchesWalk(t *testing.T) {
	x := tree.New(tree.Symbol('x'))
	y := tree.New(tree.Symbol('y'))
	sum := tree.ComposeBinary(x, y, opset.Add)

	w := walk.New()
	viaTree := collect(w.WalkTree(sum, false, walk.Original))
	viaNodes := collect(w.Walk(sum.Nodes(), sum.RootIndex(), false, walk.Original))
	assert.Equal(t, viaNodes, viaTree)
}
