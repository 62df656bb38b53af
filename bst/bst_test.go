package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/bst"
)

func intCmp(a, b int) int { return a - b }

func newNode(nilNode *bst.Node[int, string]) func(k int, v string) *bst.Node[int, string] {
	return func(k int, v string) *bst.Node[int, string] {
		return &bst.Node[int, string]{Key: k, Val: v}
	}
}

func buildTree(t *testing.T, keys []int) (root, nilNode *bst.Node[int, string]) {
	t.Helper()
	nilNode = &bst.Node[int, string]{}
	nilNode.Left, nilNode.Right, nilNode.Par = nilNode, nilNode, nilNode
	root = nilNode
	factory := newNode(nilNode)
	for _, k := range keys {
		inserted, _, isNew := bst.InsertLeaf(root, nilNode, intCmp, k, "", false, factory)
		require.True(t, isNew)
		if root == nilNode {
			root = inserted
		}
	}
	return root, nilNode
}

func TestInsertLeafAndSearch(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})

	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		n := bst.Search(root, nilNode, intCmp, k)
		assert.NotEqual(t, nilNode, n)
		assert.Equal(t, k, n.Key)
	}
	assert.Equal(t, nilNode, bst.Search(root, nilNode, intCmp, 42))
}

func TestInsertLeafRejectsDuplicateByDefault(t *testing.T) {
	nilNode := &bst.Node[int, string]{}
	nilNode.Left, nilNode.Right, nilNode.Par = nilNode, nilNode, nilNode
	factory := newNode(nilNode)

	root, _, isNew := bst.InsertLeaf[int, string](nilNode, nilNode, intCmp, 5, "a", false, factory)
	require.True(t, isNew)
	_, existing, isNew := bst.InsertLeaf(root, nilNode, intCmp, 5, "b", false, factory)
	assert.False(t, isNew)
	assert.Equal(t, 5, existing.Key)
}

func TestSizeTracksLiveNodes(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	assert.Equal(t, 7, bst.Size(root, nilNode))
}

func TestMinMax(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	assert.Equal(t, 1, bst.Min(root, nilNode).Key)
	assert.Equal(t, 9, bst.Max(root, nilNode).Key)
}

func TestInOrderYieldsSortedSequence(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	var got []int
	bst.InOrder(root, nilNode, func(n *bst.Node[int, string]) bool {
		got = append(got, n.Key)
		return true
	})
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)
}

func TestInOrderStopsEarly(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	var got []int
	ok := bst.InOrder(root, nilNode, func(n *bst.Node[int, string]) bool {
		got = append(got, n.Key)
		return n.Key != 4
	})
	assert.False(t, ok)
	assert.Equal(t, []int{1, 3, 4}, got)
}

func TestSelectAndRank(t *testing.T) {
	keys := []int{5, 3, 8, 1, 4, 7, 9}
	root, nilNode := buildTree(t, keys)
	sorted := []int{1, 3, 4, 5, 7, 8, 9}
	for pos, want := range sorted {
		n, err := bst.Select(root, nilNode, pos)
		require.NoError(t, err)
		assert.Equal(t, want, n.Key)
		assert.Equal(t, pos, bst.Rank(root, nilNode, intCmp, want))
	}
	_, err := bst.Select(root, nilNode, len(sorted))
	assert.ErrorIs(t, err, bst.ErrOutOfRange)
}

func TestRankOfAbsentKeyIsInsertionPoint(t *testing.T) {
	root, nilNode := buildTree(t, []int{10, 20, 30})
	assert.Equal(t, 0, bst.Rank(root, nilNode, intCmp, 5))
	assert.Equal(t, 1, bst.Rank(root, nilNode, intCmp, 15))
	assert.Equal(t, 3, bst.Rank(root, nilNode, intCmp, 35))
}

func TestSplitAtKey(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	l, r := bst.SplitAtKey(root, nilNode, intCmp, 7)

	var left, right []int
	bst.InOrder(l, nilNode, func(n *bst.Node[int, string]) bool { left = append(left, n.Key); return true })
	bst.InOrder(r, nilNode, func(n *bst.Node[int, string]) bool { right = append(right, n.Key); return true })

	assert.Equal(t, []int{1, 3, 4, 5}, left)
	assert.Equal(t, []int{7, 8, 9}, right)
}

func TestSplitAtPos(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	l, r := bst.SplitAtPos(root, nilNode, 3)

	var left, right []int
	bst.InOrder(l, nilNode, func(n *bst.Node[int, string]) bool { left = append(left, n.Key); return true })
	bst.InOrder(r, nilNode, func(n *bst.Node[int, string]) bool { right = append(right, n.Key); return true })

	assert.Equal(t, []int{1, 3, 4}, left)
	assert.Equal(t, []int{5, 7, 8, 9}, right)
	assert.Equal(t, 3, bst.Size(l, nilNode))
	assert.Equal(t, 4, bst.Size(r, nilNode))
}

func TestJoinRequiresOrderedHalves(t *testing.T) {
	root, nilNode := buildTree(t, []int{5, 3, 8, 1, 4, 7, 9})
	l, r := bst.SplitAtKey(root, nilNode, intCmp, 7)
	joined := bst.Join(l, r, nilNode)

	var got []int
	bst.InOrder(joined, nilNode, func(n *bst.Node[int, string]) bool { got = append(got, n.Key); return true })
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)
	assert.Equal(t, 7, bst.Size(joined, nilNode))
}

func TestRotations(t *testing.T) {
	nilNode := &bst.Node[int, string]{}
	nilNode.Left, nilNode.Right, nilNode.Par = nilNode, nilNode, nilNode

	x := &bst.Node[int, string]{Key: 2}
	y := &bst.Node[int, string]{Key: 4}
	a := &bst.Node[int, string]{Key: 1}
	b := &bst.Node[int, string]{Key: 3}
	c := &bst.Node[int, string]{Key: 5}
	x.Left, x.Right, x.Par = a, y, nilNode
	a.Par = x
	y.Left, y.Right, y.Par = b, c, x
	b.Par, c.Par = y, y
	bst.FixSizeUpward(b, nilNode)
	bst.FixSizeUpward(c, nilNode)
	bst.FixSizeUpward(y, nilNode)
	bst.FixSizeUpward(x, nilNode)

	newRoot := bst.RotateLeft(x, nilNode)
	assert.Equal(t, 4, newRoot.Key)
	assert.Equal(t, 2, newRoot.Left.Key)
	assert.Equal(t, 5, newRoot.Right.Key)
	assert.Equal(t, 1, newRoot.Left.Left.Key)
	assert.Equal(t, 3, newRoot.Left.Right.Key)

	backToX := bst.RotateRight(newRoot, nilNode)
	assert.Equal(t, 2, backToX.Key)
	assert.Equal(t, 1, backToX.Left.Key)
	assert.Equal(t, 4, backToX.Right.Key)
}
