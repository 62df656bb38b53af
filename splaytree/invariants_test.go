package splaytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestSearchSplaysFoundNodeToRoot(t *testing.T) {
	tr := New[int, string](intCmp)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tr.Insert(k, "v")
	}
	_, ok := tr.Search(1)
	require.True(t, ok)
	assert.Equal(t, 1, tr.root.Key)

	_, ok = tr.Search(9)
	require.True(t, ok)
	assert.Equal(t, 9, tr.root.Key)
}

func TestInsertSplaysNewNodeToRoot(t *testing.T) {
	tr := New[int, string](intCmp)
	tr.Insert(5, "a")
	tr.Insert(3, "b")
	assert.Equal(t, 3, tr.root.Key)
	tr.Insert(9, "c")
	assert.Equal(t, 9, tr.root.Key)
}

func TestSearchOnMissingKeySplaysLastTouchedNode(t *testing.T) {
	tr := New[int, string](intCmp)
	for _, k := range []int{5, 3, 8} {
		tr.Insert(k, "v")
	}
	// each insert splays the new key to the root, leaving 8 at the root
	// with 5 and then 3 down its left spine; searching for 4 descends
	// 8 -> 5 -> 3 -> (right of 3 is nil), so 3 is the last node touched
	// before falling off the tree.
	_, ok := tr.Search(4)
	assert.False(t, ok)
	assert.Equal(t, 3, tr.root.Key)
}
