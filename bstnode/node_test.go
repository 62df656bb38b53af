package bstnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborio/arborio/bstnode"
)

func TestNewSentinel(t *testing.T) {
	s := bstnode.NewSentinel[int, string]()
	assert.True(t, s.IsSentinel())
	assert.Equal(t, bstnode.Black, s.Color)
	assert.Same(t, s, s.Left)
	assert.Same(t, s, s.Right)
	assert.Same(t, s, s.Par)
}

func TestNodeFieldsIndependentPerBackend(t *testing.T) {
	n := &bstnode.Node[int, string]{Key: 1, Val: "a"}
	n.Balance = -1
	n.Priority = 42
	n.Color = bstnode.Red
	n.Size = 3

	assert.False(t, n.IsSentinel())
	assert.Equal(t, int8(-1), n.Balance)
	assert.Equal(t, uint64(42), n.Priority)
	assert.Equal(t, bstnode.Red, n.Color)
	assert.Equal(t, 3, n.Size)
}
