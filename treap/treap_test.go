package treap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/treap"
)

func intCmp(a, b int) int { return a - b }

func TestInsertSearchRemove(t *testing.T) {
	tr := treap.New[int, string](intCmp, treap.WithSeed(1))
	assert.True(t, tr.Insert(5, "five"))
	assert.True(t, tr.Insert(3, "three"))
	assert.False(t, tr.Insert(5, "other"))
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Search(3)
	require.True(t, ok)
	assert.Equal(t, "three", v)

	assert.True(t, tr.Remove(5))
	assert.False(t, tr.Remove(5))
	assert.Equal(t, 1, tr.Len())
}

func TestSeededTreesAreReproducible(t *testing.T) {
	build := func() []int {
		tr := treap.New[int, struct{}](intCmp, treap.WithSeed(42))
		for _, k := range []int{5, 1, 9, 3, 7, 2, 8} {
			tr.Insert(k, struct{}{})
		}
		var order []int
		tr.InOrder(func(k int, _ struct{}) bool { order = append(order, k); return true })
		return order
	}
	assert.Equal(t, build(), build())
}

func TestWithRandTakesPrecedenceOverSeed(t *testing.T) {
	r := rand.New(rand.NewSource(123))
	tr := treap.New[int, struct{}](intCmp, treap.WithSeed(1), treap.WithRand(r))
	tr.Insert(1, struct{}{})
	assert.Equal(t, 1, tr.Len())
}

func TestSelectRankInsertAtRemoveAt(t *testing.T) {
	tr := treap.New[int, int](intCmp, treap.WithSeed(7))
	for i, k := range []int{10, 20, 30, 40} {
		require.NoError(t, tr.InsertAt(i, k, k*2))
	}
	for pos, want := range []int{10, 20, 30, 40} {
		k, v, err := tr.Select(pos)
		require.NoError(t, err)
		assert.Equal(t, want, k)
		assert.Equal(t, want*2, v)
		assert.Equal(t, pos, tr.Rank(want))
	}

	k, v, err := tr.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 20, k)
	assert.Equal(t, 40, v)
	assert.Equal(t, 3, tr.Len())

	_, _, err = tr.RemoveAt(10)
	assert.ErrorIs(t, err, treap.ErrOutOfRange)
}

func TestSplitAt(t *testing.T) {
	tr := treap.New[int, struct{}](intCmp, treap.WithSeed(3))
	for _, k := range []int{1, 2, 3, 4, 5, 6} {
		tr.Insert(k, struct{}{})
	}
	left, right, err := tr.SplitAt(3)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())

	var lKeys, rKeys []int
	left.InOrder(func(k int, _ struct{}) bool { lKeys = append(lKeys, k); return true })
	right.InOrder(func(k int, _ struct{}) bool { rKeys = append(rKeys, k); return true })
	assert.Equal(t, []int{1, 2, 3}, lKeys)
	assert.Equal(t, []int{4, 5, 6}, rKeys)
}

func TestWithDuplicates(t *testing.T) {
	tr := treap.New[int, int](intCmp, treap.WithDuplicates(), treap.WithSeed(5))
	tr.Insert(5, 1)
	tr.Insert(5, 2)
	assert.Equal(t, 2, tr.Len())
}

func TestMinMaxAndInOrderSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tr := treap.New[int, struct{}](intCmp, treap.WithSeed(11))
	var keys []int
	for i := 0; i < 200; i++ {
		k := rng.Intn(10_000)
		if tr.Insert(k, struct{}{}) {
			keys = append(keys, k)
		}
	}
	minK, _, _ := tr.Min()
	maxK, _, _ := tr.Max()
	var got []int
	tr.InOrder(func(k int, _ struct{}) bool { got = append(got, k); return true })
	require.NotEmpty(t, got)
	assert.Equal(t, got[0], minK)
	assert.Equal(t, got[len(got)-1], maxK)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}
