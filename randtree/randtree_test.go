package randtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/randtree"
)

func intCmp(a, b int) int { return a - b }

func TestInsertSearchRemove(t *testing.T) {
	tr := randtree.New[int, string](intCmp, randtree.WithSeed(1))
	assert.True(t, tr.Insert(5, "five"))
	assert.True(t, tr.Insert(3, "three"))
	assert.False(t, tr.Insert(5, "other"))
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Search(3)
	require.True(t, ok)
	assert.Equal(t, "three", v)

	assert.True(t, tr.Remove(5))
	assert.False(t, tr.Remove(5))
}

func TestSeededTreesAreReproducible(t *testing.T) {
	build := func() []int {
		tr := randtree.New[int, struct{}](intCmp, randtree.WithSeed(42))
		for _, k := range []int{5, 1, 9, 3, 7, 2, 8} {
			tr.Insert(k, struct{}{})
		}
		var order []int
		tr.InOrder(func(k int, _ struct{}) bool { order = append(order, k); return true })
		return order
	}
	assert.Equal(t, build(), build())
}

func TestSelectRankInsertAtRemoveAt(t *testing.T) {
	tr := randtree.New[int, int](intCmp, randtree.WithSeed(7))
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
	assert.ErrorIs(t, err, randtree.ErrOutOfRange)
}

func TestSplitAt(t *testing.T) {
	tr := randtree.New[int, struct{}](intCmp, randtree.WithSeed(3))
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
	tr := randtree.New[int, int](intCmp, randtree.WithDuplicates(), randtree.WithSeed(5))
	tr.Insert(5, 1)
	tr.Insert(5, 2)
	assert.Equal(t, 2, tr.Len())
}

func TestRandomizedInsertRemovePreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	tr := randtree.New[int, struct{}](intCmp, randtree.WithSeed(21))
	var keys []int
	for i := 0; i < 500; i++ {
		k := rng.Intn(50_000)
		if tr.Insert(k, struct{}{}) {
			keys = append(keys, k)
		}
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys[:len(keys)/2] {
		require.True(t, tr.Remove(k))
	}
	var prev int
	first := true
	tr.InOrder(func(k int, _ struct{}) bool {
		if !first {
			assert.Less(t, prev, k)
		}
		prev, first = k, false
		return true
	})
}
