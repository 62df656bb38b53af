package avltree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/avltree"
)

func intCmp(a, b int) int { return a - b }

func TestInsertSearchRemove(t *testing.T) {
	tr := avltree.New[int, string](intCmp)
	assert.True(t, tr.Insert(5, "five"))
	assert.True(t, tr.Insert(3, "three"))
	assert.False(t, tr.Insert(5, "other"))
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Search(5)
	require.True(t, ok)
	assert.Equal(t, "five", v)

	assert.True(t, tr.Remove(3))
	assert.False(t, tr.Remove(3))
	assert.Equal(t, 1, tr.Len())
}

func TestInOrderIsSorted(t *testing.T) {
	tr := avltree.New[int, int](intCmp)
	keys := []int{9, 2, 7, 1, 8, 3, 6, 4, 5}
	for _, k := range keys {
		tr.Insert(k, k*10)
	}
	var got []int
	tr.InOrder(func(k, v int) bool {
		got = append(got, k)
		assert.Equal(t, k*10, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestSelectRankRoundTrip(t *testing.T) {
	tr := avltree.New[int, struct{}](intCmp)
	keys := []int{50, 30, 70, 20, 40, 60, 80, 10}
	for _, k := range keys {
		tr.Insert(k, struct{}{})
	}
	sorted := []int{10, 20, 30, 40, 50, 60, 70, 80}
	for pos, k := range sorted {
		got, _, err := tr.Select(pos)
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.Equal(t, pos, tr.Rank(k))
	}
	_, _, err := tr.Select(len(sorted))
	assert.Error(t, err)
}

// heightWithinLogBound asserts that the tree's reported height is at most
// twice ceil(log2(n+1)), a logarithmic bound that every AVL tree meets.
func heightWithinLogBound(t *testing.T, n, height int) {
	t.Helper()
	if n == 0 {
		assert.Equal(t, 0, height)
		return
	}
	bound := 0
	for cap := 1; cap < n+1; cap *= 2 {
		bound++
	}
	assert.LessOrEqual(t, height, 2*bound)
}

func TestHeightStaysLogarithmic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := avltree.New[int, struct{}](intCmp)
	const n = 2000
	seen := map[int]bool{}
	for len(seen) < n {
		k := rng.Intn(1_000_000)
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Insert(k, struct{}{})
	}
	heightWithinLogBound(t, tr.Len(), tr.Height())
}

func TestWithDuplicates(t *testing.T) {
	tr := avltree.New[int, int](intCmp, avltree.WithDuplicates())
	tr.Insert(5, 1)
	tr.Insert(5, 2)
	assert.Equal(t, 2, tr.Len())
	var vals []int
	tr.InOrder(func(k, v int) bool {
		if k == 5 {
			vals = append(vals, v)
		}
		return true
	})
	assert.ElementsMatch(t, []int{1, 2}, vals)
}

func TestMinMax(t *testing.T) {
	tr := avltree.New[int, struct{}](intCmp)
	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Insert(k, struct{}{})
	}
	minK, _, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 1, minK)
	maxK, _, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, 9, maxK)
}

func TestRemoveRebalancesAndPreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tr := avltree.New[int, struct{}](intCmp)
	var keys []int
	for i := 0; i < 500; i++ {
		k := rng.Intn(100_000)
		if tr.Insert(k, struct{}{}) {
			keys = append(keys, k)
		}
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	half := len(keys) / 2
	for _, k := range keys[:half] {
		require.True(t, tr.Remove(k))
	}
	assert.Equal(t, len(keys)-half, tr.Len())

	var prev int
	first := true
	tr.InOrder(func(k int, _ struct{}) bool {
		if !first {
			assert.Less(t, prev, k)
		}
		prev, first = k, false
		return true
	})
	heightWithinLogBound(t, tr.Len(), tr.Height())
}
