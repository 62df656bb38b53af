package hashtable_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/hashtable"
)

func TestChainedBasicOps(t *testing.T) {
	tbl := hashtable.NewChained[string, int]()
	tbl.Put("a", 1)
	tbl.Put("b", 2)
	tbl.Put("a", 10)
	assert.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = tbl.Get("missing")
	assert.False(t, ok)

	assert.True(t, tbl.Delete("b"))
	assert.False(t, tbl.Delete("b"))
	assert.Equal(t, 1, tbl.Len())
}

func TestChainedResizesUnderLoad(t *testing.T) {
	tbl := hashtable.NewChained[int, int](
		hashtable.WithChainedCapacity[int, int](4),
		hashtable.WithChainedMaxLoad[int, int](1.0),
	)
	for i := 0; i < 200; i++ {
		tbl.Put(i, i*i)
	}
	assert.Equal(t, 200, tbl.Len())
	for i := 0; i < 200; i++ {
		v, ok := tbl.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}

func TestChainedEachVisitsAllAndStopsEarly(t *testing.T) {
	tbl := hashtable.NewChained[int, int]()
	for i := 0; i < 10; i++ {
		tbl.Put(i, i)
	}
	seen := map[int]bool{}
	tbl.Each(func(k, v int) bool { seen[k] = true; return true })
	assert.Len(t, seen, 10)

	count := 0
	tbl.Each(func(k, v int) bool { count++; return count < 3 })
	assert.Equal(t, 3, count)
}

func TestOpenAddressedBasicOps(t *testing.T) {
	tbl := hashtable.NewOpenAddressed[string, int]()
	tbl.Put("a", 1)
	tbl.Put("b", 2)
	tbl.Put("a", 10)
	assert.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	assert.True(t, tbl.Delete("a"))
	_, ok = tbl.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())
}

func TestOpenAddressedResizesUnderLoad(t *testing.T) {
	tbl := hashtable.NewOpenAddressed[int, int](hashtable.WithOpenCapacity[int, int](8))
	for i := 0; i < 500; i++ {
		tbl.Put(i, i*2)
	}
	assert.Equal(t, 500, tbl.Len())
	for i := 0; i < 500; i++ {
		v, ok := tbl.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*2, v)
	}
}

func TestOpenAddressedTombstonePurgeKeepsEntriesIntact(t *testing.T) {
	tbl := hashtable.NewOpenAddressed[int, int](
		hashtable.WithOpenCapacity[int, int](64),
		hashtable.WithOpenMaxTombstoneRatio[int, int](0.2),
	)
	for i := 0; i < 40; i++ {
		tbl.Put(i, i)
	}
	// Delete and reinsert repeatedly to push the tombstone ratio past the
	// threshold and force a same-size purge.
	for round := 0; round < 5; round++ {
		for i := 0; i < 20; i++ {
			tbl.Delete(i)
		}
		for i := 0; i < 20; i++ {
			tbl.Put(i, i+round)
		}
	}
	assert.Equal(t, 40, tbl.Len())
	for i := 20; i < 40; i++ {
		v, ok := tbl.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestOpenAddressedEach(t *testing.T) {
	tbl := hashtable.NewOpenAddressed[int, int]()
	for i := 0; i < 10; i++ {
		tbl.Put(i, i)
	}
	seen := map[int]bool{}
	tbl.Each(func(k, v int) bool { seen[k] = true; return true })
	assert.Len(t, seen, 10)
}

func TestLinearBasicOps(t *testing.T) {
	tbl := hashtable.NewLinear[string, int]()
	tbl.Put("a", 1)
	tbl.Put("b", 2)
	tbl.Put("a", 10)
	assert.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	assert.True(t, tbl.Delete("b"))
	assert.False(t, tbl.Delete("b"))
	assert.Equal(t, 1, tbl.Len())
}

func TestLinearIncrementalSplitPreservesAllEntries(t *testing.T) {
	tbl := hashtable.NewLinear[int, int](
		hashtable.WithLinearBaseSize[int, int](4),
		hashtable.WithLinearMaxLoad[int, int](1.0),
	)
	const n = 1000
	rng := rand.New(rand.NewSource(11))
	keys := rng.Perm(n)
	for _, k := range keys {
		tbl.Put(k, k*3)
	}
	assert.Equal(t, n, tbl.Len())
	for _, k := range keys {
		v, ok := tbl.Get(k)
		require.True(t, ok, "key %d missing after splits", k)
		assert.Equal(t, k*3, v)
	}
}

func TestLinearDeleteAfterSplit(t *testing.T) {
	tbl := hashtable.NewLinear[int, int](hashtable.WithLinearBaseSize[int, int](2))
	for i := 0; i < 100; i++ {
		tbl.Put(i, i)
	}
	for i := 0; i < 50; i++ {
		require.True(t, tbl.Delete(i))
	}
	assert.Equal(t, 50, tbl.Len())
	for i := 50; i < 100; i++ {
		v, ok := tbl.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestLinearEach(t *testing.T) {
	tbl := hashtable.NewLinear[int, int]()
	for i := 0; i < 10; i++ {
		tbl.Put(i, i)
	}
	seen := map[int]bool{}
	tbl.Each(func(k, v int) bool { seen[k] = true; return true })
	assert.Len(t, seen, 10)
}

func TestCustomHashFuncIsUsed(t *testing.T) {
	calls := 0
	fn := func(k int) uint64 {
		calls++
		return uint64(k)
	}
	tbl := hashtable.NewChained[int, int](hashtable.WithChainedHashFunc[int, int](fn))
	tbl.Put(5, 1)
	tbl.Get(5)
	assert.Greater(t, calls, 0)
}

func TestPanicsOnInvalidOptions(t *testing.T) {
	assert.Panics(t, func() { hashtable.WithChainedCapacity[int, int](0) })
	assert.Panics(t, func() { hashtable.WithOpenCapacity[int, int](-1) })
	assert.Panics(t, func() { hashtable.WithLinearBaseSize[int, int](0) })
	assert.Panics(t, func() { hashtable.WithChainedHashFunc[int, int](nil) })
}

func TestStringKeysAcrossAllBackends(t *testing.T) {
	words := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		words = append(words, fmt.Sprintf("word-%03d", i))
	}

	chained := hashtable.NewChained[string, int]()
	open := hashtable.NewOpenAddressed[string, int]()
	linear := hashtable.NewLinear[string, int]()
	for i, w := range words {
		chained.Put(w, i)
		open.Put(w, i)
		linear.Put(w, i)
	}
	for i, w := range words {
		cv, ok := chained.Get(w)
		require.True(t, ok)
		assert.Equal(t, i, cv)
		ov, ok := open.Get(w)
		require.True(t, ok)
		assert.Equal(t, i, ov)
		lv, ok := linear.Get(w)
		require.True(t, ok)
		assert.Equal(t, i, lv)
	}
}
