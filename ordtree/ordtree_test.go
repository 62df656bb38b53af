package ordtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/ordtree"
)

func intCmp(a, b int) int { return a - b }

var allBackends = []ordtree.Backend{
	ordtree.AVL,
	ordtree.RB,
	ordtree.RBTopDown,
	ordtree.Treap,
	ordtree.Splay,
	ordtree.RandTree,
}

func backendOpts(b ordtree.Backend) []ordtree.Option {
	return []ordtree.Option{ordtree.WithBackend(b), ordtree.WithSeed(1)}
}

func TestSetAcrossBackends(t *testing.T) {
	for _, b := range allBackends {
		s := ordtree.NewSet[int](intCmp, backendOpts(b)...)
		assert.True(t, s.Empty())
		assert.True(t, s.Add(5))
		assert.True(t, s.Add(3))
		assert.False(t, s.Add(5))
		assert.Equal(t, 2, s.Len())
		assert.False(t, s.Empty())
		assert.True(t, s.Contains(3))
		assert.False(t, s.Contains(9))

		minK, ok := s.Min()
		require.True(t, ok)
		assert.Equal(t, 3, minK)
		maxK, ok := s.Max()
		require.True(t, ok)
		assert.Equal(t, 5, maxK)

		assert.True(t, s.Remove(3))
		assert.False(t, s.Remove(3))
		assert.Equal(t, 1, s.Len())

		s.Clear()
		assert.True(t, s.Empty())
	}
}

func TestSetOrderedOperations(t *testing.T) {
	for _, b := range allBackends {
		s := ordtree.NewSet[int](intCmp, backendOpts(b)...)
		for _, k := range []int{10, 20, 30, 40, 50} {
			s.Add(k)
		}
		assert.Equal(t, 2, s.LowerBound(25))
		assert.Equal(t, 1, s.LowerBound(20))
		assert.Equal(t, 2, s.UpperBound(20))

		var got []int
		s.Range(20, 40, func(k int) bool { got = append(got, k); return true })
		assert.Equal(t, []int{20, 30, 40}, got)

		k, err := s.At(0)
		require.NoError(t, err)
		assert.Equal(t, 10, k)
		assert.Equal(t, 0, s.PositionOf(10))

		var each []int
		s.Each(func(k int) bool { each = append(each, k); return true })
		assert.Equal(t, []int{10, 20, 30, 40, 50}, each)
	}
}

func TestMapAcrossBackends(t *testing.T) {
	for _, b := range allBackends {
		m := ordtree.NewMap[int, string](intCmp, backendOpts(b)...)
		assert.True(t, m.Empty())
		assert.True(t, m.Put(1, "one"))
		assert.False(t, m.Put(1, "uno"))
		v, ok := m.Get(1)
		require.True(t, ok)
		assert.Equal(t, "one", v)

		m.Set(1, "uno")
		v, ok = m.Get(1)
		require.True(t, ok)
		assert.Equal(t, "uno", v)

		assert.True(t, m.Contains(1))
		assert.False(t, m.Contains(2))

		m.Put(2, "two")
		assert.Equal(t, 0, m.LowerBound(1))
		assert.Equal(t, 1, m.UpperBound(1))

		var pairs [][2]any
		m.Range(1, 2, func(k int, v string) bool {
			pairs = append(pairs, [2]any{k, v})
			return true
		})
		assert.Len(t, pairs, 2)

		assert.True(t, m.Remove(2))
		assert.Equal(t, 1, m.Len())
		m.Clear()
		assert.True(t, m.Empty())
	}
}

func TestMultiSetAcrossBackends(t *testing.T) {
	for _, b := range allBackends {
		ms := ordtree.NewMultiSet[int](intCmp, backendOpts(b)...)
		assert.True(t, ms.Empty())
		ms.Add(5)
		ms.Add(5)
		ms.Add(3)
		assert.Equal(t, 3, ms.Len())
		assert.Equal(t, 2, ms.Count(5))
		assert.Equal(t, 1, ms.Count(3))
		assert.True(t, ms.Contains(5))

		assert.True(t, ms.Remove(5))
		assert.Equal(t, 1, ms.Count(5))

		ms.Clear()
		assert.True(t, ms.Empty())
	}
}

func TestMultiMapAcrossBackends(t *testing.T) {
	for _, b := range allBackends {
		mm := ordtree.NewMultiMap[int, string](intCmp, backendOpts(b)...)
		assert.True(t, mm.Empty())
		mm.Add(1, "a")
		mm.Add(1, "b")
		mm.Add(2, "c")
		assert.Equal(t, 3, mm.Len())
		assert.ElementsMatch(t, []string{"a", "b"}, mm.Values(1))
		assert.ElementsMatch(t, []string{"c"}, mm.Values(2))

		assert.True(t, mm.Remove(1))
		assert.Len(t, mm.Values(1), 1)

		mm.Clear()
		assert.True(t, mm.Empty())
	}
}

func TestAtOutOfRange(t *testing.T) {
	s := ordtree.NewSet[int](intCmp)
	_, err := s.At(0)
	assert.ErrorIs(t, err, ordtree.ErrOutOfRange)
}
