package ordtree

import "github.com/arborio/arborio/tree"

// Map is an ordered map of unique keys to values, backed by a
// tree.Ranked[K, V] of the backend selected at construction.
type Map[K, V any] struct {
	t   tree.Ranked[K, V]
	cmp tree.Comparator[K]
	cfg config
}

// NewMap returns an empty ordered map using cmp for key order.
func NewMap[K, V any](cmp tree.Comparator[K], opts ...Option) *Map[K, V] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return &Map[K, V]{t: newBackend[K, V](cmp, false, c), cmp: cmp, cfg: c}
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Len() == 0 }

// Clear removes every entry, resetting the map to empty on a fresh
// backend of the same kind and comparator.
func (m *Map[K, V]) Clear() { m.t = newBackend[K, V](m.cmp, false, m.cfg) }

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.t.Search(key)
	return found
}

// LowerBound returns the 0-indexed position of the first entry whose key
// is not less than key. Equivalent to PositionOf.
func (m *Map[K, V]) LowerBound(key K) int { return m.t.Rank(key) }

// UpperBound returns the 0-indexed position of the first entry whose key
// is strictly greater than key.
func (m *Map[K, V]) UpperBound(key K) int {
	pos := m.t.Rank(key)
	if k, _, err := m.t.Select(pos); err == nil && m.cmp(k, key) == 0 {
		pos++
	}
	return pos
}

// Range visits every entry with lo <= key <= hi, in ascending key order,
// stopping early if visit returns false.
func (m *Map[K, V]) Range(lo, hi K, visit func(K, V) bool) {
	n := m.t.Len()
	for pos := m.t.Rank(lo); pos < n; pos++ {
		k, v, err := m.t.Select(pos)
		if err != nil || m.cmp(k, hi) > 0 {
			return
		}
		if !visit(k, v) {
			return
		}
	}
}

// Put inserts or would-insert (key, val). It reports false without
// modifying the map if key is already present — use Set to overwrite.
func (m *Map[K, V]) Put(key K, val V) bool { return m.t.Insert(key, val) }

// Set inserts (key, val), overwriting any existing value for key.
func (m *Map[K, V]) Set(key K, val V) {
	if !m.t.Insert(key, val) {
		m.t.Remove(key)
		m.t.Insert(key, val)
	}
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.t.Search(key) }

// Remove deletes key, reporting whether it was present.
func (m *Map[K, V]) Remove(key K) bool { return m.t.Remove(key) }

// Len reports the number of stored entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Min and Max return the smallest/largest key and its value.
func (m *Map[K, V]) Min() (K, V, bool) { return m.t.Min() }
func (m *Map[K, V]) Max() (K, V, bool) { return m.t.Max() }

// Each visits every entry in ascending key order, stopping early if visit
// returns false.
func (m *Map[K, V]) Each(visit func(K, V) bool) { m.t.InOrder(visit) }

// At returns the entry at 0-indexed position pos in ascending key order.
func (m *Map[K, V]) At(pos int) (K, V, error) {
	if pos < 0 || pos >= m.t.Len() {
		var k K
		var v V
		return k, v, ErrOutOfRange
	}
	return m.t.Select(pos)
}

// PositionOf returns the 0-indexed position key occupies, or would occupy
// if absent.
func (m *Map[K, V]) PositionOf(key K) int { return m.t.Rank(key) }
