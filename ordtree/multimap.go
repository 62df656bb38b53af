package ordtree

import "github.com/arborio/arborio/tree"

// MultiMap is an ordered map from keys to multiple values: equal keys each
// hold their own (key, val) node, contiguous in in-order position, so all
// values for a key can be scanned from its lower-bound position.
type MultiMap[K, V any] struct {
	t   tree.Ranked[K, V]
	cmp tree.Comparator[K]
	cfg config
}

// NewMultiMap returns an empty ordered multimap using cmp for key order.
func NewMultiMap[K, V any](cmp tree.Comparator[K], opts ...Option) *MultiMap[K, V] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return &MultiMap[K, V]{t: newBackend[K, V](cmp, true, c), cmp: cmp, cfg: c}
}

// Empty reports whether the multimap holds no entries.
func (m *MultiMap[K, V]) Empty() bool { return m.t.Len() == 0 }

// Clear removes every entry, resetting the multimap to empty on a fresh
// backend of the same kind and comparator.
func (m *MultiMap[K, V]) Clear() { m.t = newBackend[K, V](m.cmp, true, m.cfg) }

// Add inserts one (key, val) occurrence.
func (m *MultiMap[K, V]) Add(key K, val V) { m.t.Insert(key, val) }

// Remove deletes one occurrence matching key, reporting whether any was
// present.
func (m *MultiMap[K, V]) Remove(key K) bool { return m.t.Remove(key) }

// Len reports the total number of stored (key, val) pairs.
func (m *MultiMap[K, V]) Len() int { return m.t.Len() }

// Values returns every value stored under key, in insertion-relative tree
// order, by locating key's lower-bound position via Rank and scanning the
// contiguous run of equal keys via Select.
func (m *MultiMap[K, V]) Values(key K) []V {
	pos := m.t.Rank(key)
	n := m.t.Len()
	var out []V
	for ; pos < n; pos++ {
		k, v, err := m.t.Select(pos)
		if err != nil || m.cmp(k, key) != 0 {
			break
		}
		out = append(out, v)
	}
	return out
}

// Each visits every (key, val) pair in ascending key order, stopping early
// if visit returns false.
func (m *MultiMap[K, V]) Each(visit func(K, V) bool) { m.t.InOrder(visit) }

// At returns the entry at 0-indexed position pos in ascending key order.
func (m *MultiMap[K, V]) At(pos int) (K, V, error) {
	if pos < 0 || pos >= m.t.Len() {
		var k K
		var v V
		return k, v, ErrOutOfRange
	}
	return m.t.Select(pos)
}
