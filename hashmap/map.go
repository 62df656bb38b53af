package hashmap

import "github.com/arborio/arborio/hashtable"

// Map is an unordered map from comparable keys to values.
type Map[K comparable, V any] struct {
	t *hashtable.Chained[K, V]
}

// New returns an empty hash map.
func New[K comparable, V any](opts ...hashtable.ChainedOption[K, V]) *Map[K, V] {
	return &Map[K, V]{t: hashtable.NewChained[K, V](opts...)}
}

// Put inserts or overwrites the value stored for key.
func (m *Map[K, V]) Put(key K, val V) { m.t.Put(key, val) }

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.t.Get(key) }

// Remove deletes key, reporting whether it was present.
func (m *Map[K, V]) Remove(key K) bool { return m.t.Delete(key) }

// Len reports the number of stored entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Each visits every entry in unspecified order, stopping early if visit
// returns false.
func (m *Map[K, V]) Each(visit func(K, V) bool) { m.t.Each(visit) }
