package hashset

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/arborio/arborio/hashtable"
)

// Set is an unordered set of unique comparable keys.
type Set[K comparable] struct {
	t *hashtable.Chained[K, struct{}]
}

// New returns an empty hash set.
func New[K comparable](opts ...hashtable.ChainedOption[K, struct{}]) *Set[K] {
	return &Set[K]{t: hashtable.NewChained[K, struct{}](opts...)}
}

// Add inserts key.
func (s *Set[K]) Add(key K) { s.t.Put(key, struct{}{}) }

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	_, found := s.t.Get(key)
	return found
}

// Remove deletes key, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool { return s.t.Delete(key) }

// Len reports the number of stored keys.
func (s *Set[K]) Len() int { return s.t.Len() }

// Each visits every key in unspecified order, stopping early if visit
// returns false.
func (s *Set[K]) Each(visit func(K) bool) {
	s.t.Each(func(k K, _ struct{}) bool { return visit(k) })
}

// ToSet3 copies this set's contents into a github.com/TomTonic/Set3, for
// callers whose downstream pipeline is already built on Set3 and would
// otherwise have to round-trip through an intermediate slice.
func (s *Set[K]) ToSet3() *set3.Set3[K] {
	out := set3.Empty[K]()
	s.Each(func(k K) bool {
		out.Add(k)
		return true
	})
	return out
}
