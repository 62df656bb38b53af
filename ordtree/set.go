package ordtree

import "github.com/arborio/arborio/tree"

// Set is an ordered set of unique keys, backed by a tree.Ranked[K,
// struct{}] of the backend selected at construction.
type Set[K any] struct {
	t   tree.Ranked[K, struct{}]
	cmp tree.Comparator[K]
	cfg config
}

// NewSet returns an empty ordered set using cmp for key order.
func NewSet[K any](cmp tree.Comparator[K], opts ...Option) *Set[K] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return &Set[K]{t: newBackend[K, struct{}](cmp, false, c), cmp: cmp, cfg: c}
}

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.t.Len() == 0 }

// Clear removes every key, resetting the set to empty on a fresh backend
// of the same kind and comparator.
func (s *Set[K]) Clear() { s.t = newBackend[K, struct{}](s.cmp, false, s.cfg) }

// LowerBound returns the 0-indexed position of the first key not less
// than key (i.e. key's position if present, or where it would be
// inserted otherwise). Equivalent to PositionOf.
func (s *Set[K]) LowerBound(key K) int { return s.t.Rank(key) }

// UpperBound returns the 0-indexed position of the first key strictly
// greater than key.
func (s *Set[K]) UpperBound(key K) int {
	pos := s.t.Rank(key)
	if k, _, err := s.t.Select(pos); err == nil && s.cmp(k, key) == 0 {
		pos++
	}
	return pos
}

// Range visits every key k with lo <= k <= hi, in ascending order,
// stopping early if visit returns false.
func (s *Set[K]) Range(lo, hi K, visit func(K) bool) {
	n := s.t.Len()
	for pos := s.t.Rank(lo); pos < n; pos++ {
		k, _, err := s.t.Select(pos)
		if err != nil || s.cmp(k, hi) > 0 {
			return
		}
		if !visit(k) {
			return
		}
	}
}

// Add inserts key, reporting whether it was newly added.
func (s *Set[K]) Add(key K) bool { return s.t.Insert(key, struct{}{}) }

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	_, found := s.t.Search(key)
	return found
}

// Remove deletes key, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool { return s.t.Remove(key) }

// Len reports the number of distinct keys stored.
func (s *Set[K]) Len() int { return s.t.Len() }

// Min and Max return the smallest/largest key.
func (s *Set[K]) Min() (K, bool) { k, _, ok := s.t.Min(); return k, ok }
func (s *Set[K]) Max() (K, bool) { k, _, ok := s.t.Max(); return k, ok }

// Each visits every key in ascending order, stopping early if visit
// returns false.
func (s *Set[K]) Each(visit func(K) bool) {
	s.t.InOrder(func(k K, _ struct{}) bool { return visit(k) })
}

// At returns the key at 0-indexed position pos in ascending order.
func (s *Set[K]) At(pos int) (K, error) {
	if pos < 0 || pos >= s.t.Len() {
		var zero K
		return zero, ErrOutOfRange
	}
	k, _, _ := s.t.Select(pos)
	return k, nil
}

// PositionOf returns the 0-indexed position key occupies, or would occupy
// if absent.
func (s *Set[K]) PositionOf(key K) int { return s.t.Rank(key) }
