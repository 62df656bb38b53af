package ordtree

import "github.com/arborio/arborio/tree"

// MultiSet is an ordered multiset: keys may repeat, each occurrence
// occupying its own node in the underlying tree (equal keys route to the
// right subtree, so duplicates of a key always sit in a contiguous
// in-order range).
type MultiSet[K any] struct {
	t   tree.Ranked[K, struct{}]
	cmp tree.Comparator[K]
	cfg config
}

// NewMultiSet returns an empty ordered multiset using cmp for key order.
func NewMultiSet[K any](cmp tree.Comparator[K], opts ...Option) *MultiSet[K] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return &MultiSet[K]{t: newBackend[K, struct{}](cmp, true, c), cmp: cmp, cfg: c}
}

// Empty reports whether the multiset holds no occurrences.
func (s *MultiSet[K]) Empty() bool { return s.t.Len() == 0 }

// Clear removes every occurrence, resetting the multiset to empty on a
// fresh backend of the same kind and comparator.
func (s *MultiSet[K]) Clear() { s.t = newBackend[K, struct{}](s.cmp, true, s.cfg) }

// Add inserts one occurrence of key.
func (s *MultiSet[K]) Add(key K) { s.t.Insert(key, struct{}{}) }

// Remove deletes one occurrence of key, reporting whether any was present.
func (s *MultiSet[K]) Remove(key K) bool { return s.t.Remove(key) }

// Len reports the total number of occurrences stored.
func (s *MultiSet[K]) Len() int { return s.t.Len() }

// Count reports how many occurrences of key are stored, by locating key's
// lower-bound position via Rank and scanning the contiguous run of equal
// keys via Select.
func (s *MultiSet[K]) Count(key K) int {
	pos := s.t.Rank(key)
	n := s.t.Len()
	count := 0
	for ; pos < n; pos++ {
		k, _, err := s.t.Select(pos)
		if err != nil || s.cmp(k, key) != 0 {
			break
		}
		count++
	}
	return count
}

// Contains reports whether at least one occurrence of key is stored.
func (s *MultiSet[K]) Contains(key K) bool {
	_, found := s.t.Search(key)
	return found
}

// Min and Max return the smallest/largest key.
func (s *MultiSet[K]) Min() (K, bool) { k, _, ok := s.t.Min(); return k, ok }
func (s *MultiSet[K]) Max() (K, bool) { k, _, ok := s.t.Max(); return k, ok }

// Each visits every occurrence in ascending order, stopping early if visit
// returns false.
func (s *MultiSet[K]) Each(visit func(K) bool) {
	s.t.InOrder(func(k K, _ struct{}) bool { return visit(k) })
}

// At returns the occurrence at 0-indexed position pos in ascending order.
func (s *MultiSet[K]) At(pos int) (K, error) {
	if pos < 0 || pos >= s.t.Len() {
		var zero K
		return zero, ErrOutOfRange
	}
	k, _, _ := s.t.Select(pos)
	return k, nil
}
