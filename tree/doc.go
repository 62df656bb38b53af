// Package tree defines the backend-agnostic contract shared by every
// balanced binary search tree implementation in this module (avltree,
// rbtree, treap, splaytree, randtree). Ordered adapters in package ordtree
// are written against this interface so callers can swap the balancing
// policy without touching call sites.
package tree

// Comparator reports the strict weak order between a and b: negative if
// a < b, zero if a == b, positive if a > b. Every backend is parameterized
// by one Comparator supplied at construction.
type Comparator[K any] func(a, b K) int

// Ordered is the uniform surface every balanced-tree backend exposes.
// Duplicate-key policy (reject vs. route to the right subtree) is fixed at
// construction, not per call.
type Ordered[K, V any] interface {
	// Insert adds (key, val). It reports false without modifying the tree
	// if key is already present and the backend was constructed in strict
	// (no-duplicates) mode.
	Insert(key K, val V) (inserted bool)

	// Search returns the value stored for key and true, or the zero value
	// and false if key is absent.
	Search(key K) (val V, found bool)

	// Remove deletes key. It reports false if key was absent.
	Remove(key K) (removed bool)

	// Len reports the number of stored entries (duplicates counted
	// individually).
	Len() int

	// Min and Max return the smallest/largest key and its value. ok is
	// false on an empty tree.
	Min() (key K, val V, ok bool)
	Max() (key K, val V, ok bool)

	// InOrder visits every entry in non-decreasing key order. It stops
	// early if visit returns false.
	InOrder(visit func(key K, val V) bool)
}

// Ranked is implemented by backends that maintain the subtree-size
// invariant unconditionally (avltree, rbtree, treap, splaytree, randtree
// all do) and therefore support order-statistic operations in O(log n).
type Ranked[K, V any] interface {
	Ordered[K, V]

	// Select returns the entry at 0-indexed in-order position pos.
	Select(pos int) (key K, val V, err error)

	// Rank returns the 0-indexed position key would occupy: for a present
	// key, its own position; for an absent key, the position of the first
	// key strictly greater than it.
	Rank(key K) int
}

// Positional is implemented by treap and randtree. Their InsertAt and
// RemoveAt split the tree at a position using cached subtree sizes, splice
// the element in or out, and join the pieces back. avltree, rbtree and
// splaytree do not implement it.
type Positional[K, V any] interface {
	Ranked[K, V]

	// InsertAt inserts (key, val) as the new element at in-order position
	// pos, shifting subsequent positions right by one.
	InsertAt(pos int, key K, val V) error

	// RemoveAt deletes and returns the entry at in-order position pos.
	RemoveAt(pos int) (key K, val V, err error)
}
