package randtree

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arborio/arborio/bst"
	"github.com/arborio/arborio/xerrors"
)

func timeSeed() int64 { return time.Now().UnixNano() }

// ErrOutOfRange is returned by Select/RemoveAt/InsertAt for a position
// outside the valid range.
var ErrOutOfRange = fmt.Errorf("randtree: %w", xerrors.ErrOutOfRange)

type node[K, V any] = bst.Node[K, V]

// Tree is a randomized binary search tree over keys K with values V.
type Tree[K, V any] struct {
	nilNode  *node[K, V]
	root     *node[K, V]
	cmp      bst.Comparator[K]
	allowDup bool
	rng      *rand.Rand
	n        int
}

// Option configures a Tree at construction.
type Option func(*config)

type config struct {
	allowDup bool
	rng      *rand.Rand
	seed     int64
	hasSeed  bool
}

// WithDuplicates allows equal keys, routed to the right subtree.
func WithDuplicates() Option { return func(c *config) { c.allowDup = true } }

// WithSeed seeds the insertion/merge RNG deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed; c.hasSeed = true }
}

// WithRand supplies an explicit RNG, taking precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randtree: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// New returns an empty randomized BST ordered by cmp.
func New[K, V any](cmp bst.Comparator[K], opts ...Option) *Tree[K, V] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	rng := c.rng
	if rng == nil {
		if c.hasSeed {
			rng = rand.New(rand.NewSource(c.seed))
		} else {
			rng = rand.New(rand.NewSource(timeSeed()))
		}
	}
	nilNode := &node[K, V]{}
	nilNode.Left, nilNode.Right, nilNode.Par = nilNode, nilNode, nilNode
	return &Tree[K, V]{nilNode: nilNode, root: nilNode, cmp: cmp, allowDup: c.allowDup, rng: rng}
}

// Len reports the number of stored entries.
func (t *Tree[K, V]) Len() int { return t.n }

func (t *Tree[K, V]) sz(x *node[K, V]) int {
	if x == t.nilNode {
		return 0
	}
	return x.Size
}

// insertAtRoot splits x around key and hangs the two halves off a fresh
// leaf, making that leaf the new root of this subtree.
func (t *Tree[K, V]) insertAtRoot(x *node[K, V], key K, val V) *node[K, V] {
	l, r := bst.SplitAtKey(x, t.nilNode, t.cmp, key)
	leaf := &node[K, V]{Key: key, Val: val}
	leaf.Left, leaf.Right, leaf.Par = l, r, t.nilNode
	if l != t.nilNode {
		l.Par = leaf
	}
	if r != t.nilNode {
		r.Par = leaf
	}
	leaf.Size = 1 + t.sz(l) + t.sz(r)
	return leaf
}

// insert recurses into the subtree rooted at x, returning its new root.
// At each node visited (including x itself before descending), the new key
// becomes the subtree root with probability 1/(size+1); this reproduces
// the shape distribution of building the tree from a random permutation.
func (t *Tree[K, V]) insert(x *node[K, V], key K, val V, inserted *bool) *node[K, V] {
	if x == t.nilNode {
		*inserted = true
		leaf := &node[K, V]{Key: key, Val: val, Size: 1}
		leaf.Left, leaf.Right, leaf.Par = t.nilNode, t.nilNode, t.nilNode
		return leaf
	}
	if t.rng.Intn(t.sz(x)+1) == 0 {
		c := t.cmp(key, x.Key)
		if c == 0 && !t.allowDup {
			*inserted = false
			return x
		}
		*inserted = true
		return t.insertAtRoot(x, key, val)
	}
	c := t.cmp(key, x.Key)
	if c == 0 && !t.allowDup {
		*inserted = false
		return x
	}
	if c < 0 {
		x.Left = t.insert(x.Left, key, val, inserted)
		x.Left.Par = x
	} else {
		x.Right = t.insert(x.Right, key, val, inserted)
		x.Right.Par = x
	}
	if *inserted {
		x.Size++
	}
	return x
}

// Insert adds (key, val), reporting whether it was newly inserted.
func (t *Tree[K, V]) Insert(key K, val V) bool {
	if !t.allowDup {
		if _, found := t.Search(key); found {
			return false
		}
	}
	var inserted bool
	t.root = t.insert(t.root, key, val, &inserted)
	t.root.Par = t.nilNode
	if inserted {
		t.n++
	}
	return inserted
}

// Search returns the value stored for key.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	n := bst.Search(t.root, t.nilNode, t.cmp, key)
	if n == t.nilNode {
		var zero V
		return zero, false
	}
	return n.Val, true
}

// merge joins two subtrees assuming max(l) < min(r), choosing the new root
// randomly with probability proportional to each side's size so deletion
// preserves the uniform-random-permutation shape distribution.
func (t *Tree[K, V]) merge(l, r *node[K, V]) *node[K, V] {
	if l == t.nilNode {
		return r
	}
	if r == t.nilNode {
		return l
	}
	if t.rng.Intn(t.sz(l)+t.sz(r)) < t.sz(l) {
		l.Right = t.merge(l.Right, r)
		l.Right.Par = l
		l.Par = t.nilNode
		l.Size = 1 + t.sz(l.Left) + t.sz(l.Right)
		return l
	}
	r.Left = t.merge(l, r.Left)
	r.Left.Par = r
	r.Par = t.nilNode
	r.Size = 1 + t.sz(r.Left) + t.sz(r.Right)
	return r
}

func (t *Tree[K, V]) remove(x *node[K, V], key K, removed *bool) *node[K, V] {
	if x == t.nilNode {
		*removed = false
		return t.nilNode
	}
	c := t.cmp(key, x.Key)
	switch {
	case c < 0:
		x.Left = t.remove(x.Left, key, removed)
		if x.Left != t.nilNode {
			x.Left.Par = x
		}
	case c > 0:
		x.Right = t.remove(x.Right, key, removed)
		if x.Right != t.nilNode {
			x.Right.Par = x
		}
	default:
		*removed = true
		merged := t.merge(x.Left, x.Right)
		return merged
	}
	if *removed {
		x.Size--
	}
	return x
}

// Remove deletes key, merging its two children with a size-weighted random
// policy so the remaining tree stays distributed as if key had never been
// inserted.
func (t *Tree[K, V]) Remove(key K) bool {
	var removed bool
	t.root = t.remove(t.root, key, &removed)
	if t.root != t.nilNode {
		t.root.Par = t.nilNode
	}
	if removed {
		t.n--
	}
	return removed
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	n := bst.Min(t.root, t.nilNode)
	if n == t.nilNode {
		var k K
		var v V
		return k, v, false
	}
	return n.Key, n.Val, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	n := bst.Max(t.root, t.nilNode)
	if n == t.nilNode {
		var k K
		var v V
		return k, v, false
	}
	return n.Key, n.Val, true
}

// InOrder visits every entry in non-decreasing key order.
func (t *Tree[K, V]) InOrder(visit func(K, V) bool) {
	bst.InOrder(t.root, t.nilNode, func(n *node[K, V]) bool { return visit(n.Key, n.Val) })
}

// Select returns the entry at 0-indexed in-order position pos.
func (t *Tree[K, V]) Select(pos int) (K, V, error) {
	n, err := bst.Select(t.root, t.nilNode, pos)
	if err != nil {
		var k K
		var v V
		return k, v, ErrOutOfRange
	}
	return n.Key, n.Val, nil
}

// Rank returns the 0-indexed position key would occupy.
func (t *Tree[K, V]) Rank(key K) int { return bst.Rank(t.root, t.nilNode, t.cmp, key) }

// InsertAt inserts (key, val) as the new element at in-order position pos.
func (t *Tree[K, V]) InsertAt(pos int, key K, val V) error {
	if pos < 0 || pos > t.n {
		return ErrOutOfRange
	}
	l, r := bst.SplitAtPos(t.root, t.nilNode, pos)
	leaf := &node[K, V]{Key: key, Val: val, Size: 1}
	leaf.Left, leaf.Right, leaf.Par = t.nilNode, t.nilNode, t.nilNode
	t.root = t.merge(t.merge(l, leaf), r)
	t.n++
	return nil
}

// RemoveAt deletes and returns the entry at in-order position pos.
func (t *Tree[K, V]) RemoveAt(pos int) (K, V, error) {
	if pos < 0 || pos >= t.n {
		var k K
		var v V
		return k, v, ErrOutOfRange
	}
	l, mid := bst.SplitAtPos(t.root, t.nilNode, pos)
	target, r := bst.SplitAtPos(mid, t.nilNode, 1)
	t.root = t.merge(l, r)
	t.n--
	return target.Key, target.Val, nil
}

// SplitAt splits the tree by in-order position into two independent trees
// sharing this tree's comparator and RNG. The receiver is left empty.
func (t *Tree[K, V]) SplitAt(pos int) (left, right *Tree[K, V], err error) {
	if pos < 0 || pos > t.n {
		return nil, nil, ErrOutOfRange
	}
	l, r := bst.SplitAtPos(t.root, t.nilNode, pos)
	lt := &Tree[K, V]{nilNode: t.nilNode, root: l, cmp: t.cmp, allowDup: t.allowDup, rng: t.rng, n: pos}
	rt := &Tree[K, V]{nilNode: t.nilNode, root: r, cmp: t.cmp, allowDup: t.allowDup, rng: t.rng, n: t.n - pos}
	t.root, t.n = t.nilNode, 0
	return lt, rt, nil
}
