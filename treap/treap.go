package treap

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
var ErrOutOfRange = fmt.Errorf("treap: %w", xerrors.ErrOutOfRange)

type node[K, V any] = bst.Node[K, V]

// Tree is a randomized treap over keys K with values V.
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

// WithSeed seeds the priority RNG deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed; c.hasSeed = true }
}

// WithRand supplies an explicit RNG, taking precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("treap: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// New returns an empty treap ordered by cmp.
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

// Insert adds (key, val) with a freshly drawn random priority, then rotates
// it upward while it is smaller-priority than its parent. Amortized
// O(log n).
func (t *Tree[K, V]) Insert(key K, val V) bool {
	inserted, _, isNew := bst.InsertLeaf(t.root, t.nilNode, t.cmp, key, val, t.allowDup,
		func(k K, v V) *node[K, V] {
			return &node[K, V]{Key: k, Val: v, Priority: t.rng.Uint64()}
		})
	if !isNew {
		return false
	}
	if t.root == t.nilNode {
		t.root = inserted
	}
	t.n++
	for inserted.Par != t.nilNode && inserted.Priority < inserted.Par.Priority {
		parent := inserted.Par
		grand := parent.Par
		var newSub *node[K, V]
		if parent.Left == inserted {
			newSub = bst.RotateRight(parent, t.nilNode)
		} else {
			newSub = bst.RotateLeft(parent, t.nilNode)
		}
		newSub.Par = grand
		if grand == t.nilNode {
			t.root = newSub
		} else if grand.Left == parent {
			grand.Left = newSub
		} else {
			grand.Right = newSub
		}
	}
	return true
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

// Remove deletes key by rotating it down to a leaf — always toward the
// child with the smaller priority — then detaching it. Amortized O(log n).
func (t *Tree[K, V]) Remove(key K) bool {
	z := bst.Search(t.root, t.nilNode, t.cmp, key)
	if z == t.nilNode {
		return false
	}
	for z.Left != t.nilNode || z.Right != t.nilNode {
		parent := z.Par
		var newSub *node[K, V]
		if z.Right == t.nilNode || (z.Left != t.nilNode && z.Left.Priority < z.Right.Priority) {
			newSub = bst.RotateRight(z, t.nilNode)
		} else {
			newSub = bst.RotateLeft(z, t.nilNode)
		}
		newSub.Par = parent
		if parent == t.nilNode {
			t.root = newSub
		} else if parent.Left == z {
			parent.Left = newSub
		} else {
			parent.Right = newSub
		}
	}
	// z is now a leaf; detach it.
	parent := z.Par
	if parent == t.nilNode {
		t.root = t.nilNode
	} else if parent.Left == z {
		parent.Left = t.nilNode
	} else {
		parent.Right = t.nilNode
	}
	bst.FixSizeUpward(parent, t.nilNode)
	t.n--
	return true
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

// merge concatenates two treaps, every element of l preceding every element
// of r in in-order position, choosing each root by priority. Keys are not
// compared: the result keeps the positional sequence as given, including a
// key that InsertAt spliced in out of key order.
func (t *Tree[K, V]) merge(l, r *node[K, V]) *node[K, V] {
	if l == t.nilNode {
		return r
	}
	if r == t.nilNode {
		return l
	}
	if l.Priority < r.Priority {
		l.Right = t.merge(l.Right, r)
		l.Right.Par = l
		l.Par = t.nilNode
		bst.FixSizeUpward(l, t.nilNode)
		return l
	}
	r.Left = t.merge(l, r.Left)
	r.Left.Par = r
	r.Par = t.nilNode
	bst.FixSizeUpward(r, t.nilNode)
	return r
}

// InsertAt inserts (key, val) as the new element at in-order position pos,
// splitting the tree by position and merging a fresh random-priority leaf
// back in between the halves.
func (t *Tree[K, V]) InsertAt(pos int, key K, val V) error {
	if pos < 0 || pos > t.n {
		return ErrOutOfRange
	}
	l, r := bst.SplitAtPos(t.root, t.nilNode, pos)
	leaf := &node[K, V]{Key: key, Val: val, Priority: t.rng.Uint64(), Size: 1}
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

// SplitAt splits the treap by in-order position into two independent
// treaps sharing this tree's comparator and RNG. The receiver is left
// empty.
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
