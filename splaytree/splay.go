package splaytree

import (
	"fmt"

	"github.com/arborio/arborio/bst"
	"github.com/arborio/arborio/xerrors"
)

// ErrOutOfRange is returned by Select for a position outside [0, size).
var ErrOutOfRange = fmt.Errorf("splaytree: %w", xerrors.ErrOutOfRange)

type node[K, V any] = bst.Node[K, V]

// Tree is a splay tree over keys K with values V.
type Tree[K, V any] struct {
	nilNode  *node[K, V]
	root     *node[K, V]
	cmp      bst.Comparator[K]
	allowDup bool
	n        int
}

// Option configures a Tree at construction.
type Option func(*config)

type config struct{ allowDup bool }

// WithDuplicates allows equal keys, routed to the right subtree.
func WithDuplicates() Option { return func(c *config) { c.allowDup = true } }

// New returns an empty splay tree ordered by cmp.
func New[K, V any](cmp bst.Comparator[K], opts ...Option) *Tree[K, V] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	nilNode := &node[K, V]{}
	nilNode.Left, nilNode.Right, nilNode.Par = nilNode, nilNode, nilNode
	return &Tree[K, V]{nilNode: nilNode, root: nilNode, cmp: cmp, allowDup: c.allowDup}
}

// Len reports the number of stored entries.
func (t *Tree[K, V]) Len() int { return t.n }

func (t *Tree[K, V]) rotate(x *node[K, V]) {
	p := x.Par
	g := p.Par
	var newSub *node[K, V]
	if p.Left == x {
		newSub = bst.RotateRight(p, t.nilNode)
	} else {
		newSub = bst.RotateLeft(p, t.nilNode)
	}
	newSub.Par = g
	if g == t.nilNode {
		t.root = newSub
	} else if g.Left == p {
		g.Left = newSub
	} else {
		g.Right = newSub
	}
}

// splay moves x to the root via zig / zig-zig / zig-zag rotations.
func (t *Tree[K, V]) splay(x *node[K, V]) {
	for x.Par != t.nilNode {
		p := x.Par
		g := p.Par
		if g == t.nilNode {
			t.rotate(x) // zig
			continue
		}
		sameSide := (x == p.Left) == (p == g.Left)
		if sameSide {
			t.rotate(p) // zig-zig: rotate parent first
			t.rotate(x)
		} else {
			t.rotate(x) // zig-zag
			t.rotate(x)
		}
	}
}

// Insert adds (key, val) and splays the new node to the root. Amortized
// O(log n).
func (t *Tree[K, V]) Insert(key K, val V) bool {
	inserted, existing, isNew := bst.InsertLeaf(t.root, t.nilNode, t.cmp, key, val, t.allowDup,
		func(k K, v V) *node[K, V] { return &node[K, V]{Key: k, Val: v} })
	if !isNew {
		t.splay(existing)
		return false
	}
	if t.root == t.nilNode {
		t.root = inserted
	}
	t.n++
	t.splay(inserted)
	return true
}

// Search returns the value for key, splaying whichever node the search
// path last touched (the key's node if found, otherwise its would-be
// parent) to the root.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if t.root == t.nilNode {
		var zero V
		return zero, false
	}
	x, last := t.root, t.root
	for x != t.nilNode {
		last = x
		c := t.cmp(key, x.Key)
		if c < 0 {
			x = x.Left
		} else if c > 0 {
			x = x.Right
		} else {
			t.splay(x)
			return x.Val, true
		}
	}
	t.splay(last)
	var zero V
	return zero, false
}

// Remove deletes key. Amortized O(log n): splay key to the root, then join
// its two subtrees by splaying the left subtree's maximum to its root and
// hanging the right subtree off it.
func (t *Tree[K, V]) Remove(key K) bool {
	if _, found := t.Search(key); !found {
		return false
	}
	// key is now at the root (Search splayed it there).
	z := t.root
	l, r := z.Left, z.Right
	if l == t.nilNode {
		t.root = r
		r.Par = t.nilNode
	} else {
		l.Par = t.nilNode
		maxLeft := bst.Max(l, t.nilNode)
		saveRoot := t.root
		t.root = l
		t.splay(maxLeft)
		t.root.Right = r
		if r != t.nilNode {
			r.Par = t.root
		}
		bst.FixSizeUpward(t.root, t.nilNode)
		_ = saveRoot
	}
	t.n--
	return true
}

// Min returns the smallest key and its value, without splaying (a
// read-only peek; call Search to splay).
func (t *Tree[K, V]) Min() (K, V, bool) {
	n := bst.Min(t.root, t.nilNode)
	if n == t.nilNode {
		var k K
		var v V
		return k, v, false
	}
	return n.Key, n.Val, true
}

// Max returns the largest key and its value, without splaying.
func (t *Tree[K, V]) Max() (K, V, bool) {
	n := bst.Max(t.root, t.nilNode)
	if n == t.nilNode {
		var k K
		var v V
		return k, v, false
	}
	return n.Key, n.Val, true
}

// InOrder visits every entry in non-decreasing key order. It does not
// splay; per this package's iterator-safety note, take this snapshot
// before any further Search/Insert/Remove call.
func (t *Tree[K, V]) InOrder(visit func(K, V) bool) {
	bst.InOrder(t.root, t.nilNode, func(n *node[K, V]) bool { return visit(n.Key, n.Val) })
}

// Select returns the entry at 0-indexed in-order position pos, without
// splaying.
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
