package rbtree

import (
	"fmt"

	"github.com/arborio/arborio/bst"
	"github.com/arborio/arborio/bstnode"
	"github.com/arborio/arborio/xerrors"
)

// ErrOutOfRange is returned by Select for a position outside [0, size).
var ErrOutOfRange = fmt.Errorf("rbtree: %w", xerrors.ErrOutOfRange)

type node[K, V any] = bst.Node[K, V]

// Mode selects the insertion discipline.
type Mode int

const (
	// BottomUp inserts as a red leaf, then fixes red-red violations
	// walking from the leaf toward the root.
	BottomUp Mode = iota
	// TopDown splits 4-nodes on the way down so insertion always lands
	// in a safe (black-parented) slot.
	TopDown
)

// Tree is a red-black tree over keys K with values V.
type Tree[K, V any] struct {
	nilNode  *node[K, V]
	root     *node[K, V]
	cmp      bst.Comparator[K]
	allowDup bool
	mode     Mode
	n        int
}

// Option configures a Tree at construction.
type Option func(*config)

type config struct {
	allowDup bool
}

// WithDuplicates allows equal keys, routed to the right subtree.
func WithDuplicates() Option { return func(c *config) { c.allowDup = true } }

// New returns an empty bottom-up red-black tree ordered by cmp.
func New[K, V any](cmp bst.Comparator[K], opts ...Option) *Tree[K, V] {
	return newTree[K, V](cmp, BottomUp, opts...)
}

// NewTopDown returns an empty top-down red-black tree ordered by cmp.
func NewTopDown[K, V any](cmp bst.Comparator[K], opts ...Option) *Tree[K, V] {
	return newTree[K, V](cmp, TopDown, opts...)
}

func newTree[K, V any](cmp bst.Comparator[K], mode Mode, opts ...Option) *Tree[K, V] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	nilNode := &node[K, V]{Color: bstnode.Black}
	nilNode.Left, nilNode.Right, nilNode.Par = nilNode, nilNode, nilNode
	return &Tree[K, V]{nilNode: nilNode, root: nilNode, cmp: cmp, allowDup: c.allowDup, mode: mode}
}

// Len reports the number of stored entries.
func (t *Tree[K, V]) Len() int { return t.n }

func (t *Tree[K, V]) newLeaf(key K, val V) *node[K, V] {
	return &node[K, V]{Key: key, Val: val, Color: bstnode.Red}
}

func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := bst.RotateLeft(x, t.nilNode)
	t.relink(x, y)
}

func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := bst.RotateRight(x, t.nilNode)
	t.relink(x, y)
}

// relink fixes up the grandparent's child pointer after bst.Rotate{Left,Right}
// moved y into x's former position.
func (t *Tree[K, V]) relink(x, y *node[K, V]) {
	p := y.Par
	if p == t.nilNode {
		t.root = y
	} else if p.Left == x {
		p.Left = y
	} else {
		p.Right = y
	}
}

// Insert adds (key, val). Complexity: O(log n).
func (t *Tree[K, V]) Insert(key K, val V) bool {
	if t.mode == TopDown {
		return t.insertTopDown(key, val)
	}
	return t.insertBottomUp(key, val)
}

func (t *Tree[K, V]) insertBottomUp(key K, val V) bool {
	z, _, isNew := bst.InsertLeaf(t.root, t.nilNode, t.cmp, key, val, t.allowDup, t.newLeaf)
	if !isNew {
		return false
	}
	if t.root == t.nilNode {
		t.root = z
	}
	t.n++
	t.fixupInsert(z)
	return true
}

// fixupInsert restores red-black properties after inserting red leaf z,
// via the classic uncle-color case analysis, mirrored for left/right.
func (t *Tree[K, V]) fixupInsert(z *node[K, V]) {
	for z.Par.Color == bstnode.Red {
		parent := z.Par
		grand := parent.Par
		if parent == grand.Left {
			uncle := grand.Right
			if uncle.Color == bstnode.Red {
				parent.Color = bstnode.Black
				uncle.Color = bstnode.Black
				grand.Color = bstnode.Red
				z = grand
				continue
			}
			if z == parent.Right {
				z = parent
				t.rotateLeft(z)
				parent = z.Par
				grand = parent.Par
			}
			parent.Color = bstnode.Black
			grand.Color = bstnode.Red
			t.rotateRight(grand)
		} else {
			uncle := grand.Left
			if uncle.Color == bstnode.Red {
				parent.Color = bstnode.Black
				uncle.Color = bstnode.Black
				grand.Color = bstnode.Red
				z = grand
				continue
			}
			if z == parent.Left {
				z = parent
				t.rotateRight(z)
				parent = z.Par
				grand = parent.Par
			}
			parent.Color = bstnode.Black
			grand.Color = bstnode.Red
			t.rotateLeft(grand)
		}
	}
	t.root.Color = bstnode.Black
}

// insertTopDown splits every 4-node (a black node with two red children) on
// the way down so the eventual leaf parent is guaranteed safe to receive a
// red child without a second pass.
func (t *Tree[K, V]) insertTopDown(key K, val V) bool {
	if t.root == t.nilNode {
		t.root = t.newLeaf(key, val)
		t.root.Color = bstnode.Black
		t.n++
		return true
	}
	grandparent, parent, x := t.nilNode, t.nilNode, t.root
	for x != t.nilNode {
		if x.Left.Color == bstnode.Red && x.Right.Color == bstnode.Red {
			x.Color = bstnode.Red
			x.Left.Color = bstnode.Black
			x.Right.Color = bstnode.Black
			if parent.Color == bstnode.Red {
				t.fixRedRed(grandparent, parent, x)
			}
		}
		c := t.cmp(key, x.Key)
		if c == 0 && !t.allowDup {
			return false
		}
		grandparent, parent = parent, x
		if c < 0 {
			x = x.Left
		} else {
			x = x.Right
		}
	}
	leaf := t.newLeaf(key, val)
	leaf.Left, leaf.Right, leaf.Par = t.nilNode, t.nilNode, parent
	if t.cmp(key, parent.Key) < 0 {
		parent.Left = leaf
	} else {
		parent.Right = leaf
	}
	t.n++
	bst.FixSizeUpward(parent, t.nilNode)
	if parent.Color == bstnode.Red {
		t.fixRedRed(grandparent, parent, leaf)
	}
	t.root.Color = bstnode.Black
	return true
}

// fixRedRed resolves a red node x with a red parent whose grandparent is
// known, via the same rotate-or-recolor case used by bottom-up insertion.
func (t *Tree[K, V]) fixRedRed(grandparent, parent, x *node[K, V]) {
	if parent == grandparent.Left {
		if x == parent.Right {
			t.rotateLeft(parent)
			parent = grandparent.Left
		}
		parent.Color = bstnode.Black
		grandparent.Color = bstnode.Red
		t.rotateRight(grandparent)
	} else {
		if x == parent.Left {
			t.rotateRight(parent)
			parent = grandparent.Right
		}
		parent.Color = bstnode.Black
		grandparent.Color = bstnode.Red
		t.rotateLeft(grandparent)
	}
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

func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	if u.Par == t.nilNode {
		t.root = v
	} else if u == u.Par.Left {
		u.Par.Left = v
	} else {
		u.Par.Right = v
	}
	v.Par = u.Par
}

// Remove deletes key. Complexity: O(log n).
func (t *Tree[K, V]) Remove(key K) bool {
	z := bst.Search(t.root, t.nilNode, t.cmp, key)
	if z == t.nilNode {
		return false
	}
	t.deleteNode(z)
	t.n--
	return true
}

// deleteNode implements CLRS RB-DELETE: splice out z (or its in-order
// successor if z has two children), then if the spliced-out node was
// black, propagate the resulting "double black" deficit upward.
func (t *Tree[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yOriginalColor := y.Color
	var x *node[K, V]
	switch {
	case z.Left == t.nilNode:
		x = z.Right
		t.transplant(z, z.Right)
	case z.Right == t.nilNode:
		x = z.Left
		t.transplant(z, z.Left)
	default:
		y = bst.Min(z.Right, t.nilNode)
		yOriginalColor = y.Color
		x = y.Right
		if y.Par == z {
			x.Par = y
		} else {
			t.transplant(y, y.Right)
			y.Right = z.Right
			y.Right.Par = y
		}
		t.transplant(z, y)
		y.Left = z.Left
		y.Left.Par = y
		y.Color = z.Color
	}
	bst.FixSizeUpward(x.Par, t.nilNode)
	if yOriginalColor == bstnode.Black {
		t.fixupDelete(x)
	}
}

// fixupDelete restores the black-height invariant after removing a black
// node, given x (possibly the sentinel) now carrying the deficit.
func (t *Tree[K, V]) fixupDelete(x *node[K, V]) {
	for x != t.root && x.Color == bstnode.Black {
		if x == x.Par.Left {
			w := x.Par.Right
			if w.Color == bstnode.Red {
				w.Color = bstnode.Black
				x.Par.Color = bstnode.Red
				t.rotateLeft(x.Par)
				w = x.Par.Right
			}
			if w.Left.Color == bstnode.Black && w.Right.Color == bstnode.Black {
				w.Color = bstnode.Red
				x = x.Par
				continue
			}
			if w.Right.Color == bstnode.Black {
				w.Left.Color = bstnode.Black
				w.Color = bstnode.Red
				t.rotateRight(w)
				w = x.Par.Right
			}
			w.Color = x.Par.Color
			x.Par.Color = bstnode.Black
			w.Right.Color = bstnode.Black
			t.rotateLeft(x.Par)
			x = t.root
		} else {
			w := x.Par.Left
			if w.Color == bstnode.Red {
				w.Color = bstnode.Black
				x.Par.Color = bstnode.Red
				t.rotateRight(x.Par)
				w = x.Par.Left
			}
			if w.Right.Color == bstnode.Black && w.Left.Color == bstnode.Black {
				w.Color = bstnode.Red
				x = x.Par
				continue
			}
			if w.Left.Color == bstnode.Black {
				w.Right.Color = bstnode.Black
				w.Color = bstnode.Red
				t.rotateLeft(w)
				w = x.Par.Left
			}
			w.Color = x.Par.Color
			x.Par.Color = bstnode.Black
			w.Left.Color = bstnode.Black
			t.rotateRight(x.Par)
			x = t.root
		}
	}
	x.Color = bstnode.Black
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

// Select returns the entry at 0-indexed in-order position pos. Subtree
// sizes are always maintained, as in every backend built on the bst
// primitives.
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

// BlackHeight returns the number of black nodes on any root-to-sentinel
// path (well-defined precisely because the RB invariant holds), exposed
// for testing property P5.
func (t *Tree[K, V]) BlackHeight() int {
	h := 0
	for n := t.root; n != t.nilNode; n = n.Left {
		if n.Color == bstnode.Black {
			h++
		}
	}
	return h + 1 // count the sentinel
}
