package avltree

import (
	"fmt"

	"github.com/arborio/arborio/bst"
	"github.com/arborio/arborio/xerrors"
)

// ErrOutOfRange is returned by Select for a position outside
// [0, size).
var ErrOutOfRange = fmt.Errorf("avltree: %w", xerrors.ErrOutOfRange)

type node[K, V any] = bst.Node[K, V]

// Tree is an AVL-balanced binary search tree over keys K with values V.
type Tree[K, V any] struct {
	nilNode  *node[K, V]
	root     *node[K, V]
	cmp      bst.Comparator[K]
	allowDup bool
	n        int
}

// Option configures a Tree at construction.
type Option func(*config)

type config struct {
	allowDup bool
}

// WithDuplicates allows equal keys; duplicates are routed to the right
// subtree in insertion order.
func WithDuplicates() Option { return func(c *config) { c.allowDup = true } }

// New returns an empty AVL tree ordered by cmp. Subtree sizes are tracked
// unconditionally, so Select/Rank are always available in O(log n) without
// a separate "ranked" construction mode.
func New[K, V any](cmp bst.Comparator[K], opts ...Option) *Tree[K, V] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	nilNode := bstNilNode[K, V]()
	return &Tree[K, V]{
		nilNode:  nilNode,
		root:     nilNode,
		cmp:      cmp,
		allowDup: c.allowDup,
	}
}

func bstNilNode[K, V any]() *node[K, V] {
	n := &node[K, V]{}
	n.Left, n.Right, n.Par = n, n, n
	return n
}

// Len reports the number of stored entries.
func (t *Tree[K, V]) Len() int { return t.n }

func (t *Tree[K, V]) newLeaf(key K, val V) *node[K, V] {
	return &node[K, V]{Key: key, Val: val, Balance: 0}
}

// Insert adds (key, val), rebalancing on the way back to the root.
// Complexity: O(log n).
func (t *Tree[K, V]) Insert(key K, val V) bool {
	inserted, _, isNew := bst.InsertLeaf(t.root, t.nilNode, t.cmp, key, val, t.allowDup, t.newLeaf)
	if !isNew {
		return false
	}
	if t.root == t.nilNode {
		t.root = inserted
	}
	t.n++
	t.retraceInsert(inserted)
	return true
}

// retraceInsert walks from the freshly inserted leaf z toward the root,
// adjusting balance factors and rotating at the first node that becomes
// unbalanced. Classic AVL insertion retrace.
func (t *Tree[K, V]) retraceInsert(z *node[K, V]) {
	c, x := z, z.Par
	for x != t.nilNode {
		if c == x.Left {
			x.Balance--
		} else {
			x.Balance++
		}
		if x.Balance == 0 {
			return // subtree height unchanged, done
		}
		if x.Balance == -2 || x.Balance == 2 {
			t.rebalance(x)
			return // rotation restores height, done
		}
		c, x = x, x.Par
	}
}

// rebalance restores the AVL property at x, whose Balance is +-2, via one
// or two rotations, and relinks the result into x's former position. It
// returns the node now occupying x's old position.
func (t *Tree[K, V]) rebalance(x *node[K, V]) *node[K, V] {
	parent := x.Par
	var newSub *node[K, V]
	if x.Balance == -2 {
		y := x.Left
		if y.Balance <= 0 { // left-left
			newSub = bst.RotateRight(x, t.nilNode)
			if y.Balance == 0 {
				x.Balance, y.Balance = -1, 1
			} else {
				x.Balance, y.Balance = 0, 0
			}
		} else { // left-right
			z := y.Right
			x.Left = bst.RotateLeft(y, t.nilNode)
			newSub = bst.RotateRight(x, t.nilNode)
			switch {
			case z.Balance == 0:
				x.Balance, y.Balance = 0, 0
			case z.Balance < 0:
				x.Balance, y.Balance = 1, 0
			default:
				x.Balance, y.Balance = 0, -1
			}
			z.Balance = 0
		}
	} else {
		y := x.Right
		if y.Balance >= 0 { // right-right
			newSub = bst.RotateLeft(x, t.nilNode)
			if y.Balance == 0 {
				x.Balance, y.Balance = 1, -1
			} else {
				x.Balance, y.Balance = 0, 0
			}
		} else { // right-left
			z := y.Left
			x.Right = bst.RotateRight(y, t.nilNode)
			newSub = bst.RotateLeft(x, t.nilNode)
			switch {
			case z.Balance == 0:
				x.Balance, y.Balance = 0, 0
			case z.Balance > 0:
				x.Balance, y.Balance = -1, 0
			default:
				x.Balance, y.Balance = 0, 1
			}
			z.Balance = 0
		}
	}
	newSub.Par = parent
	if parent == t.nilNode {
		t.root = newSub
	} else if parent.Left == x {
		parent.Left = newSub
	} else {
		parent.Right = newSub
	}
	return newSub
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

// Remove deletes key, rebalancing on the way back to the root.
// Complexity: O(log n).
func (t *Tree[K, V]) Remove(key K) bool {
	z := bst.Search(t.root, t.nilNode, t.cmp, key)
	if z == t.nilNode {
		return false
	}
	t.deleteNode(z)
	t.n--
	return true
}

func (t *Tree[K, V]) deleteNode(z *node[K, V]) {
	if z.Left != t.nilNode && z.Right != t.nilNode {
		// splice out the in-order successor, copy its payload into z
		succ := bst.Min(z.Right, t.nilNode)
		z.Key, z.Val = succ.Key, succ.Val
		z = succ
	}
	// z now has at most one child
	child := z.Left
	if child == t.nilNode {
		child = z.Right
	}
	parent := z.Par
	fromLeft := parent != t.nilNode && parent.Left == z
	if child != t.nilNode {
		child.Par = parent
	}
	if parent == t.nilNode {
		t.root = child
	} else if parent.Left == z {
		parent.Left = child
	} else {
		parent.Right = child
	}
	bst.FixSizeUpward(parent, t.nilNode)
	t.retraceDelete(parent, fromLeft)
}

// retraceDelete walks upward from the deletion point's parent, shrinking
// balance factors and rotating where needed; unlike insertion, deletion
// may require rebalancing all the way to the root.
func (t *Tree[K, V]) retraceDelete(parent *node[K, V], fromLeft bool) {
	x := parent
	for x != t.nilNode {
		next := x.Par
		nextFromLeft := next != t.nilNode && next.Left == x
		if fromLeft {
			x.Balance++
		} else {
			x.Balance--
		}
		switch {
		case x.Balance == -1 || x.Balance == 1:
			return // height unchanged, done
		case x.Balance == 0:
			// this subtree's height shrank by one, keep retracing upward
		default: // -2 or 2
			newSub := t.rebalance(x)
			if newSub.Balance != 0 {
				return // rotation absorbed the height change
			}
			// newSub's height is one less than x's was: keep retracing
		}
		fromLeft = nextFromLeft
		x = next
	}
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
// sizes are tracked unconditionally by the shared bst primitives, so
// order-statistic operations are always available.
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
func (t *Tree[K, V]) Rank(key K) int {
	return bst.Rank(t.root, t.nilNode, t.cmp, key)
}

// Height reports the tree's height (0 for an empty tree), computed by
// walking down always taking the taller child; exposed mainly for testing
// the AVL invariant.
func (t *Tree[K, V]) Height() int {
	h := 0
	for n := t.root; n != t.nilNode; {
		h++
		if n.Balance < 0 {
			n = n.Left
		} else if n.Balance > 0 {
			n = n.Right
		} else if n.Left != t.nilNode {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return h
}
