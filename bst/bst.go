package bst

import "github.com/arborio/arborio/bstnode"

// Node is a convenience alias so backend packages do not each need to
// import bstnode directly alongside bst.
type Node[K, V any] = bstnode.Node[K, V]

// Comparator reports the strict weak order between a and b.
type Comparator[K any] func(a, b K) int

func size[K, V any](n, nilNode *Node[K, V]) int {
	if n == nilNode {
		return 0
	}
	return n.Size
}

func fixSize[K, V any](n, nilNode *Node[K, V]) {
	if n != nilNode {
		n.Size = 1 + size(n.Left, nilNode) + size(n.Right, nilNode)
	}
}

// RotateLeft performs a left rotation around x, returning the node that
// takes x's former position. Subtree sizes are kept consistent; priority
// and color are untouched since they travel with the node, not the
// position.
func RotateLeft[K, V any](x, nilNode *Node[K, V]) *Node[K, V] {
	y := x.Right
	x.Right = y.Left
	if y.Left != nilNode {
		y.Left.Par = x
	}
	y.Par = x.Par
	y.Left = x
	x.Par = y
	fixSize(x, nilNode)
	fixSize(y, nilNode)
	return y
}

// RotateRight performs a right rotation around x, returning the node that
// takes x's former position.
func RotateRight[K, V any](x, nilNode *Node[K, V]) *Node[K, V] {
	y := x.Left
	x.Left = y.Right
	if y.Right != nilNode {
		y.Right.Par = x
	}
	y.Par = x.Par
	y.Right = x
	x.Par = y
	fixSize(x, nilNode)
	fixSize(y, nilNode)
	return y
}

// Search descends from root following cmp, returning the node holding key
// or nilNode if absent. O(height).
func Search[K, V any](root, nilNode *Node[K, V], cmp Comparator[K], key K) *Node[K, V] {
	x := root
	for x != nilNode {
		c := cmp(key, x.Key)
		switch {
		case c < 0:
			x = x.Left
		case c > 0:
			x = x.Right
		default:
			return x
		}
	}
	return nilNode
}

// InsertLeaf descends to the insertion point for key and attaches a new
// node (constructed by newNode) as a leaf child. It updates Size along the
// descent path for every ancestor. If key is already present and allowDup
// is false, it returns (nil, existing, false) without modifying the
// tree; if allowDup is true, equal keys are routed to the right subtree.
//
// Callers are responsible for any post-insertion rebalancing (AVL rotation
// walk, RB recoloring, treap bubble-up, ...); InsertLeaf only performs the
// plain BST attachment.
func InsertLeaf[K, V any](
	root, nilNode *Node[K, V],
	cmp Comparator[K],
	key K, val V,
	allowDup bool,
	newNode func(key K, val V) *Node[K, V],
) (inserted *Node[K, V], existing *Node[K, V], isNew bool) {
	if root == nilNode {
		n := newNode(key, val)
		n.Left, n.Right, n.Par = nilNode, nilNode, nilNode
		n.Size = 1
		return n, nilNode, true
	}
	x := root
	for {
		c := cmp(key, x.Key)
		if c == 0 && !allowDup {
			// undo the Size increments already made on x's ancestors
			for p := x.Par; p != nilNode; p = p.Par {
				p.Size--
			}
			return nil, x, false
		}
		x.Size++
		if c < 0 {
			if x.Left == nilNode {
				n := newNode(key, val)
				n.Left, n.Right, n.Par = nilNode, nilNode, x
				n.Size = 1
				x.Left = n
				return n, nilNode, true
			}
			x = x.Left
		} else {
			if x.Right == nilNode {
				n := newNode(key, val)
				n.Left, n.Right, n.Par = nilNode, nilNode, x
				n.Size = 1
				x.Right = n
				return n, nilNode, true
			}
			x = x.Right
		}
	}
}

// Min returns the leftmost node of the subtree rooted at x.
func Min[K, V any](x, nilNode *Node[K, V]) *Node[K, V] {
	if x == nilNode {
		return nilNode
	}
	for x.Left != nilNode {
		x = x.Left
	}
	return x
}

// Max returns the rightmost node of the subtree rooted at x.
func Max[K, V any](x, nilNode *Node[K, V]) *Node[K, V] {
	if x == nilNode {
		return nilNode
	}
	for x.Right != nilNode {
		x = x.Right
	}
	return x
}

// InOrder visits every node of the subtree rooted at x in non-decreasing
// key order, stopping early if visit returns false. Returns false if
// visit aborted the traversal.
func InOrder[K, V any](x, nilNode *Node[K, V], visit func(*Node[K, V]) bool) bool {
	if x == nilNode {
		return true
	}
	if !InOrder(x.Left, nilNode, visit) {
		return false
	}
	if !visit(x) {
		return false
	}
	return InOrder(x.Right, nilNode, visit)
}

// Select returns the node at 0-indexed in-order position pos within the
// subtree rooted at root, using cached subtree sizes. O(log n) on balanced
// ranked trees.
func Select[K, V any](root, nilNode *Node[K, V], pos int) (*Node[K, V], error) {
	if pos < 0 || pos >= size(root, nilNode) {
		return nil, ErrOutOfRange
	}
	x := root
	for {
		left := size(x.Left, nilNode)
		switch {
		case pos < left:
			x = x.Left
		case pos == left:
			return x, nil
		default:
			pos -= left + 1
			x = x.Right
		}
	}
}

// Rank returns the 0-indexed position key would occupy in the subtree
// rooted at root: the position of key if present, otherwise the position
// of the first key strictly greater than it.
func Rank[K, V any](root, nilNode *Node[K, V], cmp Comparator[K], key K) int {
	x := root
	rank := 0
	for x != nilNode {
		c := cmp(key, x.Key)
		if c <= 0 {
			x = x.Left
		} else {
			rank += size(x.Left, nilNode) + 1
			x = x.Right
		}
	}
	return rank
}

// SplitAtKey splits the subtree rooted at root into (L, R) such that L
// holds every key < key and R holds every key >= key. The input tree is
// consumed: node pointers are redistributed, not copied. O(h).
func SplitAtKey[K, V any](root, nilNode *Node[K, V], cmp Comparator[K], key K) (L, R *Node[K, V]) {
	if root == nilNode {
		return nilNode, nilNode
	}
	root.Par = nilNode
	if cmp(root.Key, key) < 0 {
		l, r := SplitAtKey(root.Right, nilNode, cmp, key)
		root.Right = l
		if l != nilNode {
			l.Par = root
		}
		fixSize(root, nilNode)
		return root, r
	}
	l, r := SplitAtKey(root.Left, nilNode, cmp, key)
	root.Left = r
	if r != nilNode {
		r.Par = root
	}
	fixSize(root, nilNode)
	return l, root
}

// SplitAtPos splits the subtree rooted at root by in-order position rather
// than by key: L receives the first pos elements, R the rest. Used by
// ranked backends' positional split_at.
func SplitAtPos[K, V any](root, nilNode *Node[K, V], pos int) (L, R *Node[K, V]) {
	if root == nilNode {
		return nilNode, nilNode
	}
	root.Par = nilNode
	left := size(root.Left, nilNode)
	if pos <= left {
		l, r := SplitAtPos(root.Left, nilNode, pos)
		root.Left = r
		if r != nilNode {
			r.Par = root
		}
		fixSize(root, nilNode)
		return l, root
	}
	l, r := SplitAtPos(root.Right, nilNode, pos-left-1)
	root.Right = l
	if l != nilNode {
		l.Par = root
	}
	fixSize(root, nilNode)
	return root, r
}

// Join concatenates L and R into a single subtree, requiring
// max(L) < min(R). This is the unbalanced variant: it simply hangs the
// shorter-looking side (by cached size) below the other's extreme node, so
// it is O(h) and does not itself guarantee balance — treap and randtree
// provide their own priority/randomized Join for a balance guarantee.
func Join[K, V any](L, R, nilNode *Node[K, V]) *Node[K, V] {
	if L == nilNode {
		return R
	}
	if R == nilNode {
		return L
	}
	if size(L, nilNode) >= size(R, nilNode) {
		m := Max(L, nilNode)
		m.Right = R
		R.Par = m
		for p := m; p != nilNode; p = p.Par {
			fixSize(p, nilNode)
		}
		return L
	}
	m := Min(R, nilNode)
	m.Left = L
	L.Par = m
	for p := m; p != nilNode; p = p.Par {
		fixSize(p, nilNode)
	}
	return R
}

// FixSizeUpward recomputes Size for x and every ancestor, stopping at
// nilNode. Backends call this after structural changes (rotation chains,
// splices) that bst's own helpers did not already account for.
func FixSizeUpward[K, V any](x, nilNode *Node[K, V]) {
	for n := x; n != nilNode; n = n.Par {
		fixSize(n, nilNode)
	}
}

// Size returns the cached subtree size of x (0 for nilNode).
func Size[K, V any](x, nilNode *Node[K, V]) int { return size(x, nilNode) }
