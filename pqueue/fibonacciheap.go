package pqueue

type fibNode[T any] struct {
	val         T
	degree      int
	mark        bool
	parent      *fibNode[T]
	child       *fibNode[T]
	left, right *fibNode[T]
}

// FibonacciHeap is a collection of heap-ordered trees linked into a
// circular root list, giving O(1) amortized Push/Meld/DecreaseKey and
// O(log n) amortized Pop. Unlike BinomialHeap, a handle returned by
// PushHandle stays valid across repeated DecreaseKey calls: the node
// object itself is relocated (cut from its parent) rather than its value
// being bubbled through ancestors.
type FibonacciHeap[T any] struct {
	min *fibNode[T]
	cmp Comparator[T]
	n   int
}

// NewFibonacciHeap returns an empty Fibonacci heap ordered by cmp.
func NewFibonacciHeap[T any](cmp Comparator[T]) *FibonacciHeap[T] {
	return &FibonacciHeap[T]{cmp: cmp}
}

// Len reports the number of stored elements.
func (h *FibonacciHeap[T]) Len() int { return h.n }

// Empty reports whether h holds no elements.
func (h *FibonacciHeap[T]) Empty() bool { return h.n == 0 }

func singletonFib[T any](val T) *fibNode[T] {
	n := &fibNode[T]{val: val}
	n.left, n.right = n, n
	return n
}

// concatRootLists splices the circular list rooted at b into the circular
// list rooted at a. a and b must each be non-nil.
func concatRootLists[T any](a, b *fibNode[T]) {
	aRight, bLeft := a.right, b.left
	a.right = b
	b.left = a
	aRight.left = bLeft
	bLeft.right = aRight
}

func (h *FibonacciHeap[T]) insertRoot(n *fibNode[T]) {
	if h.min == nil {
		h.min = n
		return
	}
	concatRootLists(h.min, n)
	if h.cmp(n.val, h.min.val) < 0 {
		h.min = n
	}
}

// Push inserts val.
func (h *FibonacciHeap[T]) Push(val T) { h.PushHandle(val) }

// PushHandle inserts val and returns an opaque handle usable with
// DecreaseKey.
func (h *FibonacciHeap[T]) PushHandle(val T) any {
	n := singletonFib(val)
	h.insertRoot(n)
	h.n++
	return n
}

// Top returns the smallest element without removing it.
func (h *FibonacciHeap[T]) Top() (T, bool) {
	if h.min == nil {
		var zero T
		return zero, false
	}
	return h.min.val, true
}

func removeFromSiblingList[T any](n *fibNode[T]) {
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
}

// Pop removes and returns the smallest element.
func (h *FibonacciHeap[T]) Pop() (T, bool) {
	z := h.min
	if z == nil {
		var zero T
		return zero, false
	}
	if z.child != nil {
		c := z.child
		for {
			next := c.right
			c.parent = nil
			c = next
			if c == z.child {
				break
			}
		}
		concatRootLists(z, z.child)
	}
	// candidate is z's neighbor in the combined (root + spliced-children)
	// list, captured before z is unlinked; it equals z itself only if no
	// children were spliced in and z had no other root siblings.
	candidate := z.right
	removeFromSiblingList(z)
	if candidate == z {
		h.min = nil
	} else {
		h.min = candidate
		h.consolidate()
	}
	h.n--
	return z.val, true
}

func (h *FibonacciHeap[T]) rootSlice() []*fibNode[T] {
	if h.min == nil {
		return nil
	}
	var roots []*fibNode[T]
	n := h.min
	for {
		roots = append(roots, n)
		n = n.right
		if n == h.min {
			break
		}
	}
	return roots
}

func (h *FibonacciHeap[T]) link(child, parent *fibNode[T]) {
	removeFromSiblingList(child)
	child.parent = parent
	if parent.child == nil {
		parent.child = child
	} else {
		concatRootLists(parent.child, child)
	}
	parent.degree++
	child.mark = false
}

func (h *FibonacciHeap[T]) consolidate() {
	roots := h.rootSlice()
	maxDegree := 2
	for d := h.n; d > 0; d >>= 1 {
		maxDegree++
	}
	table := make([]*fibNode[T], maxDegree+1)
	for _, x := range roots {
		for x.degree < len(table) && table[x.degree] != nil {
			y := table[x.degree]
			if h.cmp(y.val, x.val) < 0 {
				x, y = y, x
			}
			table[x.degree] = nil
			h.link(y, x) // y becomes a child of x; x.degree increments inside link
			if x.degree >= len(table) {
				grown := make([]*fibNode[T], x.degree+1)
				copy(grown, table)
				table = grown
			}
		}
		if x.degree >= len(table) {
			grown := make([]*fibNode[T], x.degree+1)
			copy(grown, table)
			table = grown
		}
		table[x.degree] = x
	}
	h.min = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		x.left, x.right = x, x
		h.insertRoot(x)
	}
}

func (h *FibonacciHeap[T]) cut(x, y *fibNode[T]) {
	if y.child == x {
		if x.right == x {
			y.child = nil
		} else {
			y.child = x.right
		}
	}
	removeFromSiblingList(x)
	y.degree--
	x.parent = nil
	x.mark = false
	h.insertRoot(x)
}

func (h *FibonacciHeap[T]) cascadingCut(y *fibNode[T]) {
	p := y.parent
	if p == nil {
		return
	}
	if !y.mark {
		y.mark = true
		return
	}
	h.cut(y, p)
	h.cascadingCut(p)
}

// DecreaseKey lowers the element identified by handle (the *fibNode[T]
// returned by PushHandle) to newVal.
func (h *FibonacciHeap[T]) DecreaseKey(handle any, newVal T) error {
	x, ok := handle.(*fibNode[T])
	if !ok || x == nil {
		return ErrInvalidHandle
	}
	if h.cmp(newVal, x.val) > 0 {
		return ErrIncreasedKey
	}
	x.val = newVal
	y := x.parent
	if y != nil && h.cmp(x.val, y.val) < 0 {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if h.cmp(x.val, h.min.val) < 0 {
		h.min = x
	}
	return nil
}

// Meld absorbs other's elements in O(1), leaving other empty. other must
// be a *FibonacciHeap[T]; it panics otherwise.
func (h *FibonacciHeap[T]) Meld(other Queue[T]) {
	o := other.(*FibonacciHeap[T])
	switch {
	case o.min == nil:
	case h.min == nil:
		h.min = o.min
	default:
		concatRootLists(h.min, o.min)
		if h.cmp(o.min.val, h.min.val) < 0 {
			h.min = o.min
		}
	}
	h.n += o.n
	o.min, o.n = nil, 0
}
