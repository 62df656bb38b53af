package pqueue

type binoNode[T any] struct {
	val           T
	degree        int
	parent, child *binoNode[T]
	sibling       *binoNode[T]
}

// BinomialHeap is a forest of heap-ordered binomial trees, one per set bit
// of the element count, giving O(log n) Push/Pop/Meld.
//
// DecreaseKey's handle is valid for exactly one call: the classical
// value-swap bubble-up used here moves the lowered value up through
// ancestor nodes rather than relocating the node object itself, so after
// DecreaseKey returns, the smallest-value node in that path is an
// ancestor of the original handle, not the handle itself. Callers that
// need repeated decreases of the same logical element should use
// FibonacciHeap instead, whose handle stays valid across calls.
type BinomialHeap[T any] struct {
	head *binoNode[T]
	cmp  Comparator[T]
	n    int
}

// NewBinomialHeap returns an empty binomial heap ordered by cmp.
func NewBinomialHeap[T any](cmp Comparator[T]) *BinomialHeap[T] {
	return &BinomialHeap[T]{cmp: cmp}
}

// Len reports the number of stored elements.
func (h *BinomialHeap[T]) Len() int { return h.n }

// Empty reports whether h holds no elements.
func (h *BinomialHeap[T]) Empty() bool { return h.n == 0 }

func mergeRootLists[T any](a, b *binoNode[T], cmp Comparator[T]) *binoNode[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	var head, tail *binoNode[T]
	if a.degree <= b.degree {
		head, a = a, a.sibling
	} else {
		head, b = b, b.sibling
	}
	tail = head
	for a != nil && b != nil {
		if a.degree <= b.degree {
			tail.sibling, a = a, a.sibling
		} else {
			tail.sibling, b = b, b.sibling
		}
		tail = tail.sibling
	}
	if a != nil {
		tail.sibling = a
	} else {
		tail.sibling = b
	}
	return head
}

func linkBino[T any](child, parent *binoNode[T]) {
	child.parent = parent
	child.sibling = parent.child
	parent.child = child
	parent.degree++
}

func unionBino[T any](a, b *binoNode[T], cmp Comparator[T]) *binoNode[T] {
	merged := mergeRootLists(a, b, cmp)
	if merged == nil {
		return nil
	}
	var prev *binoNode[T]
	curr := merged
	next := curr.sibling
	for next != nil {
		sameDegree := curr.degree == next.degree
		nextNextSame := next.sibling != nil && next.sibling.degree == curr.degree
		switch {
		case !sameDegree || nextNextSame:
			prev, curr = curr, next
		case cmp(curr.val, next.val) <= 0:
			curr.sibling = next.sibling
			linkBino(next, curr)
		default:
			if prev == nil {
				merged = next
			} else {
				prev.sibling = next
			}
			linkBino(curr, next)
			curr = next
		}
		next = curr.sibling
	}
	return merged
}

// Push inserts val.
func (h *BinomialHeap[T]) Push(val T) { h.PushHandle(val) }

// PushHandle inserts val and returns an opaque handle usable with
// DecreaseKey.
func (h *BinomialHeap[T]) PushHandle(val T) any {
	n := &binoNode[T]{val: val}
	h.head = unionBino(h.head, n, h.cmp)
	h.n++
	return n
}

func (h *BinomialHeap[T]) findMinPrev() (prev, min *binoNode[T]) {
	if h.head == nil {
		return nil, nil
	}
	min = h.head
	curr := h.head.sibling
	for curr != nil {
		if h.cmp(curr.val, min.val) < 0 {
			prev, min = prevOf(h.head, curr), curr
		}
		curr = curr.sibling
	}
	return prev, min
}

func prevOf[T any](head, target *binoNode[T]) *binoNode[T] {
	if head == target {
		return nil
	}
	for n := head; n != nil; n = n.sibling {
		if n.sibling == target {
			return n
		}
	}
	return nil
}

// Top returns the smallest element without removing it.
func (h *BinomialHeap[T]) Top() (T, bool) {
	_, min := h.findMinPrev()
	if min == nil {
		var zero T
		return zero, false
	}
	return min.val, true
}

// Pop removes and returns the smallest element.
func (h *BinomialHeap[T]) Pop() (T, bool) {
	prev, min := h.findMinPrev()
	if min == nil {
		var zero T
		return zero, false
	}
	if prev == nil {
		h.head = min.sibling
	} else {
		prev.sibling = min.sibling
	}
	var childHead *binoNode[T]
	for c := min.child; c != nil; {
		next := c.sibling
		c.sibling = childHead
		c.parent = nil
		childHead = c
		c = next
	}
	h.head = unionBino(h.head, childHead, h.cmp)
	h.n--
	return min.val, true
}

// Meld absorbs other's elements in O(log n), leaving other empty. other
// must be a *BinomialHeap[T]; it panics otherwise.
func (h *BinomialHeap[T]) Meld(other Queue[T]) {
	o := other.(*BinomialHeap[T])
	h.head = unionBino(h.head, o.head, h.cmp)
	h.n += o.n
	o.head, o.n = nil, 0
}

// DecreaseKey lowers the element identified by handle (the *binoNode[T]
// returned by PushHandle) to newVal by bubbling it toward the root, swapping
// stored values along the way. See the BinomialHeap doc comment for the
// resulting handle-validity caveat.
func (h *BinomialHeap[T]) DecreaseKey(handle any, newVal T) error {
	x, ok := handle.(*binoNode[T])
	if !ok || x == nil {
		return ErrInvalidHandle
	}
	if h.cmp(newVal, x.val) > 0 {
		return ErrIncreasedKey
	}
	x.val = newVal
	for x.parent != nil && h.cmp(x.val, x.parent.val) < 0 {
		x.val, x.parent.val = x.parent.val, x.val
		x = x.parent
	}
	return nil
}
