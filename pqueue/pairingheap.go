package pqueue

// pairNode's sibling list is singly linked via next, with a back-pointer
// prev that points either to the left sibling or, for a leftmost child, to
// the parent — the conventional pairing-heap representation that makes
// both child-list concatenation and arbitrary-node removal O(1).
type pairNode[T any] struct {
	val   T
	child *pairNode[T]
	next  *pairNode[T]
	prev  *pairNode[T]
}

// PairingHeap is a self-adjusting heap-ordered multiway tree. Push/Meld
// are O(1); Pop and DecreaseKey are O(log n) amortized.
type PairingHeap[T any] struct {
	root *pairNode[T]
	cmp  Comparator[T]
	n    int
}

// NewPairingHeap returns an empty pairing heap ordered by cmp.
func NewPairingHeap[T any](cmp Comparator[T]) *PairingHeap[T] {
	return &PairingHeap[T]{cmp: cmp}
}

// Len reports the number of stored elements.
func (h *PairingHeap[T]) Len() int { return h.n }

// Empty reports whether h holds no elements.
func (h *PairingHeap[T]) Empty() bool { return h.n == 0 }

// meldPair attaches the root with the larger value as the leftmost child of
// the root with the smaller value, returning the winning root.
func meldPair[T any](a, b *pairNode[T], cmp Comparator[T]) *pairNode[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if cmp(b.val, a.val) < 0 {
		a, b = b, a
	}
	b.next = a.child
	if a.child != nil {
		a.child.prev = b
	}
	b.prev = a
	a.child = b
	return a
}

// Push inserts val.
func (h *PairingHeap[T]) Push(val T) { h.PushHandle(val) }

// PushHandle inserts val and returns an opaque handle usable with
// DecreaseKey.
func (h *PairingHeap[T]) PushHandle(val T) any {
	n := &pairNode[T]{val: val}
	h.root = meldPair(h.root, n, h.cmp)
	h.n++
	return n
}

// Top returns the smallest element without removing it.
func (h *PairingHeap[T]) Top() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}
	return h.root.val, true
}

// mergePairs combines a child list two at a time left to right, then folds
// the resulting list right to left — the standard two-pass merge that
// keeps pairing heaps within a logarithmic amortized bound.
func mergePairs[T any](first *pairNode[T], cmp Comparator[T]) *pairNode[T] {
	if first == nil {
		return nil
	}
	var pairs []*pairNode[T]
	for n := first; n != nil; {
		a := n
		b := a.next
		a.prev, a.next = nil, nil
		if b != nil {
			next := b.next
			b.prev, b.next = nil, nil
			pairs = append(pairs, meldPair(a, b, cmp))
			n = next
		} else {
			pairs = append(pairs, a)
			n = nil
		}
	}
	merged := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		merged = meldPair(pairs[i], merged, cmp)
	}
	return merged
}

// Pop removes and returns the smallest element.
func (h *PairingHeap[T]) Pop() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}
	top := h.root.val
	h.root = mergePairs(h.root.child, h.cmp)
	h.n--
	return top, true
}

// Meld absorbs other's elements in O(1), leaving other empty. other must
// be a *PairingHeap[T]; it panics otherwise.
func (h *PairingHeap[T]) Meld(other Queue[T]) {
	o := other.(*PairingHeap[T])
	h.root = meldPair(h.root, o.root, h.cmp)
	h.n += o.n
	o.root, o.n = nil, 0
}

func detachPair[T any](x *pairNode[T]) {
	if x.prev.child == x {
		x.prev.child = x.next
	} else {
		x.prev.next = x.next
	}
	if x.next != nil {
		x.next.prev = x.prev
	}
	x.prev, x.next = nil, nil
}

// DecreaseKey lowers the element identified by handle (the *pairNode[T]
// returned by PushHandle) to newVal.
func (h *PairingHeap[T]) DecreaseKey(handle any, newVal T) error {
	x, ok := handle.(*pairNode[T])
	if !ok || x == nil {
		return ErrInvalidHandle
	}
	if h.cmp(newVal, x.val) > 0 {
		return ErrIncreasedKey
	}
	x.val = newVal
	if x == h.root {
		return nil
	}
	detachPair(x)
	h.root = meldPair(h.root, x, h.cmp)
	return nil
}
