package pqueue

import "github.com/arborio/arborio/vector"

// BinaryHeap is an array-backed binary min-heap.
//
// Complexity: Push/Pop are O(log n); Top is O(1).
type BinaryHeap[T any] struct {
	data *vector.Vector[T]
	cmp  Comparator[T]
}

// NewBinaryHeap returns an empty binary heap ordered by cmp.
func NewBinaryHeap[T any](cmp Comparator[T]) *BinaryHeap[T] {
	return &BinaryHeap[T]{data: vector.New[T](), cmp: cmp}
}

// Len reports the number of stored elements.
func (h *BinaryHeap[T]) Len() int { return h.data.Len() }

// Empty reports whether h holds no elements.
func (h *BinaryHeap[T]) Empty() bool { return h.data.Len() == 0 }

func (h *BinaryHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.data.At(i), h.data.At(parent)) >= 0 {
			return
		}
		h.data.Swap(i, parent)
		i = parent
	}
}

func (h *BinaryHeap[T]) siftDown(i int) {
	n := h.data.Len()
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.cmp(h.data.At(l), h.data.At(smallest)) < 0 {
			smallest = l
		}
		if r < n && h.cmp(h.data.At(r), h.data.At(smallest)) < 0 {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.data.Swap(i, smallest)
		i = smallest
	}
}

// Push inserts val.
func (h *BinaryHeap[T]) Push(val T) {
	h.data.PushBack(val)
	h.siftUp(h.data.Len() - 1)
}

// Top returns the smallest element without removing it.
func (h *BinaryHeap[T]) Top() (T, bool) {
	if h.data.Len() == 0 {
		var zero T
		return zero, false
	}
	return h.data.At(0), true
}

// Pop removes and returns the smallest element.
func (h *BinaryHeap[T]) Pop() (T, bool) {
	n := h.data.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	top := h.data.At(0)
	last, _ := h.data.PopBack()
	if h.data.Len() > 0 {
		h.data.Set(0, last)
		h.siftDown(0)
	}
	return top, true
}
