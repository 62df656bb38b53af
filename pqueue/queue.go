package pqueue

// Comparator reports the strict weak order between a and b: negative if
// a < b, zero if equal, positive if a > b.
type Comparator[T any] func(a, b T) int

// Queue is the minimal surface every priority queue in this package
// implements.
type Queue[T any] interface {
	// Push inserts val.
	Push(val T)

	// Top returns the smallest element without removing it.
	Top() (T, bool)

	// Pop removes and returns the smallest element.
	Pop() (T, bool)

	// Len reports the number of stored elements.
	Len() int

	// Empty reports whether the queue holds no elements.
	Empty() bool
}

// Mergeable is implemented by queues that can merge another queue of the
// same concrete type in sublinear time.
type Mergeable[T any] interface {
	Queue[T]

	// Meld absorbs other's elements, leaving other empty.
	Meld(other Queue[T])
}

// DecreaseKeyer is implemented by queues offering an opaque per-element
// handle that supports decreasing an element's key in place.
type DecreaseKeyer[T any] interface {
	Queue[T]

	// DecreaseKey lowers the element identified by handle to newVal, which
	// must compare less than or equal to its current value.
	DecreaseKey(handle any, newVal T) error
}
