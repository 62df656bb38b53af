package pqueue_test

import (
	"cmp"
	"fmt"

	"github.com/arborio/arborio/pqueue"
)

// ExampleBinaryHeap demonstrates that values come back out in ascending
// order regardless of push order.
func ExampleBinaryHeap() {
	h := pqueue.NewBinaryHeap(cmp.Compare[int])
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}

	for !h.Empty() {
		v, _ := h.Pop()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
	// 4
	// 5
}
