package ordtree_test

import (
	"cmp"
	"fmt"

	"github.com/arborio/arborio/ordtree"
)

// ExampleSet demonstrates a backend-agnostic ordered set: keys come back
// out in ascending order regardless of which balanced tree backs it.
func ExampleSet() {
	s := ordtree.NewSet[int](cmp.Compare[int], ordtree.WithBackend(ordtree.AVL))
	for _, v := range []int{5, 1, 9, 3, 7} {
		s.Add(v)
	}

	s.Each(func(k int) bool {
		fmt.Println(k)
		return true
	})
	// Output:
	// 1
	// 3
	// 5
	// 7
	// 9
}

// ExampleMap_rankAndSelect demonstrates order-statistic access on an
// ordered map: At(pos) and PositionOf(key) are inverses of each other.
func ExampleMap_rankAndSelect() {
	m := ordtree.NewMap[string, int](cmp.Compare[string], ordtree.WithBackend(ordtree.RB))
	m.Put("banana", 2)
	m.Put("apple", 1)
	m.Put("cherry", 3)

	k, _, _ := m.At(1)
	fmt.Println(k, m.PositionOf("cherry"))
	// Output:
	// banana 2
}
