package trie_test

import (
	"fmt"

	"github.com/arborio/arborio/trie"
)

// ExampleTrie_WordsWithPrefix demonstrates prefix lookup in lexicographic
// order.
func ExampleTrie_WordsWithPrefix() {
	t := trie.New()
	for _, w := range []string{"car", "cart", "cat", "dog"} {
		t.Insert(w)
	}

	fmt.Println(t.WordsWithPrefix("ca"))
	// Output:
	// [car cart cat]
}
