package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"

	"github.com/arborio/arborio/trie"
)

func TestInsertAndContains(t *testing.T) {
	tr := trie.New()
	assert.True(t, tr.Insert("cat"))
	assert.True(t, tr.Insert("car"))
	assert.True(t, tr.Insert("cart"))
	assert.False(t, tr.Insert("cat"))

	assert.True(t, tr.Contains("cat"))
	assert.True(t, tr.Contains("car"))
	assert.True(t, tr.Contains("cart"))
	assert.False(t, tr.Contains("ca"))
	assert.False(t, tr.Contains("dog"))
	assert.Equal(t, 3, tr.Len())
}

func TestRemovePrunesDeadNodes(t *testing.T) {
	tr := trie.New()
	tr.Insert("cat")
	tr.Insert("cats")

	assert.True(t, tr.Remove("cats"))
	assert.False(t, tr.Contains("cats"))
	assert.True(t, tr.Contains("cat"))
	assert.Equal(t, 1, tr.Len())

	assert.True(t, tr.Remove("cat"))
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.WordsWithPrefix(""))
}

func TestRemoveMissingWordReturnsFalse(t *testing.T) {
	tr := trie.New()
	tr.Insert("cat")
	assert.False(t, tr.Remove("dog"))
	assert.False(t, tr.Remove("ca"))
	assert.Equal(t, 1, tr.Len())
}

func TestWordsWithPrefixLexicographicOrder(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"bat", "ball", "bar", "cat", "car"} {
		tr.Insert(w)
	}
	assert.Equal(t, []string{"ball", "bar", "bat"}, tr.WordsWithPrefix("b"))
	assert.Equal(t, []string{"car", "cat"}, tr.WordsWithPrefix("c"))
	assert.Nil(t, tr.WordsWithPrefix("z"))
}

func TestWordsWithPrefixEmptyEnumeratesAll(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"b", "a", "c"} {
		tr.Insert(w)
	}
	assert.Equal(t, []string{"a", "b", "c"}, tr.WordsWithPrefix(""))
}

func TestWithNormalizerTreatsCanonicallyEquivalentFormsAsIdentical(t *testing.T) {
	tr := trie.New(trie.WithNormalizer(norm.NFC))

	// "cafe" followed by a combining acute accent (U+0301) normalizes
	// under NFC to the same byte sequence as the precomposed U+00E9 form.
	decomposed := "café"
	precomposed := "café"
	assert.NotEqual(t, decomposed, precomposed)

	assert.True(t, tr.Insert(decomposed))
	assert.True(t, tr.Contains(precomposed))
	assert.False(t, tr.Insert(precomposed))
	assert.Equal(t, 1, tr.Len())
}
