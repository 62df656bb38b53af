package trie

import "golang.org/x/text/unicode/norm"

type node struct {
	children map[byte]*node
	end      bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is a multi-way prefix tree over bytes. The zero value is not
// usable; construct with New.
type Trie struct {
	root *node
	size int
	form norm.Form
	norm bool
}

// Option configures a Trie at construction.
type Option func(*Trie)

// WithNormalizer runs every word through f.String before it reaches the
// trie, so Insert/Contains/Remove/WordsWithPrefix treat Unicode strings
// that normalize to the same form as identical keys.
func WithNormalizer(f norm.Form) Option {
	return func(t *Trie) {
		t.form = f
		t.norm = true
	}
}

// New returns an empty Trie.
func New(opts ...Option) *Trie {
	t := &Trie{root: newNode()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Trie) key(word string) string {
	if t.norm {
		return t.form.String(word)
	}
	return word
}

// Insert adds word to the trie. Inserting a word already present is a
// no-op. Returns true if the word was newly added.
func (t *Trie) Insert(word string) bool {
	word = t.key(word)
	cur := t.root
	for i := 0; i < len(word); i++ {
		b := word[i]
		child, ok := cur.children[b]
		if !ok {
			child = newNode()
			cur.children[b] = child
		}
		cur = child
	}
	if cur.end {
		return false
	}
	cur.end = true
	t.size++
	return true
}

// Contains reports whether word was previously inserted.
func (t *Trie) Contains(word string) bool {
	n := t.walk(t.key(word))
	return n != nil && n.end
}

// Remove deletes word from the trie if present, returning true if it was
// removed. Nodes left with no children and no end-of-word flag after the
// removal are pruned back toward the root.
func (t *Trie) Remove(word string) bool {
	word = t.key(word)
	path := make([]*node, 0, len(word)+1)
	path = append(path, t.root)
	cur := t.root
	for i := 0; i < len(word); i++ {
		child, ok := cur.children[word[i]]
		if !ok {
			return false
		}
		path = append(path, child)
		cur = child
	}
	if !cur.end {
		return false
	}
	cur.end = false
	t.size--

	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if n.end || len(n.children) > 0 {
			break
		}
		delete(path[i-1].children, word[i-1])
	}
	return true
}

// WordsWithPrefix returns every inserted word that starts with prefix, in
// lexicographic order. An empty prefix enumerates the whole trie.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	prefix = t.key(prefix)
	start := t.walk(prefix)
	if start == nil {
		return nil
	}
	var out []string
	collect(start, prefix, &out)
	return out
}

func collect(n *node, prefix string, out *[]string) {
	if n.end {
		*out = append(*out, prefix)
	}
	keys := make([]byte, 0, len(n.children))
	for b := range n.children {
		keys = append(keys, b)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	for _, b := range keys {
		collect(n.children[b], prefix+string(b), out)
	}
}

func (t *Trie) walk(prefix string) *node {
	cur := t.root
	for i := 0; i < len(prefix); i++ {
		child, ok := cur.children[prefix[i]]
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// Len reports the number of distinct words currently in the trie.
func (t *Trie) Len() int { return t.size }
