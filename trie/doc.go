// Package trie implements a multi-way prefix tree over raw bytes. Each
// node holds a sparse map from byte to child and an end-of-word flag;
// common prefixes share nodes automatically by construction. Lookups are
// byte-exact by default; WithNormalizer installs a golang.org/x/text/
// unicode/norm.Form so Insert/Contains/Remove/WordsWithPrefix all run
// against the normalized form of their input, making lookups insensitive
// to Unicode representation differences (e.g. composed vs. decomposed
// accents) without changing the trie's underlying byte-keyed structure.
package trie
