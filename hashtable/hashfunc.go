package hashtable

import "github.com/dolthub/maphash"

// HashFunc computes a 64-bit digest for a key. Implementations need not be
// cryptographically strong, only well-distributed and, for the default,
// randomized per process to resist hash-flooding.
type HashFunc[K comparable] func(K) uint64

// defaultHashFunc returns a seeded general-purpose hasher for any
// comparable K, built on dolthub/maphash so callers get a fast,
// DoS-resistant default without hand-rolling one (the standard library's
// hash/maphash only hashes bytes/strings directly).
func defaultHashFunc[K comparable]() HashFunc[K] {
	h := maphash.NewHasher[K]()
	return func(k K) uint64 { return h.Hash(k) }
}
