// Package hashtable implements three hash-table substrates over comparable
// keys: Chained (separate chaining via dlist buckets), OpenAddressed
// (double hashing with EMPTY/BUSY/DELETED slot tags), and Linear (linear
// hashing with an incrementally growing bucket array and a split pointer).
// All three resize based on load factor rather than a fixed capacity, and
// default to a dolthub/maphash-backed hash function when none is supplied.
package hashtable
