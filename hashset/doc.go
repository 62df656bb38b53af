// Package hashset provides an unordered Set[K] built on hashtable.Chained,
// mirroring the relationship ordtree has with its tree backends. The
// backend is fixed: the open-addressed and linear-hashing tables cannot be
// selected.
package hashset
