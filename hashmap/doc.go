// Package hashmap provides an unordered Map[K,V] built on
// hashtable.Chained, mirroring the relationship hashset has with hashtable
// and ordtree has with the tree backends. The backend is fixed: the
// open-addressed and linear-hashing tables cannot be selected.
package hashmap
