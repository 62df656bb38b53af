// Package dlist implements an intrusive, circular, doubly-linked list.
//
// A Node[T] carries its own prev/next pointers alongside its payload, so a
// single allocation backs both the element and its linkage — the same
// intrusive-linkage discipline the module uses for hash-chaining buckets
// (hashtable) and List_Graph incidence (graph). A Node is created by a
// List and participates in exactly one circular list of siblings; it is
// never shared between two lists at once. A Node removed from its List is
// not self-linked: its Next and Prev return nil.
package dlist
