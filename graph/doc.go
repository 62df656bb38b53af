// Package graph implements a directed/undirected graph abstraction behind
// one Graph interface with two interchangeable incidence backends:
// ListGraph (each node's incident arcs form a dlist.List) and ArrayGraph
// (each node's incident arcs live in a swap-with-last dynamic array).
// Both back the same Node/Arc record shapes, so algorithms written against
// Graph never need to know which backend they are walking.
//
// Nodes and arcs each carry a small Flags bitset and one opaque Cookie for
// algorithm scratch state. Neither survives across algorithm calls by
// contract: every traversal or structural algorithm in graphalgo resets the
// bits and cookies it touches both on entry and before returning, so a
// single graph can be reused by one algorithm after another without manual
// cleanup in between.
//
// Iteration order is deterministic: rerunning the same operations
// reproduces the same order. Incident arcs follow insertion order for
// ListGraph always, and for ArrayGraph except where a removal has swapped
// the last incident arc into a freed slot. Nodes and Arcs follow insertion
// order in both backends except where a removal has swapped the last node
// or arc into a freed slot.
//
// This core is single-threaded. No method takes a lock; callers that share
// a Graph across goroutines must serialize their own access.
package graph
