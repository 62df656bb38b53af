// Package pqueue implements four priority-queue structures sharing a
// common minimal surface: BinaryHeap (array-backed, via vector),
// BinomialHeap, FibonacciHeap and PairingHeap. All order by a Comparator
// supplied at construction, so the "priority" is whatever the comparator
// says is smallest. Binomial, Fibonacci and pairing heaps additionally
// support DecreaseKey through an opaque per-element handle returned by
// PushHandle, the operation that makes them the conventional choice behind
// a decrease-key Dijkstra.
package pqueue
