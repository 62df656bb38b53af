// Package shortestpath implements three shortest-path engines over
// graph.Graph: Dijkstra (lazy-deletion binary-heap variant and a true
// decrease-key variant riding pqueue.FibonacciHeap or pqueue.PairingHeap),
// Bellman-Ford (plain relaxation and an SPFA queue-driven variant, both
// with negative-cycle detection), and Floyd-Warshall for dense all-pairs
// distances.
//
// Every engine exposes a distance-only result and, when the caller asks
// for it, the data to reconstruct any shortest path: a predecessor-arc map
// for the single-source engines and a successor table for Floyd-Warshall.
package shortestpath
