package graphalgo

import "github.com/arborio/arborio/graph"

// Visitor receives the three traversal events DFS can invoke: Pre fires the
// first time a node is discovered, Arc fires only for tree arcs — those
// whose far endpoint has not yet been visited — right before that
// endpoint is recursed into, and Post fires after a node's entire subtree
// has been explored. Any hook may abort the walk by returning false; a nil
// hook is skipped.
type Visitor[N, A any] struct {
	Pre  func(n *graph.Node[N, A]) bool
	Arc  func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool
	Post func(n *graph.Node[N, A]) bool
}

// DFS walks every node reachable from start, depth-first, following only
// arcs that pass filter. It reports whether the walk ran to completion;
// false means a hook aborted it. Flags touched during the walk
// (graph.FlagDepthFirst on nodes) are cleared again before DFS returns.
func DFS[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], visitor Visitor[N, A]) (bool, error) {
	if start == nil {
		return false, ErrNilSource
	}
	completed := true
	var touched []*graph.Node[N, A]

	var walk func(n *graph.Node[N, A])
	walk = func(n *graph.Node[N, A]) {
		n.SetFlag(graph.FlagDepthFirst)
		touched = append(touched, n)
		if visitor.Pre != nil && !visitor.Pre(n) {
			completed = false
			return
		}
		eachNeighbor(g, n, filter, func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			if next.HasFlag(graph.FlagDepthFirst) {
				return true
			}
			if visitor.Arc != nil && !visitor.Arc(a, next) {
				completed = false
				return false
			}
			walk(next)
			return completed
		})
		if !completed {
			return
		}
		if visitor.Post != nil && !visitor.Post(n) {
			completed = false
		}
	}
	walk(start)

	for _, n := range touched {
		n.ClearFlag(graph.FlagDepthFirst)
	}
	return completed, nil
}
