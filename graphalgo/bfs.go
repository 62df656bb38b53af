package graphalgo

import "github.com/arborio/arborio/graph"

// BFSResult holds the outcome of a breadth-first traversal from one source.
type BFSResult[N, A any] struct {
	Order  []*graph.Node[N, A]
	Dist   map[*graph.Node[N, A]]int
	Parent map[*graph.Node[N, A]]*graph.Node[N, A]
}

// BFS computes unweighted shortest-path distances from start to every node
// reachable through arcs that pass filter.
func BFS[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A]) (*BFSResult[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	res := &BFSResult[N, A]{
		Dist:   map[*graph.Node[N, A]]int{start: 0},
		Parent: map[*graph.Node[N, A]]*graph.Node[N, A]{start: nil},
	}
	start.SetFlag(graph.FlagBreadthFirst)
	touched := []*graph.Node[N, A]{start}
	queue := []*graph.Node[N, A]{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, n)
		eachNeighbor(g, n, filter, func(_ *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			if next.HasFlag(graph.FlagBreadthFirst) {
				return true
			}
			next.SetFlag(graph.FlagBreadthFirst)
			touched = append(touched, next)
			res.Dist[next] = res.Dist[n] + 1
			res.Parent[next] = n
			queue = append(queue, next)
			return true
		})
	}
	for _, n := range touched {
		n.ClearFlag(graph.FlagBreadthFirst)
	}
	return res, nil
}
