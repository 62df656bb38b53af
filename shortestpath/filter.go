package shortestpath

import "github.com/arborio/arborio/graph"

// Filter decides whether an arc participates in a shortest-path search. A
// nil Filter is treated as accept-all.
type Filter[N, A any] func(a *graph.Arc[N, A]) bool

func accept[N, A any](f Filter[N, A], a *graph.Arc[N, A]) bool {
	return f == nil || f(a)
}

// Weight extracts a relaxation weight from an arc's payload.
type Weight[A any] func(info A) int64

func eachNeighbor[N, A any](g graph.Graph[N, A], n *graph.Node[N, A], f Filter[N, A], visit func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool) {
	g.Incident(n, func(a *graph.Arc[N, A]) bool {
		if !accept(f, a) {
			return true
		}
		if a.Directed() && g.Src(a) != n {
			return true
		}
		next, err := g.ConnectedNode(a, n)
		if err != nil {
			return true
		}
		return visit(a, next)
	})
}
