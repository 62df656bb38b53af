package graphalgo

import "github.com/arborio/arborio/graph"

// Filter decides whether an arc participates in a traversal. A nil Filter
// is treated as accept-all.
type Filter[N, A any] func(a *graph.Arc[N, A]) bool

func accept[N, A any](f Filter[N, A], a *graph.Arc[N, A]) bool {
	return f == nil || f(a)
}

// Weight extracts a relaxation weight from an arc's payload. Callers of
// shortestpath and the MST routines in this package supply one matching
// their own arc payload type.
type Weight[A any] func(info A) int64

// eachNeighbor walks the arcs incident to n that pass f, invoking visit
// with the arc and the node reached by crossing it. For a directed arc
// whose source is not n, the arc is skipped (traversal only follows an
// arc in its forward direction).
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
