package shortestpath

import (
	"github.com/arborio/arborio/graph"
	"github.com/arborio/arborio/pqueue"
)

// Result holds the outcome of a single-source shortest-path computation.
// Dist maps every reached node to its distance from the source; Prev, when
// requested, maps a node to the arc used to reach it on some shortest path.
type Result[N, A any] struct {
	Dist map[*graph.Node[N, A]]int64
	Prev map[*graph.Node[N, A]]*graph.Arc[N, A]
}

func (r *Result[N, A]) path(start, target *graph.Node[N, A], g graph.Graph[N, A]) []*graph.Arc[N, A] {
	if r.Prev == nil {
		return nil
	}
	var path []*graph.Arc[N, A]
	n := target
	for n != start {
		a, ok := r.Prev[n]
		if !ok {
			return nil
		}
		path = append(path, a)
		other, err := g.ConnectedNode(a, n)
		if err != nil {
			return nil
		}
		n = other
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Path reconstructs a shortest path from start to target out of r.Prev,
// nil if target was unreached or r was not built with path tracking.
func (r *Result[N, A]) Path(g graph.Graph[N, A], start, target *graph.Node[N, A]) []*graph.Arc[N, A] {
	return r.path(start, target, g)
}

type dijkstraEntry[N, A any] struct {
	node *graph.Node[N, A]
	dist int64
}

// DijkstraLazy computes shortest distances from start over non-negative
// arc weights using a binary heap with the classical lazy-deletion
// strategy: stale heap entries (superseded by a cheaper relaxation) are
// simply skipped when popped rather than updated in place.
func DijkstraLazy[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], weight Weight[A], withPath bool) (*Result[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	if err := checkNonNegative(g, filter, weight); err != nil {
		return nil, err
	}
	res := &Result[N, A]{Dist: map[*graph.Node[N, A]]int64{start: 0}}
	if withPath {
		res.Prev = map[*graph.Node[N, A]]*graph.Arc[N, A]{}
	}
	cmp := func(a, b dijkstraEntry[N, A]) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		default:
			return 0
		}
	}
	heap := pqueue.NewBinaryHeap[dijkstraEntry[N, A]](cmp)
	heap.Push(dijkstraEntry[N, A]{node: start, dist: 0})
	settled := map[*graph.Node[N, A]]bool{}

	for heap.Len() > 0 {
		top, _ := heap.Pop()
		n := top.node
		if settled[n] {
			continue
		}
		if top.dist > res.Dist[n] {
			continue
		}
		settled[n] = true
		eachNeighbor(g, n, filter, func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			cand := res.Dist[n] + weight(a.Info)
			if cur, ok := res.Dist[next]; !ok || cand < cur {
				res.Dist[next] = cand
				if res.Prev != nil {
					res.Prev[next] = a
				}
				heap.Push(dijkstraEntry[N, A]{node: next, dist: cand})
			}
			return true
		})
	}
	return res, nil
}

// DijkstraDecreaseKey is functionally equivalent to DijkstraLazy but keeps
// exactly one live entry per frontier node, lowering its key in place via
// the heap's DecreaseKey rather than pushing a duplicate. heap must be
// empty; pass pqueue.NewFibonacciHeap or pqueue.NewPairingHeap.
func DijkstraDecreaseKey[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], weight Weight[A], withPath bool, heap pqueue.DecreaseKeyer[dijkstraEntry[N, A]]) (*Result[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	if err := checkNonNegative(g, filter, weight); err != nil {
		return nil, err
	}
	res := &Result[N, A]{Dist: map[*graph.Node[N, A]]int64{start: 0}}
	if withPath {
		res.Prev = map[*graph.Node[N, A]]*graph.Arc[N, A]{}
	}
	handles := map[*graph.Node[N, A]]any{}
	settled := map[*graph.Node[N, A]]bool{}

	type handler interface {
		PushHandle(dijkstraEntry[N, A]) any
	}
	ph := heap.(handler)
	handles[start] = ph.PushHandle(dijkstraEntry[N, A]{node: start, dist: 0})

	for heap.Len() > 0 {
		top, _ := heap.Pop()
		n := top.node
		if settled[n] {
			continue
		}
		settled[n] = true
		eachNeighbor(g, n, filter, func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			cand := res.Dist[n] + weight(a.Info)
			cur, known := res.Dist[next]
			switch {
			case !known:
				res.Dist[next] = cand
				handles[next] = ph.PushHandle(dijkstraEntry[N, A]{node: next, dist: cand})
			case cand < cur:
				res.Dist[next] = cand
				_ = heap.DecreaseKey(handles[next], dijkstraEntry[N, A]{node: next, dist: cand})
			default:
				return true
			}
			if res.Prev != nil {
				res.Prev[next] = a
			}
			return true
		})
	}
	return res, nil
}

func checkNonNegative[N, A any](g graph.Graph[N, A], filter Filter[N, A], weight Weight[A]) error {
	var bad bool
	g.Arcs(func(a *graph.Arc[N, A]) bool {
		if accept(filter, a) && weight(a.Info) < 0 {
			bad = true
			return false
		}
		return true
	})
	if bad {
		return ErrNegativeWeight
	}
	return nil
}
