package shortestpath

import "github.com/arborio/arborio/graph"

// BellmanFord computes shortest distances from start, tolerating negative
// arc weights, via |V|-1 rounds of relaxing every arc that passes filter.
// A final relaxation pass that still finds an improvement means the graph
// contains a cycle reachable from start with negative total weight, and
// BellmanFord returns ErrNegativeCycle.
func BellmanFord[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], weight Weight[A], withPath bool) (*Result[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	var arcs []*graph.Arc[N, A]
	g.Arcs(func(a *graph.Arc[N, A]) bool {
		if accept(filter, a) {
			arcs = append(arcs, a)
		}
		return true
	})

	var nodeCount int
	g.Nodes(func(*graph.Node[N, A]) bool { nodeCount++; return true })

	res := &Result[N, A]{Dist: map[*graph.Node[N, A]]int64{start: 0}}
	if withPath {
		res.Prev = map[*graph.Node[N, A]]*graph.Arc[N, A]{}
	}

	relax := func(from, to *graph.Node[N, A], a *graph.Arc[N, A]) bool {
		df, ok := res.Dist[from]
		if !ok {
			return false
		}
		cand := df + weight(a.Info)
		if cur, known := res.Dist[to]; known && cand >= cur {
			return false
		}
		res.Dist[to] = cand
		if res.Prev != nil {
			res.Prev[to] = a
		}
		return true
	}

	relaxOnce := func() bool {
		changed := false
		for _, a := range arcs {
			if relax(a.Src(), a.Tgt(), a) {
				changed = true
			}
			if !a.Directed() {
				if relax(a.Tgt(), a.Src(), a) {
					changed = true
				}
			}
		}
		return changed
	}

	for i := 0; i < nodeCount-1; i++ {
		if !relaxOnce() {
			return res, nil
		}
	}
	if relaxOnce() {
		return nil, ErrNegativeCycle
	}
	return res, nil
}

// SPFA is the queue-driven variant of Bellman-Ford (the "shortest path
// faster algorithm"): instead of relaxing every arc on every round, it
// only re-examines arcs out of nodes whose distance just improved.
// Amortized faster than plain BellmanFord on sparse graphs; same
// negative-cycle failure mode, detected via a per-node relaxation-count
// bound of nodeCount-1.
func SPFA[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], weight Weight[A], withPath bool) (*Result[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	var nodeCount int
	g.Nodes(func(*graph.Node[N, A]) bool { nodeCount++; return true })

	res := &Result[N, A]{Dist: map[*graph.Node[N, A]]int64{start: 0}}
	if withPath {
		res.Prev = map[*graph.Node[N, A]]*graph.Arc[N, A]{}
	}
	relaxCount := map[*graph.Node[N, A]]int{}
	inQueue := map[*graph.Node[N, A]]bool{start: true}
	queue := []*graph.Node[N, A]{start}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		inQueue[n] = false
		var cyclic bool
		eachNeighbor(g, n, filter, func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			cand := res.Dist[n] + weight(a.Info)
			if cur, ok := res.Dist[next]; ok && cand >= cur {
				return true
			}
			res.Dist[next] = cand
			if res.Prev != nil {
				res.Prev[next] = a
			}
			relaxCount[next]++
			if relaxCount[next] >= nodeCount {
				cyclic = true
				return false
			}
			if !inQueue[next] {
				inQueue[next] = true
				queue = append(queue, next)
			}
			return true
		})
		if cyclic {
			return nil, ErrNegativeCycle
		}
	}
	return res, nil
}
