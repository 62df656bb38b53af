package graphalgo

import "github.com/arborio/arborio/graph"

// visitState is scratch state for the DFS-based topological sort, stored
// in each node's Cookie for the duration of the call.
type visitState int

const (
	visitUnseen visitState = iota
	visitActive
	visitDone
)

// TopoSortDFS returns a topological order of every node in g via
// post-order DFS, following only arcs that pass filter. It fails with
// ErrCycleDetected if g (restricted to filter) is not a DAG.
func TopoSortDFS[N, A any](g graph.Graph[N, A], filter Filter[N, A]) ([]*graph.Node[N, A], error) {
	var order []*graph.Node[N, A]
	var touched []*graph.Node[N, A]
	var cyclic bool

	var visit func(n *graph.Node[N, A])
	visit = func(n *graph.Node[N, A]) {
		if cyclic {
			return
		}
		n.Cookie = visitActive
		touched = append(touched, n)
		eachNeighbor(g, n, filter, func(_ *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			switch next.Cookie {
			case visitActive:
				cyclic = true
				return false
			case visitDone:
				return true
			default:
				visit(next)
				return !cyclic
			}
		})
		if cyclic {
			return
		}
		n.Cookie = visitDone
		order = append(order, n)
	}

	g.Nodes(func(n *graph.Node[N, A]) bool {
		if n.Cookie == nil {
			visit(n)
		}
		return !cyclic
	})
	for _, n := range touched {
		n.Cookie = nil
	}
	if cyclic {
		return nil, ErrCycleDetected
	}
	reverse(order)
	return order, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// TopoSortKahn returns a topological order computed by repeatedly removing
// a node with in-degree zero (restricted to arcs passing filter) and
// decrementing its neighbors' in-degrees. It fails with ErrCycleDetected
// if the result omits any node.
func TopoSortKahn[N, A any](g graph.Graph[N, A], filter Filter[N, A]) ([]*graph.Node[N, A], error) {
	inDegree := make(map[*graph.Node[N, A]]int)
	var all []*graph.Node[N, A]
	g.Nodes(func(n *graph.Node[N, A]) bool {
		all = append(all, n)
		inDegree[n] = 0
		return true
	})
	g.Arcs(func(a *graph.Arc[N, A]) bool {
		if !accept(filter, a) || !a.Directed() {
			return true
		}
		inDegree[a.Tgt()]++
		return true
	})

	var queue []*graph.Node[N, A]
	for _, n := range all {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}
	order := make([]*graph.Node[N, A], 0, len(all))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		eachNeighbor(g, n, filter, func(_ *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
			return true
		})
	}
	if len(order) != len(all) {
		return nil, ErrCycleDetected
	}
	return order, nil
}
