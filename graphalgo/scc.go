package graphalgo

import "github.com/arborio/arborio/graph"

type tarjanInfo[N, A any] struct {
	index, low int
	onStack    bool
}

// SCC computes the strongly-connected components of g restricted to arcs
// passing filter, via Tarjan's single-DFS algorithm. Components are
// returned in the order their root is popped off the internal stack,
// which is reverse topological order of the condensation graph.
func SCC[N, A any](g graph.Graph[N, A], filter Filter[N, A]) [][]*graph.Node[N, A] {
	info := make(map[*graph.Node[N, A]]*tarjanInfo[N, A])
	var stack []*graph.Node[N, A]
	var components [][]*graph.Node[N, A]
	counter := 0

	var strongconnect func(n *graph.Node[N, A])
	strongconnect = func(n *graph.Node[N, A]) {
		ni := &tarjanInfo[N, A]{index: counter, low: counter, onStack: true}
		info[n] = ni
		counter++
		stack = append(stack, n)

		eachNeighbor(g, n, filter, func(_ *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			if ti, ok := info[next]; !ok {
				strongconnect(next)
				if info[next].low < ni.low {
					ni.low = info[next].low
				}
			} else if ti.onStack {
				if ti.index < ni.low {
					ni.low = ti.index
				}
			}
			return true
		})

		if ni.low == ni.index {
			var comp []*graph.Node[N, A]
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				info[top].onStack = false
				comp = append(comp, top)
				if top == n {
					break
				}
			}
			components = append(components, comp)
		}
	}

	g.Nodes(func(n *graph.Node[N, A]) bool {
		if _, ok := info[n]; !ok {
			strongconnect(n)
		}
		return true
	})
	return components
}
