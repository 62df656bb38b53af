package graphalgo

import "github.com/arborio/arborio/graph"

type apInfo[N, A any] struct {
	disc, low int
}

// Biconnected groups the arcs of one biconnected component.
type Biconnected[N, A any] struct {
	Arcs []*graph.Arc[N, A]
}

// ArticulationPoints returns the cut vertices of g (restricted to arcs
// passing filter; a directed arc is followed only from its source) and
// its biconnected components, via DFS discovery
// times and lowlinks. A non-root node u is a cut vertex iff it has a DFS
// child v with low(v) >= disc(u); the DFS root is a cut vertex iff it has
// two or more DFS children.
func ArticulationPoints[N, A any](g graph.Graph[N, A], filter Filter[N, A]) ([]*graph.Node[N, A], []Biconnected[N, A]) {
	info := make(map[*graph.Node[N, A]]*apInfo[N, A])
	isCut := make(map[*graph.Node[N, A]]bool)
	var components []Biconnected[N, A]
	var arcStack []*graph.Arc[N, A]
	var visitOrder []*graph.Node[N, A]
	counter := 0

	popComponent := func(until *graph.Arc[N, A]) Biconnected[N, A] {
		var comp Biconnected[N, A]
		for {
			top := arcStack[len(arcStack)-1]
			arcStack = arcStack[:len(arcStack)-1]
			comp.Arcs = append(comp.Arcs, top)
			if top == until {
				break
			}
		}
		return comp
	}

	var dfs func(u *graph.Node[N, A], parentArc *graph.Arc[N, A]) int
	dfs = func(u *graph.Node[N, A], parentArc *graph.Arc[N, A]) int {
		ui := &apInfo[N, A]{disc: counter, low: counter}
		info[u] = ui
		visitOrder = append(visitOrder, u)
		counter++
		children := 0

		eachNeighbor(g, u, filter, func(a *graph.Arc[N, A], v *graph.Node[N, A]) bool {
			if a == parentArc {
				return true
			}
			if vi, ok := info[v]; ok {
				if vi.disc < ui.disc {
					arcStack = append(arcStack, a) // back arc to an ancestor
				}
				if vi.disc < ui.low {
					ui.low = vi.disc
				}
				return true
			}
			arcStack = append(arcStack, a)
			children++
			vLow := dfs(v, a)
			if vLow < ui.low {
				ui.low = vLow
			}
			if (parentArc != nil && vLow >= ui.disc) || (parentArc == nil && children > 1) {
				isCut[u] = true
			}
			if vLow >= ui.disc {
				components = append(components, popComponent(a))
			}
			return true
		})
		return ui.low
	}

	g.Nodes(func(n *graph.Node[N, A]) bool {
		if _, ok := info[n]; !ok {
			dfs(n, nil)
		}
		return true
	})

	var cuts []*graph.Node[N, A]
	for _, n := range visitOrder {
		if isCut[n] {
			cuts = append(cuts, n)
		}
	}
	return cuts, components
}
