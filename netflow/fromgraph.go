package netflow

import "github.com/arborio/arborio/graph"

// CapacityFunc extracts a nonnegative arc capacity from an arc's payload.
type CapacityFunc[A any] func(info A) int64

// CostFunc extracts a per-unit arc cost from an arc's payload, for the
// routines that account for cost (MinCostMaxFlow, CancelNegativeCycles).
// Callers with no cost information can pass a CostFunc that always
// returns 0.
type CostFunc[A any] func(info A) int64

// FromGraph builds a Network over g's nodes, indexed in the order Nodes
// visits them, with one AddArc call per arc g.Arcs visits; capacity and
// cost extract the corresponding values from each arc's payload. It
// returns the Network together with the index assigned to every node, so
// callers can translate the int-indexed results of FordFulkerson,
// EdmondsKarp, Dinic, PreflowPush, and MinCut back onto g's nodes instead
// of tracking a parallel mapping of their own. An undirected arc in g
// becomes a pair of opposing directed arcs, each carrying the same
// capacity and cost, mirroring how EdgeConnectivity treats undirected
// edges.
func FromGraph[N, A any](g graph.Graph[N, A], capacity CapacityFunc[A], cost CostFunc[A]) (*Network, map[*graph.Node[N, A]]int) {
	index := make(map[*graph.Node[N, A]]int, g.NumNodes())
	g.Nodes(func(n *graph.Node[N, A]) bool {
		index[n] = len(index)
		return true
	})

	net := New(len(index))
	g.Arcs(func(a *graph.Arc[N, A]) bool {
		u, v := index[a.Src()], index[a.Tgt()]
		c, k := capacity(a.Info), cost(a.Info)
		net.AddArc(u, v, c, k)
		if !a.Directed() {
			net.AddArc(v, u, c, k)
		}
		return true
	})
	return net, index
}
