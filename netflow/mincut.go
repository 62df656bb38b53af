package netflow

// CutArc names one arc of a minimum cut: the arc at position Index in
// Adj(From), leading to To.
type CutArc struct {
	From, To int
	Index    int
}

// MinCut extracts the minimum s-t cut from a Network that has already been
// driven to a maximum flow (by FordFulkerson, EdmondsKarp, Dinic, or
// PreflowPush). It returns the set of nodes reachable from source in the
// residual graph and the cut: every real arc (one passed to AddArc, not a
// residual image) leading from a reachable node to an unreachable one.
// Each such arc is saturated, so the capacities of the cut arcs sum to the
// maximum flow value.
func MinCut(g *Network, source int) (reachable []bool, cut []CutArc) {
	reachable = make([]bool, g.N())
	reachable[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range g.Adj(u) {
			if a.Residual() > 0 && !reachable[a.To] {
				reachable[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}
	for u := 0; u < g.N(); u++ {
		if !reachable[u] {
			continue
		}
		for i, a := range g.Adj(u) {
			if a.Real && !reachable[a.To] {
				cut = append(cut, CutArc{From: u, To: a.To, Index: i})
			}
		}
	}
	return reachable, cut
}
