package netflow

import (
	"context"
	"fmt"
)

// MinCostMaxFlow computes a maximum flow of minimum total cost from source
// to sink by the successive-shortest-augmenting-path method: each round
// runs Bellman-Ford on the residual graph to find a least-cost s-t path,
// then pushes its bottleneck capacity along it. Arc costs may be
// negative, as long as the residual graph never contains a negative
// cycle reachable from source; this holds throughout because every
// augmentation is along a shortest path, per the standard invariant.
// Returns the flow value and its total cost.
//
// ctx is checked once per round; a nil ctx behaves like
// context.Background().
func MinCostMaxFlow(ctx context.Context, g *Network, source, sink int) (flow, cost int64, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		if err := ctx.Err(); err != nil {
			return flow, cost, err
		}
		dist, parentNode, parentArc, ok := bellmanFordResidual(g, source)
		if !ok {
			return flow, cost, fmt.Errorf("netflow: %w", ErrNegativeCycle)
		}
		if dist[sink] >= unreachableCost {
			return flow, cost, nil
		}
		path := reconstructCostPath(parentNode, parentArc, source, sink)
		bottleneck := int64(1<<63 - 1)
		for _, step := range path {
			if c := g.Adj(step.node)[step.arc].Residual(); c < bottleneck {
				bottleneck = c
			}
		}
		for _, step := range path {
			g.Push(step.node, step.arc, bottleneck)
		}
		flow += bottleneck
		cost += bottleneck * dist[sink]
	}
}

const unreachableCost = int64(1) << 62

func bellmanFordResidual(g *Network, source int) (dist []int64, parentNode, parentArc []int, ok bool) {
	n := g.N()
	dist = make([]int64, n)
	parentNode = make([]int, n)
	parentArc = make([]int, n)
	for i := range dist {
		dist[i] = unreachableCost
		parentNode[i] = -1
	}
	dist[source] = 0

	for i := 0; i < n-1; i++ {
		changed := false
		for u := 0; u < n; u++ {
			if dist[u] >= unreachableCost {
				continue
			}
			for ai, a := range g.Adj(u) {
				if a.Residual() <= 0 {
					continue
				}
				if nd := dist[u] + a.Cost; nd < dist[a.To] {
					dist[a.To] = nd
					parentNode[a.To] = u
					parentArc[a.To] = ai
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for u := 0; u < n; u++ {
		if dist[u] >= unreachableCost {
			continue
		}
		for _, a := range g.Adj(u) {
			if a.Residual() > 0 && dist[u]+a.Cost < dist[a.To] {
				return nil, nil, nil, false
			}
		}
	}
	return dist, parentNode, parentArc, true
}

func reconstructCostPath(parentNode, parentArc []int, source, sink int) []pathStep {
	var rev []pathStep
	for v := sink; v != source; v = parentNode[v] {
		rev = append(rev, pathStep{node: parentNode[v], arc: parentArc[v]})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// CancelNegativeCycles reduces the cost of an existing feasible flow in g
// without changing its value, by repeatedly finding a negative-cost cycle
// in the residual graph via Bellman-Ford and pushing flow around it until
// none remains. It returns the total cost delta applied (always <= 0).
func CancelNegativeCycles(g *Network) int64 {
	var totalDelta int64
	for {
		cycle := findNegativeCycle(g)
		if cycle == nil {
			return totalDelta
		}
		bottleneck := int64(1<<63 - 1)
		for _, step := range cycle {
			if c := g.Adj(step.node)[step.arc].Residual(); c < bottleneck {
				bottleneck = c
			}
		}
		var delta int64
		for _, step := range cycle {
			delta += bottleneck * g.Adj(step.node)[step.arc].Cost
			g.Push(step.node, step.arc, bottleneck)
		}
		totalDelta += delta
	}
}

func findNegativeCycle(g *Network) []pathStep {
	n := g.N()
	dist := make([]int64, n)
	parentNode := make([]int, n)
	parentArc := make([]int, n)
	for i := range parentNode {
		parentNode[i] = -1
	}
	var lastRelaxed int
	for i := 0; i < n; i++ {
		lastRelaxed = -1
		for u := 0; u < n; u++ {
			for ai, a := range g.Adj(u) {
				if a.Residual() <= 0 {
					continue
				}
				if nd := dist[u] + a.Cost; nd < dist[a.To] {
					dist[a.To] = nd
					parentNode[a.To] = u
					parentArc[a.To] = ai
					lastRelaxed = a.To
				}
			}
		}
		if lastRelaxed == -1 {
			return nil
		}
	}
	v := lastRelaxed
	for i := 0; i < n; i++ {
		v = parentNode[v]
	}
	var rev []pathStep
	for cur := v; ; {
		p := parentNode[cur]
		rev = append(rev, pathStep{node: p, arc: parentArc[cur]})
		cur = p
		if cur == v {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
