package netflow

import "context"

// FordFulkerson computes a maximum flow from source to sink by repeatedly
// finding any augmenting path via DFS and pushing its bottleneck capacity.
// Termination and the resulting flow value depend only on path capacities
// being integers, which Network guarantees.
//
// ctx is checked once per augmentation; a nil ctx behaves like
// context.Background(). If ctx is canceled mid-computation, FordFulkerson
// returns the flow accumulated so far along with ctx.Err().
func FordFulkerson(ctx context.Context, g *Network, source, sink int) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var maxFlow int64
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}
		visited := make([]bool, g.N())
		path := dfsPath(g, source, sink, visited)
		if path == nil {
			return maxFlow, nil
		}
		bottleneck := augment(g, path)
		maxFlow += bottleneck
	}
}

// pathStep names one hop of an augmenting path: the node it left from, the
// arc index taken out of that node.
type pathStep struct {
	node int
	arc  int
}

func dfsPath(g *Network, u, sink int, visited []bool) []pathStep {
	if u == sink {
		return []pathStep{}
	}
	visited[u] = true
	for i, a := range g.Adj(u) {
		if a.Residual() <= 0 || visited[a.To] {
			continue
		}
		if rest := dfsPath(g, a.To, sink, visited); rest != nil {
			return append([]pathStep{{node: u, arc: i}}, rest...)
		}
	}
	return nil
}

func augment(g *Network, path []pathStep) int64 {
	bottleneck := int64(1<<63 - 1)
	for _, step := range path {
		if cap := g.Adj(step.node)[step.arc].Residual(); cap < bottleneck {
			bottleneck = cap
		}
	}
	for _, step := range path {
		g.Push(step.node, step.arc, bottleneck)
	}
	return bottleneck
}
