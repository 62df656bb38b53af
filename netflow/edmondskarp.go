package netflow

import "context"

// EdmondsKarp computes a maximum flow from source to sink by repeatedly
// finding the shortest (fewest-arc) augmenting path via BFS, bounding the
// number of augmentations to O(V*E).
//
// ctx is checked once per augmentation; a nil ctx behaves like
// context.Background().
func EdmondsKarp(ctx context.Context, g *Network, source, sink int) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var maxFlow int64
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}
		path := bfsPath(g, source, sink)
		if path == nil {
			return maxFlow, nil
		}
		maxFlow += augment(g, path)
	}
}

func bfsPath(g *Network, source, sink int) []pathStep {
	cameFrom := make([]pathStep, g.N())
	visited := make([]bool, g.N())
	visited[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			return reconstruct(cameFrom, source, sink)
		}
		for i, a := range g.Adj(u) {
			if a.Residual() <= 0 || visited[a.To] {
				continue
			}
			visited[a.To] = true
			cameFrom[a.To] = pathStep{node: u, arc: i}
			queue = append(queue, a.To)
		}
	}
	return nil
}

func reconstruct(cameFrom []pathStep, source, sink int) []pathStep {
	var rev []pathStep
	for n := sink; n != source; {
		step := cameFrom[n]
		rev = append(rev, step)
		n = step.node
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
