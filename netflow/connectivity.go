package netflow

import "context"

// EdgeConnectivity computes the edge connectivity of an undirected graph
// given as a list of (u, v) edges over n nodes: the minimum number of
// edges whose removal disconnects the graph. Each undirected edge is
// modeled as two unit-capacity directed arcs, one each way, and the
// connectivity is the minimum max-flow from a fixed node 0 to every other
// node, by Menger's theorem.
//
// ctx is forwarded to every underlying EdmondsKarp call; a nil ctx
// behaves like context.Background().
func EdgeConnectivity(ctx context.Context, n int, edges [][2]int) (int64, error) {
	if n < 2 {
		return 0, nil
	}
	best := int64(1<<63 - 1)
	for t := 1; t < n; t++ {
		g := New(n)
		for _, e := range edges {
			g.AddArc(e[0], e[1], 1, 0)
			g.AddArc(e[1], e[0], 1, 0)
		}
		flow, err := EdmondsKarp(ctx, g, 0, t)
		if err != nil {
			return best, err
		}
		if flow < best {
			best = flow
		}
	}
	return best, nil
}

// VertexConnectivity computes the vertex connectivity of an undirected
// graph given as a list of (u, v) edges over n nodes: the minimum number
// of nodes whose removal disconnects the graph (or leaves fewer than 2
// nodes). Each node v is split into v_in=2v and v_out=2v+1 joined by a
// unit-capacity arc; each undirected edge (u, v) becomes infinite-capacity
// arcs u_out->v_in and v_out->u_in. Connectivity is the minimum max-flow
// over all pairs of non-adjacent nodes s, t, computed from s_out to t_in.
//
// ctx is forwarded to every underlying EdmondsKarp call; a nil ctx
// behaves like context.Background().
func VertexConnectivity(ctx context.Context, n int, edges [][2]int) (int64, error) {
	if n < 2 {
		return int64(n - 1), nil
	}
	adjacent := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		a, b := e[0], e[1]
		if a > b {
			a, b = b, a
		}
		adjacent[[2]int{a, b}] = true
	}
	const inf = int64(1 << 40)
	best := int64(n)
	found := false
	for s := 0; s < n; s++ {
		for t := 0; t < n; t++ {
			if s == t {
				continue
			}
			a, b := s, t
			if a > b {
				a, b = b, a
			}
			if adjacent[[2]int{a, b}] {
				continue
			}
			g := New(2 * n)
			for v := 0; v < n; v++ {
				cap := inf
				if v != s && v != t {
					cap = 1
				}
				g.AddArc(2*v, 2*v+1, cap, 0)
			}
			for _, e := range edges {
				g.AddArc(2*e[0]+1, 2*e[1], inf, 0)
				g.AddArc(2*e[1]+1, 2*e[0], inf, 0)
			}
			flow, err := EdmondsKarp(ctx, g, 2*s+1, 2*t)
			if err != nil {
				return best, err
			}
			if !found || flow < best {
				best = flow
				found = true
			}
		}
	}
	if !found {
		return int64(n - 1), nil // complete graph: connectivity is n-1
	}
	return best, nil
}
