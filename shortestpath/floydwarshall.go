package shortestpath

import (
	"math"

	"github.com/arborio/arborio/graph"
)

// DenseResult holds all-pairs shortest distances and, optionally, a
// successor map sufficient to walk any shortest path forward from its
// source.
type DenseResult[N, A any] struct {
	index map[*graph.Node[N, A]]int
	nodes []*graph.Node[N, A]
	dist  [][]int64
	next  [][]int // -1 where no path exists
}

const unreachable = math.MaxInt64 / 2

// Dist returns the shortest distance from u to v, or false if v is
// unreachable from u.
func (r *DenseResult[N, A]) Dist(u, v *graph.Node[N, A]) (int64, bool) {
	i, j := r.index[u], r.index[v]
	d := r.dist[i][j]
	if d >= unreachable {
		return 0, false
	}
	return d, true
}

// Path reconstructs a shortest path from u to v using the successor
// table, nil if FloydWarshall was not run with path tracking or v is
// unreachable.
func (r *DenseResult[N, A]) Path(g graph.Graph[N, A], u, v *graph.Node[N, A]) []*graph.Node[N, A] {
	if r.next == nil {
		return nil
	}
	i, j := r.index[u], r.index[v]
	if r.dist[i][j] >= unreachable {
		return nil
	}
	path := []*graph.Node[N, A]{u}
	for i != j {
		i = r.next[i][j]
		if i < 0 {
			return nil
		}
		path = append(path, r.nodes[i])
	}
	return path
}

// FloydWarshall computes all-pairs shortest distances over arcs passing
// filter via triply-nested relaxation. It tolerates negative weights but
// not negative cycles: a negative-weight self-distance after the main
// loop is reported as ErrNegativeCycle.
func FloydWarshall[N, A any](g graph.Graph[N, A], filter Filter[N, A], weight Weight[A], withPath bool) (*DenseResult[N, A], error) {
	var nodes []*graph.Node[N, A]
	index := map[*graph.Node[N, A]]int{}
	g.Nodes(func(n *graph.Node[N, A]) bool {
		index[n] = len(nodes)
		nodes = append(nodes, n)
		return true
	})
	n := len(nodes)
	dist := make([][]int64, n)
	var next [][]int
	if withPath {
		next = make([][]int, n)
	}
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = unreachable
			}
		}
		if withPath {
			next[i] = make([]int, n)
			for j := range next[i] {
				next[i][j] = -1
			}
		}
	}

	g.Arcs(func(a *graph.Arc[N, A]) bool {
		if !accept(filter, a) {
			return true
		}
		i, j := index[a.Src()], index[a.Tgt()]
		w := weight(a.Info)
		if w < dist[i][j] {
			dist[i][j] = w
			if withPath {
				next[i][j] = j
			}
		}
		if !a.Directed() && w < dist[j][i] {
			dist[j][i] = w
			if withPath {
				next[j][i] = i
			}
		}
		return true
	})

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] >= unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				cand := dist[i][k] + dist[k][j]
				if cand < dist[i][j] {
					dist[i][j] = cand
					if withPath {
						next[i][j] = next[i][k]
					}
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, ErrNegativeCycle
		}
	}
	return &DenseResult[N, A]{index: index, nodes: nodes, dist: dist, next: next}, nil
}
