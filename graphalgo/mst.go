package graphalgo

import (
	"sort"

	"github.com/arborio/arborio/graph"
	"github.com/arborio/arborio/pqueue"
)

type unionFind[N, A any] struct {
	parent map[*graph.Node[N, A]]*graph.Node[N, A]
	rank   map[*graph.Node[N, A]]int
}

func newUnionFind[N, A any]() *unionFind[N, A] {
	return &unionFind[N, A]{parent: map[*graph.Node[N, A]]*graph.Node[N, A]{}, rank: map[*graph.Node[N, A]]int{}}
}

func (u *unionFind[N, A]) find(x *graph.Node[N, A]) *graph.Node[N, A] {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
		return x
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind[N, A]) union(a, b *graph.Node[N, A]) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

// KruskalMST computes a minimum spanning tree of g (treated as
// undirected, restricted to arcs passing filter) via Kruskal's algorithm:
// sort arcs by weight, then greedily union endpoints that are not already
// connected. It fails with ErrNotConnected if g has more than one
// component. Self-loops are skipped; they can never belong to a tree.
func KruskalMST[N, A any](g graph.Graph[N, A], filter Filter[N, A], weight Weight[A]) ([]*graph.Arc[N, A], int64, error) {
	var arcs []*graph.Arc[N, A]
	g.Arcs(func(a *graph.Arc[N, A]) bool {
		if accept(filter, a) && a.Src() != a.Tgt() {
			arcs = append(arcs, a)
		}
		return true
	})
	sort.SliceStable(arcs, func(i, j int) bool { return weight(arcs[i].Info) < weight(arcs[j].Info) })

	uf := newUnionFind[N, A]()
	var nodeCount int
	g.Nodes(func(n *graph.Node[N, A]) bool { nodeCount++; uf.find(n); return true })

	var tree []*graph.Arc[N, A]
	var total int64
	for _, a := range arcs {
		if uf.union(a.Src(), a.Tgt()) {
			tree = append(tree, a)
			total += weight(a.Info)
			if len(tree) == nodeCount-1 {
				break
			}
		}
	}
	if nodeCount > 0 && len(tree) != nodeCount-1 {
		return nil, 0, ErrNotConnected
	}
	return tree, total, nil
}

type primEntry[N, A any] struct {
	node   *graph.Node[N, A]
	viaArc *graph.Arc[N, A]
	key    int64
}

// PrimMST computes a minimum spanning tree of g seeded from start, via
// Prim's algorithm over a binary heap keyed by the cheapest known arc into
// the frontier. It fails with ErrNotConnected if start cannot reach every
// node.
func PrimMST[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], weight Weight[A]) ([]*graph.Arc[N, A], int64, error) {
	if start == nil {
		return nil, 0, ErrNilSource
	}
	cmp := func(a, b primEntry[N, A]) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	}
	heap := pqueue.NewBinaryHeap[primEntry[N, A]](cmp)
	inTree := map[*graph.Node[N, A]]bool{}
	best := map[*graph.Node[N, A]]int64{start: 0}

	heap.Push(primEntry[N, A]{node: start, key: 0})
	var tree []*graph.Arc[N, A]
	var total int64
	for heap.Len() > 0 {
		top, _ := heap.Pop()
		n := top.node
		if inTree[n] {
			continue
		}
		inTree[n] = true
		if top.viaArc != nil {
			tree = append(tree, top.viaArc)
			total += top.key
		}
		eachNeighbor(g, n, filter, func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			if inTree[next] {
				return true
			}
			w := weight(a.Info)
			if cur, ok := best[next]; !ok || w < cur {
				best[next] = w
				heap.Push(primEntry[N, A]{node: next, viaArc: a, key: w})
			}
			return true
		})
	}

	var nodeCount int
	g.Nodes(func(*graph.Node[N, A]) bool { nodeCount++; return true })
	if len(tree) != nodeCount-1 {
		return nil, 0, ErrNotConnected
	}
	return tree, total, nil
}
