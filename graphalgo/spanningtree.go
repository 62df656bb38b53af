package graphalgo

import "github.com/arborio/arborio/graph"

// SpanningTreeDFS returns the tree arcs of a depth-first spanning tree
// rooted at start, following only arcs that pass filter, and marks each
// tree arc with graph.FlagSpanningTree for the duration of the call. It
// fails with ErrNotConnected if start cannot reach every node in g.
func SpanningTreeDFS[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A]) ([]*graph.Arc[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	var tree []*graph.Arc[N, A]
	visitor := Visitor[N, A]{
		Arc: func(a *graph.Arc[N, A], _ *graph.Node[N, A]) bool {
			tree = append(tree, a)
			a.SetFlag(graph.FlagSpanningTree)
			return true
		},
	}
	if _, err := DFS(g, start, filter, visitor); err != nil {
		return nil, err
	}
	if err := requireFullyVisited(g, tree, start); err != nil {
		resetArcFlag(tree, graph.FlagSpanningTree)
		return nil, err
	}
	resetArcFlag(tree, graph.FlagSpanningTree)
	return tree, nil
}

// SpanningTreeBFS is the breadth-first counterpart of SpanningTreeDFS.
func SpanningTreeBFS[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A]) ([]*graph.Arc[N, A], error) {
	res, err := BFS(g, start, filter)
	if err != nil {
		return nil, err
	}
	var tree []*graph.Arc[N, A]
	for _, n := range res.Order {
		parent := res.Parent[n]
		if parent == nil {
			continue
		}
		g.Incident(parent, func(a *graph.Arc[N, A]) bool {
			other, err := g.ConnectedNode(a, parent)
			if err == nil && other == n && accept(filter, a) {
				tree = append(tree, a)
				return false
			}
			return true
		})
	}
	if err := requireFullyVisited(g, tree, start); err != nil {
		return nil, err
	}
	return tree, nil
}

func resetArcFlag[N, A any](arcs []*graph.Arc[N, A], f graph.Flags) {
	for _, a := range arcs {
		a.ClearFlag(f)
	}
}

func requireFullyVisited[N, A any](g graph.Graph[N, A], tree []*graph.Arc[N, A], start *graph.Node[N, A]) error {
	reached := map[*graph.Node[N, A]]bool{start: true}
	for _, a := range tree {
		reached[a.Src()] = true
		reached[a.Tgt()] = true
	}
	total := 0
	allReached := true
	g.Nodes(func(n *graph.Node[N, A]) bool {
		total++
		if !reached[n] {
			allReached = false
		}
		return true
	})
	if !allReached {
		return ErrNotConnected
	}
	return nil
}
