package graphalgo

import "github.com/arborio/arborio/graph"

// Goal reports whether n satisfies a path search's stopping condition.
type Goal[N, A any] func(n *graph.Node[N, A]) bool

func targetGoal[N, A any](target *graph.Node[N, A]) Goal[N, A] {
	return func(n *graph.Node[N, A]) bool { return n == target }
}

// FindPathDFS searches depth-first from start for the first node
// satisfying goal and returns the arc sequence from start to it. It
// returns a nil, empty path (with no error) if no reachable node
// satisfies goal.
func FindPathDFS[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], goal Goal[N, A]) ([]*graph.Arc[N, A], error) {
	if start == nil {
		return nil, ErrNilSource
	}
	parentArc := map[*graph.Node[N, A]]*graph.Arc[N, A]{}
	var found *graph.Node[N, A]
	visitor := Visitor[N, A]{
		Pre: func(n *graph.Node[N, A]) bool {
			if goal(n) {
				found = n
				return false
			}
			return true
		},
		Arc: func(a *graph.Arc[N, A], next *graph.Node[N, A]) bool {
			parentArc[next] = a
			return true
		},
	}
	if goal(start) {
		return nil, nil
	}
	_, _ = DFS(g, start, filter, visitor)
	if found == nil {
		return nil, nil
	}
	return reconstructPath(g, start, found, parentArc), nil
}

// FindPathBFS is the breadth-first counterpart of FindPathDFS; because BFS
// explores in layers, the returned path has the fewest arcs among all
// paths from start to a goal node.
func FindPathBFS[N, A any](g graph.Graph[N, A], start *graph.Node[N, A], filter Filter[N, A], goal Goal[N, A]) ([]*graph.Arc[N, A], error) {
	res, err := BFS(g, start, filter)
	if err != nil {
		return nil, err
	}
	var found *graph.Node[N, A]
	for _, n := range res.Order {
		if goal(n) {
			found = n
			break
		}
	}
	if found == nil {
		return nil, nil
	}
	parentArc := map[*graph.Node[N, A]]*graph.Arc[N, A]{}
	for n, parent := range res.Parent {
		if parent == nil {
			continue
		}
		g.Incident(parent, func(a *graph.Arc[N, A]) bool {
			other, err := g.ConnectedNode(a, parent)
			if err == nil && other == n {
				parentArc[n] = a
				return false
			}
			return true
		})
	}
	return reconstructPath(g, start, found, parentArc), nil
}

func reconstructPath[N, A any](g graph.Graph[N, A], start, target *graph.Node[N, A], parentArc map[*graph.Node[N, A]]*graph.Arc[N, A]) []*graph.Arc[N, A] {
	var path []*graph.Arc[N, A]
	n := target
	for n != start {
		a, ok := parentArc[n]
		if !ok {
			return nil
		}
		path = append(path, a)
		other, err := g.ConnectedNode(a, n)
		if err != nil {
			return nil
		}
		n = other
	}
	reverse(path)
	return path
}
