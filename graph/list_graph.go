package graph

// ListGraph is the incidence-list backend: each node owns a dlist.List of
// its incident arcs, giving O(1) insert node/arc and O(1) remove arc given
// a handle.
type ListGraph[N, A any] struct {
	directed bool
	nodes    []*Node[N, A]
	arcs     []*Arc[N, A]
	nextID   int
}

// NewListGraph returns an empty ListGraph. directed sets the default
// directedness for arcs inserted with InsertArc.
func NewListGraph[N, A any](directed bool) *ListGraph[N, A] {
	return &ListGraph[N, A]{directed: directed}
}

// Directed reports the graph's default arc directedness.
func (g *ListGraph[N, A]) Directed() bool { return g.directed }

// InsertNode adds a new node holding info.
func (g *ListGraph[N, A]) InsertNode(info N) *Node[N, A] {
	n := &Node[N, A]{Info: info, id: g.nextID, owner: g, pos: len(g.nodes), inc: newListIncidence[N, A]()}
	g.nextID++
	g.nodes = append(g.nodes, n)
	return n
}

// RemoveNode deletes n and every arc incident to it.
func (g *ListGraph[N, A]) RemoveNode(n *Node[N, A]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.owner != any(g) {
		return ErrNodeNotFound
	}
	var incident []*Arc[N, A]
	n.inc.each(func(a *Arc[N, A]) bool { incident = append(incident, a); return true })
	for _, a := range incident {
		_ = g.RemoveArc(a)
	}
	idx, last := n.pos, len(g.nodes)-1
	g.nodes[idx] = g.nodes[last]
	g.nodes[idx].pos = idx
	g.nodes[last] = nil
	g.nodes = g.nodes[:last]
	n.owner = nil
	return nil
}

// InsertArc adds an arc from src to tgt holding info.
func (g *ListGraph[N, A]) InsertArc(src, tgt *Node[N, A], info A) (*Arc[N, A], error) {
	if src == nil || tgt == nil {
		return nil, ErrNilNode
	}
	if src.owner != any(g) || tgt.owner != any(g) {
		return nil, ErrForeignNode
	}
	a := &Arc[N, A]{Info: info, id: g.nextID, owner: g, pos: len(g.arcs), src: src, tgt: tgt, directed: g.directed}
	g.nextID++
	a.srcH = src.inc.pushBack(a)
	if tgt != src {
		a.tgtH = tgt.inc.pushBack(a)
	} else {
		a.tgtH = a.srcH
	}
	g.arcs = append(g.arcs, a)
	return a, nil
}

// RemoveArc deletes a from the graph.
func (g *ListGraph[N, A]) RemoveArc(a *Arc[N, A]) error {
	if a == nil {
		return ErrNilNode
	}
	if a.owner != any(g) {
		return ErrArcNotFound
	}
	a.src.inc.remove(a.srcH)
	if a.tgt != a.src {
		a.tgt.inc.remove(a.tgtH)
	}
	idx, last := a.pos, len(g.arcs)-1
	g.arcs[idx] = g.arcs[last]
	g.arcs[idx].pos = idx
	g.arcs[last] = nil
	g.arcs = g.arcs[:last]
	a.owner = nil
	return nil
}

// NumNodes reports the live node count.
func (g *ListGraph[N, A]) NumNodes() int { return len(g.nodes) }

// NumArcs reports the live arc count.
func (g *ListGraph[N, A]) NumArcs() int { return len(g.arcs) }

// Nodes calls fn for every live node, in an order that matches insertion
// except where a removal has swapped the last node into a freed slot.
func (g *ListGraph[N, A]) Nodes(fn func(*Node[N, A]) bool) {
	for _, n := range g.nodes {
		if !fn(n) {
			return
		}
	}
}

// Arcs calls fn for every live arc, with the same swap-with-last ordering
// caveat as Nodes.
func (g *ListGraph[N, A]) Arcs(fn func(*Arc[N, A]) bool) {
	for _, a := range g.arcs {
		if !fn(a) {
			return
		}
	}
}

// Incident calls fn for every arc incident to n.
func (g *ListGraph[N, A]) Incident(n *Node[N, A], fn func(*Arc[N, A]) bool) {
	if n == nil {
		return
	}
	n.inc.each(fn)
}

// Src returns a's source endpoint.
func (g *ListGraph[N, A]) Src(a *Arc[N, A]) *Node[N, A] { return a.src }

// Tgt returns a's target endpoint.
func (g *ListGraph[N, A]) Tgt(a *Arc[N, A]) *Node[N, A] { return a.tgt }

// ConnectedNode returns the endpoint of a opposite n.
func (g *ListGraph[N, A]) ConnectedNode(a *Arc[N, A], n *Node[N, A]) (*Node[N, A], error) {
	switch n {
	case a.src:
		return a.tgt, nil
	case a.tgt:
		return a.src, nil
	default:
		return nil, ErrNotIncident
	}
}

// Clone returns a deep, structurally identical copy.
func (g *ListGraph[N, A]) Clone() Graph[N, A] {
	out := NewListGraph[N, A](g.directed)
	mapping := make(map[*Node[N, A]]*Node[N, A], len(g.nodes))
	for _, n := range g.nodes {
		mapping[n] = out.InsertNode(n.Info)
	}
	for _, a := range g.arcs {
		_, _ = out.InsertArc(mapping[a.src], mapping[a.tgt], a.Info)
	}
	return out
}
