package graph

// Graph is the logical interface shared by ListGraph and ArrayGraph. N is
// the payload carried by nodes, A the payload carried by arcs.
type Graph[N, A any] interface {
	// Directed reports whether arcs inserted without an explicit override
	// default to directed.
	Directed() bool

	// InsertNode adds a new node holding info and returns it.
	InsertNode(info N) *Node[N, A]

	// RemoveNode deletes n and every arc incident to it.
	RemoveNode(n *Node[N, A]) error

	// InsertArc adds an arc from src to tgt holding info, directed
	// according to the graph's default. Self-loops are permitted.
	InsertArc(src, tgt *Node[N, A], info A) (*Arc[N, A], error)

	// RemoveArc deletes a from the graph.
	RemoveArc(a *Arc[N, A]) error

	// NumNodes reports the live node count.
	NumNodes() int

	// NumArcs reports the live arc count.
	NumArcs() int

	// Nodes calls fn for every node in insertion order, except that
	// removing a node moves the last node into its slot; it stops early if
	// fn returns false.
	Nodes(fn func(*Node[N, A]) bool)

	// Arcs calls fn for every arc in insertion order, except that removing
	// an arc moves the last arc into its slot; it stops early if fn
	// returns false.
	Arcs(fn func(*Arc[N, A]) bool)

	// Incident calls fn for every arc incident to n, stopping early if fn
	// returns false.
	Incident(n *Node[N, A], fn func(*Arc[N, A]) bool)

	// Src returns a's source endpoint.
	Src(a *Arc[N, A]) *Node[N, A]

	// Tgt returns a's target endpoint.
	Tgt(a *Arc[N, A]) *Node[N, A]

	// ConnectedNode returns the endpoint of a on the opposite side from n.
	// It fails if n is not an endpoint of a.
	ConnectedNode(a *Arc[N, A], n *Node[N, A]) (*Node[N, A], error)

	// Clone returns a deep, structurally identical copy, preserving
	// insertion order and every node/arc Info payload. Flags and Cookie
	// are not copied — the copy starts with clean scratch state.
	Clone() Graph[N, A]
}
