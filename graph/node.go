package graph

// Node is a graph vertex carrying a user payload, a scratch Flags bitset,
// and a scratch Cookie. id is a stable, insertion-order identity that
// survives as long as the node is in the graph — algorithms and external
// renderers can use it as a textual handle without dereferencing a
// pointer.
type Node[N, A any] struct {
	Info   N
	Flags  Flags
	Cookie any

	id    int
	owner any
	pos   int
	inc   incidence[N, A]
}

// ID returns the node's stable insertion-order identity.
func (n *Node[N, A]) ID() int { return n.id }

// SetFlag turns on every bit in f.
func (n *Node[N, A]) SetFlag(f Flags) { n.Flags |= f }

// ClearFlag turns off every bit in f.
func (n *Node[N, A]) ClearFlag(f Flags) { n.Flags &^= f }

// HasFlag reports whether every bit in f is set.
func (n *Node[N, A]) HasFlag(f Flags) bool { return n.Flags.Has(f) }

// ResetScratch clears Flags and Cookie. Algorithms call this on every node
// they touch, both before and after running, per the package contract.
func (n *Node[N, A]) ResetScratch() {
	n.Flags = 0
	n.Cookie = nil
}

// Degree reports the number of arcs incident to n.
func (n *Node[N, A]) Degree() int { return n.inc.len() }
