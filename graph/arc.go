package graph

// Arc is a graph edge carrying a user payload, a scratch Flags bitset, and
// a scratch Cookie. For a directed arc, src/tgt fix the arrow's direction.
// For an undirected arc, the same Arc value is reachable from both
// endpoints' incidence containers, and src/tgt record only which end
// inserted first; ConnectedNode is the direction-agnostic accessor.
type Arc[N, A any] struct {
	Info   A
	Flags  Flags
	Cookie any

	id         int
	owner      any
	pos        int
	src, tgt   *Node[N, A]
	directed   bool
	srcH, tgtH arcHandle
}

// ID returns the arc's stable insertion-order identity.
func (a *Arc[N, A]) ID() int { return a.id }

// Directed reports whether a has a fixed direction from Src to Tgt.
func (a *Arc[N, A]) Directed() bool { return a.directed }

// Src returns the arc's source endpoint.
func (a *Arc[N, A]) Src() *Node[N, A] { return a.src }

// Tgt returns the arc's target endpoint.
func (a *Arc[N, A]) Tgt() *Node[N, A] { return a.tgt }

// SetFlag turns on every bit in f.
func (a *Arc[N, A]) SetFlag(f Flags) { a.Flags |= f }

// ClearFlag turns off every bit in f.
func (a *Arc[N, A]) ClearFlag(f Flags) { a.Flags &^= f }

// HasFlag reports whether every bit in f is set.
func (a *Arc[N, A]) HasFlag(f Flags) bool { return a.Flags.Has(f) }

// ResetScratch clears Flags and Cookie.
func (a *Arc[N, A]) ResetScratch() {
	a.Flags = 0
	a.Cookie = nil
}
