package graph

import "github.com/arborio/arborio/dlist"

// arcHandle is an opaque reference into a node's incidence container,
// letting RemoveArc detach an arc from both endpoints in O(1) without a
// linear search.
type arcHandle any

// incidence is the per-node storage for incident arcs. ListGraph and
// ArrayGraph each supply their own implementation; everything above this
// layer — Node, Arc, the Graph interface, and every graphalgo routine —
// is identical across backends.
type incidence[N, A any] interface {
	pushBack(a *Arc[N, A]) arcHandle
	remove(h arcHandle)
	each(fn func(*Arc[N, A]) bool)
	len() int
}

// listIncidence stores incident arcs in a circular doubly-linked list:
// O(1) insert, O(1) remove given a handle, insertion-order iteration that
// never changes under removal.
type listIncidence[N, A any] struct {
	l *dlist.List[*Arc[N, A]]
}

func newListIncidence[N, A any]() *listIncidence[N, A] {
	return &listIncidence[N, A]{l: dlist.New[*Arc[N, A]]()}
}

func (li *listIncidence[N, A]) pushBack(a *Arc[N, A]) arcHandle {
	return li.l.PushBack(a)
}

func (li *listIncidence[N, A]) remove(h arcHandle) {
	li.l.Remove(h.(*dlist.Node[*Arc[N, A]]))
}

func (li *listIncidence[N, A]) each(fn func(*Arc[N, A]) bool) {
	li.l.Each(func(n *dlist.Node[*Arc[N, A]]) bool { return fn(n.Value) })
}

func (li *listIncidence[N, A]) len() int { return li.l.Len() }

// arraySlot pairs a stored arc with a box holding its current index, so a
// handle taken at push time stays valid after later slots are swapped.
type arraySlot[N, A any] struct {
	arc *Arc[N, A]
	idx *int
}

// arrayIncidence stores incident arcs in a dynamic array: O(1) amortized
// insert, O(1) remove-by-handle via swap-with-last (at the cost of
// reordering the surviving slot that absorbs the hole).
type arrayIncidence[N, A any] struct {
	data []*arraySlot[N, A]
}

func newArrayIncidence[N, A any]() *arrayIncidence[N, A] {
	return &arrayIncidence[N, A]{}
}

func (ai *arrayIncidence[N, A]) pushBack(a *Arc[N, A]) arcHandle {
	idx := new(int)
	*idx = len(ai.data)
	ai.data = append(ai.data, &arraySlot[N, A]{arc: a, idx: idx})
	return idx
}

func (ai *arrayIncidence[N, A]) remove(h arcHandle) {
	box := h.(*int)
	i := *box
	last := len(ai.data) - 1
	ai.data[i] = ai.data[last]
	*ai.data[i].idx = i
	ai.data[last] = nil
	ai.data = ai.data[:last]
}

func (ai *arrayIncidence[N, A]) each(fn func(*Arc[N, A]) bool) {
	for _, s := range ai.data {
		if !fn(s.arc) {
			return
		}
	}
}

func (ai *arrayIncidence[N, A]) len() int { return len(ai.data) }
