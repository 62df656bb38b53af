package netflow

import "context"

// ActiveSelection picks which active (excess > 0, not source/sink) node a
// preflow-push iteration discharges next.
type ActiveSelection int

const (
	// SelectFIFO discharges active nodes in the order they first became
	// active, re-queuing a node each time a push raises its excess again.
	SelectFIFO ActiveSelection = iota
	// SelectHighestLabel always discharges the active node with the
	// largest height; among equal heights, the one queued earliest.
	SelectHighestLabel
	// SelectRandom discharges the node in the middle of the active queue.
	// This is a fixed rule over queue positions: no random number
	// generator is used, so the order differs from FIFO but is not random.
	SelectRandom
)

type preflowState struct {
	g      *Network
	n      int
	height []int
	excess []int64
	active []bool
	count  []int // count[h] = number of nodes at height h, for the gap heuristic
}

// PreflowPush computes a maximum flow from source to sink via the
// generic push-relabel method, using sel to choose which active node to
// discharge at each step. All three selection strategies converge to the
// same flow value; they differ only in the number of relabel/push
// operations performed to get there.
//
// ctx is checked once per discharge; a nil ctx behaves like
// context.Background(). On cancellation, PreflowPush returns the sink's
// current excess (a valid preflow value, not necessarily maximum) and
// ctx.Err().
func PreflowPush(ctx context.Context, g *Network, source, sink int, sel ActiveSelection) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st := &preflowState{
		g:      g,
		n:      g.N(),
		height: make([]int, g.N()),
		excess: make([]int64, g.N()),
		active: make([]bool, g.N()),
		count:  make([]int, 2*g.N()+2),
	}
	st.height[source] = st.n
	st.count[0] = st.n - 1
	st.count[st.n] = 1

	for i, a := range g.Adj(source) {
		residual := a.Residual()
		if residual <= 0 {
			continue
		}
		g.Push(source, i, residual)
		st.excess[a.To] += residual
		st.excess[source] -= residual
		if a.To != source && a.To != sink {
			st.active[a.To] = true
		}
	}

	queue := st.initialActive(source, sink)
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return st.excess[sink], err
		}
		u := st.pickNext(queue, sel)
		queue = st.removeFromQueue(queue, u)
		pushed := st.discharge(u, source, sink)
		queue = append(queue, pushed...)
	}
	return st.excess[sink], nil
}

func (st *preflowState) initialActive(source, sink int) []int {
	var queue []int
	for v := 0; v < st.n; v++ {
		if v != source && v != sink && st.excess[v] > 0 {
			queue = append(queue, v)
		}
	}
	return queue
}

func (st *preflowState) pickNext(queue []int, sel ActiveSelection) int {
	switch sel {
	case SelectHighestLabel:
		best := queue[0]
		for _, u := range queue[1:] {
			if st.height[u] > st.height[best] {
				best = u
			}
		}
		return best
	case SelectRandom:
		return queue[len(queue)/2]
	default: // SelectFIFO
		return queue[0]
	}
}

func (st *preflowState) removeFromQueue(queue []int, u int) []int {
	for i, v := range queue {
		if v == u {
			return append(queue[:i], queue[i+1:]...)
		}
	}
	return queue
}

// discharge pushes u's excess to admissible neighbors, relabeling u when no
// admissible arc remains, until u's excess is exhausted or it has been
// relabeled past the point any further push is possible. It returns the
// set of nodes newly made active by this discharge.
func (st *preflowState) discharge(u, source, sink int) []int {
	var woken []int
	for st.excess[u] > 0 {
		pushedAny := false
		for i, a := range st.g.Adj(u) {
			residual := a.Residual()
			if residual <= 0 || st.height[u] != st.height[a.To]+1 {
				continue
			}
			delta := st.excess[u]
			if residual < delta {
				delta = residual
			}
			st.g.Push(u, i, delta)
			st.excess[u] -= delta
			st.excess[a.To] += delta
			if a.To != source && a.To != sink && !st.active[a.To] {
				st.active[a.To] = true
				woken = append(woken, a.To)
			}
			pushedAny = true
			if st.excess[u] == 0 {
				break
			}
		}
		if st.excess[u] == 0 {
			break
		}
		if !pushedAny {
			st.relabel(u)
		}
	}
	if st.excess[u] == 0 {
		st.active[u] = false
	} else {
		woken = append(woken, u)
	}
	return woken
}

// relabel raises u's height to one more than the lowest height among
// neighbors it can still push residual capacity to. It updates count to
// reflect u's move and, when that move empties the height class u left,
// invokes the gap heuristic: every other node above the emptied height is
// provably unable to reach sink any longer and is relabeled to n+1 in bulk.
func (st *preflowState) relabel(u int) {
	old := st.height[u]
	min := 2*st.n + 1
	for _, a := range st.g.Adj(u) {
		if a.Residual() > 0 && st.height[a.To]+1 < min {
			min = st.height[a.To] + 1
		}
	}
	if min > 2*st.n {
		return
	}
	st.height[u] = min
	st.count[old]--
	st.count[min]++
	if st.count[old] == 0 && old < st.n {
		st.gap(u, old)
	}
}

// gap implements the gap heuristic: once height class h is empty, no node
// with height in (h, n) can still reach sink, since a path to sink would
// have had to cross height h. Every such node (other than u, already moved
// by relabel) jumps directly to n+1, skipping the relabels it would
// otherwise need one height at a time.
func (st *preflowState) gap(u, h int) {
	for v := 0; v < st.n; v++ {
		if v == u || st.height[v] <= h || st.height[v] >= st.n {
			continue
		}
		st.count[st.height[v]]--
		st.height[v] = st.n + 1
		st.count[st.n+1]++
	}
}
