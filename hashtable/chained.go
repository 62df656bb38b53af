package hashtable

import "github.com/arborio/arborio/dlist"

type entry[K comparable, V any] struct {
	key K
	val V
}

// Chained is a hash table resolving collisions by separate chaining: each
// bucket is a dlist of entries.
type Chained[K comparable, V any] struct {
	buckets []*dlist.List[entry[K, V]]
	n       int
	hashFn  HashFunc[K]
	maxLoad float64
}

// ChainedOption configures a Chained table at construction.
type ChainedOption[K comparable, V any] func(*chainedConfig[K, V])

type chainedConfig[K comparable, V any] struct {
	capacity int
	hashFn   HashFunc[K]
	maxLoad  float64
}

// WithChainedHashFunc overrides the default hash function.
func WithChainedHashFunc[K comparable, V any](fn HashFunc[K]) ChainedOption[K, V] {
	if fn == nil {
		panic("hashtable: WithChainedHashFunc(nil)")
	}
	return func(c *chainedConfig[K, V]) { c.hashFn = fn }
}

// WithChainedCapacity sets the initial bucket count. It panics on a
// non-positive capacity.
func WithChainedCapacity[K comparable, V any](n int) ChainedOption[K, V] {
	if n <= 0 {
		panic("hashtable: WithChainedCapacity must be positive")
	}
	return func(c *chainedConfig[K, V]) { c.capacity = n }
}

// WithChainedMaxLoad sets the average-chain-length threshold that triggers
// a doubling resize. Default 1.0.
func WithChainedMaxLoad[K comparable, V any](f float64) ChainedOption[K, V] {
	if f <= 0 {
		panic("hashtable: WithChainedMaxLoad must be positive")
	}
	return func(c *chainedConfig[K, V]) { c.maxLoad = f }
}

// NewChained returns an empty chained hash table.
func NewChained[K comparable, V any](opts ...ChainedOption[K, V]) *Chained[K, V] {
	c := chainedConfig[K, V]{capacity: 16, maxLoad: 1.0}
	for _, o := range opts {
		o(&c)
	}
	if c.hashFn == nil {
		c.hashFn = defaultHashFunc[K]()
	}
	t := &Chained[K, V]{
		buckets: make([]*dlist.List[entry[K, V]], c.capacity),
		hashFn:  c.hashFn,
		maxLoad: c.maxLoad,
	}
	return t
}

func (t *Chained[K, V]) bucketIndex(key K) int {
	return int(t.hashFn(key) % uint64(len(t.buckets)))
}

func (t *Chained[K, V]) findNode(idx int, key K) *dlist.Node[entry[K, V]] {
	b := t.buckets[idx]
	if b == nil {
		return nil
	}
	var found *dlist.Node[entry[K, V]]
	b.Each(func(n *dlist.Node[entry[K, V]]) bool {
		if n.Value.key == key {
			found = n
			return false
		}
		return true
	})
	return found
}

// Len reports the number of stored entries.
func (t *Chained[K, V]) Len() int { return t.n }

// Put inserts or overwrites the value stored for key.
func (t *Chained[K, V]) Put(key K, val V) {
	idx := t.bucketIndex(key)
	if n := t.findNode(idx, key); n != nil {
		n.Value = entry[K, V]{key: key, val: val}
		return
	}
	if t.buckets[idx] == nil {
		t.buckets[idx] = dlist.New[entry[K, V]]()
	}
	t.buckets[idx].PushBack(entry[K, V]{key: key, val: val})
	t.n++
	if float64(t.n)/float64(len(t.buckets)) > t.maxLoad {
		t.resize(len(t.buckets) * 2)
	}
}

// Get returns the value stored for key.
func (t *Chained[K, V]) Get(key K) (V, bool) {
	idx := t.bucketIndex(key)
	if n := t.findNode(idx, key); n != nil {
		return n.Value.val, true
	}
	var zero V
	return zero, false
}

// Delete removes key, reporting whether it was present.
func (t *Chained[K, V]) Delete(key K) bool {
	idx := t.bucketIndex(key)
	n := t.findNode(idx, key)
	if n == nil {
		return false
	}
	t.buckets[idx].Remove(n)
	t.n--
	return true
}

func (t *Chained[K, V]) resize(newCap int) {
	old := t.buckets
	t.buckets = make([]*dlist.List[entry[K, V]], newCap)
	for _, b := range old {
		if b == nil {
			continue
		}
		b.Each(func(n *dlist.Node[entry[K, V]]) bool {
			idx := t.bucketIndex(n.Value.key)
			if t.buckets[idx] == nil {
				t.buckets[idx] = dlist.New[entry[K, V]]()
			}
			t.buckets[idx].PushBack(n.Value)
			return true
		})
	}
}

// Each visits every entry in unspecified order, stopping early if visit
// returns false.
func (t *Chained[K, V]) Each(visit func(K, V) bool) {
	for _, b := range t.buckets {
		if b == nil {
			continue
		}
		cont := true
		b.Each(func(n *dlist.Node[entry[K, V]]) bool {
			if !visit(n.Value.key, n.Value.val) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return
		}
	}
}
