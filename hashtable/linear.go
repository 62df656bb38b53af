package hashtable

import "github.com/arborio/arborio/dlist"

// Linear is a hash table using linear hashing: buckets grow one at a time
// (rather than doubling the whole table at once) as the load factor rises,
// tracked by a level and a split pointer s. A key's bucket is
// h(key) mod (baseSize * 2^level), promoted to the next level's hash
// (mod baseSize * 2^(level+1)) whenever that result would land below s —
// the bucket it would have hashed to has already been split this round.
type Linear[K comparable, V any] struct {
	buckets  []*dlist.List[entry[K, V]]
	baseSize int
	level    int
	splitPtr int
	n        int
	hashFn   HashFunc[K]
	maxLoad  float64
}

// LinearOption configures a Linear table at construction.
type LinearOption[K comparable, V any] func(*linearConfig[K, V])

type linearConfig[K comparable, V any] struct {
	baseSize int
	hashFn   HashFunc[K]
	maxLoad  float64
}

// WithLinearHashFunc overrides the default hash function.
func WithLinearHashFunc[K comparable, V any](fn HashFunc[K]) LinearOption[K, V] {
	if fn == nil {
		panic("hashtable: WithLinearHashFunc(nil)")
	}
	return func(c *linearConfig[K, V]) { c.hashFn = fn }
}

// WithLinearBaseSize sets the bucket count at level 0 (the "base prime P"
// of the classical presentation; any positive size works, a small prime
// just spreads low-order-bit-correlated keys better). Default 1.
func WithLinearBaseSize[K comparable, V any](p int) LinearOption[K, V] {
	if p <= 0 {
		panic("hashtable: WithLinearBaseSize must be positive")
	}
	return func(c *linearConfig[K, V]) { c.baseSize = p }
}

// WithLinearMaxLoad sets the average-chain-length threshold that triggers
// a one-bucket split. Default 1.0.
func WithLinearMaxLoad[K comparable, V any](f float64) LinearOption[K, V] {
	if f <= 0 {
		panic("hashtable: WithLinearMaxLoad must be positive")
	}
	return func(c *linearConfig[K, V]) { c.maxLoad = f }
}

// NewLinear returns an empty linear-hashing table.
func NewLinear[K comparable, V any](opts ...LinearOption[K, V]) *Linear[K, V] {
	c := linearConfig[K, V]{baseSize: 1, maxLoad: 1.0}
	for _, o := range opts {
		o(&c)
	}
	if c.hashFn == nil {
		c.hashFn = defaultHashFunc[K]()
	}
	t := &Linear[K, V]{baseSize: c.baseSize, hashFn: c.hashFn, maxLoad: c.maxLoad}
	t.buckets = make([]*dlist.List[entry[K, V]], c.baseSize)
	for i := range t.buckets {
		t.buckets[i] = dlist.New[entry[K, V]]()
	}
	return t
}

// Len reports the number of stored entries.
func (t *Linear[K, V]) Len() int { return t.n }

func (t *Linear[K, V]) bucketCount() int { return t.baseSize << uint(t.level) }

func (t *Linear[K, V]) indexFor(key K) int {
	h := t.hashFn(key)
	idx := int(h % uint64(t.bucketCount()))
	if idx < t.splitPtr {
		idx = int(h % uint64(t.baseSize<<uint(t.level+1)))
	}
	return idx
}

func (t *Linear[K, V]) findNode(idx int, key K) *dlist.Node[entry[K, V]] {
	var found *dlist.Node[entry[K, V]]
	t.buckets[idx].Each(func(n *dlist.Node[entry[K, V]]) bool {
		if n.Value.key == key {
			found = n
			return false
		}
		return true
	})
	return found
}

// Put inserts or overwrites the value stored for key.
func (t *Linear[K, V]) Put(key K, val V) {
	idx := t.indexFor(key)
	if n := t.findNode(idx, key); n != nil {
		n.Value = entry[K, V]{key: key, val: val}
		return
	}
	t.buckets[idx].PushBack(entry[K, V]{key: key, val: val})
	t.n++
	if float64(t.n)/float64(len(t.buckets)) > t.maxLoad {
		t.split()
	}
}

// Get returns the value stored for key.
func (t *Linear[K, V]) Get(key K) (V, bool) {
	idx := t.indexFor(key)
	if n := t.findNode(idx, key); n != nil {
		return n.Value.val, true
	}
	var zero V
	return zero, false
}

// Delete removes key, reporting whether it was present.
func (t *Linear[K, V]) Delete(key K) bool {
	idx := t.indexFor(key)
	n := t.findNode(idx, key)
	if n == nil {
		return false
	}
	t.buckets[idx].Remove(n)
	t.n--
	return true
}

// split carries out one step of linear hashing's incremental growth: the
// bucket at splitPtr is redistributed between itself and a freshly
// appended bucket, using the next level's modulus, then splitPtr advances
// (wrapping into a new level once every bucket at this level has split).
func (t *Linear[K, V]) split() {
	oldIdx := t.splitPtr
	newIdx := t.bucketCount() + t.splitPtr
	newBucket := dlist.New[entry[K, V]]()
	t.buckets = append(t.buckets, newBucket)

	oldBucket := t.buckets[oldIdx]
	keep := dlist.New[entry[K, V]]()
	newMod := uint64(t.baseSize << uint(t.level+1))
	oldBucket.Each(func(n *dlist.Node[entry[K, V]]) bool {
		if int(t.hashFn(n.Value.key)%newMod) == newIdx {
			newBucket.PushBack(n.Value)
		} else {
			keep.PushBack(n.Value)
		}
		return true
	})
	t.buckets[oldIdx] = keep

	t.splitPtr++
	if t.splitPtr >= t.bucketCount() {
		t.splitPtr = 0
		t.level++
	}
}

// Each visits every entry in unspecified order, stopping early if visit
// returns false.
func (t *Linear[K, V]) Each(visit func(K, V) bool) {
	for _, b := range t.buckets {
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
