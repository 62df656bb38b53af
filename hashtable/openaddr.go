package hashtable

type slotState int8

const (
	slotEmpty slotState = iota
	slotBusy
	slotDeleted
)

type slot[K comparable, V any] struct {
	state slotState
	key   K
	val   V
}

// OpenAddressed is a hash table resolving collisions by double hashing: the
// probe sequence for key is (h1(key) + i*h2(key)) mod capacity, with
// capacity always a power of two and h2 forced odd so every probe sequence
// visits the whole table. Slots carry their status tag alongside the
// entry rather than in a parallel bitmap, so a probe touches one cache
// line instead of two.
type OpenAddressed[K comparable, V any] struct {
	slots      []slot[K, V]
	n          int
	tombstones int
	h1, h2     HashFunc[K]
	maxLoad    float64
	maxTomb    float64
}

// OpenAddressedOption configures an OpenAddressed table at construction.
type OpenAddressedOption[K comparable, V any] func(*openConfig[K, V])

type openConfig[K comparable, V any] struct {
	capacity int
	h1, h2   HashFunc[K]
	maxLoad  float64
	maxTomb  float64
}

// WithOpenHashFuncs overrides the default pair of probe hash functions.
func WithOpenHashFuncs[K comparable, V any](h1, h2 HashFunc[K]) OpenAddressedOption[K, V] {
	if h1 == nil || h2 == nil {
		panic("hashtable: WithOpenHashFuncs(nil)")
	}
	return func(c *openConfig[K, V]) { c.h1, c.h2 = h1, h2 }
}

// WithOpenCapacity sets the initial slot count, rounded up to a power of
// two. It panics on a non-positive capacity.
func WithOpenCapacity[K comparable, V any](n int) OpenAddressedOption[K, V] {
	if n <= 0 {
		panic("hashtable: WithOpenCapacity must be positive")
	}
	return func(c *openConfig[K, V]) { c.capacity = n }
}

// WithOpenMaxLoad sets the occupancy fraction (including tombstones) that
// triggers a resize. Default 0.6, a conventional open-addressing ceiling
// that keeps expected probe length low without wasting more than 2/5 of
// the table.
func WithOpenMaxLoad[K comparable, V any](f float64) OpenAddressedOption[K, V] {
	if f <= 0 || f >= 1 {
		panic("hashtable: WithOpenMaxLoad must be in (0,1)")
	}
	return func(c *openConfig[K, V]) { c.maxLoad = f }
}

// WithOpenMaxTombstoneRatio sets the fraction of all slots that may be
// tombstones before a same-size rehash purges them, decided
// independently of the live-entry load factor so a delete-heavy workload
// cannot degrade every probe into a near-full-table scan while rarely
// growing. Default 0.25.
func WithOpenMaxTombstoneRatio[K comparable, V any](f float64) OpenAddressedOption[K, V] {
	if f <= 0 || f >= 1 {
		panic("hashtable: WithOpenMaxTombstoneRatio must be in (0,1)")
	}
	return func(c *openConfig[K, V]) { c.maxTomb = f }
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// NewOpenAddressed returns an empty open-addressed hash table.
func NewOpenAddressed[K comparable, V any](opts ...OpenAddressedOption[K, V]) *OpenAddressed[K, V] {
	c := openConfig[K, V]{capacity: 16, maxLoad: 0.6, maxTomb: 0.25}
	for _, o := range opts {
		o(&c)
	}
	if c.h1 == nil || c.h2 == nil {
		base := defaultHashFunc[K]()
		c.h1 = base
		c.h2 = func(k K) uint64 { return base(k)*0x9E3779B97F4A7C15 | 1 }
	}
	return &OpenAddressed[K, V]{
		slots:   make([]slot[K, V], nextPow2(c.capacity)),
		h1:      c.h1,
		h2:      c.h2,
		maxLoad: c.maxLoad,
		maxTomb: c.maxTomb,
	}
}

// Len reports the number of live entries.
func (t *OpenAddressed[K, V]) Len() int { return t.n }

func (t *OpenAddressed[K, V]) probe(key K, i int) int {
	mask := uint64(len(t.slots) - 1)
	return int((t.h1(key) + uint64(i)*(t.h2(key)|1)) & mask)
}

// Put inserts or overwrites the value stored for key.
func (t *OpenAddressed[K, V]) Put(key K, val V) {
	if float64(t.n+t.tombstones+1)/float64(len(t.slots)) > t.maxLoad {
		t.resize(len(t.slots) * 2)
	}
	firstDeleted := -1
	for i := 0; i < len(t.slots); i++ {
		idx := t.probe(key, i)
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			target := idx
			if firstDeleted >= 0 {
				target = firstDeleted
				t.tombstones--
			}
			t.slots[target] = slot[K, V]{state: slotBusy, key: key, val: val}
			t.n++
			return
		case slotDeleted:
			if firstDeleted < 0 {
				firstDeleted = idx
			}
		case slotBusy:
			if s.key == key {
				s.val = val
				return
			}
		}
	}
	// Table is degenerately full (should not happen given maxLoad < 1);
	// grow and retry once.
	t.resize(len(t.slots) * 2)
	t.Put(key, val)
}

func (t *OpenAddressed[K, V]) find(key K) int {
	for i := 0; i < len(t.slots); i++ {
		idx := t.probe(key, i)
		s := &t.slots[idx]
		switch s.state {
		case slotEmpty:
			return -1
		case slotBusy:
			if s.key == key {
				return idx
			}
		}
	}
	return -1
}

// Get returns the value stored for key.
func (t *OpenAddressed[K, V]) Get(key K) (V, bool) {
	if idx := t.find(key); idx >= 0 {
		return t.slots[idx].val, true
	}
	var zero V
	return zero, false
}

// Delete removes key, reporting whether it was present. The slot is left
// tombstoned rather than emptied so later probe sequences that passed
// through it still find keys beyond it.
func (t *OpenAddressed[K, V]) Delete(key K) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}
	var zeroK K
	var zeroV V
	t.slots[idx] = slot[K, V]{state: slotDeleted, key: zeroK, val: zeroV}
	t.n--
	t.tombstones++
	if float64(t.tombstones)/float64(len(t.slots)) > t.maxTomb {
		t.resize(len(t.slots))
	}
	return true
}

// resize rebuilds the table at newCap (which may equal the current
// capacity, used to purge tombstones without growing).
func (t *OpenAddressed[K, V]) resize(newCap int) {
	old := t.slots
	t.slots = make([]slot[K, V], nextPow2(newCap))
	t.n, t.tombstones = 0, 0
	for _, s := range old {
		if s.state == slotBusy {
			t.Put(s.key, s.val)
		}
	}
}

// Each visits every live entry in unspecified order, stopping early if
// visit returns false.
func (t *OpenAddressed[K, V]) Each(visit func(K, V) bool) {
	for _, s := range t.slots {
		if s.state == slotBusy {
			if !visit(s.key, s.val) {
				return
			}
		}
	}
}
