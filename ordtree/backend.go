package ordtree

import (
	"math/rand"

	"github.com/arborio/arborio/avltree"
	"github.com/arborio/arborio/bst"
	"github.com/arborio/arborio/randtree"
	"github.com/arborio/arborio/rbtree"
	"github.com/arborio/arborio/splaytree"
	"github.com/arborio/arborio/treap"
	"github.com/arborio/arborio/tree"
)

// Backend selects which balancing policy a Set/Map/MultiSet/MultiMap is
// built on.
type Backend int

const (
	AVL Backend = iota
	RB
	RBTopDown
	Treap
	Splay
	RandTree
)

type config struct {
	backend  Backend
	allowDup bool
	hasSeed  bool
	seed     int64
	rng      *rand.Rand
}

// Option configures an ordtree container at construction.
type Option func(*config)

// WithBackend selects the underlying balancing policy. AVL is the default.
func WithBackend(b Backend) Option { return func(c *config) { c.backend = b } }

// WithSeed seeds the RNG of a Treap or RandTree backend deterministically.
// Ignored by other backends.
func WithSeed(seed int64) Option { return func(c *config) { c.seed = seed; c.hasSeed = true } }

// WithRand supplies an explicit RNG to a Treap or RandTree backend, taking
// precedence over WithSeed. Ignored by other backends.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ordtree: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

func newBackend[K, V any](cmp tree.Comparator[K], allowDup bool, c config) tree.Ranked[K, V] {
	bc := bst.Comparator[K](cmp)
	switch c.backend {
	case RB:
		var opts []rbtree.Option
		if allowDup {
			opts = append(opts, rbtree.WithDuplicates())
		}
		return rbtree.New[K, V](bc, opts...)
	case RBTopDown:
		var opts []rbtree.Option
		if allowDup {
			opts = append(opts, rbtree.WithDuplicates())
		}
		return rbtree.NewTopDown[K, V](bc, opts...)
	case Treap:
		opts := treapOpts(allowDup, c)
		return treap.New[K, V](bc, opts...)
	case Splay:
		var opts []splaytree.Option
		if allowDup {
			opts = append(opts, splaytree.WithDuplicates())
		}
		return splaytree.New[K, V](bc, opts...)
	case RandTree:
		opts := randtreeOpts(allowDup, c)
		return randtree.New[K, V](bc, opts...)
	default:
		var opts []avltree.Option
		if allowDup {
			opts = append(opts, avltree.WithDuplicates())
		}
		return avltree.New[K, V](bc, opts...)
	}
}

func treapOpts(allowDup bool, c config) []treap.Option {
	var opts []treap.Option
	if allowDup {
		opts = append(opts, treap.WithDuplicates())
	}
	switch {
	case c.rng != nil:
		opts = append(opts, treap.WithRand(c.rng))
	case c.hasSeed:
		opts = append(opts, treap.WithSeed(c.seed))
	}
	return opts
}

func randtreeOpts(allowDup bool, c config) []randtree.Option {
	var opts []randtree.Option
	if allowDup {
		opts = append(opts, randtree.WithDuplicates())
	}
	switch {
	case c.rng != nil:
		opts = append(opts, randtree.WithRand(c.rng))
	case c.hasSeed:
		opts = append(opts, randtree.WithSeed(c.seed))
	}
	return opts
}
