package tree_test

import (
	"github.com/arborio/arborio/avltree"
	"github.com/arborio/arborio/randtree"
	"github.com/arborio/arborio/rbtree"
	"github.com/arborio/arborio/splaytree"
	"github.com/arborio/arborio/treap"
	"github.com/arborio/arborio/tree"
)

// Every ranked backend satisfies tree.Ranked purely by having the right
// method set: none of these packages imports tree. These assertions exist
// only to catch an accidental signature drift at compile time.
var (
	_ tree.Ranked[int, int] = (*avltree.Tree[int, int])(nil)
	_ tree.Ranked[int, int] = (*rbtree.Tree[int, int])(nil)
	_ tree.Ranked[int, int] = (*splaytree.Tree[int, int])(nil)
	_ tree.Ranked[int, int] = (*treap.Tree[int, int])(nil)
	_ tree.Ranked[int, int] = (*randtree.Tree[int, int])(nil)

	_ tree.Positional[int, int] = (*treap.Tree[int, int])(nil)
	_ tree.Positional[int, int] = (*randtree.Tree[int, int])(nil)
)
