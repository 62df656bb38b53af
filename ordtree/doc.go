// Package ordtree provides ordered Set, MultiSet, Map and MultiMap
// container types generic over the balancing policy used underneath. Each
// adapter wraps one of avltree, rbtree, treap, splaytree or randtree,
// selected at construction via WithBackend, and is written only against
// the tree.Ordered / tree.Ranked interfaces so call sites never need to
// know which backend they got.
package ordtree
