// Package bst implements the backend-agnostic binary-search-tree
// algorithms shared by avltree, rbtree, treap, splaytree and randtree:
// rotation, search, leaf insertion, order-statistic select/rank, split and
// join. Every balancing policy lives in the backend package; this package
// only maintains BST order and the subtree-size invariant
// size(x) = 1 + size(left(x)) + size(right(x)).
package bst
