// Package avltree implements a height-balanced binary search tree: for
// every node, |height(left) - height(right)| <= 1. Each node tracks a
// balance factor (height(right) - height(left), in [-1,1] at rest) rather
// than an absolute height, so insertion and deletion rebalance by walking
// parent pointers and adjusting factors in place, rotating at most twice
// per level. Subtree sizes are tracked unconditionally, so Select/Rank are
// always available in O(log n).
package avltree
