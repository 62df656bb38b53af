// Package rbtree implements red-black trees: root is black, red nodes have
// only black children, and every root-to-sentinel path carries the same
// count of black nodes. Two construction modes are offered: the default
// bottom-up mode (CLRS-style: insert red, fix up red-red violations by
// recoloring or rotating while walking toward the root) and a top-down mode
// (NewTopDown: split 4-nodes — a black node with two red children — on the
// single downward insertion pass, so the leaf always lands in a
// black-parented slot). Deletion always runs the bottom-up double-black
// fixup regardless of insertion mode; there is no top-down delete pass.
package rbtree
