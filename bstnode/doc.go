// Package bstnode defines the record layout shared by every balanced binary
// search tree backend in this module: a key, an optional value, an optional
// subtree size (for order-statistic support), an optional color (red-black)
// or priority (treap), and three links.
//
// Every tree owns one sentinel Node, used in place of a nil pointer so a
// leaf's children can be dereferenced for color/size lookups without a
// branch. The sentinel is black and has size zero. It is created fresh per
// tree instance (not a package-level singleton) so that two trees never
// alias sentinel state.
package bstnode
