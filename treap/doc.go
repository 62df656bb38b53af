// Package treap implements a randomized treap: BST-ordered by key,
// min-heap-ordered by an independently drawn priority. Insertion attaches a
// new leaf with a fresh random priority and rotates it upward while its
// priority is smaller than its parent's; deletion rotates the target node
// downward — always toward the child with the smaller priority — until it
// is a leaf, then detaches it. The positional operations are split/join
// based instead: InsertAt, RemoveAt and SplitAt split the tree by position
// using cached subtree sizes and merge the pieces back by priority, so
// treap also implements tree.Positional. Seed the
// RNG with WithSeed for reproducible runs across repeated test executions.
package treap
