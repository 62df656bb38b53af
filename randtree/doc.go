// Package randtree implements a randomized binary search tree. Unlike a
// treap, no priority field is stored: balance is instead an emergent
// property of randomizing where each new node lands in the structure.
// Insertion recurses down choosing, with probability 1/(size+1) at each
// node visited, to make the new key the root of the current subtree (via a
// split of that subtree around the new key) rather than descending further;
// this reproduces the distribution of a node inserted into a tree built
// from a uniformly random permutation. Deletion merges the target's two
// children with a matching randomized policy, weighted by subtree size, so
// the resulting tree is distributed as if the deleted key had never been
// inserted. Because the balancing policy is split/join based, randtree also
// implements tree.Positional.
package randtree
