// Package splaytree implements a splay tree: every access — search, insert,
// or delete — moves the accessed node to the root via a sequence of zig,
// zig-zig and zig-zag rotations, giving amortized O(log n) operations and
// making recently touched keys cheap to reach again.
//
// Because every access restructures the tree, outstanding iterators (and
// even a second lookup from the same goroutine) are unsafe across accesses:
// callers that need a stable view should take a snapshot (e.g. via InOrder
// into a slice) rather than hold a Select/Search result across another
// call. See DESIGN.md for more on this tradeoff.
package splaytree
