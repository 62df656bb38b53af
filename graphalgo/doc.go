// Package graphalgo implements traversal and structural algorithms over
// graph.Graph: depth-first and breadth-first traversal, topological sort
// (DFS-based and Kahn's), Tarjan strongly-connected components,
// articulation points and biconnected components, spanning trees, minimum
// spanning trees (Kruskal and Prim), and source-to-target path search.
//
// Every algorithm accepts an arc Filter predicate (nil means accept all)
// so callers can restrict traversal to a subgraph — a residual network, a
// partially built spanning tree — without copying the graph. Every
// algorithm stamps Flags and Cookie on the nodes and arcs it visits and
// clears them again before returning, so a graph can be handed to one
// algorithm after another without manual cleanup.
package graphalgo
