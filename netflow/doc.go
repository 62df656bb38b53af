// Package netflow implements a network-flow engine over an explicit
// residual graph: every arc added to a Network immediately gets a paired
// residual arc pointing the other way, and the two carry each other's
// slice index as a back-pointer, so augmenting a path is a matter of
// walking forward arcs down in capacity and their residual partners up,
// never recomputing "capacity minus flow" from a side table.
//
// Four maximum-flow algorithms share this representation: Ford-Fulkerson
// (augment along any DFS path), Edmonds-Karp (the same loop with BFS path
// selection, bounding the augmentation count), Dinic (level graphs plus
// blocking flow), and preflow-push (FIFO, highest-label, and random active
// node selection). MinCut extracts the minimum cut from a network that has
// already been driven to a maximum flow. EdgeConnectivity and
// VertexConnectivity derive k-connectivity from repeated max-flow calls.
// MinCostMaxFlow computes a minimum-cost maximum flow by successive
// shortest augmenting paths, each found by Bellman-Ford on the residual
// graph; CancelNegativeCycles lowers the cost of an existing flow by
// canceling negative-cost residual cycles.
package netflow
