package graph_test

import (
	"fmt"

	"github.com/arborio/arborio/graph"
)

// ExampleListGraph demonstrates building a small directed graph and
// walking one node's outgoing arcs.
func ExampleListGraph() {
	g := graph.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	g.InsertArc(a, b, 1)
	g.InsertArc(a, c, 2)

	var targets []string
	g.Incident(a, func(arc *graph.Arc[string, int]) bool {
		other, _ := g.ConnectedNode(arc, a)
		targets = append(targets, other.Info)
		return true
	})
	fmt.Println(targets)
	// Output:
	// [b c]
}
