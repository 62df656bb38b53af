package graphalgo_test

import (
	"fmt"

	"github.com/arborio/arborio/graph"
	"github.com/arborio/arborio/graphalgo"
)

// ExampleBFS demonstrates breadth-first distances from a source node over
// a small directed acyclic graph.
func ExampleBFS() {
	g := graph.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	d := g.InsertNode("d")
	g.InsertArc(a, b, 1)
	g.InsertArc(a, c, 1)
	g.InsertArc(b, d, 1)
	g.InsertArc(c, d, 1)

	res, err := graphalgo.BFS[string, int](g, a, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Dist[a], res.Dist[b], res.Dist[d])
	// Output:
	// 0 1 2
}

// ExampleTopoSortKahn demonstrates a valid topological ordering of a small
// dependency graph.
func ExampleTopoSortKahn() {
	g := graph.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	g.InsertArc(a, b, 1)
	g.InsertArc(b, c, 1)

	order, err := graphalgo.TopoSortKahn[string, int](g, nil)
	if err != nil {
		panic(err)
	}
	for _, n := range order {
		fmt.Println(n.Info)
	}
	// Output:
	// a
	// b
	// c
}
