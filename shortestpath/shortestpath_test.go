package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio/arborio/graph"
	"github.com/arborio/arborio/shortestpath"
)

func weightIdentity(w int) int64 { return int64(w) }

// buildFiveNodeGraph builds a small weighted directed graph:
//
//	s -(10)-> a -(1)-> b -(3)-> t
//	s -(5)->  b
//	a -(2)-> t
func buildFiveNodeGraph() (graph.Graph[string, int], map[string]*graph.Node[string, int]) {
	g := graph.NewListGraph[string, int](true)
	nodes := map[string]*graph.Node[string, int]{}
	for _, name := range []string{"s", "a", "b", "t", "x"} {
		nodes[name] = g.InsertNode(name)
	}
	g.InsertArc(nodes["s"], nodes["a"], 10)
	g.InsertArc(nodes["s"], nodes["b"], 5)
	g.InsertArc(nodes["a"], nodes["b"], 1)
	g.InsertArc(nodes["a"], nodes["t"], 2)
	g.InsertArc(nodes["b"], nodes["t"], 3)
	return g, nodes
}

func TestDijkstraLazyDistancesAndPath(t *testing.T) {
	g, nodes := buildFiveNodeGraph()
	res, err := shortestpath.DijkstraLazy[string, int](g, nodes["s"], nil, weightIdentity, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[nodes["s"]])
	assert.Equal(t, int64(5), res.Dist[nodes["b"]])
	assert.Equal(t, int64(8), res.Dist[nodes["t"]])
	_, reached := res.Dist[nodes["x"]]
	assert.False(t, reached)

	path := res.Path(g, nodes["s"], nodes["t"])
	assert.Len(t, path, 2)
}

func TestDijkstraRejectsNegativeWeights(t *testing.T) {
	g, nodes := buildFiveNodeGraph()
	neg := func(w int) int64 { return -1 }
	_, err := shortestpath.DijkstraLazy[string, int](g, nodes["s"], nil, neg, false)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeWeight)
}

func TestBellmanFordMatchesDijkstraOnNonNegativeGraph(t *testing.T) {
	g, nodes := buildFiveNodeGraph()
	dij, err := shortestpath.DijkstraLazy[string, int](g, nodes["s"], nil, weightIdentity, false)
	require.NoError(t, err)
	bf, err := shortestpath.BellmanFord[string, int](g, nodes["s"], nil, weightIdentity, false)
	require.NoError(t, err)
	for n, d := range dij.Dist {
		assert.Equal(t, d, bf.Dist[n])
	}
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	g := graph.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	g.InsertArc(a, b, 1)
	g.InsertArc(b, c, -3)
	g.InsertArc(c, a, 1)

	_, err := shortestpath.BellmanFord[string, int](g, a, nil, weightIdentity, false)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestSPFAMatchesBellmanFordAndDetectsNegativeCycle(t *testing.T) {
	g, nodes := buildFiveNodeGraph()
	bf, err := shortestpath.BellmanFord[string, int](g, nodes["s"], nil, weightIdentity, false)
	require.NoError(t, err)
	spfa, err := shortestpath.SPFA[string, int](g, nodes["s"], nil, weightIdentity, false)
	require.NoError(t, err)
	for n, d := range bf.Dist {
		assert.Equal(t, d, spfa.Dist[n])
	}

	cyc := graph.NewListGraph[string, int](true)
	a := cyc.InsertNode("a")
	b := cyc.InsertNode("b")
	c := cyc.InsertNode("c")
	cyc.InsertArc(a, b, 1)
	cyc.InsertArc(b, c, -3)
	cyc.InsertArc(c, a, 1)
	_, err = shortestpath.SPFA[string, int](cyc, a, nil, weightIdentity, false)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestFloydWarshallAllPairsAndPath(t *testing.T) {
	g, nodes := buildFiveNodeGraph()
	res, err := shortestpath.FloydWarshall[string, int](g, nil, weightIdentity, true)
	require.NoError(t, err)

	d, ok := res.Dist(nodes["s"], nodes["t"])
	require.True(t, ok)
	assert.Equal(t, int64(8), d)

	_, ok = res.Dist(nodes["t"], nodes["s"])
	assert.False(t, ok)

	path := res.Path(g, nodes["s"], nodes["t"])
	require.NotNil(t, path)
	assert.Equal(t, nodes["s"], path[0])
	assert.Equal(t, nodes["t"], path[len(path)-1])
}

func TestFloydWarshallDetectsNegativeCycle(t *testing.T) {
	g := graph.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	g.InsertArc(a, b, 1)
	g.InsertArc(b, c, -3)
	g.InsertArc(c, a, 1)

	_, err := shortestpath.FloydWarshall[string, int](g, nil, weightIdentity, false)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}
