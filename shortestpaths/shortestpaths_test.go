package shortestpaths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/shortestpaths"
)

// buildStarCycle builds vertices 0..9 with star edges (0,i) weight 1 and
// the 9-cycle over 1..9 weight 1, plus isolated vertex 10.
func buildStarCycle(t *testing.T) *graph.Graph[int64, int64] {
	t.Helper()
	g, err := graph.NewInt64(graph.WithWeighted())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	for i := int64(0); i <= 10; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := int64(1); i <= 9; i++ {
		_, err = g.AddEdge(0, i, 1)
		require.NoError(t, err)
	}
	for i := int64(1); i <= 9; i++ {
		_, err = g.AddEdge(i, i%9+1, 1)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_StarCycle(t *testing.T) {
	g := buildStarCycle(t)

	tree, err := shortestpaths.Dijkstra(g, 0)
	require.NoError(t, err)
	defer func() { _ = tree.Release() }()

	// Every spoke is one unit-weight edge away from the center.
	p, err := tree.PathTo(5)
	require.NoError(t, err)
	require.NotNil(t, p)
	w, err := p.Weight()
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	// The isolated vertex reports "no path", not an error.
	p, err = tree.PathTo(10)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDijkstra_SelfPathIsEmpty(t *testing.T) {
	g := buildStarCycle(t)

	tree, err := shortestpaths.Dijkstra(g, 0)
	require.NoError(t, err)
	defer func() { _ = tree.Release() }()

	p, err := tree.PathTo(0)
	require.NoError(t, err)
	require.NotNil(t, p)
	w, err := p.Weight()
	require.NoError(t, err)
	assert.Zero(t, w)
	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDijkstra_UnknownSource(t *testing.T) {
	g := buildStarCycle(t)

	_, err := shortestpaths.Dijkstra(g, 42)
	assert.ErrorIs(t, err, graph.ErrUnknownVertex)
}

func TestDijkstra_RejectsNegativeWeights(t *testing.T) {
	g, err := graph.NewInt64(graph.WithWeighted())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	_, err = g.AddEdge(0, 1, -2)
	require.NoError(t, err)

	_, err = shortestpaths.Dijkstra(g, 0)
	assert.Error(t, err)
}

func TestBellmanFord_NegativeWeights(t *testing.T) {
	// 0->1 (4), 0->2 (1), 2->1 (-2): the detour through 2 costs -1.
	g, err := graph.NewInt64(graph.WithWeighted(), graph.WithDirected())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	for i := int64(0); i < 3; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	_, err = g.AddEdge(0, 1, 4)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, -2)
	require.NoError(t, err)

	tree, err := shortestpaths.BellmanFord(g, 0)
	require.NoError(t, err)
	defer func() { _ = tree.Release() }()

	p, err := tree.PathTo(1)
	require.NoError(t, err)
	require.NotNil(t, p)
	w, err := p.Weight()
	require.NoError(t, err)
	assert.Equal(t, -1.0, w)
	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g, err := graph.NewInt64(graph.WithWeighted(), graph.WithDirected())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, -3)
	require.NoError(t, err)

	_, err = shortestpaths.BellmanFord(g, 0)
	assert.Error(t, err)
}

func TestFloydWarshall_AgreesWithDijkstra(t *testing.T) {
	g := buildStarCycle(t)

	ap, err := shortestpaths.FloydWarshall(g)
	require.NoError(t, err)
	defer func() { _ = ap.Release() }()
	tree, err := shortestpaths.Dijkstra(g, 3)
	require.NoError(t, err)
	defer func() { _ = tree.Release() }()

	for target := int64(0); target <= 9; target++ {
		pd, err := tree.PathTo(target)
		require.NoError(t, err)
		pa, err := ap.PathBetween(3, target)
		require.NoError(t, err)

		wd, err := pd.Weight()
		require.NoError(t, err)
		wa, err := pa.Weight()
		require.NoError(t, err)
		assert.Equal(t, wd, wa, "target %d", target)
	}
}
