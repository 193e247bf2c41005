package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapht/grapht/generators"
	"github.com/grapht/grapht/graph"
)

// newGraph builds an undirected graph with sequential suppliers, the shape
// generators require.
func newGraph(t *testing.T, opts ...graph.Option) *graph.Graph[int64, int64] {
	t.Helper()
	g, err := graph.NewInt64(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	return g
}

func TestEmpty(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.Empty(g, 7))

	assert.Equal(t, 7, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestComplete(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.Complete(g, 5))

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount()) // C(5,2)
}

func TestComplete_Directed(t *testing.T) {
	g := newGraph(t, graph.WithDirected())

	require.NoError(t, generators.Complete(g, 4))

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount()) // both arc directions
}

func TestCompleteBipartite(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.CompleteBipartite(g, 3, 4))

	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
}

func TestRing(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.Ring(g, 6))

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestGnpRandom_Deterministic(t *testing.T) {
	g1 := newGraph(t)
	g2 := newGraph(t)

	require.NoError(t, generators.GnpRandom(g1, 20, 0.3, generators.WithSeed(7)))
	require.NoError(t, generators.GnpRandom(g2, 20, 0.3, generators.WithSeed(7)))

	assert.Equal(t, 20, g1.VertexCount())
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount(), "same seed, same topology")
}

func TestGnpRandom_ProbabilityBounds(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.GnpRandom(g, 5, 0, generators.WithSeed(1)))
	assert.Zero(t, g.EdgeCount())

	g2 := newGraph(t)
	require.NoError(t, generators.GnpRandom(g2, 5, 1, generators.WithSeed(1)))
	assert.Equal(t, 10, g2.EdgeCount())
}

func TestGnmRandom_ExactEdgeCount(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.GnmRandom(g, 10, 15, generators.WithSeed(3)))

	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
}

func TestGnmRandom_InfeasibleEdgeCount(t *testing.T) {
	g := newGraph(t)

	// 4 vertices host at most 6 simple edges.
	err := generators.GnmRandom(g, 4, 7, generators.WithSeed(3))
	assert.Error(t, err)
}

func TestGnmRandom_NoAdmissiblePair(t *testing.T) {
	// Parallel edges lift the capacity bound, but m > 0 still needs at
	// least one endpoint pair the constraints admit.
	g := newGraph(t, graph.WithMultiEdges())

	err := generators.GnmRandom(g, 0, 1, generators.WithSeed(3))
	assert.ErrorIs(t, err, generators.ErrInvalidParameter)

	// A single vertex without self-loops admits no edge either.
	err = generators.GnmRandom(g, 1, 1, generators.WithSeed(3))
	assert.ErrorIs(t, err, generators.ErrInvalidParameter)
	assert.Zero(t, g.VertexCount(), "rejected calls leave the graph untouched")

	// With self-loops allowed the request becomes feasible.
	gl := newGraph(t, graph.WithMultiEdges(), graph.WithLoops())
	require.NoError(t, generators.GnmRandom(gl, 1, 2, generators.WithSeed(3)))
	assert.Equal(t, 1, gl.VertexCount())
	assert.Equal(t, 2, gl.EdgeCount())
}

func TestBarabasiAlbert(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.BarabasiAlbert(g, 3, 2, 10, generators.WithSeed(5)))

	assert.Equal(t, 10, g.VertexCount())
	// Complete seed C(3,2)=3 plus 7 newcomers with 2 edges each.
	assert.Equal(t, 3+7*2, g.EdgeCount())
}

func TestBarabasiAlbertForest(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.BarabasiAlbertForest(g, 3, 10, generators.WithSeed(5)))

	assert.Equal(t, 10, g.VertexCount())
	// 3 isolated seeds plus 7 newcomers with one edge each.
	assert.Equal(t, 7, g.EdgeCount())
}

func TestScaleFree(t *testing.T) {
	g1 := newGraph(t)
	g2 := newGraph(t)

	require.NoError(t, generators.ScaleFree(g1, 15, generators.WithSeed(5)))
	require.NoError(t, generators.ScaleFree(g2, 15, generators.WithSeed(5)))

	assert.Equal(t, 15, g1.VertexCount())
	assert.Equal(t, 14, g1.EdgeCount(), "connected, one edge per newcomer")
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount(), "same seed, same topology")
}

func TestWattsStrogatz(t *testing.T) {
	// p=0 keeps the pristine ring lattice with n*k/2 edges.
	g := newGraph(t)
	require.NoError(t, generators.WattsStrogatz(g, 12, 4, 0, generators.WithSeed(5)))
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 24, g.EdgeCount())

	// Rewiring moves edges without changing the count.
	g2 := newGraph(t)
	require.NoError(t, generators.WattsStrogatz(g2, 12, 4, 0.5, generators.WithSeed(5)))
	assert.Equal(t, 24, g2.EdgeCount())

	// Shortcuts add edges on top of the lattice.
	g3 := newGraph(t)
	require.NoError(t, generators.WattsStrogatz(g3, 12, 4, 0.5,
		generators.WithSeed(5), generators.WithShortcuts()))
	assert.GreaterOrEqual(t, g3.EdgeCount(), 24)
}

func TestKleinbergSmallWorld(t *testing.T) {
	g := newGraph(t)

	require.NoError(t, generators.KleinbergSmallWorld(g, 3, 1, 1, 2, generators.WithSeed(5)))

	assert.Equal(t, 9, g.VertexCount(), "3x3 lattice")
	// 12 local distance-1 contacts; long-range draws only add.
	assert.GreaterOrEqual(t, g.EdgeCount(), 12)
}

func TestInvalidParameters(t *testing.T) {
	g := newGraph(t)

	assert.ErrorIs(t, generators.Empty(g, -1), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.Complete(g, -2), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.CompleteBipartite(g, -1, 3), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.Ring(g, -5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.GnpRandom(g, 5, 1.5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.GnpRandom(g, -1, 0.5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.GnmRandom(g, -1, 2), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.BarabasiAlbert(g, 0, 1, 5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.BarabasiAlbert(g, 3, 4, 10), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.BarabasiAlbertForest(g, 0, 5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.BarabasiAlbertForest(g, 6, 5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.ScaleFree(g, -1), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.WattsStrogatz(g, 10, 3, 0.5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.WattsStrogatz(g, 4, 4, 0.5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.WattsStrogatz(g, 10, 4, 1.5), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.KleinbergSmallWorld(g, 0, 1, 1, 0), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.KleinbergSmallWorld(g, 3, 0, 1, 0), generators.ErrInvalidParameter)
	assert.ErrorIs(t, generators.KleinbergSmallWorld(g, 3, 1, 1, -1), generators.ErrInvalidParameter)

	// Nothing was mutated by the rejected calls.
	assert.Zero(t, g.VertexCount())
}

func TestGenerated_IdentifiersUsable(t *testing.T) {
	// Generated elements must be reachable through supplier-drawn
	// identifiers like hand-added ones.
	g := newGraph(t)
	require.NoError(t, generators.Ring(g, 4))

	it, err := g.Vertices()
	require.NoError(t, err)
	verts, err := it.Collect()
	require.NoError(t, err)
	require.Len(t, verts, 4)
	for _, v := range verts {
		assert.True(t, g.ContainsVertex(v))
	}
	assert.ElementsMatch(t, []int64{0, 1, 2, 3}, verts)
}
