package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapht/grapht/graph"
)

// newStringGraph builds an undirected weighted graph keyed by strings, the
// shape most facade tests want.
func newStringGraph(t *testing.T, opts ...graph.Option) *graph.Graph[string, string] {
	t.Helper()
	g, err := graph.New[string, string](append([]graph.Option{graph.WithWeighted()}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	return g
}

func TestGraph_AddAndQuery(t *testing.T) {
	g := newStringGraph(t)

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdgeWithID("ab", "a", "b", 2.5))

	assert.True(t, g.ContainsVertex("a"))
	assert.True(t, g.ContainsEdge("ab"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	w, err := g.Weight("ab")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	u, v, err := g.EdgeEndpoints("ab")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, []string{u, v})
}

func TestGraph_DuplicateIdentifiers(t *testing.T) {
	g := newStringGraph(t)

	require.NoError(t, g.AddVertex("a"))
	assert.ErrorIs(t, g.AddVertex("a"), graph.ErrDuplicateVertex)

	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdgeWithID("e", "a", "b", 1))
	assert.ErrorIs(t, g.AddEdgeWithID("e", "b", "a", 1), graph.ErrDuplicateEdge)
}

func TestGraph_UnknownIdentifiers(t *testing.T) {
	g := newStringGraph(t)
	require.NoError(t, g.AddVertex("a"))

	assert.ErrorIs(t, g.AddEdgeWithID("e", "a", "ghost", 1), graph.ErrUnknownVertex)
	assert.ErrorIs(t, g.RemoveVertex("ghost"), graph.ErrUnknownVertex)
	assert.ErrorIs(t, g.RemoveEdge("ghost"), graph.ErrUnknownEdge)
	_, err := g.Weight("ghost")
	assert.ErrorIs(t, err, graph.ErrUnknownEdge)
}

func TestGraph_StructuralConstraints(t *testing.T) {
	g := newStringGraph(t) // loops and multi-edges off by default

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	assert.ErrorIs(t, g.AddEdgeWithID("loop", "a", "a", 1), graph.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdgeWithID("e1", "a", "b", 1))
	assert.ErrorIs(t, g.AddEdgeWithID("e2", "a", "b", 1), graph.ErrMultiEdgeNotAllowed)
	// The reverse direction is the same undirected pair.
	assert.ErrorIs(t, g.AddEdgeWithID("e3", "b", "a", 1), graph.ErrMultiEdgeNotAllowed)
}

func TestGraph_ConstraintsRelaxed(t *testing.T) {
	g := newStringGraph(t, graph.WithLoops(), graph.WithMultiEdges())

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdgeWithID("loop", "a", "a", 1))
	require.NoError(t, g.AddEdgeWithID("e1", "a", "b", 1))
	require.NoError(t, g.AddEdgeWithID("e2", "a", "b", 2))

	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_WeightOnUnweighted(t *testing.T) {
	g, err := graph.New[string, string]()
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdgeWithID("e", "a", "b", 0))

	assert.ErrorIs(t, g.SetWeight("e", 3), graph.ErrBadWeight)

	// Unweighted edges read back as weight 1.
	w, err := g.Weight("e")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestGraph_RemoveVertexCascades(t *testing.T) {
	g := newStringGraph(t)
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdgeWithID("ab", "a", "b", 1))
	require.NoError(t, g.AddEdgeWithID("ac", "a", "c", 1))
	require.NoError(t, g.AddEdgeWithID("bc", "b", "c", 1))

	require.NoError(t, g.RemoveVertex("a"))

	assert.False(t, g.ContainsVertex("a"))
	assert.False(t, g.ContainsEdge("ab"))
	assert.False(t, g.ContainsEdge("ac"))
	assert.True(t, g.ContainsEdge("bc"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_InternalIDsNeverReused(t *testing.T) {
	g := newStringGraph(t)

	require.NoError(t, g.AddVertex("first"))
	firstID, err := g.EncodeVertex("first")
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("first"))
	require.NoError(t, g.AddVertex("second"))

	secondID, err := g.EncodeVertex("second")
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	// Decoding through the retired ID must fail, never alias "second".
	_, err = g.DecodeVertex(firstID)
	assert.ErrorIs(t, err, graph.ErrCorruptMapping)
}

func TestGraph_Suppliers(t *testing.T) {
	g, err := graph.NewInt64(graph.WithWeighted())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	v0, err := g.AddGeneratedVertex()
	require.NoError(t, err)
	v1, err := g.AddGeneratedVertex()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v0)
	assert.Equal(t, int64(1), v1)

	e, err := g.AddEdge(v0, v1, 4)
	require.NoError(t, err)
	assert.True(t, g.ContainsEdge(e))
}

func TestGraph_UUIDSuppliers(t *testing.T) {
	g := newStringGraph(t)
	g.SetVertexSupplier(graph.UUIDSupplier())
	g.SetEdgeSupplier(graph.UUIDSupplier())

	v0, err := g.AddGeneratedVertex()
	require.NoError(t, err)
	v1, err := g.AddGeneratedVertex()
	require.NoError(t, err)
	assert.NotEmpty(t, v0)
	assert.NotEqual(t, v0, v1, "every draw yields a fresh identifier")
	assert.True(t, g.ContainsVertex(v0))

	e, err := g.AddEdge(v0, v1, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, e)
	assert.True(t, g.ContainsEdge(e))
}

func TestGraph_NoSupplier(t *testing.T) {
	g := newStringGraph(t)

	_, err := g.AddGeneratedVertex()
	assert.ErrorIs(t, err, graph.ErrNoSupplier)

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	_, err = g.AddEdge("a", "b", 1)
	assert.ErrorIs(t, err, graph.ErrNoSupplier)
}

func TestGraph_DestroyIdempotent(t *testing.T) {
	g, err := graph.New[string, string]()
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("a"))

	require.NoError(t, g.Destroy())
	require.NoError(t, g.Destroy())

	assert.True(t, g.Destroyed())
	assert.ErrorIs(t, g.AddVertex("b"), graph.ErrDestroyed)
	_, err = g.Handle()
	assert.ErrorIs(t, err, graph.ErrDestroyed)
}

func TestGraph_VertexAndEdgeIteration(t *testing.T) {
	g := newStringGraph(t)
	for _, v := range []string{"x", "y", "z"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdgeWithID("xy", "x", "y", 1))
	require.NoError(t, g.AddEdgeWithID("yz", "y", "z", 1))

	vit, err := g.Vertices()
	require.NoError(t, err)
	verts, err := vit.Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y", "z"}, verts)

	eit, err := g.Edges()
	require.NoError(t, err)
	edges, err := eit.Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"xy", "yz"}, edges)
}
