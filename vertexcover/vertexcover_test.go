package vertexcover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/vertexcover"
)

// buildStar builds a star: center 0 connected to leaves 1..9.
func buildStar(t *testing.T) *graph.Graph[int64, int64] {
	t.Helper()
	g, err := graph.NewInt64()
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	for i := int64(0); i <= 9; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := int64(1); i <= 9; i++ {
		_, err = g.AddEdge(0, i, 0)
		require.NoError(t, err)
	}

	return g
}

// starWeights makes the center prohibitively expensive: 1000 against 1 per
// leaf. A weight-aware cover must prefer all nine leaves (total 9) over
// the center (total 1000).
func starWeights() map[int64]float64 {
	w := map[int64]float64{0: 1000}
	for i := int64(1); i <= 9; i++ {
		w[i] = 1
	}

	return w
}

func TestCompute_GreedyWeightedStar(t *testing.T) {
	g := buildStar(t)

	r, err := vertexcover.Compute(g, vertexcover.Greedy,
		vertexcover.WithVertexWeights(starWeights()))
	require.NoError(t, err)

	assert.Equal(t, 9.0, r.Weight)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, r.Vertices)
}

func TestCompute_ClarksonWeightedStar(t *testing.T) {
	g := buildStar(t)

	r, err := vertexcover.Compute(g, vertexcover.Clarkson,
		vertexcover.WithVertexWeights(starWeights()))
	require.NoError(t, err)

	assert.Equal(t, 9.0, r.Weight)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, r.Vertices)
}

func TestCompute_GreedyUnweightedStar(t *testing.T) {
	// Without weights the max-degree center is the obvious single-vertex
	// cover.
	g := buildStar(t)

	r, err := vertexcover.Compute(g, vertexcover.Greedy)
	require.NoError(t, err)

	assert.Equal(t, 1.0, r.Weight)
	assert.Equal(t, []int64{0}, r.Vertices)
}

func TestCompute_EdgeBasedIsACover(t *testing.T) {
	g := buildStar(t)

	r, err := vertexcover.Compute(g, vertexcover.EdgeBased)
	require.NoError(t, err)

	// Matching-based covers take both endpoints; on a star that is the
	// center plus one leaf.
	assert.Len(t, r.Vertices, 2)
	assert.Contains(t, r.Vertices, int64(0))
}

func TestCompute_NegativeWeightRejected(t *testing.T) {
	g := buildStar(t)

	_, err := vertexcover.Compute(g, vertexcover.Greedy,
		vertexcover.WithVertexWeights(map[int64]float64{1: -3}))
	assert.Error(t, err)
}

func TestCompute_UnknownWeightVertexRejected(t *testing.T) {
	g := buildStar(t)

	_, err := vertexcover.Compute(g, vertexcover.Greedy,
		vertexcover.WithVertexWeights(map[int64]float64{42: 1}))
	assert.ErrorIs(t, err, graph.ErrUnknownVertex)
}

func TestCompute_EmptyGraph(t *testing.T) {
	g, err := graph.NewInt64()
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Destroy() })

	r, err := vertexcover.Compute(g, vertexcover.Greedy)
	require.NoError(t, err)

	assert.Zero(t, r.Weight)
	assert.Empty(t, r.Vertices)
}
