package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapht/grapht/graph"
)

func TestIterator_ExactlyNThenExhausted(t *testing.T) {
	const n = 5
	g := newStringGraph(t)
	want := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := string(rune('a' + i))
		require.NoError(t, g.AddVertex(v))
		want = append(want, v)
	}

	it, err := g.Vertices()
	require.NoError(t, err)

	got := make([]string, 0, n)
	for i := 0; i < n; i++ {
		require.True(t, it.HasNext())
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.ElementsMatch(t, want, got)

	// Exhaustion is permanent: no amount of probing revives the cursor.
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, graph.ErrIteratorExhausted)
	_, err = it.Next()
	assert.ErrorIs(t, err, graph.ErrIteratorExhausted)
	assert.False(t, it.HasNext())
}

func TestIterator_NextWithoutHasNext(t *testing.T) {
	g := newStringGraph(t)
	require.NoError(t, g.AddVertex("only"))

	it, err := g.Vertices()
	require.NoError(t, err)

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "only", v)

	_, err = it.Next()
	assert.ErrorIs(t, err, graph.ErrIteratorExhausted)
}

func TestIterator_EmptyGraph(t *testing.T) {
	g := newStringGraph(t)

	it, err := g.Vertices()
	require.NoError(t, err)

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, graph.ErrIteratorExhausted)
}

func TestIterator_ReleaseEarly(t *testing.T) {
	g := newStringGraph(t)
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	it, err := g.Vertices()
	require.NoError(t, err)
	require.True(t, it.HasNext())

	require.NoError(t, it.Release())
	require.NoError(t, it.Release())

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, graph.ErrIteratorExhausted)
}
