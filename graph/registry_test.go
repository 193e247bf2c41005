// Package graph_test validates the bijective identifier registry: both
// lookup directions stay consistent under add/remove churn, and a retired
// internal ID never resolves again.
package graph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapht/grapht/graph"
)

func TestRegistry_BindAndLookup(t *testing.T) {
	r := graph.NewRegistry[string]()

	require.NoError(t, r.Bind("a", 1))
	require.NoError(t, r.Bind("b", 2))

	id, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	k, err := r.Decode(2)
	require.NoError(t, err)
	assert.Equal(t, "b", k)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_BijectionUnderChurn(t *testing.T) {
	// Bind, remove and re-bind many keys; decode(encode(x)) must hold for
	// every live key at every step, under fresh internal IDs only.
	r := graph.NewRegistry[string]()
	next := int64(0)

	live := map[string]int64{}
	for round := 0; round < 5; round++ {
		for i := 0; i < 10; i++ {
			k := fmt.Sprintf("k%d-%d", round, i)
			require.NoError(t, r.Bind(k, next))
			live[k] = next
			next++
		}
		// Drop every other key bound this round.
		for i := 0; i < 10; i += 2 {
			k := fmt.Sprintf("k%d-%d", round, i)
			id, ok := r.Forget(k)
			require.True(t, ok)
			assert.Equal(t, live[k], id)
			delete(live, k)
		}
		for k, id := range live {
			got, err := r.Decode(id)
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}
	}
	assert.Equal(t, len(live), r.Len())
}

func TestRegistry_DoubleBindRejected(t *testing.T) {
	r := graph.NewRegistry[string]()
	require.NoError(t, r.Bind("a", 1))

	assert.Error(t, r.Bind("a", 2), "key already bound")
	assert.Error(t, r.Bind("b", 1), "internal ID already bound")
}

func TestRegistry_DecodeRetiredID(t *testing.T) {
	r := graph.NewRegistry[string]()
	require.NoError(t, r.Bind("a", 7))

	_, ok := r.Forget("a")
	require.True(t, ok)

	_, err := r.Decode(7)
	assert.ErrorIs(t, err, graph.ErrCorruptMapping)
	assert.False(t, r.HasID(7))
}

func TestRegistry_ForgetID(t *testing.T) {
	r := graph.NewRegistry[string]()
	require.NoError(t, r.Bind("a", 3))

	k, ok := r.ForgetID(3)
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.False(t, r.Has("a"))

	_, ok = r.ForgetID(3)
	assert.False(t, ok)
}

func TestRegistry_Clear(t *testing.T) {
	r := graph.NewRegistry[int]()
	require.NoError(t, r.Bind(1, 10))
	require.NoError(t, r.Bind(2, 20))

	r.Clear()

	assert.Zero(t, r.Len())
	assert.False(t, r.Has(1))
	assert.False(t, r.HasID(20))
}
