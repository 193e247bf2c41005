package spanning

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// Algorithm selects the minimum-spanning strategy.
type Algorithm int

const (
	// Kruskal sorts all edges once and merges components with union-find.
	// Preferred on sparse graphs.
	Kruskal Algorithm = iota
	// Prim grows each component from a seed vertex with a priority queue.
	// Preferred on dense graphs.
	Prim
)

// Result is a fully decoded minimum spanning forest.
type Result[E comparable] struct {
	// Weight is the sum of the selected edge weights.
	Weight float64
	// Edges lists the selected edges in deterministic order.
	Edges []E
}

// Minimum computes the minimum spanning forest of g with the chosen
// algorithm. Both algorithms return the same total weight; on graphs with
// distinct edge weights they select the same edges.
func Minimum[V, E comparable](g *graph.Graph[V, E], algo Algorithm) (*Result[E], error) {
	gh, err := g.Handle()
	if err != nil {
		return nil, err
	}

	var (
		w  float64
		ih capi.Handle
	)
	switch algo {
	case Kruskal:
		w, ih, err = capi.MSTExecKruskal(gh)
	case Prim:
		w, ih, err = capi.MSTExecPrim(gh)
	default:
		return nil, fmt.Errorf("spanning: unknown algorithm %d", algo)
	}
	if err != nil {
		return nil, fmt.Errorf("minimum spanning: %w", err)
	}

	edges, err := collectEdges(g, ih)
	if err != nil {
		return nil, err
	}

	return &Result[E]{Weight: w, Edges: edges}, nil
}

// collectEdges drains a native edge-ID iterator into decoded identifiers.
func collectEdges[V, E comparable](g *graph.Graph[V, E], ih capi.Handle) ([]E, error) {
	it := graph.NewIterator(handles.MustAcquire(ih), func(cursor capi.Handle) (E, error) {
		id, err := capi.ItNextLong(cursor)
		if err != nil {
			var zero E
			return zero, err
		}

		return g.DecodeEdge(id)
	})

	return it.Collect()
}
