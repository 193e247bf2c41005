package vertexcover

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// Algorithm selects the cover strategy.
type Algorithm int

const (
	// Greedy repeatedly takes the vertex with the lowest
	// weight-per-uncovered-edge ratio. No approximation bound, good covers
	// in practice.
	Greedy Algorithm = iota
	// Clarkson is the classic 2-approximation charging residual weights
	// along edges.
	Clarkson
	// EdgeBased covers both endpoints of a maximal matching, a
	// 2-approximation for the unweighted case.
	EdgeBased
)

// Result is a fully decoded vertex cover.
type Result[V comparable] struct {
	// Weight is the cover's total weight under the supplied weight table.
	Weight float64
	// Vertices lists the cover members in deterministic order.
	Vertices []V
}

// Option configures a cover computation.
type Option[V comparable] func(*settings[V])

type settings[V comparable] struct {
	weights map[V]float64
}

// WithVertexWeights assigns explicit weights to vertices. Vertices absent
// from the table weigh 1. Weights must be non-negative.
func WithVertexWeights[V comparable](weights map[V]float64) Option[V] {
	return func(s *settings[V]) { s.weights = weights }
}

// Compute runs the chosen cover algorithm on g.
func Compute[V, E comparable](g *graph.Graph[V, E], algo Algorithm, opts ...Option[V]) (*Result[V], error) {
	var s settings[V]
	for _, opt := range opts {
		opt(&s)
	}

	gh, err := g.Handle()
	if err != nil {
		return nil, err
	}
	ids, ws, err := encodeWeights(g, s.weights)
	if err != nil {
		return nil, err
	}

	var (
		w  float64
		ih capi.Handle
	)
	switch algo {
	case Greedy:
		w, ih, err = capi.VCExecGreedy(gh, ids, ws)
	case Clarkson:
		w, ih, err = capi.VCExecClarkson(gh, ids, ws)
	case EdgeBased:
		w, ih, err = capi.VCExecEdgeBased(gh, ids, ws)
	default:
		return nil, fmt.Errorf("vertexcover: unknown algorithm %d", algo)
	}
	if err != nil {
		return nil, fmt.Errorf("vertex cover: %w", err)
	}

	members, err := collectVertices(g, ih)
	if err != nil {
		return nil, err
	}

	return &Result[V]{Weight: w, Vertices: members}, nil
}

// encodeWeights translates the application-keyed weight table into the
// parallel arrays the boundary carries.
func encodeWeights[V, E comparable](g *graph.Graph[V, E], weights map[V]float64) ([]int64, []float64, error) {
	if len(weights) == 0 {
		return nil, nil, nil
	}
	ids := make([]int64, 0, len(weights))
	ws := make([]float64, 0, len(weights))
	for v, w := range weights {
		id, err := g.EncodeVertex(v)
		if err != nil {
			return nil, nil, err
		}
		ids = append(ids, id)
		ws = append(ws, w)
	}

	return ids, ws, nil
}

// collectVertices drains a native vertex-ID iterator into decoded
// identifiers.
func collectVertices[V, E comparable](g *graph.Graph[V, E], ih capi.Handle) ([]V, error) {
	it := graph.NewIterator(handles.MustAcquire(ih), func(cursor capi.Handle) (V, error) {
		id, err := capi.ItNextLong(cursor)
		if err != nil {
			var zero V
			return zero, err
		}

		return g.DecodeVertex(id)
	})

	return it.Collect()
}
