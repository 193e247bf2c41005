package shortestpaths

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
	"github.com/grapht/grapht/paths"
)

// Dijkstra computes the shortest-path tree from source. Weights must be
// non-negative; a negative edge is rejected before the search starts.
func Dijkstra[V, E comparable](g *graph.Graph[V, E], source V) (*paths.SingleSource[V, E], error) {
	gh, err := g.Handle()
	if err != nil {
		return nil, err
	}
	sourceID, err := g.EncodeVertex(source)
	if err != nil {
		return nil, err
	}
	th, err := capi.SPExecDijkstra(gh, sourceID)
	if err != nil {
		return nil, fmt.Errorf("dijkstra from %v: %w", source, err)
	}

	return paths.NewSingleSource(handles.MustAcquire(th), g, source), nil
}

// BellmanFord computes the shortest-path tree from source. Negative edge
// weights are allowed; a reachable negative cycle fails the run.
func BellmanFord[V, E comparable](g *graph.Graph[V, E], source V) (*paths.SingleSource[V, E], error) {
	gh, err := g.Handle()
	if err != nil {
		return nil, err
	}
	sourceID, err := g.EncodeVertex(source)
	if err != nil {
		return nil, err
	}
	th, err := capi.SPExecBellmanFord(gh, sourceID)
	if err != nil {
		return nil, fmt.Errorf("bellman-ford from %v: %w", source, err)
	}

	return paths.NewSingleSource(handles.MustAcquire(th), g, source), nil
}

// FloydWarshall computes shortest paths between every vertex pair in one
// native execution.
func FloydWarshall[V, E comparable](g *graph.Graph[V, E]) (*paths.AllPairs[V, E], error) {
	gh, err := g.Handle()
	if err != nil {
		return nil, err
	}
	rh, err := capi.SPExecFloydWarshall(gh)
	if err != nil {
		return nil, fmt.Errorf("floyd-warshall: %w", err)
	}

	return paths.NewAllPairs(handles.MustAcquire(rh), g), nil
}

// Martins computes the Pareto-optimal path set from source under the
// (total weight, hop count) criteria pair.
func Martins[V, E comparable](g *graph.Graph[V, E], source V) (*paths.MultiObjective[V, E], error) {
	gh, err := g.Handle()
	if err != nil {
		return nil, err
	}
	sourceID, err := g.EncodeVertex(source)
	if err != nil {
		return nil, err
	}
	rh, err := capi.MultiSPExecMartins(gh, sourceID)
	if err != nil {
		return nil, fmt.Errorf("martins from %v: %w", source, err)
	}

	return paths.NewMultiObjective(handles.MustAcquire(rh), g, source), nil
}
