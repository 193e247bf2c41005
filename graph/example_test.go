package graph_test

import (
	"fmt"
	"sort"

	"github.com/grapht/grapht/graph"
)

// ExampleGraph builds a small weighted graph keyed by city names and walks
// its edges through the iterator adapter.
func ExampleGraph() {
	g, err := graph.New[string, string](graph.WithWeighted())
	if err != nil {
		panic(err)
	}
	defer func() { _ = g.Destroy() }()

	for _, city := range []string{"Lisbon", "Madrid", "Paris"} {
		if err = g.AddVertex(city); err != nil {
			panic(err)
		}
	}
	_ = g.AddEdgeWithID("LIS-MAD", "Lisbon", "Madrid", 625)
	_ = g.AddEdgeWithID("MAD-PAR", "Madrid", "Paris", 1052)

	it, err := g.Edges()
	if err != nil {
		panic(err)
	}
	edges, err := it.Collect()
	if err != nil {
		panic(err)
	}
	sort.Strings(edges)
	for _, e := range edges {
		w, _ := g.Weight(e)
		fmt.Printf("%s %.0f\n", e, w)
	}

	// Output:
	// LIS-MAD 625
	// MAD-PAR 1052
}
