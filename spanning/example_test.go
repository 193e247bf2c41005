package spanning_test

import (
	"fmt"
	"sort"

	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/spanning"
)

// ExampleMinimum computes the spanning tree of a weighted triangle.
func ExampleMinimum() {
	g, err := graph.New[string, string](graph.WithWeighted())
	if err != nil {
		panic(err)
	}
	defer func() { _ = g.Destroy() }()

	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdgeWithID("AB", "A", "B", 1)
	_ = g.AddEdgeWithID("BC", "B", "C", 2)
	_ = g.AddEdgeWithID("AC", "A", "C", 3)

	r, err := spanning.Minimum(g, spanning.Kruskal)
	if err != nil {
		panic(err)
	}
	sort.Strings(r.Edges)
	fmt.Printf("weight=%.0f edges=%v\n", r.Weight, r.Edges)

	// Output:
	// weight=3 edges=[AB BC]
}
