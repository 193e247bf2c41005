package engine

import (
	"math/rand"
	"testing"
)

// buildRandomGraph builds a connected undirected weighted graph with n
// vertices and roughly extra additional random edges beyond the spanning
// chain.
func buildRandomGraph(n, extra int) *Graph {
	g := NewGraph(false, true, false, false)
	rng := rand.New(rand.NewSource(42))

	verts := make([]int64, n)
	for i := range verts {
		verts[i] = g.AddVertex()
	}
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(verts[i-1], verts[i], 1+rng.Float64()*9)
	}
	for i := 0; i < extra; i++ {
		u := verts[rng.Intn(n)]
		v := verts[rng.Intn(n)]
		if u == v {
			continue
		}
		_, _ = g.AddEdge(u, v, 1+rng.Float64()*99)
	}

	return g
}

func BenchmarkDijkstra(b *testing.B) {
	g := buildRandomGraph(1000, 4000)
	source := g.Vertices()[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Dijkstra(source); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := buildRandomGraph(1000, 4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := g.Kruskal(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrim(b *testing.B) {
	g := buildRandomGraph(1000, 4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := g.Prim(); err != nil {
			b.Fatal(err)
		}
	}
}
