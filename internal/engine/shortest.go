package engine

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes the shortest-path tree from source using a min-heap with
// the lazy-decrease-key strategy: shorter rediscoveries are pushed as fresh
// entries and stale ones are skipped when popped. All edge weights must be
// non-negative; a pre-scan fails fast otherwise.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (g *Graph) Dijkstra(source int64) (*SingleSourceTree, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, ErrVertexNotFound)
	}
	for _, e := range g.Edges() {
		if g.edges[e].weight < 0 {
			return nil, fmt.Errorf("dijkstra: edge %d weight %g: %w",
				e, g.edges[e].weight, ErrIllegalArgument)
		}
	}

	t := &SingleSourceTree{
		g:        g,
		Source:   source,
		dist:     make(map[int64]float64, g.VertexCount()),
		predEdge: make(map[int64]int64),
		predVert: make(map[int64]int64),
	}
	visited := make(map[int64]bool, g.VertexCount())

	pq := make(distPQ, 0, g.VertexCount())
	heap.Init(&pq)
	t.dist[source] = 0
	heap.Push(&pq, &distItem{vertex: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.vertex
		if visited[u] {
			// Stale entry left behind by lazy decrease-key.
			continue
		}
		visited[u] = true

		for _, oe := range g.outEdges(u) {
			cand := t.dist[u] + oe.weight
			cur, seen := t.dist[oe.to]
			if seen && cand >= cur {
				continue
			}
			t.dist[oe.to] = cand
			t.predVert[oe.to] = u
			t.predEdge[oe.to] = oe.edge
			heap.Push(&pq, &distItem{vertex: oe.to, dist: cand})
		}
	}

	return t, nil
}

// BellmanFord computes the shortest-path tree from source, allowing negative
// edge weights. A negative-weight cycle reachable from source yields
// ErrNegativeCycle.
//
// Complexity: O(V * E) time, O(V) space.
func (g *Graph) BellmanFord(source int64) (*SingleSourceTree, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("bellman-ford: source %d: %w", source, ErrVertexNotFound)
	}

	t := &SingleSourceTree{
		g:        g,
		Source:   source,
		dist:     make(map[int64]float64, g.VertexCount()),
		predEdge: make(map[int64]int64),
		predVert: make(map[int64]int64),
	}
	t.dist[source] = 0

	verts := g.Vertices()
	relaxRound := func() bool {
		changed := false
		for _, u := range verts {
			du, ok := t.dist[u]
			if !ok {
				continue
			}
			for _, oe := range g.outEdges(u) {
				cand := du + oe.weight
				cur, seen := t.dist[oe.to]
				if seen && cand >= cur {
					continue
				}
				t.dist[oe.to] = cand
				t.predVert[oe.to] = u
				t.predEdge[oe.to] = oe.edge
				changed = true
			}
		}

		return changed
	}

	for i := 0; i < len(verts)-1; i++ {
		if !relaxRound() {
			break
		}
	}
	// One extra round still improving a distance means a negative cycle.
	if relaxRound() {
		return nil, fmt.Errorf("bellman-ford: %w", ErrNegativeCycle)
	}

	return t, nil
}

// FloydWarshall computes all-pairs shortest distances together with the
// next-hop matrices needed to reconstruct any individual path later.
//
// Complexity: O(V^3) time, O(V^2) space.
func (g *Graph) FloydWarshall() (*AllPairsResult, error) {
	verts := g.Vertices()
	n := len(verts)
	idx := make(map[int64]int, n)
	for i, v := range verts {
		idx[v] = i
	}

	r := &AllPairsResult{
		g:        g,
		verts:    verts,
		idx:      idx,
		dist:     make([][]float64, n),
		nextVert: make([][]int, n),
		nextEdge: make([][]int64, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = make([]float64, n)
		r.nextVert[i] = make([]int, n)
		r.nextEdge[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if i == j {
				r.dist[i][j] = 0
			} else {
				r.dist[i][j] = math.Inf(1)
			}
			r.nextVert[i][j] = -1
			r.nextEdge[i][j] = -1
		}
	}

	// Seed with direct edges, keeping the cheapest parallel edge.
	for _, u := range verts {
		ui := idx[u]
		for _, oe := range g.outEdges(u) {
			vi := idx[oe.to]
			if oe.weight < r.dist[ui][vi] {
				r.dist[ui][vi] = oe.weight
				r.nextVert[ui][vi] = vi
				r.nextEdge[ui][vi] = oe.edge
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(r.dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				cand := r.dist[i][k] + r.dist[k][j]
				if cand < r.dist[i][j] {
					r.dist[i][j] = cand
					r.nextVert[i][j] = r.nextVert[i][k]
					r.nextEdge[i][j] = r.nextEdge[i][k]
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if r.dist[i][i] < 0 {
			return nil, fmt.Errorf("floyd-warshall: %w", ErrNegativeCycle)
		}
	}

	return r, nil
}

// distItem is one (vertex, distance) heap entry.
type distItem struct {
	vertex int64
	dist   float64
}

// distPQ is a min-heap of *distItem ordered by ascending distance.
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
