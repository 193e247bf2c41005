package engine

import (
	"container/heap"
	"fmt"
	"sort"
)

// Kruskal computes a minimum spanning forest: edges sorted by ascending
// weight, joined through a union-find with path compression and union by
// rank. Disconnected graphs yield the cheapest spanning forest, one tree per
// component.
//
// Complexity: O(E log E) time, O(V + E) space.
func (g *Graph) Kruskal() (float64, []int64, error) {
	if g.directed {
		return 0, nil, fmt.Errorf("kruskal: directed graph: %w", ErrUnsupported)
	}

	type cand struct {
		id     int64
		weight float64
	}
	cands := make([]cand, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		rec := g.edges[e]
		if rec.from == rec.to {
			// Self-loops can never join components.
			continue
		}
		cands = append(cands, cand{id: e, weight: rec.weight})
	}
	// Stable sort keeps ascending edge-ID order among equal weights.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].weight < cands[j].weight })

	parent := make(map[int64]int64, g.VertexCount())
	rank := make(map[int64]int, g.VertexCount())
	for _, v := range g.Vertices() {
		parent[v] = v
	}
	find := func(u int64) int64 {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int64) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var total float64
	var tree []int64
	for _, c := range cands {
		rec := g.edges[c.id]
		if find(rec.from) == find(rec.to) {
			continue
		}
		union(rec.from, rec.to)
		tree = append(tree, c.id)
		total += c.weight
	}

	return total, tree, nil
}

// Prim computes a minimum spanning forest by growing trees from each
// unvisited vertex in ascending ID order, always taking the cheapest edge
// crossing the frontier (lazy-decrease-key heap).
//
// Complexity: O(E log V) time, O(V + E) space.
func (g *Graph) Prim() (float64, []int64, error) {
	if g.directed {
		return 0, nil, fmt.Errorf("prim: directed graph: %w", ErrUnsupported)
	}

	visited := make(map[int64]bool, g.VertexCount())
	var total float64
	var tree []int64

	grow := func(root int64) {
		pq := primPQ{}
		heap.Init(&pq)
		visited[root] = true
		for _, oe := range g.outEdges(root) {
			heap.Push(&pq, &primItem{edge: oe.edge, to: oe.to, weight: oe.weight})
		}
		for pq.Len() > 0 {
			item := heap.Pop(&pq).(*primItem)
			if visited[item.to] {
				continue
			}
			visited[item.to] = true
			tree = append(tree, item.edge)
			total += item.weight
			for _, oe := range g.outEdges(item.to) {
				if !visited[oe.to] {
					heap.Push(&pq, &primItem{edge: oe.edge, to: oe.to, weight: oe.weight})
				}
			}
		}
	}

	for _, v := range g.Vertices() {
		if !visited[v] {
			grow(v)
		}
	}
	sort.Slice(tree, func(i, j int) bool { return tree[i] < tree[j] })

	return total, tree, nil
}

// primItem is one frontier edge candidate.
type primItem struct {
	edge   int64
	to     int64
	weight float64
}

// primPQ is a min-heap of frontier edges by ascending weight.
type primPQ []*primItem

func (pq primPQ) Len() int            { return len(pq) }
func (pq primPQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq primPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *primPQ) Push(x interface{}) { *pq = append(*pq, x.(*primItem)) }
func (pq *primPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
