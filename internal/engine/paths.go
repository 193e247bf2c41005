package engine

import (
	"fmt"
	"math"
	"sort"
)

// PathResult is a fully materialized path: total weight, endpoints and the
// ordered edge sequence, all in the engine's ID space.
type PathResult struct {
	Weight float64
	Start  int64
	End    int64
	Edges  []int64
}

// SingleSourceTree is a shortest-path tree rooted at Source. Individual
// paths are reconstructed on demand from the predecessor edges.
type SingleSourceTree struct {
	g      *Graph
	Source int64

	dist     map[int64]float64
	predEdge map[int64]int64
	predVert map[int64]int64
}

// PathTo reconstructs the path from the tree's source to target.
// It returns nil when target is unreachable.
func (t *SingleSourceTree) PathTo(target int64) (*PathResult, error) {
	if !t.g.HasVertex(target) {
		return nil, fmt.Errorf("path to %d: %w", target, ErrVertexNotFound)
	}
	if target == t.Source {
		return &PathResult{Weight: 0, Start: t.Source, End: t.Source}, nil
	}
	d, ok := t.dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil, nil
	}

	// Walk predecessor edges back to the source, then reverse.
	var rev []int64
	for v := target; v != t.Source; v = t.predVert[v] {
		rev = append(rev, t.predEdge[v])
	}
	edges := make([]int64, len(rev))
	for i := range rev {
		edges[i] = rev[len(rev)-1-i]
	}

	return &PathResult{Weight: d, Start: t.Source, End: target, Edges: edges}, nil
}

// AllPairsResult holds the Floyd-Warshall distance and next-hop matrices.
// Paths and per-source trees are extracted on demand.
type AllPairsResult struct {
	g     *Graph
	verts []int64
	idx   map[int64]int

	dist [][]float64
	// nextVert[i][j] / nextEdge[i][j]: first hop and the edge taken on a
	// shortest i->j path; -1 when unreachable.
	nextVert [][]int
	nextEdge [][]int64
}

// PathBetween reconstructs a shortest path from source to target.
// It returns nil when target is unreachable from source.
func (r *AllPairsResult) PathBetween(source, target int64) (*PathResult, error) {
	si, ok := r.idx[source]
	if !ok {
		return nil, fmt.Errorf("all pairs: source %d: %w", source, ErrVertexNotFound)
	}
	ti, ok := r.idx[target]
	if !ok {
		return nil, fmt.Errorf("all pairs: target %d: %w", target, ErrVertexNotFound)
	}
	if source == target {
		return &PathResult{Weight: 0, Start: source, End: target}, nil
	}
	if math.IsInf(r.dist[si][ti], 1) {
		return nil, nil
	}

	var edges []int64
	for i := si; i != ti; {
		edges = append(edges, r.nextEdge[i][ti])
		i = r.nextVert[i][ti]
	}

	return &PathResult{Weight: r.dist[si][ti], Start: source, End: target, Edges: edges}, nil
}

// TreeFrom extracts the single-source view rooted at source.
func (r *AllPairsResult) TreeFrom(source int64) (*SingleSourceTree, error) {
	si, ok := r.idx[source]
	if !ok {
		return nil, fmt.Errorf("all pairs: source %d: %w", source, ErrVertexNotFound)
	}

	t := &SingleSourceTree{
		g:        r.g,
		Source:   source,
		dist:     make(map[int64]float64, len(r.verts)),
		predEdge: make(map[int64]int64),
		predVert: make(map[int64]int64),
	}
	for ti, v := range r.verts {
		d := r.dist[si][ti]
		if math.IsInf(d, 1) {
			continue
		}
		t.dist[v] = d
		if v == source {
			continue
		}
		// The predecessor of v on the si->ti path is the vertex one hop
		// before ti; walk the next-hop chain to find it.
		prev := si
		for i := si; i != ti; {
			prev = i
			i = r.nextVert[i][ti]
		}
		t.predVert[v] = r.verts[prev]
		t.predEdge[v] = r.nextEdge[prev][ti]
	}

	return t, nil
}

// moLabel is one non-dominated label in the multi-objective search:
// accumulated cost vector plus the predecessor chain for reconstruction.
type moLabel struct {
	weight float64
	hops   int64
	vertex int64
	pred   *moLabel
	edge   int64
}

// dominates reports whether a is at least as good as b on both criteria and
// strictly better on at least one.
func (a *moLabel) dominates(b *moLabel) bool {
	if a.weight > b.weight || a.hops > b.hops {
		return false
	}

	return a.weight < b.weight || a.hops < b.hops
}

// MultiObjectiveResult holds the Pareto-optimal labels per target vertex for
// the fixed criteria pair (total weight, hop count).
type MultiObjectiveResult struct {
	g      *Graph
	Source int64
	labels map[int64][]*moLabel
}

// PathsTo materializes every Pareto-optimal path from the source to target,
// ordered by ascending weight then hops. The slice is empty when target is
// unreachable.
func (r *MultiObjectiveResult) PathsTo(target int64) ([]*PathResult, error) {
	if !r.g.HasVertex(target) {
		return nil, fmt.Errorf("paths to %d: %w", target, ErrVertexNotFound)
	}

	front := append([]*moLabel(nil), r.labels[target]...)
	sort.Slice(front, func(i, j int) bool {
		if front[i].weight != front[j].weight {
			return front[i].weight < front[j].weight
		}

		return front[i].hops < front[j].hops
	})

	out := make([]*PathResult, 0, len(front))
	for _, lab := range front {
		var rev []int64
		for l := lab; l.pred != nil; l = l.pred {
			rev = append(rev, l.edge)
		}
		edges := make([]int64, len(rev))
		for i := range rev {
			edges[i] = rev[len(rev)-1-i]
		}
		out = append(out, &PathResult{
			Weight: lab.weight,
			Start:  r.Source,
			End:    target,
			Edges:  edges,
		})
	}

	return out, nil
}
