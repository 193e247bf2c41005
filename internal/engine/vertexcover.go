package engine

import (
	"fmt"
	"math"
	"sort"
)

// coverWeights resolves the optional per-vertex weight table; vertices not
// listed weigh 1. A nil table means the uniform unweighted case.
func (g *Graph) coverWeights(weights map[int64]float64) (map[int64]float64, error) {
	w := make(map[int64]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		w[v] = 1
	}
	for v, wv := range weights {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("vertex cover: weight for %d: %w", v, ErrVertexNotFound)
		}
		if wv < 0 {
			return nil, fmt.Errorf("vertex cover: negative weight %g for %d: %w",
				wv, v, ErrIllegalArgument)
		}
		w[v] = wv
	}

	return w, nil
}

// liveEdges returns the non-loop edge set as a mutable "still uncovered"
// map. Self-loops are covered by their single endpoint and handled upfront.
func (g *Graph) liveEdges(cover map[int64]struct{}) map[int64]struct{} {
	alive := make(map[int64]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		rec := g.edges[e]
		if rec.from == rec.to {
			cover[rec.from] = struct{}{}
			continue
		}
		alive[e] = struct{}{}
	}

	return alive
}

// GreedyVertexCover repeatedly picks the vertex with the smallest
// weight-to-uncovered-degree ratio, recomputing ratios each round. With
// uniform weights this degenerates to the classic max-degree greedy.
func (g *Graph) GreedyVertexCover(weights map[int64]float64) (float64, []int64, error) {
	w, err := g.coverWeights(weights)
	if err != nil {
		return 0, nil, err
	}

	cover := make(map[int64]struct{})
	alive := g.liveEdges(cover)

	for len(alive) > 0 {
		best := int64(-1)
		bestRatio := math.Inf(1)
		for _, v := range g.Vertices() {
			if _, in := cover[v]; in {
				continue
			}
			d := g.degree(v, alive)
			if d == 0 {
				continue
			}
			ratio := w[v] / float64(d)
			if ratio < bestRatio {
				bestRatio = ratio
				best = v
			}
		}
		cover[best] = struct{}{}
		for _, oe := range g.outEdges(best) {
			delete(alive, oe.edge)
		}
	}

	return coverResult(cover, w)
}

// ClarksonVertexCover is Clarkson's 2-approximation for weighted vertex
// cover: pick the vertex minimizing residual-weight over residual-degree,
// then charge that ratio against every still-uncovered neighbor.
func (g *Graph) ClarksonVertexCover(weights map[int64]float64) (float64, []int64, error) {
	w, err := g.coverWeights(weights)
	if err != nil {
		return 0, nil, err
	}

	cover := make(map[int64]struct{})
	alive := g.liveEdges(cover)

	residual := make(map[int64]float64, len(w))
	for v, wv := range w {
		residual[v] = wv
	}

	for len(alive) > 0 {
		best := int64(-1)
		bestRatio := math.Inf(1)
		for _, v := range g.Vertices() {
			if _, in := cover[v]; in {
				continue
			}
			d := g.degree(v, alive)
			if d == 0 {
				continue
			}
			ratio := residual[v] / float64(d)
			if ratio < bestRatio {
				bestRatio = ratio
				best = v
			}
		}
		cover[best] = struct{}{}
		for _, oe := range g.outEdges(best) {
			if _, covered := alive[oe.edge]; !covered {
				continue
			}
			delete(alive, oe.edge)
			residual[oe.to] -= bestRatio
		}
	}

	return coverResult(cover, w)
}

// EdgeBasedVertexCover is the maximal-matching 2-approximation: scan edges
// in ascending ID order and take both endpoints of every uncovered edge.
func (g *Graph) EdgeBasedVertexCover(weights map[int64]float64) (float64, []int64, error) {
	w, err := g.coverWeights(weights)
	if err != nil {
		return 0, nil, err
	}

	cover := make(map[int64]struct{})
	alive := g.liveEdges(cover)

	for _, e := range g.Edges() {
		if _, uncovered := alive[e]; !uncovered {
			continue
		}
		rec := g.edges[e]
		cover[rec.from] = struct{}{}
		cover[rec.to] = struct{}{}
		for _, v := range []int64{rec.from, rec.to} {
			for _, oe := range g.outEdges(v) {
				delete(alive, oe.edge)
			}
		}
	}

	return coverResult(cover, w)
}

// coverResult flattens a cover set into its total weight and sorted members.
func coverResult(cover map[int64]struct{}, w map[int64]float64) (float64, []int64, error) {
	out := make([]int64, 0, len(cover))
	var total float64
	for v := range cover {
		out = append(out, v)
		total += w[v]
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return total, out, nil
}
