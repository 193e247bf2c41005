package engine

import (
	"container/heap"
	"fmt"
)

// Martins runs a label-setting multi-objective shortest-path search from
// source over the fixed criteria pair (total weight, hop count) and keeps,
// per vertex, every Pareto-optimal label. The call boundary only carries
// primitives, so the criteria are fixed rather than supplied as a host
// callback.
//
// Labels are expanded in lexicographic (weight, hops) order; a popped label
// dominated by an already-settled label of the same vertex is discarded.
func (g *Graph) Martins(source int64) (*MultiObjectiveResult, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("martins: source %d: %w", source, ErrVertexNotFound)
	}
	for _, e := range g.Edges() {
		if g.edges[e].weight < 0 {
			return nil, fmt.Errorf("martins: edge %d weight %g: %w",
				e, g.edges[e].weight, ErrIllegalArgument)
		}
	}

	r := &MultiObjectiveResult{
		g:      g,
		Source: source,
		labels: make(map[int64][]*moLabel),
	}

	start := &moLabel{vertex: source}
	pq := labelPQ{start}
	heap.Init(&pq)

	for pq.Len() > 0 {
		lab := heap.Pop(&pq).(*moLabel)
		if dominatedBy(lab, r.labels[lab.vertex]) {
			continue
		}
		r.labels[lab.vertex] = insertLabel(r.labels[lab.vertex], lab)

		for _, oe := range g.outEdges(lab.vertex) {
			next := &moLabel{
				weight: lab.weight + oe.weight,
				hops:   lab.hops + 1,
				vertex: oe.to,
				pred:   lab,
				edge:   oe.edge,
			}
			if dominatedBy(next, r.labels[oe.to]) {
				continue
			}
			heap.Push(&pq, next)
		}
	}

	return r, nil
}

// dominatedBy reports whether lab is dominated by (or equal to) any label in
// front.
func dominatedBy(lab *moLabel, front []*moLabel) bool {
	for _, f := range front {
		if f.dominates(lab) || (f.weight == lab.weight && f.hops == lab.hops) {
			return true
		}
	}

	return false
}

// insertLabel adds lab to front, evicting labels lab dominates.
func insertLabel(front []*moLabel, lab *moLabel) []*moLabel {
	kept := front[:0]
	for _, f := range front {
		if !lab.dominates(f) {
			kept = append(kept, f)
		}
	}

	return append(kept, lab)
}

// labelPQ is a min-heap of labels in lexicographic (weight, hops) order.
type labelPQ []*moLabel

func (pq labelPQ) Len() int { return len(pq) }
func (pq labelPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].hops < pq[j].hops
}
func (pq labelPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*moLabel)) }
func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
