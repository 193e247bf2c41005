// Package engine is the in-process reference implementation of the native
// graph engine. It stores graphs in the dense integer ID space and implements
// the algorithms exposed through the capi call surface.
//
// The engine knows nothing about application-level identifiers; translation
// between spaces is the job of the host layer. All identifiers handed out
// here are monotonically increasing and never reused, so a retired ID can
// never silently alias a later-added element.
package engine

import (
	"fmt"
	"sort"
)

// edgeRec is the engine-side record of a single edge.
type edgeRec struct {
	from   int64
	to     int64
	weight float64
}

// Graph is the engine's graph store: dense integer vertices and edges with
// an adjacency index from→to→edge-set. Undirected edges are mirrored in the
// adjacency index but stored once.
type Graph struct {
	directed bool
	weighted bool
	loops    bool
	multi    bool

	nextVertex int64
	nextEdge   int64

	vertices map[int64]struct{}
	edges    map[int64]*edgeRec

	// adj[from][to] = set of edge IDs between the pair.
	adj map[int64]map[int64]map[int64]struct{}
}

// NewGraph creates an empty graph with the given structural flags.
// The flags are fixed for the lifetime of the graph.
func NewGraph(directed, weighted, loops, multi bool) *Graph {
	return &Graph{
		directed: directed,
		weighted: weighted,
		loops:    loops,
		multi:    multi,
		vertices: make(map[int64]struct{}),
		edges:    make(map[int64]*edgeRec),
		adj:      make(map[int64]map[int64]map[int64]struct{}),
	}
}

// Directed reports whether edges are directed by default.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph carries edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AllowsLoops reports whether self-loops are permitted.
func (g *Graph) AllowsLoops() bool { return g.loops }

// AllowsMultiEdges reports whether parallel edges are permitted.
func (g *Graph) AllowsMultiEdges() bool { return g.multi }

// AddVertex inserts a fresh vertex and returns its ID.
func (g *Graph) AddVertex() int64 {
	id := g.nextVertex
	g.nextVertex++
	g.vertices[id] = struct{}{}

	return id
}

// HasVertex reports whether v exists.
func (g *Graph) HasVertex(v int64) bool {
	_, ok := g.vertices[v]
	return ok
}

// HasEdge reports whether e exists.
func (g *Graph) HasEdge(e int64) bool {
	_, ok := g.edges[e]
	return ok
}

// AddEdge inserts an edge from u to v and returns its ID.
// Unweighted graphs store weight 1 regardless of w.
func (g *Graph) AddEdge(u, v int64, w float64) (int64, error) {
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("add edge: source %d: %w", u, ErrVertexNotFound)
	}
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("add edge: target %d: %w", v, ErrVertexNotFound)
	}
	if u == v && !g.loops {
		return 0, fmt.Errorf("add edge %d->%d: %w", u, v, ErrLoopNotAllowed)
	}
	if !g.multi && len(g.adj[u][v]) > 0 {
		return 0, fmt.Errorf("add edge %d->%d: %w", u, v, ErrMultiEdgeNotAllowed)
	}
	if !g.weighted {
		w = 1
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &edgeRec{from: u, to: v, weight: w}
	g.link(u, v, id)
	if !g.directed && u != v {
		g.link(v, u, id)
	}

	return id, nil
}

// link records edge id in the adjacency index under (from, to).
func (g *Graph) link(from, to, id int64) {
	if g.adj[from] == nil {
		g.adj[from] = make(map[int64]map[int64]struct{})
	}
	if g.adj[from][to] == nil {
		g.adj[from][to] = make(map[int64]struct{})
	}
	g.adj[from][to][id] = struct{}{}
}

// unlink removes edge id from the adjacency index under (from, to).
func (g *Graph) unlink(from, to, id int64) {
	if bucket := g.adj[from][to]; bucket != nil {
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(g.adj[from], to)
		}
	}
}

// RemoveEdge deletes edge e.
func (g *Graph) RemoveEdge(e int64) error {
	rec, ok := g.edges[e]
	if !ok {
		return fmt.Errorf("remove edge %d: %w", e, ErrEdgeNotFound)
	}
	g.unlink(rec.from, rec.to, e)
	if !g.directed && rec.from != rec.to {
		g.unlink(rec.to, rec.from, e)
	}
	delete(g.edges, e)

	return nil
}

// RemoveVertex deletes vertex v along with every incident edge and returns
// the removed edge IDs in ascending order, so the host can retire them from
// its own registries.
func (g *Graph) RemoveVertex(v int64) ([]int64, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("remove vertex %d: %w", v, ErrVertexNotFound)
	}

	removed := make([]int64, 0)
	for id, rec := range g.edges {
		if rec.from == v || rec.to == v {
			removed = append(removed, id)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	for _, id := range removed {
		_ = g.RemoveEdge(id)
	}
	delete(g.adj, v)
	delete(g.vertices, v)

	return removed, nil
}

// EdgeEndpoints returns the stored (from, to, weight) triple of edge e.
func (g *Graph) EdgeEndpoints(e int64) (int64, int64, float64, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, 0, 0, fmt.Errorf("edge endpoints %d: %w", e, ErrEdgeNotFound)
	}

	return rec.from, rec.to, rec.weight, nil
}

// Weight returns the weight of edge e.
func (g *Graph) Weight(e int64) (float64, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, fmt.Errorf("weight %d: %w", e, ErrEdgeNotFound)
	}

	return rec.weight, nil
}

// SetWeight updates the weight of edge e. Fails on unweighted graphs.
func (g *Graph) SetWeight(e int64, w float64) error {
	if !g.weighted {
		return fmt.Errorf("set weight: unweighted graph: %w", ErrUnsupported)
	}
	rec, ok := g.edges[e]
	if !ok {
		return fmt.Errorf("set weight %d: %w", e, ErrEdgeNotFound)
	}
	rec.weight = w

	return nil
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []int64 {
	out := make([]int64, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns all edge IDs in ascending order.
func (g *Graph) Edges() []int64 {
	out := make([]int64, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// outEdges returns the edges leaving u (for undirected graphs: all incident
// edges), each paired with the neighbor reached. Order is deterministic:
// ascending neighbor, then ascending edge ID.
func (g *Graph) outEdges(u int64) []outEdge {
	var out []outEdge
	neighbors := make([]int64, 0, len(g.adj[u]))
	for to := range g.adj[u] {
		neighbors = append(neighbors, to)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	for _, to := range neighbors {
		ids := make([]int64, 0, len(g.adj[u][to]))
		for id := range g.adj[u][to] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			out = append(out, outEdge{edge: id, to: to, weight: g.edges[id].weight})
		}
	}

	return out
}

// outEdge pairs an edge with the neighbor it reaches from some fixed vertex.
type outEdge struct {
	edge   int64
	to     int64
	weight float64
}

// degree returns the number of incident edges of v that are still present in
// the residual edge set given by alive (nil means all edges are alive).
func (g *Graph) degree(v int64, alive map[int64]struct{}) int {
	d := 0
	for _, oe := range g.outEdges(v) {
		if alive != nil {
			if _, ok := alive[oe.edge]; !ok {
				continue
			}
		}
		d++
	}

	return d
}
