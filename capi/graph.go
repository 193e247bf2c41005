package capi

import "github.com/grapht/grapht/internal/engine"

// GraphCreate allocates a graph with the given structural flags and returns
// its handle.
func GraphCreate(directed, weighted, loops, multi bool) (Handle, error) {
	h := register(engine.NewGraph(directed, weighted, loops, multi))
	trace("GraphCreate", h)

	return h, nil
}

// GraphAddVertex inserts a fresh vertex and returns its dense ID.
func GraphAddVertex(g Handle) (int64, error) {
	trace("GraphAddVertex", g)
	eg, e := resolve[*engine.Graph]("GraphAddVertex", g)
	if e != nil {
		return 0, e
	}

	return eg.AddVertex(), nil
}

// GraphAddEdge inserts an edge u->v with weight w and returns its dense ID.
func GraphAddEdge(g Handle, u, v int64, w float64) (int64, error) {
	trace("GraphAddEdge", g)
	eg, e := resolve[*engine.Graph]("GraphAddEdge", g)
	if e != nil {
		return 0, e
	}
	id, err := eg.AddEdge(u, v, w)
	if err != nil {
		return 0, wrapEngine("GraphAddEdge", g, err)
	}

	return id, nil
}

// GraphRemoveVertex deletes v and its incident edges, returning an iterator
// handle over the removed edge IDs.
func GraphRemoveVertex(g Handle, v int64) (Handle, error) {
	trace("GraphRemoveVertex", g)
	eg, e := resolve[*engine.Graph]("GraphRemoveVertex", g)
	if e != nil {
		return 0, e
	}
	removed, err := eg.RemoveVertex(v)
	if err != nil {
		return 0, wrapEngine("GraphRemoveVertex", g, err)
	}

	return register(engine.NewLongIterator(removed)), nil
}

// GraphRemoveEdge deletes edge e.
func GraphRemoveEdge(g Handle, edge int64) error {
	trace("GraphRemoveEdge", g)
	eg, e := resolve[*engine.Graph]("GraphRemoveEdge", g)
	if e != nil {
		return e
	}
	if err := eg.RemoveEdge(edge); err != nil {
		return wrapEngine("GraphRemoveEdge", g, err)
	}

	return nil
}

// GraphContainsVertex reports whether v exists.
func GraphContainsVertex(g Handle, v int64) (bool, error) {
	eg, e := resolve[*engine.Graph]("GraphContainsVertex", g)
	if e != nil {
		return false, e
	}

	return eg.HasVertex(v), nil
}

// GraphContainsEdge reports whether edge e exists.
func GraphContainsEdge(g Handle, edge int64) (bool, error) {
	eg, e := resolve[*engine.Graph]("GraphContainsEdge", g)
	if e != nil {
		return false, e
	}

	return eg.HasEdge(edge), nil
}

// GraphVertexCount returns the number of live vertices.
func GraphVertexCount(g Handle) (int64, error) {
	eg, e := resolve[*engine.Graph]("GraphVertexCount", g)
	if e != nil {
		return 0, e
	}

	return int64(eg.VertexCount()), nil
}

// GraphEdgeCount returns the number of live edges.
func GraphEdgeCount(g Handle) (int64, error) {
	eg, e := resolve[*engine.Graph]("GraphEdgeCount", g)
	if e != nil {
		return 0, e
	}

	return int64(eg.EdgeCount()), nil
}

// GraphGetEdgeWeight returns the weight of edge e.
func GraphGetEdgeWeight(g Handle, edge int64) (float64, error) {
	eg, e := resolve[*engine.Graph]("GraphGetEdgeWeight", g)
	if e != nil {
		return 0, e
	}
	w, err := eg.Weight(edge)
	if err != nil {
		return 0, wrapEngine("GraphGetEdgeWeight", g, err)
	}

	return w, nil
}

// GraphSetEdgeWeight updates the weight of edge e.
func GraphSetEdgeWeight(g Handle, edge int64, w float64) error {
	trace("GraphSetEdgeWeight", g)
	eg, e := resolve[*engine.Graph]("GraphSetEdgeWeight", g)
	if e != nil {
		return e
	}
	if err := eg.SetWeight(edge, w); err != nil {
		return wrapEngine("GraphSetEdgeWeight", g, err)
	}

	return nil
}

// GraphEdgeEndpoints returns the (source, target, weight) triple of edge e.
func GraphEdgeEndpoints(g Handle, edge int64) (int64, int64, float64, error) {
	eg, e := resolve[*engine.Graph]("GraphEdgeEndpoints", g)
	if e != nil {
		return 0, 0, 0, e
	}
	u, v, w, err := eg.EdgeEndpoints(edge)
	if err != nil {
		return 0, 0, 0, wrapEngine("GraphEdgeEndpoints", g, err)
	}

	return u, v, w, nil
}

// GraphVerticesIt returns an iterator handle over all vertex IDs in
// ascending order.
func GraphVerticesIt(g Handle) (Handle, error) {
	eg, e := resolve[*engine.Graph]("GraphVerticesIt", g)
	if e != nil {
		return 0, e
	}

	return register(engine.NewLongIterator(eg.Vertices())), nil
}

// GraphEdgesIt returns an iterator handle over all edge IDs in ascending
// order.
func GraphEdgesIt(g Handle) (Handle, error) {
	eg, e := resolve[*engine.Graph]("GraphEdgesIt", g)
	if e != nil {
		return 0, e
	}

	return register(engine.NewLongIterator(eg.Edges())), nil
}
