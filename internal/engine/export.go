package engine

import (
	"encoding/json"
	"fmt"
)

// LabelCallback renders an engine vertex ID as the textual identifier to
// write into an export document. Returning nil aborts the export.
type LabelCallback func(id int64) []byte

// ExportEdgelistJSON serializes the graph as a JSON edge-list document in
// the same shape the JSON importer reads, with vertex identifiers supplied
// by the label callback. Vertices and edges are written in ascending ID
// order.
func (g *Graph) ExportEdgelistJSON(label LabelCallback) ([]byte, error) {
	if label == nil {
		return nil, fmt.Errorf("export edgelist: nil label callback: %w", ErrIllegalArgument)
	}

	labels := make(map[int64]string, g.VertexCount())
	type nodeDoc struct {
		ID string `json:"id"`
	}
	nodes := make([]nodeDoc, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		raw := label(v)
		if raw == nil {
			return nil, fmt.Errorf("export edgelist: no label for vertex %d: %w", v, ErrIllegalArgument)
		}
		labels[v] = string(raw)
		nodes = append(nodes, nodeDoc{ID: labels[v]})
	}

	type edgeDoc struct {
		Source string  `json:"source"`
		Target string  `json:"target"`
		Weight float64 `json:"weight"`
	}
	edges := make([]edgeDoc, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		rec := g.edges[e]
		edges = append(edges, edgeDoc{
			Source: labels[rec.from],
			Target: labels[rec.to],
			Weight: rec.weight,
		})
	}

	doc := struct {
		Nodes []nodeDoc `json:"nodes"`
		Edges []edgeDoc `json:"edges"`
	}{Nodes: nodes, Edges: edges}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("export edgelist: %v: %w", err, ErrParse)
	}

	return out, nil
}
