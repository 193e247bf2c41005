package engine

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// GEXF wire shapes; only the subset relevant to edge lists is decoded.
type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	Attributes []gexfAttributes `xml:"attributes"`
	Nodes      []gexfNode       `xml:"nodes>node"`
	Edges      []gexfEdge       `xml:"edges>edge"`
}

type gexfAttributes struct {
	Class string     `xml:"class,attr"`
	Attrs []gexfAttr `xml:"attribute"`
}

type gexfAttr struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfEdge struct {
	Source    string         `xml:"source,attr"`
	Target    string         `xml:"target,attr"`
	Weight    string         `xml:"weight,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

// ParseEdgelistGEXF parses a GEXF document and returns the edge triples in
// import order. Declared attribute titles resolve attvalue keys; labels are
// surfaced under the key "label". Attribute callbacks may be nil.
func ParseEdgelistGEXF(content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) ([]Triple, error) {
	if importID == nil {
		return nil, fmt.Errorf("gexf edgelist: nil import-id callback: %w", ErrIllegalArgument)
	}

	var doc gexfDoc
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("gexf edgelist: %v: %w", err, ErrParse)
	}

	// Attribute declarations map attvalue "for" references to their titles.
	nodeKeys := make(map[string]string)
	edgeKeys := make(map[string]string)
	for _, decl := range doc.Graph.Attributes {
		table := nodeKeys
		if decl.Class == "edge" {
			table = edgeKeys
		}
		for _, a := range decl.Attrs {
			table[a.ID] = a.Title
		}
	}
	keyFor := func(table map[string]string, ref string) string {
		if title, ok := table[ref]; ok && title != "" {
			return title
		}

		return ref
	}

	mapped := make(map[string]int64)
	remap := func(raw string) int64 {
		if id, ok := mapped[raw]; ok {
			return id
		}
		id := importID([]byte(raw))
		mapped[raw] = id

		return id
	}

	for _, node := range doc.Graph.Nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("gexf edgelist: node without id: %w", ErrParse)
		}
		id := remap(node.ID)
		if vertexAttr == nil {
			continue
		}
		if node.Label != "" {
			vertexAttr(id, []byte("label"), []byte(node.Label))
		}
		for _, av := range node.AttValues {
			vertexAttr(id, []byte(keyFor(nodeKeys, av.For)), []byte(av.Value))
		}
	}

	triples := make([]Triple, 0, len(doc.Graph.Edges))
	for i, edge := range doc.Graph.Edges {
		if edge.Source == "" || edge.Target == "" {
			return nil, fmt.Errorf("gexf edgelist: edge %d missing endpoint: %w", i, ErrParse)
		}
		t := Triple{Source: remap(edge.Source), Target: remap(edge.Target), Weight: 1}
		if edge.Weight != "" {
			w, err := strconv.ParseFloat(edge.Weight, 64)
			if err != nil {
				return nil, fmt.Errorf("gexf edgelist: edge %d weight %q: %w", i, edge.Weight, ErrParse)
			}
			t.Weight = w
		}
		triples = append(triples, t)

		if edgeAttr == nil {
			continue
		}
		for _, av := range edge.AttValues {
			edgeAttr(int64(i), []byte(keyFor(edgeKeys, av.For)), []byte(av.Value))
		}
	}

	return triples, nil
}
