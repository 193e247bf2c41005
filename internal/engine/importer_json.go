package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// ImportIDCallback remaps a raw textual identifier from an input document
// into the importer's integer ID space. The engine memoizes per parse, so
// each distinct raw identifier is remapped exactly once.
type ImportIDCallback func(raw []byte) int64

// AttributeCallback receives one attribute of an element. For vertices the
// id is the remapped vertex; for edges it is the edge's position in import
// order. Callbacks fire in document order, not grouped per element.
type AttributeCallback func(id int64, key, value []byte)

// edgelistDoc is the wire shape shared by the JSON and YAML edge-list
// formats: nodes carry an "id" plus arbitrary attributes, edges carry
// "source"/"target"/"weight" plus arbitrary attributes.
type edgelistDoc struct {
	Nodes []map[string]any `json:"nodes" yaml:"nodes"`
	Edges []map[string]any `json:"edges" yaml:"edges"`
}

// ParseEdgelistJSON parses a JSON edge-list document and returns the edge
// triples in import order. Attribute callbacks may be nil. Any structural
// problem fails the whole import; no partial results are returned.
func ParseEdgelistJSON(content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) ([]Triple, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var doc edgelistDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json edgelist: %v: %w", err, ErrParse)
	}

	return walkEdgelist(doc, importID, vertexAttr, edgeAttr, jsonScalar)
}

// jsonScalar renders an attribute value as text: strings and numbers pass
// through, anything nested is re-serialized as compact JSON.
func jsonScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}

		return string(b)
	}
}

// walkEdgelist turns a decoded edge-list document into triples, remapping
// identifiers through importID and surfacing extra keys via the callbacks.
func walkEdgelist(doc edgelistDoc, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback, scalar func(any) string) ([]Triple, error) {
	if importID == nil {
		return nil, fmt.Errorf("edgelist: nil import-id callback: %w", ErrIllegalArgument)
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

	for _, node := range doc.Nodes {
		rawID, ok := node["id"]
		if !ok {
			return nil, fmt.Errorf("edgelist: node without id: %w", ErrParse)
		}
		id := remap(scalar(rawID))
		if vertexAttr == nil {
			continue
		}
		for _, key := range sortedKeys(node) {
			if key == "id" {
				continue
			}
			vertexAttr(id, []byte(key), []byte(scalar(node[key])))
		}
	}

	triples := make([]Triple, 0, len(doc.Edges))
	for i, edge := range doc.Edges {
		rawSource, okS := edge["source"]
		rawTarget, okT := edge["target"]
		if !okS || !okT {
			return nil, fmt.Errorf("edgelist: edge %d missing endpoint: %w", i, ErrParse)
		}
		t := Triple{
			Source: remap(scalar(rawSource)),
			Target: remap(scalar(rawTarget)),
			Weight: 1,
		}
		if rawWeight, ok := edge["weight"]; ok {
			if _, err := fmt.Sscanf(scalar(rawWeight), "%g", &t.Weight); err != nil {
				return nil, fmt.Errorf("edgelist: edge %d weight %q: %w", i, scalar(rawWeight), ErrParse)
			}
		}
		triples = append(triples, t)

		if edgeAttr == nil {
			continue
		}
		for _, key := range sortedKeys(edge) {
			if key == "source" || key == "target" || key == "weight" {
				continue
			}
			edgeAttr(int64(i), []byte(key), []byte(scalar(edge[key])))
		}
	}

	return triples, nil
}

// sortedKeys returns the map's keys in ascending order for deterministic
// callback delivery within one element.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
