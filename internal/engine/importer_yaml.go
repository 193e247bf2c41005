package engine

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseEdgelistYAML parses a YAML edge-list document with the same shape as
// the JSON format (nodes:/edges: sequences of maps) and returns the edge
// triples in import order. Attribute callbacks may be nil.
func ParseEdgelistYAML(content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) ([]Triple, error) {
	var doc edgelistDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("yaml edgelist: %v: %w", err, ErrParse)
	}

	return walkEdgelist(doc, importID, vertexAttr, edgeAttr, yamlScalar)
}

// yamlScalar renders an attribute value as text: scalars pass through,
// anything nested is re-serialized as flow-style YAML.
func yamlScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", t)
	default:
		b, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}

		return strings.TrimRight(string(b), "\n")
	}
}
