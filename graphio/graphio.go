package graphio

import (
	"errors"
	"fmt"
	"os"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// ErrImport indicates an input document could not be parsed.
var ErrImport = errors.New("graphio: import failed")

// EdgeTriple is one imported edge: remapped endpoints plus the document's
// weight, 1 when the document carries none.
type EdgeTriple[V comparable] struct {
	Source V
	Target V
	Weight float64
}

// VertexAttributeHandler receives one vertex attribute during import.
type VertexAttributeHandler[V comparable] func(vertex V, key, value string)

// EdgeAttributeHandler receives one edge attribute during import, keyed by
// the edge's zero-based position in the document.
type EdgeAttributeHandler func(index int, key, value string)

// Option configures an import.
type Option[V comparable] func(*settings[V])

type settings[V comparable] struct {
	vertexAttr VertexAttributeHandler[V]
	edgeAttr   EdgeAttributeHandler
}

// WithVertexAttributes installs a handler for vertex attributes.
func WithVertexAttributes[V comparable](fn VertexAttributeHandler[V]) Option[V] {
	return func(s *settings[V]) { s.vertexAttr = fn }
}

// WithEdgeAttributes installs a handler for edge attributes.
func WithEdgeAttributes[V comparable](fn EdgeAttributeHandler) Option[V] {
	return func(s *settings[V]) { s.edgeAttr = fn }
}

// importer adapts one native parse entry point to the remapping machinery.
type importer func(content []byte, importID capi.ImportIDCallback, vertexAttr, edgeAttr capi.AttributeCallback) (capi.Handle, error)

// ParseEdgelistJSON parses an in-memory JSON edge-list document, remapping
// each raw identifier through importID exactly once.
func ParseEdgelistJSON[V comparable](content []byte, importID func(string) V, opts ...Option[V]) ([]EdgeTriple[V], error) {
	return parse(capi.ImportEdgelistJSON, content, importID, opts)
}

// ParseEdgelistGEXF parses an in-memory GEXF document.
func ParseEdgelistGEXF[V comparable](content []byte, importID func(string) V, opts ...Option[V]) ([]EdgeTriple[V], error) {
	return parse(capi.ImportEdgelistGEXF, content, importID, opts)
}

// ParseEdgelistYAML parses an in-memory YAML edge-list document.
func ParseEdgelistYAML[V comparable](content []byte, importID func(string) V, opts ...Option[V]) ([]EdgeTriple[V], error) {
	return parse(capi.ImportEdgelistYAML, content, importID, opts)
}

// ReadEdgelistJSONFile reads filename and parses it as a JSON edge list.
func ReadEdgelistJSONFile[V comparable](filename string, importID func(string) V, opts ...Option[V]) ([]EdgeTriple[V], error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrImport, filename, err)
	}

	return ParseEdgelistJSON(content, importID, opts...)
}

// ReadEdgelistGEXFFile reads filename and parses it as GEXF.
func ReadEdgelistGEXFFile[V comparable](filename string, importID func(string) V, opts ...Option[V]) ([]EdgeTriple[V], error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrImport, filename, err)
	}

	return ParseEdgelistGEXF(content, importID, opts...)
}

// ReadEdgelistYAMLFile reads filename and parses it as a YAML edge list.
func ReadEdgelistYAMLFile[V comparable](filename string, importID func(string) V, opts ...Option[V]) ([]EdgeTriple[V], error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrImport, filename, err)
	}

	return ParseEdgelistYAML(content, importID, opts...)
}

// parse runs one native import: raw identifiers are remapped to dense local
// indices through a memo table so importID sees each raw string once, then
// the resulting triple stream is drained and decoded back to V.
func parse[V comparable](imp importer, content []byte, importID func(string) V, opts []Option[V]) ([]EdgeTriple[V], error) {
	if importID == nil {
		return nil, fmt.Errorf("%w: nil importID", ErrImport)
	}
	var s settings[V]
	for _, opt := range opts {
		opt(&s)
	}

	var byIndex []V
	remap := func(raw []byte) int64 {
		byIndex = append(byIndex, importID(string(raw)))
		return int64(len(byIndex) - 1)
	}
	var vertexAttr capi.AttributeCallback
	if s.vertexAttr != nil {
		vertexAttr = func(id int64, key, value []byte) {
			s.vertexAttr(byIndex[id], string(key), string(value))
		}
	}
	var edgeAttr capi.AttributeCallback
	if s.edgeAttr != nil {
		edgeAttr = func(id int64, key, value []byte) {
			s.edgeAttr(int(id), string(key), string(value))
		}
	}

	ih, err := imp(content, remap, vertexAttr, edgeAttr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	it := graph.NewIterator(handles.MustAcquire(ih), func(cursor capi.Handle) (EdgeTriple[V], error) {
		src, tgt, w, err := capi.ItNextTriple(cursor)
		if err != nil {
			return EdgeTriple[V]{}, err
		}

		return EdgeTriple[V]{Source: byIndex[src], Target: byIndex[tgt], Weight: w}, nil
	})

	return it.Collect()
}

// ExportEdgelistJSON serializes g as a JSON edge-list document, labeling
// each vertex through label.
func ExportEdgelistJSON[V, E comparable](g *graph.Graph[V, E], label func(V) string) ([]byte, error) {
	if label == nil {
		return nil, fmt.Errorf("graphio: nil label")
	}
	h, err := g.Handle()
	if err != nil {
		return nil, err
	}

	out, err := capi.ExportEdgelistJSON(h, func(id int64) []byte {
		v, derr := g.DecodeVertex(id)
		if derr != nil {
			return nil
		}

		return []byte(label(v))
	})
	if err != nil {
		return nil, fmt.Errorf("export edgelist: %w", err)
	}

	return out, nil
}

// WriteEdgelistJSONFile serializes g and writes the document to filename.
func WriteEdgelistJSONFile[V, E comparable](g *graph.Graph[V, E], label func(V) string, filename string) error {
	out, err := ExportEdgelistJSON(g, label)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, out, 0o644)
}
