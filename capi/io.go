package capi

import (
	"fmt"
	"os"

	"github.com/grapht/grapht/internal/engine"
)

// ImportIDCallback remaps a raw textual identifier from an input document
// into the caller's integer ID space.
type ImportIDCallback = engine.ImportIDCallback

// AttributeCallback receives one element attribute during import.
type AttributeCallback = engine.AttributeCallback

// importFormat dispatches parsing by format name.
func importFormat(op string, parse func([]byte, engine.ImportIDCallback, engine.AttributeCallback, engine.AttributeCallback) ([]engine.Triple, error),
	content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	triples, err := parse(content, importID, vertexAttr, edgeAttr)
	if err != nil {
		return 0, wrapEngine(op, 0, err)
	}

	return register(engine.NewTripleIterator(triples)), nil
}

// ImportEdgelistJSON parses an in-memory JSON edge-list document and returns
// a triple-iterator handle.
func ImportEdgelistJSON(content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	trace("ImportEdgelistJSON", 0)
	return importFormat("ImportEdgelistJSON", engine.ParseEdgelistJSON, content, importID, vertexAttr, edgeAttr)
}

// ImportEdgelistGEXF parses an in-memory GEXF document and returns a
// triple-iterator handle.
func ImportEdgelistGEXF(content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	trace("ImportEdgelistGEXF", 0)
	return importFormat("ImportEdgelistGEXF", engine.ParseEdgelistGEXF, content, importID, vertexAttr, edgeAttr)
}

// ImportEdgelistYAML parses an in-memory YAML edge-list document and returns
// a triple-iterator handle.
func ImportEdgelistYAML(content []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	trace("ImportEdgelistYAML", 0)
	return importFormat("ImportEdgelistYAML", engine.ParseEdgelistYAML, content, importID, vertexAttr, edgeAttr)
}

// readFile loads filename, classifying failures as import errors.
func readFile(op string, filename []byte) ([]byte, error) {
	content, err := os.ReadFile(string(filename))
	if err != nil {
		return nil, newError(op, 0, StatusImportError, fmt.Errorf("read %s: %w", filename, err))
	}

	return content, nil
}

// ImportEdgelistJSONFile reads filename and parses it as a JSON edge list.
func ImportEdgelistJSONFile(filename []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	content, err := readFile("ImportEdgelistJSONFile", filename)
	if err != nil {
		return 0, err
	}

	return ImportEdgelistJSON(content, importID, vertexAttr, edgeAttr)
}

// ImportEdgelistGEXFFile reads filename and parses it as GEXF.
func ImportEdgelistGEXFFile(filename []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	content, err := readFile("ImportEdgelistGEXFFile", filename)
	if err != nil {
		return 0, err
	}

	return ImportEdgelistGEXF(content, importID, vertexAttr, edgeAttr)
}

// ImportEdgelistYAMLFile reads filename and parses it as a YAML edge list.
func ImportEdgelistYAMLFile(filename []byte, importID ImportIDCallback, vertexAttr, edgeAttr AttributeCallback) (Handle, error) {
	content, err := readFile("ImportEdgelistYAMLFile", filename)
	if err != nil {
		return 0, err
	}

	return ImportEdgelistYAML(content, importID, vertexAttr, edgeAttr)
}

// ExportEdgelistJSON serializes the graph as a JSON edge-list document,
// labeling vertices through the callback.
func ExportEdgelistJSON(g Handle, label engine.LabelCallback) ([]byte, error) {
	trace("ExportEdgelistJSON", g)
	eg, e := resolve[*engine.Graph]("ExportEdgelistJSON", g)
	if e != nil {
		return nil, e
	}
	out, err := eg.ExportEdgelistJSON(label)
	if err != nil {
		return nil, wrapEngine("ExportEdgelistJSON", g, err)
	}

	return out, nil
}
