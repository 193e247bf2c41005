// Package graphio imports and exports graphs as edge-list documents in
// JSON, GEXF and YAML form. Importers are thin: they parse natively, remap
// every raw identifier through a caller-supplied function and hand back
// plain edge triples, leaving graph construction to the caller. Element
// attributes are surfaced through optional handlers as they are parsed.
package graphio
