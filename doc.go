// Package grapht is a property-graph front end over a native graph engine
// reached through an opaque-handle call boundary.
//
// What it gives you:
//
//   - Identity: vertices and edges carry application identifiers of any
//     comparable type, translated to and from the engine's dense integer
//     IDs by a bijective registry that never reuses a retired ID
//   - Lifecycle: every native object is owned by a release-once handle
//     wrapper with a finalizer backstop, so leaks are loud and
//     use-after-release is an error, not a crash
//   - Laziness: algorithm results cross the boundary as handles and are
//     decoded at most once, on first access
//
// The layers, bottom up:
//
//	internal/engine - the in-process graph engine behind the boundary
//	capi            - the flat, handle-based call surface
//	handles         - release-once ownership of raw handles
//	graph           - the identity-aware graph facade and iterators
//	paths           - lazy shortest-path result wrappers
//	shortestpaths   - Dijkstra, Bellman-Ford, Floyd-Warshall, Martins
//	spanning        - minimum spanning forests (Kruskal, Prim)
//	vertexcover     - approximate weighted vertex covers
//	generators      - classic and random topologies
//	graphio         - edge-list import and export (JSON, GEXF, YAML)
//
// Graphs and their derived objects are not safe for concurrent use; guard
// shared instances with a mutex.
package grapht
