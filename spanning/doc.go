// Package spanning computes minimum spanning forests through the native
// engine. The graph must be undirected; a disconnected graph yields the
// forest spanning each component rather than an error. Results arrive as
// application edge identifiers, fully decoded.
package spanning
