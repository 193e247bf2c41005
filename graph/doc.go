// Package graph is the property-graph identity layer: it couples one owned
// native graph handle with a pair of ID registries so callers can name
// vertices and edges with arbitrary comparable identifiers while the native
// engine works in its dense integer space.
//
// Every mutation translates application identifiers to internal IDs before
// crossing the boundary, and every result translates back before reaching
// the caller; internal IDs never leak except through the explicit
// Encode/Decode accessors used by result wrappers. Internal IDs are
// monotonic and never reused, so a stale cached result can never silently
// resolve to a later-added element.
//
// The package also provides Iterator, the single-pass adapter over native
// cursors that decodes each raw element on the way out.
//
// The layer is single-threaded by design: each Graph, and everything
// borrowed from it, has exactly one owner at a time. Wrap a Graph in an
// external mutex if it must be shared across goroutines.
package graph
