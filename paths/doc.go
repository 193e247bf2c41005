// Package paths holds the lazy wrappers around native algorithm results.
//
// Each wrapper owns its native result handle and keeps a back-reference to
// the graph it was computed against, used only for identifier translation.
// Decoding is deferred until first access and happens exactly once: the
// single native fetch populates an immutable cache, and every later read is
// served from it. A wrapper may outlive its graph, but decoding after the
// graph was destroyed fails with ErrStaleReference rather than guessing.
package paths
