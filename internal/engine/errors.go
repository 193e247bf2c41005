package engine

import "errors"

// Sentinel errors reported by the engine. The call surface (capi) translates
// each of these into a stable status code; nothing outside capi should
// depend on them directly.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("engine: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("engine: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("engine: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("engine: multi-edges not allowed")

	// ErrIllegalArgument indicates a parameter outside its valid domain.
	ErrIllegalArgument = errors.New("engine: illegal argument")

	// ErrUnsupported indicates the operation is incompatible with the graph's
	// configuration (for example SetWeight on an unweighted graph).
	ErrUnsupported = errors.New("engine: unsupported operation")

	// ErrNoSuchElement indicates an iterator was advanced past its end.
	ErrNoSuchElement = errors.New("engine: no such element")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// requested source, making shortest paths undefined.
	ErrNegativeCycle = errors.New("engine: negative-weight cycle")

	// ErrParse indicates malformed import input. No partial results are kept.
	ErrParse = errors.New("engine: parse error")

	// ErrDisconnected indicates that a spanning tree covering all vertices
	// cannot be formed.
	ErrDisconnected = errors.New("engine: graph is disconnected")
)
