package graph

import "errors"

// Sentinel errors for the identity layer. Callers branch with errors.Is.
var (
	// ErrUnknownVertex indicates an application vertex identifier with no
	// registry entry.
	ErrUnknownVertex = errors.New("graph: unknown vertex")

	// ErrUnknownEdge indicates an application edge identifier with no
	// registry entry.
	ErrUnknownEdge = errors.New("graph: unknown edge")

	// ErrDuplicateVertex indicates an identifier that is already bound.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")

	// ErrDuplicateEdge indicates an edge identifier that is already bound.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrCorruptMapping indicates an internal ID with no reverse entry.
	// This is an invariant violation inside the registry, never a
	// user-triggerable condition, and always propagates.
	ErrCorruptMapping = errors.New("graph: corrupt identifier mapping")

	// ErrLoopNotAllowed indicates a self-loop on a graph constructed
	// without loop support (a structural-constraint violation).
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge on a graph
	// constructed without multi-edge support (a structural-constraint
	// violation).
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrBadWeight indicates a weight operation on an unweighted graph.
	ErrBadWeight = errors.New("graph: weights not supported")

	// ErrNoSupplier indicates an auto-generating operation on a graph
	// without the corresponding identifier supplier.
	ErrNoSupplier = errors.New("graph: no identifier supplier")

	// ErrDestroyed indicates an operation on a destroyed graph.
	ErrDestroyed = errors.New("graph: graph destroyed")

	// ErrIteratorExhausted indicates Next was called after the iterator's
	// end was observed.
	ErrIteratorExhausted = errors.New("graph: iterator exhausted")
)
