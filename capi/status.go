package capi

// Status is the stable error-code space of the native boundary.
type Status int

const (
	// StatusInternal is an unclassified engine failure.
	StatusInternal Status = iota + 1

	// StatusInvalidHandle means the Handle does not name a live resource.
	StatusInvalidHandle

	// StatusIllegalArgument means a parameter was outside its valid domain.
	StatusIllegalArgument

	// StatusUnsupportedOperation means the operation is incompatible with
	// the resource's configuration.
	StatusUnsupportedOperation

	// StatusVertexNotFound means a referenced vertex does not exist.
	StatusVertexNotFound

	// StatusEdgeNotFound means a referenced edge does not exist.
	StatusEdgeNotFound

	// StatusLoopNotAllowed means a self-loop was rejected.
	StatusLoopNotAllowed

	// StatusMultiEdgeNotAllowed means a parallel edge was rejected.
	StatusMultiEdgeNotAllowed

	// StatusNoSuchElement means an iterator was advanced past its end.
	StatusNoSuchElement

	// StatusImportError means import input was malformed or unreadable.
	StatusImportError
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusInternal:
		return "internal"
	case StatusInvalidHandle:
		return "invalid handle"
	case StatusIllegalArgument:
		return "illegal argument"
	case StatusUnsupportedOperation:
		return "unsupported operation"
	case StatusVertexNotFound:
		return "vertex not found"
	case StatusEdgeNotFound:
		return "edge not found"
	case StatusLoopNotAllowed:
		return "loop not allowed"
	case StatusMultiEdgeNotAllowed:
		return "multi-edge not allowed"
	case StatusNoSuchElement:
		return "no such element"
	case StatusImportError:
		return "import error"
	default:
		return "unknown"
	}
}
