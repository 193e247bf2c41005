package graph

import "github.com/google/uuid"

// settings holds the structural flags fixed at construction time.
type settings struct {
	directed bool
	weighted bool
	loops    bool
	multi    bool
}

// Option configures a Graph before creation.
type Option func(*settings)

// WithDirected makes all edges directed.
func WithDirected() Option {
	return func(s *settings) { s.directed = true }
}

// WithWeighted allows per-edge weights.
func WithWeighted() Option {
	return func(s *settings) { s.weighted = true }
}

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(s *settings) { s.loops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() Option {
	return func(s *settings) { s.multi = true }
}

// Int64Supplier returns a supplier yielding 0, 1, 2, ... which is the
// conventional identifier scheme for integer graphs.
func Int64Supplier() func() int64 {
	var next int64
	return func() int64 {
		v := next
		next++

		return v
	}
}

// UUIDSupplier returns a supplier yielding fresh random UUID strings, for
// graphs whose identifiers are strings with no natural ordering.
func UUIDSupplier() func() string {
	return uuid.NewString
}
