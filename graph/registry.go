package graph

import (
	"errors"
	"fmt"
)

// errAlreadyBound guards Bind against double registration in either
// direction; the facade pre-checks with Has, so hitting this indicates a
// bug in the calling layer.
var errAlreadyBound = errors.New("graph: identifier already bound")

// Registry is the bijective mapping between application identifiers and the
// engine's dense internal IDs for one namespace (vertices or edges; the two
// never share a Registry, so a vertex and an edge may coincidentally share
// a numeric value without collision).
//
// The mapping is append-only in the internal direction: once an internal ID
// is forgotten it is retired permanently, which makes decoding through a
// stale result fail deterministically instead of aliasing a later-added
// element.
type Registry[K comparable] struct {
	fwd map[K]int64
	rev map[int64]K
}

// NewRegistry returns an empty registry.
func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{
		fwd: make(map[K]int64),
		rev: make(map[int64]K),
	}
}

// Bind records the pair (k, id). Either side already being bound is a
// bijection violation.
func (r *Registry[K]) Bind(k K, id int64) error {
	if _, ok := r.fwd[k]; ok {
		return fmt.Errorf("bind %v: %w", k, errAlreadyBound)
	}
	if prev, ok := r.rev[id]; ok {
		return fmt.Errorf("bind %v: internal id %d bound to %v: %w",
			k, id, prev, errAlreadyBound)
	}
	r.fwd[k] = id
	r.rev[id] = k

	return nil
}

// Lookup returns the internal ID bound to k.
func (r *Registry[K]) Lookup(k K) (int64, bool) {
	id, ok := r.fwd[k]
	return id, ok
}

// Decode returns the application identifier bound to id. A live internal ID
// without a reverse entry is an invariant violation, surfaced as
// ErrCorruptMapping.
func (r *Registry[K]) Decode(id int64) (K, error) {
	k, ok := r.rev[id]
	if !ok {
		var zero K
		return zero, fmt.Errorf("decode internal id %d: %w", id, ErrCorruptMapping)
	}

	return k, nil
}

// Has reports whether k is bound.
func (r *Registry[K]) Has(k K) bool {
	_, ok := r.fwd[k]
	return ok
}

// HasID reports whether internal id is bound.
func (r *Registry[K]) HasID(id int64) bool {
	_, ok := r.rev[id]
	return ok
}

// Forget removes both directions of the mapping for k and returns the
// retired internal ID. The ID is never recycled.
func (r *Registry[K]) Forget(k K) (int64, bool) {
	id, ok := r.fwd[k]
	if !ok {
		return 0, false
	}
	delete(r.fwd, k)
	delete(r.rev, id)

	return id, true
}

// ForgetID removes both directions of the mapping for internal id and
// returns the application identifier it was bound to.
func (r *Registry[K]) ForgetID(id int64) (K, bool) {
	k, ok := r.rev[id]
	if !ok {
		var zero K
		return zero, false
	}
	delete(r.rev, id)
	delete(r.fwd, k)

	return k, true
}

// Len returns the number of live bindings.
func (r *Registry[K]) Len() int { return len(r.fwd) }

// Clear drops every binding. Used when the owning graph is destroyed.
func (r *Registry[K]) Clear() {
	r.fwd = make(map[K]int64)
	r.rev = make(map[int64]K)
}
