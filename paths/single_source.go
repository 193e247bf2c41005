package paths

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// SingleSource wraps a native single-source shortest-path tree. Individual
// paths are materialized on demand through PathTo.
type SingleSource[V, E comparable] struct {
	ref    *handles.Ref
	g      *graph.Graph[V, E]
	source V
}

// NewSingleSource wraps a native single-source result handle rooted at
// source. The wrapper takes ownership of ref.
func NewSingleSource[V, E comparable](ref *handles.Ref, g *graph.Graph[V, E], source V) *SingleSource[V, E] {
	return &SingleSource[V, E]{ref: ref, g: g, source: source}
}

// SourceVertex returns the root of the tree. Always available, no native
// call involved.
func (s *SingleSource[V, E]) SourceVertex() V { return s.source }

// PathTo extracts the path from the source to target. An unreachable target
// yields (nil, nil); absence of a path is an answer, not a failure.
func (s *SingleSource[V, E]) PathTo(target V) (*Path[V, E], error) {
	if s.g.Destroyed() {
		return nil, ErrStaleReference
	}
	h, err := s.ref.Value()
	if err != nil {
		return nil, err
	}
	targetID, err := s.g.EncodeVertex(target)
	if err != nil {
		return nil, err
	}

	ph, err := capi.SPSingleSourceGetPathToVertex(h, targetID)
	if err != nil {
		return nil, fmt.Errorf("path to %v: %w", target, err)
	}
	if ph == 0 {
		return nil, nil
	}

	return NewPath(handles.MustAcquire(ph), s.g), nil
}

// Release frees the native result handle.
func (s *SingleSource[V, E]) Release() error { return s.ref.Release() }
