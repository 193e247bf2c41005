package paths

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// MultiObjective wraps a native multi-objective shortest-path result: for
// each target there may be several mutually non-dominated paths.
type MultiObjective[V, E comparable] struct {
	ref    *handles.Ref
	g      *graph.Graph[V, E]
	source V
}

// NewMultiObjective wraps a native multi-objective result handle rooted at
// source. The wrapper takes ownership of ref.
func NewMultiObjective[V, E comparable](ref *handles.Ref, g *graph.Graph[V, E], source V) *MultiObjective[V, E] {
	return &MultiObjective[V, E]{ref: ref, g: g, source: source}
}

// SourceVertex returns the root the result was computed from.
func (m *MultiObjective[V, E]) SourceVertex() V { return m.source }

// PathsTo returns a single-pass iterator over the efficient paths reaching
// target. Each step materializes one lazy Path owning a fresh native
// handle. An unreachable target yields an immediately exhausted iterator.
func (m *MultiObjective[V, E]) PathsTo(target V) (*graph.Iterator[*Path[V, E]], error) {
	if m.g.Destroyed() {
		return nil, ErrStaleReference
	}
	h, err := m.ref.Value()
	if err != nil {
		return nil, err
	}
	targetID, err := m.g.EncodeVertex(target)
	if err != nil {
		return nil, err
	}

	ith, err := capi.MultiSPGetPathsToVertex(h, targetID)
	if err != nil {
		return nil, fmt.Errorf("paths to %v: %w", target, err)
	}

	return graph.NewIterator(handles.MustAcquire(ith), func(cursor capi.Handle) (*Path[V, E], error) {
		ph, err := capi.ItNextObject(cursor)
		if err != nil {
			return nil, err
		}

		return NewPath(handles.MustAcquire(ph), m.g), nil
	}), nil
}

// Release frees the native result handle. Paths already materialized keep
// their own handles.
func (m *MultiObjective[V, E]) Release() error { return m.ref.Release() }
