package paths

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// AllPairs wraps a native all-pairs shortest-path result. Both pairwise
// paths and whole single-source views are carved out lazily.
type AllPairs[V, E comparable] struct {
	ref *handles.Ref
	g   *graph.Graph[V, E]
}

// NewAllPairs wraps a native all-pairs result handle. The wrapper takes
// ownership of ref.
func NewAllPairs[V, E comparable](ref *handles.Ref, g *graph.Graph[V, E]) *AllPairs[V, E] {
	return &AllPairs[V, E]{ref: ref, g: g}
}

// PathBetween extracts the path from source to target, or (nil, nil) when
// target is unreachable.
func (a *AllPairs[V, E]) PathBetween(source, target V) (*Path[V, E], error) {
	if a.g.Destroyed() {
		return nil, ErrStaleReference
	}
	h, err := a.ref.Value()
	if err != nil {
		return nil, err
	}
	sourceID, err := a.g.EncodeVertex(source)
	if err != nil {
		return nil, err
	}
	targetID, err := a.g.EncodeVertex(target)
	if err != nil {
		return nil, err
	}

	ph, err := capi.SPAllPairsGetPathBetweenVertices(h, sourceID, targetID)
	if err != nil {
		return nil, fmt.Errorf("path %v to %v: %w", source, target, err)
	}
	if ph == 0 {
		return nil, nil
	}

	return NewPath(handles.MustAcquire(ph), a.g), nil
}

// PathsFrom carves the single-source view rooted at source out of the
// all-pairs result. The returned wrapper owns its own native handle.
func (a *AllPairs[V, E]) PathsFrom(source V) (*SingleSource[V, E], error) {
	if a.g.Destroyed() {
		return nil, ErrStaleReference
	}
	h, err := a.ref.Value()
	if err != nil {
		return nil, err
	}
	sourceID, err := a.g.EncodeVertex(source)
	if err != nil {
		return nil, err
	}

	sh, err := capi.SPAllPairsGetSingleSourceFromVertex(h, sourceID)
	if err != nil {
		return nil, fmt.Errorf("paths from %v: %w", source, err)
	}

	return NewSingleSource(handles.MustAcquire(sh), a.g, source), nil
}

// Release frees the native result handle. Views carved out earlier keep
// their own handles and stay usable.
func (a *AllPairs[V, E]) Release() error { return a.ref.Release() }
