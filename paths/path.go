package paths

import (
	"errors"
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
	"github.com/grapht/grapht/handles"
)

// ErrStaleReference indicates a result wrapper was decoded after the graph
// it was computed against was destroyed.
var ErrStaleReference = errors.New("paths: graph destroyed before decode")

// Path is a lazy graph path: weight, endpoints and the ordered edge
// sequence are fetched from the native result on first access and cached
// immutably thereafter.
type Path[V, E comparable] struct {
	ref *handles.Ref
	g   *graph.Graph[V, E]

	decoded bool
	weight  float64
	start   V
	end     V
	edges   []E
}

// NewPath wraps a native path handle computed against g. The wrapper takes
// ownership of ref; creation is cheap, nothing is decoded yet.
func NewPath[V, E comparable](ref *handles.Ref, g *graph.Graph[V, E]) *Path[V, E] {
	return &Path[V, E]{ref: ref, g: g}
}

// ensureDecoded performs the one native fetch populating the cache. All
// accessors call it first; after it succeeds once it is a no-op forever.
func (p *Path[V, E]) ensureDecoded() error {
	if p.decoded {
		return nil
	}
	if p.g.Destroyed() {
		return ErrStaleReference
	}
	h, err := p.ref.Value()
	if err != nil {
		return err
	}

	w, startID, endID, edgeIt, err := capi.HandlesGetGraphPath(h)
	if err != nil {
		return fmt.Errorf("decode path: %w", err)
	}
	start, err := p.g.DecodeVertex(startID)
	if err != nil {
		return err
	}
	end, err := p.g.DecodeVertex(endID)
	if err != nil {
		return err
	}
	it := graph.NewIterator(handles.MustAcquire(edgeIt), func(cursor capi.Handle) (E, error) {
		id, err := capi.ItNextLong(cursor)
		if err != nil {
			var zero E
			return zero, err
		}

		return p.g.DecodeEdge(id)
	})
	edges, err := it.Collect()
	if err != nil {
		return err
	}

	p.weight = w
	p.start = start
	p.end = end
	p.edges = edges
	p.decoded = true

	return nil
}

// Weight returns the path's total weight.
func (p *Path[V, E]) Weight() (float64, error) {
	if err := p.ensureDecoded(); err != nil {
		return 0, err
	}

	return p.weight, nil
}

// StartVertex returns the path's first vertex.
func (p *Path[V, E]) StartVertex() (V, error) {
	if err := p.ensureDecoded(); err != nil {
		var zero V
		return zero, err
	}

	return p.start, nil
}

// EndVertex returns the path's last vertex.
func (p *Path[V, E]) EndVertex() (V, error) {
	if err := p.ensureDecoded(); err != nil {
		var zero V
		return zero, err
	}

	return p.end, nil
}

// Edges returns the ordered edge sequence. The returned slice is the cache
// itself; treat it as read-only.
func (p *Path[V, E]) Edges() ([]E, error) {
	if err := p.ensureDecoded(); err != nil {
		return nil, err
	}

	return p.edges, nil
}

// Release frees the native result handle. Cached fields stay readable.
func (p *Path[V, E]) Release() error { return p.ref.Release() }
