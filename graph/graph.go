package graph

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/handles"
)

// Graph couples one owned native graph handle with the vertex and edge
// registries. It is the unit of ownership every result wrapper borrows
// from: wrappers keep a back-reference for ID translation but never own
// the graph.
type Graph[V, E comparable] struct {
	ref   *handles.Ref
	verts *Registry[V]
	edges *Registry[E]
	s     settings

	vertexSupplier func() V
	edgeSupplier   func() E

	destroyed bool
}

// New creates an empty graph. By default it is undirected, unweighted, with
// no loops and no multi-edges; identifier suppliers start unset.
func New[V, E comparable](opts ...Option) (*Graph[V, E], error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	h, err := capi.GraphCreate(s.directed, s.weighted, s.loops, s.multi)
	if err != nil {
		return nil, fmt.Errorf("graph: create: %w", err)
	}
	ref, err := handles.Acquire(h)
	if err != nil {
		return nil, fmt.Errorf("graph: create: %w", err)
	}

	return &Graph[V, E]{
		ref:   ref,
		verts: NewRegistry[V](),
		edges: NewRegistry[E](),
		s:     s,
	}, nil
}

// NewInt64 creates a graph with int64 identifiers and sequential suppliers
// preinstalled, the conventional configuration for algorithm work.
func NewInt64(opts ...Option) (*Graph[int64, int64], error) {
	g, err := New[int64, int64](opts...)
	if err != nil {
		return nil, err
	}
	g.SetVertexSupplier(Int64Supplier())
	g.SetEdgeSupplier(Int64Supplier())

	return g, nil
}

// SetVertexSupplier installs the generator used by AddGeneratedVertex and
// by native-side discovery (generators).
func (g *Graph[V, E]) SetVertexSupplier(fn func() V) { g.vertexSupplier = fn }

// SetEdgeSupplier installs the generator used by AddEdge and by native-side
// discovery.
func (g *Graph[V, E]) SetEdgeSupplier(fn func() E) { g.edgeSupplier = fn }

// Directed reports whether edges are directed.
func (g *Graph[V, E]) Directed() bool { return g.s.directed }

// Weighted reports whether the graph carries edge weights.
func (g *Graph[V, E]) Weighted() bool { return g.s.weighted }

// AllowsLoops reports whether self-loops are permitted.
func (g *Graph[V, E]) AllowsLoops() bool { return g.s.loops }

// AllowsMultiEdges reports whether parallel edges are permitted.
func (g *Graph[V, E]) AllowsMultiEdges() bool { return g.s.multi }

// Destroyed reports whether Destroy has run. Result wrappers consult this
// before decoding.
func (g *Graph[V, E]) Destroyed() bool { return g.destroyed }

// Handle lends the native graph handle for a boundary call.
func (g *Graph[V, E]) Handle() (capi.Handle, error) {
	if g.destroyed {
		return 0, ErrDestroyed
	}

	return g.ref.Value()
}

// Destroy releases the native graph and clears both registries. Wrappers
// computed against this graph fail decoding afterwards. Idempotent.
func (g *Graph[V, E]) Destroy() error {
	if g.destroyed {
		return nil
	}
	g.destroyed = true
	g.verts.Clear()
	g.edges.Clear()

	return g.ref.Release()
}

// AddVertex registers v and creates the backing native vertex.
func (g *Graph[V, E]) AddVertex(v V) error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	if g.verts.Has(v) {
		return fmt.Errorf("add vertex %v: %w", v, ErrDuplicateVertex)
	}
	id, err := capi.GraphAddVertex(h)
	if err != nil {
		return fmt.Errorf("add vertex %v: %w", v, err)
	}

	return g.verts.Bind(v, id)
}

// AddGeneratedVertex draws an identifier from the vertex supplier, adds it
// and returns it.
func (g *Graph[V, E]) AddGeneratedVertex() (V, error) {
	var zero V
	if g.vertexSupplier == nil {
		return zero, fmt.Errorf("add generated vertex: %w", ErrNoSupplier)
	}
	v := g.vertexSupplier()
	if err := g.AddVertex(v); err != nil {
		return zero, err
	}

	return v, nil
}

// AddEdge connects u to v with weight w (ignored on unweighted graphs),
// drawing the edge identifier from the edge supplier.
func (g *Graph[V, E]) AddEdge(u, v V, w float64) (E, error) {
	var zero E
	if g.edgeSupplier == nil {
		return zero, fmt.Errorf("add edge: %w", ErrNoSupplier)
	}
	e := g.edgeSupplier()
	if err := g.AddEdgeWithID(e, u, v, w); err != nil {
		return zero, err
	}

	return e, nil
}

// AddEdgeWithID connects u to v under the caller-chosen edge identifier.
func (g *Graph[V, E]) AddEdgeWithID(e E, u, v V, w float64) error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	if g.edges.Has(e) {
		return fmt.Errorf("add edge %v: %w", e, ErrDuplicateEdge)
	}
	ui, err := g.EncodeVertex(u)
	if err != nil {
		return err
	}
	vi, err := g.EncodeVertex(v)
	if err != nil {
		return err
	}
	id, err := capi.GraphAddEdge(h, ui, vi, w)
	if err != nil {
		return fmt.Errorf("add edge %v->%v: %w", u, v, constraintError(err))
	}

	return g.edges.Bind(e, id)
}

// RemoveVertex deletes v, its incident edges, and every associated registry
// entry. The retired internal IDs are never reused.
func (g *Graph[V, E]) RemoveVertex(v V) error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	vi, err := g.EncodeVertex(v)
	if err != nil {
		return err
	}
	removedIt, err := capi.GraphRemoveVertex(h, vi)
	if err != nil {
		return fmt.Errorf("remove vertex %v: %w", v, err)
	}

	// Retire the registry entries of every edge the engine dropped.
	it := NewIterator(handles.MustAcquire(removedIt), capi.ItNextLong)
	removed, err := it.Collect()
	if err != nil {
		return fmt.Errorf("remove vertex %v: %w", v, err)
	}
	for _, edgeID := range removed {
		g.edges.ForgetID(edgeID)
	}
	g.verts.Forget(v)

	return nil
}

// RemoveEdge deletes e and retires its registry entry.
func (g *Graph[V, E]) RemoveEdge(e E) error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	ei, err := g.EncodeEdge(e)
	if err != nil {
		return err
	}
	if err = capi.GraphRemoveEdge(h, ei); err != nil {
		return fmt.Errorf("remove edge %v: %w", e, err)
	}
	g.edges.Forget(e)

	return nil
}

// Weight returns the weight of edge e.
func (g *Graph[V, E]) Weight(e E) (float64, error) {
	h, err := g.Handle()
	if err != nil {
		return 0, err
	}
	ei, err := g.EncodeEdge(e)
	if err != nil {
		return 0, err
	}
	w, err := capi.GraphGetEdgeWeight(h, ei)
	if err != nil {
		return 0, fmt.Errorf("weight %v: %w", e, err)
	}

	return w, nil
}

// SetWeight updates the weight of edge e. Fails with ErrBadWeight on
// unweighted graphs.
func (g *Graph[V, E]) SetWeight(e E, w float64) error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	if !g.s.weighted {
		return fmt.Errorf("set weight %v: %w", e, ErrBadWeight)
	}
	ei, err := g.EncodeEdge(e)
	if err != nil {
		return err
	}
	if err = capi.GraphSetEdgeWeight(h, ei, w); err != nil {
		return fmt.Errorf("set weight %v: %w", e, err)
	}

	return nil
}

// EdgeEndpoints returns the application identifiers of e's endpoints.
func (g *Graph[V, E]) EdgeEndpoints(e E) (V, V, error) {
	var zu, zv V
	h, err := g.Handle()
	if err != nil {
		return zu, zv, err
	}
	ei, err := g.EncodeEdge(e)
	if err != nil {
		return zu, zv, err
	}
	ui, vi, _, err := capi.GraphEdgeEndpoints(h, ei)
	if err != nil {
		return zu, zv, fmt.Errorf("edge endpoints %v: %w", e, err)
	}
	u, err := g.DecodeVertex(ui)
	if err != nil {
		return zu, zv, err
	}
	v, err := g.DecodeVertex(vi)
	if err != nil {
		return zu, zv, err
	}

	return u, v, nil
}

// ContainsVertex reports whether v is registered.
func (g *Graph[V, E]) ContainsVertex(v V) bool { return !g.destroyed && g.verts.Has(v) }

// ContainsEdge reports whether e is registered.
func (g *Graph[V, E]) ContainsEdge(e E) bool { return !g.destroyed && g.edges.Has(e) }

// VertexCount returns the number of live vertices.
func (g *Graph[V, E]) VertexCount() int { return g.verts.Len() }

// EdgeCount returns the number of live edges.
func (g *Graph[V, E]) EdgeCount() int { return g.edges.Len() }

// Vertices returns a single-pass iterator over all vertex identifiers.
func (g *Graph[V, E]) Vertices() (*Iterator[V], error) {
	h, err := g.Handle()
	if err != nil {
		return nil, err
	}
	cursor, err := capi.GraphVerticesIt(h)
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}

	return NewIterator(handles.MustAcquire(cursor), func(it capi.Handle) (V, error) {
		id, err := capi.ItNextLong(it)
		if err != nil {
			var zero V
			return zero, err
		}

		return g.DecodeVertex(id)
	}), nil
}

// Edges returns a single-pass iterator over all edge identifiers.
func (g *Graph[V, E]) Edges() (*Iterator[E], error) {
	h, err := g.Handle()
	if err != nil {
		return nil, err
	}
	cursor, err := capi.GraphEdgesIt(h)
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	return NewIterator(handles.MustAcquire(cursor), func(it capi.Handle) (E, error) {
		id, err := capi.ItNextLong(it)
		if err != nil {
			var zero E
			return zero, err
		}

		return g.DecodeEdge(id)
	}), nil
}

// EncodeVertex translates v into the internal ID space.
func (g *Graph[V, E]) EncodeVertex(v V) (int64, error) {
	id, ok := g.verts.Lookup(v)
	if !ok {
		return 0, fmt.Errorf("encode vertex %v: %w", v, ErrUnknownVertex)
	}

	return id, nil
}

// DecodeVertex translates an internal ID back into the application space.
func (g *Graph[V, E]) DecodeVertex(id int64) (V, error) {
	if g.destroyed {
		var zero V
		return zero, ErrDestroyed
	}

	return g.verts.Decode(id)
}

// EncodeEdge translates e into the internal ID space.
func (g *Graph[V, E]) EncodeEdge(e E) (int64, error) {
	id, ok := g.edges.Lookup(e)
	if !ok {
		return 0, fmt.Errorf("encode edge %v: %w", e, ErrUnknownEdge)
	}

	return id, nil
}

// DecodeEdge translates an internal edge ID back into the application
// space.
func (g *Graph[V, E]) DecodeEdge(id int64) (E, error) {
	if g.destroyed {
		var zero E
		return zero, ErrDestroyed
	}

	return g.edges.Decode(id)
}

// SyncFromNative discovers vertices and edges created natively (by a
// generator) and registers them under supplier-generated identifiers.
// Elements already registered are left untouched.
func (g *Graph[V, E]) SyncFromNative() error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	if g.vertexSupplier == nil || g.edgeSupplier == nil {
		return fmt.Errorf("sync from native: %w", ErrNoSupplier)
	}

	vit, err := capi.GraphVerticesIt(h)
	if err != nil {
		return fmt.Errorf("sync from native: %w", err)
	}
	rawVerts, err := NewIterator(handles.MustAcquire(vit), capi.ItNextLong).Collect()
	if err != nil {
		return fmt.Errorf("sync from native: %w", err)
	}
	for _, id := range rawVerts {
		if g.verts.HasID(id) {
			continue
		}
		if err = g.verts.Bind(g.vertexSupplier(), id); err != nil {
			return fmt.Errorf("sync from native: %w", err)
		}
	}

	eit, err := capi.GraphEdgesIt(h)
	if err != nil {
		return fmt.Errorf("sync from native: %w", err)
	}
	rawEdges, err := NewIterator(handles.MustAcquire(eit), capi.ItNextLong).Collect()
	if err != nil {
		return fmt.Errorf("sync from native: %w", err)
	}
	for _, id := range rawEdges {
		if g.edges.HasID(id) {
			continue
		}
		if err = g.edges.Bind(g.edgeSupplier(), id); err != nil {
			return fmt.Errorf("sync from native: %w", err)
		}
	}

	return nil
}

// constraintError maps boundary constraint rejections onto the package's
// sentinels, mirroring the native engine's own classification.
func constraintError(err error) error {
	switch capi.CodeOf(err) {
	case capi.StatusLoopNotAllowed:
		return fmt.Errorf("%w: %w", ErrLoopNotAllowed, err)
	case capi.StatusMultiEdgeNotAllowed:
		return fmt.Errorf("%w: %w", ErrMultiEdgeNotAllowed, err)
	default:
		return err
	}
}
