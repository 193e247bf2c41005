package generators

import (
	"errors"
	"fmt"
	"time"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/graph"
)

// ErrInvalidParameter rejects a generator argument before any mutation:
// negative sizes, probabilities outside [0, 1], infeasible edge counts.
var ErrInvalidParameter = errors.New("generators: invalid parameter")

// Option configures a generator run.
type Option func(*settings)

type settings struct {
	seed      int64
	seeded    bool
	shortcuts bool
}

// WithSeed pins the random seed, making the generated topology
// reproducible.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed; s.seeded = true }
}

// WithShortcuts makes WattsStrogatz add shortcut edges instead of rewiring
// lattice edges, per the Newman-Watts variation of the model.
func WithShortcuts() Option {
	return func(s *settings) { s.shortcuts = true }
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if !s.seeded {
		s.seed = time.Now().UnixNano()
	}

	return s
}

// Empty adds n isolated vertices to g.
func Empty[V, E comparable](g *graph.Graph[V, E], n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidParameter, n)
	}

	return run(g, "empty", func(h capi.Handle) error {
		return capi.GenerateEmpty(h, int64(n))
	})
}

// Complete generates the complete graph on n vertices. On a directed graph
// both arc directions are created.
func Complete[V, E comparable](g *graph.Graph[V, E], n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidParameter, n)
	}

	return run(g, "complete", func(h capi.Handle) error {
		return capi.GenerateComplete(h, int64(n))
	})
}

// CompleteBipartite generates the complete bipartite graph over partitions
// of size a and b.
func CompleteBipartite[V, E comparable](g *graph.Graph[V, E], a, b int) error {
	if a < 0 || b < 0 {
		return fmt.Errorf("%w: a=%d b=%d", ErrInvalidParameter, a, b)
	}

	return run(g, "complete bipartite", func(h capi.Handle) error {
		return capi.GenerateCompleteBipartite(h, int64(a), int64(b))
	})
}

// Ring generates a single cycle through n vertices.
func Ring[V, E comparable](g *graph.Graph[V, E], n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidParameter, n)
	}

	return run(g, "ring", func(h capi.Handle) error {
		return capi.GenerateRing(h, int64(n))
	})
}

// GnpRandom generates the G(n, p) random graph: every possible edge is
// drawn independently with probability p. Self-loops are included only when
// the graph permits them.
func GnpRandom[V, E comparable](g *graph.Graph[V, E], n int, p float64, opts ...Option) error {
	if n < 0 || p < 0 || p > 1 {
		return fmt.Errorf("%w: n=%d p=%g", ErrInvalidParameter, n, p)
	}
	s := newSettings(opts)

	return run(g, "gnp random", func(h capi.Handle) error {
		return capi.GenerateGnpRandom(h, int64(n), p, g.AllowsLoops(), s.seed)
	})
}

// GnmRandom generates the G(n, m) random graph: exactly m edges drawn
// uniformly among the possible endpoint pairs. Requesting more edges than
// the graph's constraints can host fails before any mutation.
func GnmRandom[V, E comparable](g *graph.Graph[V, E], n, m int, opts ...Option) error {
	if n < 0 || m < 0 {
		return fmt.Errorf("%w: n=%d m=%d", ErrInvalidParameter, n, m)
	}
	// Even with parallel edges allowed, drawing an edge needs an admissible
	// endpoint pair to exist.
	if m > 0 && (n == 0 || (n == 1 && !g.AllowsLoops())) {
		return fmt.Errorf("%w: m=%d with n=%d admits no edge", ErrInvalidParameter, m, n)
	}
	s := newSettings(opts)

	return run(g, "gnm random", func(h capi.Handle) error {
		return capi.GenerateGnmRandom(h, int64(n), int64(m), g.AllowsLoops(), g.AllowsMultiEdges(), s.seed)
	})
}

// BarabasiAlbert generates a preferential-attachment graph: a complete seed
// of m0 vertices grown to n vertices, each newcomer attached to m distinct
// existing vertices biased toward high degree.
func BarabasiAlbert[V, E comparable](g *graph.Graph[V, E], m0, m, n int, opts ...Option) error {
	if m0 < 1 || m < 1 || m > m0 || n < m0 {
		return fmt.Errorf("%w: m0=%d m=%d n=%d", ErrInvalidParameter, m0, m, n)
	}
	s := newSettings(opts)

	return run(g, "barabasi-albert", func(h capi.Handle) error {
		return capi.GenerateBarabasiAlbert(h, int64(m0), int64(m), int64(n), s.seed)
	})
}

// BarabasiAlbertForest generates a preferential-attachment forest: t isolated
// seed vertices grown to n, each newcomer attached to exactly one existing
// vertex biased toward high degree. The graph must be undirected.
func BarabasiAlbertForest[V, E comparable](g *graph.Graph[V, E], t, n int, opts ...Option) error {
	if t < 1 || n < t {
		return fmt.Errorf("%w: t=%d n=%d", ErrInvalidParameter, t, n)
	}
	s := newSettings(opts)

	return run(g, "barabasi-albert forest", func(h capi.Handle) error {
		return capi.GenerateBarabasiAlbertForest(h, int64(t), int64(n), s.seed)
	})
}

// ScaleFree generates a connected scale-free graph on n vertices: many
// vertices of small degree and a few hubs of large degree.
func ScaleFree[V, E comparable](g *graph.Graph[V, E], n int, opts ...Option) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidParameter, n)
	}
	s := newSettings(opts)

	return run(g, "scale-free", func(h capi.Handle) error {
		return capi.GenerateScaleFree(h, int64(n), s.seed)
	})
}

// WattsStrogatz generates a small-world graph: a ring lattice of n vertices
// each joined to its k nearest neighbors (k even), then every lattice edge
// rewired with probability p to a random endpoint. WithShortcuts keeps the
// lattice edges and adds shortcuts instead. The graph must be undirected.
func WattsStrogatz[V, E comparable](g *graph.Graph[V, E], n, k int, p float64, opts ...Option) error {
	if n < 3 || k < 2 || k%2 != 0 || k > n-2 || p < 0 || p > 1 {
		return fmt.Errorf("%w: n=%d k=%d p=%g", ErrInvalidParameter, n, k, p)
	}
	s := newSettings(opts)

	return run(g, "watts-strogatz", func(h capi.Handle) error {
		return capi.GenerateWattsStrogatz(h, int64(n), int64(k), p, s.shortcuts, s.seed)
	})
}

// KleinbergSmallWorld generates Kleinberg's small-world model on an n-by-n
// lattice: every vertex is wired to all vertices within lattice distance p
// plus q long-range contacts drawn with probability proportional to d^-r
// over the lattice distance d.
func KleinbergSmallWorld[V, E comparable](g *graph.Graph[V, E], n, p, q int, r float64, opts ...Option) error {
	if n < 1 || p < 1 || q < 0 || r < 0 {
		return fmt.Errorf("%w: n=%d p=%d q=%d r=%g", ErrInvalidParameter, n, p, q, r)
	}
	s := newSettings(opts)

	return run(g, "kleinberg small-world", func(h capi.Handle) error {
		return capi.GenerateKleinbergSmallWorld(h, int64(n), int64(p), int64(q), r, s.seed)
	})
}

// run dispatches one native generator execution and registers whatever it
// created.
func run[V, E comparable](g *graph.Graph[V, E], name string, exec func(capi.Handle) error) error {
	h, err := g.Handle()
	if err != nil {
		return err
	}
	if err = exec(h); err != nil {
		return fmt.Errorf("generate %s: %w", name, err)
	}

	return g.SyncFromNative()
}
