package capi

import (
	"math/rand"

	"github.com/grapht/grapht/internal/engine"
)

// GenerateEmpty adds n isolated vertices to the graph.
func GenerateEmpty(g Handle, n int64) error {
	trace("GenerateEmpty", g)
	eg, e := resolve[*engine.Graph]("GenerateEmpty", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateEmpty(n); err != nil {
		return wrapEngine("GenerateEmpty", g, err)
	}

	return nil
}

// GenerateComplete populates the graph with a complete topology on n
// vertices.
func GenerateComplete(g Handle, n int64) error {
	trace("GenerateComplete", g)
	eg, e := resolve[*engine.Graph]("GenerateComplete", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateComplete(n); err != nil {
		return wrapEngine("GenerateComplete", g, err)
	}

	return nil
}

// GenerateCompleteBipartite populates the graph with a complete bipartite
// topology over partitions of size a and b.
func GenerateCompleteBipartite(g Handle, a, b int64) error {
	trace("GenerateCompleteBipartite", g)
	eg, e := resolve[*engine.Graph]("GenerateCompleteBipartite", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateCompleteBipartite(a, b); err != nil {
		return wrapEngine("GenerateCompleteBipartite", g, err)
	}

	return nil
}

// GenerateRing populates the graph with a single n-cycle.
func GenerateRing(g Handle, n int64) error {
	trace("GenerateRing", g)
	eg, e := resolve[*engine.Graph]("GenerateRing", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateRing(n); err != nil {
		return wrapEngine("GenerateRing", g, err)
	}

	return nil
}

// GenerateGnpRandom populates the graph with a G(n,p) random topology using
// the given seed.
func GenerateGnpRandom(g Handle, n int64, p float64, loops bool, seed int64) error {
	trace("GenerateGnpRandom", g)
	eg, e := resolve[*engine.Graph]("GenerateGnpRandom", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateGnpRandom(n, p, loops, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateGnpRandom", g, err)
	}

	return nil
}

// GenerateGnmRandom populates the graph with a G(n,m) random topology using
// the given seed.
func GenerateGnmRandom(g Handle, n, m int64, loops, multi bool, seed int64) error {
	trace("GenerateGnmRandom", g)
	eg, e := resolve[*engine.Graph]("GenerateGnmRandom", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateGnmRandom(n, m, loops, multi, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateGnmRandom", g, err)
	}

	return nil
}

// GenerateBarabasiAlbert populates the graph with a preferential-attachment
// topology: a complete seed of m0 vertices grown to n, each newcomer wired
// to m existing vertices.
func GenerateBarabasiAlbert(g Handle, m0, m, n, seed int64) error {
	trace("GenerateBarabasiAlbert", g)
	eg, e := resolve[*engine.Graph]("GenerateBarabasiAlbert", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateBarabasiAlbert(m0, m, n, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateBarabasiAlbert", g, err)
	}

	return nil
}

// GenerateBarabasiAlbertForest populates the graph with a
// preferential-attachment forest: t isolated seeds grown to n vertices, each
// newcomer wired to one existing vertex.
func GenerateBarabasiAlbertForest(g Handle, t, n, seed int64) error {
	trace("GenerateBarabasiAlbertForest", g)
	eg, e := resolve[*engine.Graph]("GenerateBarabasiAlbertForest", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateBarabasiAlbertForest(t, n, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateBarabasiAlbertForest", g, err)
	}

	return nil
}

// GenerateScaleFree populates the graph with a connected scale-free topology
// on n vertices.
func GenerateScaleFree(g Handle, n, seed int64) error {
	trace("GenerateScaleFree", g)
	eg, e := resolve[*engine.Graph]("GenerateScaleFree", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateScaleFree(n, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateScaleFree", g, err)
	}

	return nil
}

// GenerateWattsStrogatz populates the graph with a small-world topology: a
// ring lattice of n vertices joined to their k nearest neighbors, with each
// lattice edge rewired with probability p. With addShortcuts the lattice edge
// stays and a shortcut is added instead of rewiring.
func GenerateWattsStrogatz(g Handle, n, k int64, p float64, addShortcuts bool, seed int64) error {
	trace("GenerateWattsStrogatz", g)
	eg, e := resolve[*engine.Graph]("GenerateWattsStrogatz", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateWattsStrogatz(n, k, p, addShortcuts, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateWattsStrogatz", g, err)
	}

	return nil
}

// GenerateKleinbergSmallWorld populates the graph with Kleinberg's
// small-world model on an n-by-n lattice: local contacts within lattice
// distance p plus q long-range contacts drawn with probability proportional
// to d^-r.
func GenerateKleinbergSmallWorld(g Handle, n, p, q int64, r float64, seed int64) error {
	trace("GenerateKleinbergSmallWorld", g)
	eg, e := resolve[*engine.Graph]("GenerateKleinbergSmallWorld", g)
	if e != nil {
		return e
	}
	if _, err := eg.GenerateKleinbergSmallWorld(n, p, q, r, rand.New(rand.NewSource(seed))); err != nil {
		return wrapEngine("GenerateKleinbergSmallWorld", g, err)
	}

	return nil
}
