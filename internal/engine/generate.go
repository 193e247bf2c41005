package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// Generators mutate the graph in place, adding fresh vertices and edges.
// Parameter domains are validated before any mutation so a failed call
// leaves the graph untouched. Vertices are emitted in ascending order and
// edges in a deterministic order for a fixed seed.

// GenerateEmpty adds n isolated vertices.
func (g *Graph) GenerateEmpty(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate empty: n=%d: %w", n, ErrIllegalArgument)
	}

	return g.addFresh(n), nil
}

// GenerateComplete adds n vertices and every possible edge between distinct
// pairs. On directed graphs both directions are emitted.
func (g *Graph) GenerateComplete(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate complete: n=%d: %w", n, ErrIllegalArgument)
	}

	verts := g.addFresh(n)
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if _, err := g.AddEdge(verts[i], verts[j], 1); err != nil {
				return nil, err
			}
			if g.directed {
				if _, err := g.AddEdge(verts[j], verts[i], 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return verts, nil
}

// GenerateCompleteBipartite adds a+b vertices and every edge between the two
// partitions. On directed graphs both directions are emitted.
func (g *Graph) GenerateCompleteBipartite(a, b int64) ([]int64, error) {
	if a < 0 || b < 0 {
		return nil, fmt.Errorf("generate bipartite: a=%d b=%d: %w", a, b, ErrIllegalArgument)
	}

	verts := g.addFresh(a + b)
	left, right := verts[:a], verts[a:]
	for _, u := range left {
		for _, v := range right {
			if _, err := g.AddEdge(u, v, 1); err != nil {
				return nil, err
			}
			if g.directed {
				if _, err := g.AddEdge(v, u, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return verts, nil
}

// GenerateRing adds n vertices joined in a single cycle. On directed graphs
// all edges follow the ring consistently.
func (g *Graph) GenerateRing(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate ring: n=%d: %w", n, ErrIllegalArgument)
	}

	verts := g.addFresh(n)
	if n < 2 {
		return verts, nil
	}
	for i := range verts {
		if _, err := g.AddEdge(verts[i], verts[(i+1)%len(verts)], 1); err != nil {
			return nil, err
		}
	}

	return verts, nil
}

// GenerateGnpRandom adds n vertices and includes each candidate edge
// independently with probability p (the G(n,p) Erdős–Rényi model).
// Self-loops are considered only when the graph allows them and loops is set.
func (g *Graph) GenerateGnpRandom(n int64, p float64, loops bool, rng *rand.Rand) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate gnp: n=%d: %w", n, ErrIllegalArgument)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("generate gnp: p=%g: %w", p, ErrIllegalArgument)
	}

	verts := g.addFresh(n)
	for i := 0; i < len(verts); i++ {
		for j := i; j < len(verts); j++ {
			if i == j {
				if !loops || !g.loops {
					continue
				}
				if rng.Float64() < p {
					if _, err := g.AddEdge(verts[i], verts[i], 1); err != nil {
						return nil, err
					}
				}
				continue
			}
			if rng.Float64() < p {
				if _, err := g.AddEdge(verts[i], verts[j], 1); err != nil {
					return nil, err
				}
			}
			if g.directed && rng.Float64() < p {
				if _, err := g.AddEdge(verts[j], verts[i], 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return verts, nil
}

// GenerateGnmRandom adds n vertices and m edges chosen uniformly at random
// (the G(n,m) Erdős–Rényi model). Candidate edges that collide with the
// graph's constraints are redrawn; m beyond the graph's capacity fails
// upfront.
func (g *Graph) GenerateGnmRandom(n, m int64, loops, multi bool, rng *rand.Rand) ([]int64, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("generate gnm: n=%d m=%d: %w", n, m, ErrIllegalArgument)
	}
	loops = loops && g.loops
	multi = multi && g.multi
	// m > 0 needs at least one admissible endpoint pair no matter how many
	// parallel copies are allowed.
	if m > 0 && (n == 0 || (n == 1 && !loops)) {
		return nil, fmt.Errorf("generate gnm: m=%d with no admissible pair (n=%d): %w",
			m, n, ErrIllegalArgument)
	}
	if !multi {
		max := n * (n - 1)
		if !g.directed {
			max /= 2
		}
		if loops {
			max += n
		}
		if m > max {
			return nil, fmt.Errorf("generate gnm: m=%d exceeds max=%d: %w", m, max, ErrIllegalArgument)
		}
	}

	verts := g.addFresh(n)
	added := int64(0)
	for added < m {
		u := verts[rng.Intn(len(verts))]
		v := verts[rng.Intn(len(verts))]
		if u == v && !loops {
			continue
		}
		if _, err := g.AddEdge(u, v, 1); err != nil {
			// Constraint collision (duplicate pair); redraw.
			continue
		}
		added++
	}

	return verts, nil
}

// GenerateBarabasiAlbert grows a preferential-attachment network: a complete
// seed of m0 vertices, then n-m0 additional vertices each wired to m
// existing vertices picked with probability proportional to degree.
func (g *Graph) GenerateBarabasiAlbert(m0, m, n int64, rng *rand.Rand) ([]int64, error) {
	if m0 < 1 || m < 1 || m > m0 || n < m0 {
		return nil, fmt.Errorf("generate barabasi-albert: m0=%d m=%d n=%d: %w",
			m0, m, n, ErrIllegalArgument)
	}

	verts, err := g.GenerateComplete(m0)
	if err != nil {
		return nil, err
	}

	// repeated holds one entry per edge endpoint, so uniform draws from it
	// realize degree-proportional preference.
	var repeated []int64
	for _, u := range verts {
		for range g.outEdges(u) {
			repeated = append(repeated, u)
		}
	}

	for int64(len(verts)) < n {
		v := g.AddVertex()
		seen := make(map[int64]struct{}, m)
		targets := make([]int64, 0, m)
		for int64(len(targets)) < m {
			var pick int64
			if len(repeated) == 0 {
				pick = verts[rng.Intn(len(verts))]
			} else {
				pick = repeated[rng.Intn(len(repeated))]
			}
			if _, dup := seen[pick]; dup {
				continue
			}
			seen[pick] = struct{}{}
			targets = append(targets, pick)
		}
		// First-draw order keeps edge emission deterministic for a fixed seed.
		for _, t := range targets {
			if _, err = g.AddEdge(v, t, 1); err != nil {
				return nil, err
			}
			repeated = append(repeated, v, t)
		}
		verts = append(verts, v)
	}

	return verts, nil
}

// GenerateBarabasiAlbertForest grows a preferential-attachment forest: t
// isolated seed vertices, then n-t additional vertices each wired to exactly
// one existing vertex picked with probability proportional to degree.
// Undirected graphs only.
func (g *Graph) GenerateBarabasiAlbertForest(t, n int64, rng *rand.Rand) ([]int64, error) {
	if t < 1 || n < t {
		return nil, fmt.Errorf("generate barabasi-albert forest: t=%d n=%d: %w",
			t, n, ErrIllegalArgument)
	}
	if g.directed {
		return nil, fmt.Errorf("generate barabasi-albert forest: directed graph: %w", ErrUnsupported)
	}

	verts := g.addFresh(t)
	var repeated []int64
	for int64(len(verts)) < n {
		v := g.AddVertex()
		var pick int64
		if len(repeated) == 0 {
			// All degrees are still zero; preference degenerates to uniform.
			pick = verts[rng.Intn(len(verts))]
		} else {
			pick = repeated[rng.Intn(len(repeated))]
		}
		if _, err := g.AddEdge(v, pick, 1); err != nil {
			return nil, err
		}
		repeated = append(repeated, v, pick)
		verts = append(verts, v)
	}

	return verts, nil
}

// GenerateScaleFree grows a connected scale-free network of n vertices: one
// seed vertex, then each newcomer attached to a single existing vertex picked
// with probability proportional to degree plus one, so early vertices
// accumulate large degrees while most stay small.
func (g *Graph) GenerateScaleFree(n int64, rng *rand.Rand) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate scale-free: n=%d: %w", n, ErrIllegalArgument)
	}
	if n == 0 {
		return nil, nil
	}

	verts := g.addFresh(1)
	degree := map[int64]int64{verts[0]: 0}
	total := int64(1) // sum of degree+1 over existing vertices
	for int64(len(verts)) < n {
		v := g.AddVertex()
		x := rng.Int63n(total)
		pick := verts[len(verts)-1]
		for _, u := range verts {
			x -= degree[u] + 1
			if x < 0 {
				pick = u
				break
			}
		}
		if _, err := g.AddEdge(v, pick, 1); err != nil {
			return nil, err
		}
		degree[pick]++
		degree[v] = 1
		total += 3 // newcomer contributes 2, the picked endpoint 1
		verts = append(verts, v)
	}

	return verts, nil
}

// GenerateWattsStrogatz builds a small-world network: a ring lattice of n
// vertices each joined to its k nearest neighbors, then every lattice edge is
// rewired with probability p to a uniformly random endpoint, forbidding
// self-loops and duplicates. With addShortcuts the original edge stays and a
// shortcut is added instead. Undirected graphs only; k must be even.
func (g *Graph) GenerateWattsStrogatz(n, k int64, p float64, addShortcuts bool, rng *rand.Rand) ([]int64, error) {
	if n < 3 || k < 2 || k%2 != 0 || k > n-2 || p < 0 || p > 1 {
		return nil, fmt.Errorf("generate watts-strogatz: n=%d k=%d p=%g: %w",
			n, k, p, ErrIllegalArgument)
	}
	if g.directed {
		return nil, fmt.Errorf("generate watts-strogatz: directed graph: %w", ErrUnsupported)
	}

	verts := g.addFresh(n)
	type latticeEdge struct {
		id int64
		u  int64
	}
	var lattice []latticeEdge
	for j := int64(1); j <= k/2; j++ {
		for i := int64(0); i < n; i++ {
			id, err := g.AddEdge(verts[i], verts[(i+j)%n], 1)
			if err != nil {
				return nil, err
			}
			lattice = append(lattice, latticeEdge{id: id, u: verts[i]})
		}
	}

	for _, le := range lattice {
		if rng.Float64() >= p {
			continue
		}
		// Bounded redraws; a saturated vertex keeps its lattice edge.
		for attempt := int64(0); attempt < n; attempt++ {
			w := verts[rng.Intn(len(verts))]
			if w == le.u || g.hasEdgeBetween(le.u, w) {
				continue
			}
			if !addShortcuts {
				if err := g.RemoveEdge(le.id); err != nil {
					return nil, err
				}
			}
			if _, err := g.AddEdge(le.u, w, 1); err != nil {
				return nil, err
			}
			break
		}
	}

	return verts, nil
}

// GenerateKleinbergSmallWorld builds Kleinberg's small-world model on an
// n-by-n lattice: every vertex is wired to all vertices within lattice
// distance p (its local contacts) plus q long-range contacts drawn with
// probability proportional to d^-r over the lattice distance d. Long-range
// draws that land on an existing contact are discarded.
func (g *Graph) GenerateKleinbergSmallWorld(n, p, q int64, r float64, rng *rand.Rand) ([]int64, error) {
	if n < 1 || p < 1 || q < 0 || r < 0 {
		return nil, fmt.Errorf("generate kleinberg: n=%d p=%d q=%d r=%g: %w",
			n, p, q, r, ErrIllegalArgument)
	}

	verts := g.addFresh(n * n)
	dist := func(a, b int64) int64 {
		dx := a/n - b/n
		if dx < 0 {
			dx = -dx
		}
		dy := a%n - b%n
		if dy < 0 {
			dy = -dy
		}

		return dx + dy
	}

	total := n * n
	for i := int64(0); i < total; i++ {
		for j := int64(0); j < total; j++ {
			if i == j || dist(i, j) > p {
				continue
			}
			if !g.directed && j < i {
				continue
			}
			if _, err := g.AddEdge(verts[i], verts[j], 1); err != nil {
				return nil, err
			}
		}
	}

	if q == 0 || total < 2 {
		return verts, nil
	}
	weights := make([]float64, total)
	for i := int64(0); i < total; i++ {
		var sum float64
		for j := int64(0); j < total; j++ {
			if i == j {
				weights[j] = 0
				continue
			}
			weights[j] = math.Pow(float64(dist(i, j)), -r)
			sum += weights[j]
		}
		for trial := int64(0); trial < q; trial++ {
			x := rng.Float64() * sum
			pick := total - 1
			for j := int64(0); j < total; j++ {
				x -= weights[j]
				if x < 0 {
					pick = j
					break
				}
			}
			if pick == i || g.hasEdgeBetween(verts[i], verts[pick]) {
				continue
			}
			if _, err := g.AddEdge(verts[i], verts[pick], 1); err != nil {
				return nil, err
			}
		}
	}

	return verts, nil
}

// hasEdgeBetween reports whether at least one edge joins u directly to v.
func (g *Graph) hasEdgeBetween(u, v int64) bool {
	return len(g.adj[u][v]) > 0
}

// addFresh inserts n new vertices and returns their IDs in insertion order.
func (g *Graph) addFresh(n int64) []int64 {
	verts := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		verts = append(verts, g.AddVertex())
	}

	return verts
}
