package capi

import "github.com/grapht/grapht/internal/engine"

// HandlesGetGraphPath decodes the composite path result behind p: total
// weight, start vertex, end vertex and a fresh iterator handle over the
// ordered edge IDs. Each call materializes a new edge iterator.
func HandlesGetGraphPath(p Handle) (float64, int64, int64, Handle, error) {
	trace("HandlesGetGraphPath", p)
	path, e := resolve[*engine.PathResult]("HandlesGetGraphPath", p)
	if e != nil {
		return 0, 0, 0, 0, e
	}
	eit := register(engine.NewLongIterator(path.Edges))

	return path.Weight, path.Start, path.End, eit, nil
}

// SPExecDijkstra computes the Dijkstra shortest-path tree from source and
// returns its handle.
func SPExecDijkstra(g Handle, source int64) (Handle, error) {
	trace("SPExecDijkstra", g)
	eg, e := resolve[*engine.Graph]("SPExecDijkstra", g)
	if e != nil {
		return 0, e
	}
	tree, err := eg.Dijkstra(source)
	if err != nil {
		return 0, wrapEngine("SPExecDijkstra", g, err)
	}

	return register(tree), nil
}

// SPExecBellmanFord computes the Bellman-Ford shortest-path tree from
// source (negative weights allowed) and returns its handle.
func SPExecBellmanFord(g Handle, source int64) (Handle, error) {
	trace("SPExecBellmanFord", g)
	eg, e := resolve[*engine.Graph]("SPExecBellmanFord", g)
	if e != nil {
		return 0, e
	}
	tree, err := eg.BellmanFord(source)
	if err != nil {
		return 0, wrapEngine("SPExecBellmanFord", g, err)
	}

	return register(tree), nil
}

// SPSingleSourceGetPathToVertex extracts the path to target from a
// single-source tree. The null handle with a nil error means "no path".
func SPSingleSourceGetPathToVertex(tree Handle, target int64) (Handle, error) {
	trace("SPSingleSourceGetPathToVertex", tree)
	t, e := resolve[*engine.SingleSourceTree]("SPSingleSourceGetPathToVertex", tree)
	if e != nil {
		return 0, e
	}
	path, err := t.PathTo(target)
	if err != nil {
		return 0, wrapEngine("SPSingleSourceGetPathToVertex", tree, err)
	}
	if path == nil {
		return 0, nil
	}

	return register(path), nil
}

// SPExecFloydWarshall computes all-pairs shortest paths and returns the
// result handle.
func SPExecFloydWarshall(g Handle) (Handle, error) {
	trace("SPExecFloydWarshall", g)
	eg, e := resolve[*engine.Graph]("SPExecFloydWarshall", g)
	if e != nil {
		return 0, e
	}
	r, err := eg.FloydWarshall()
	if err != nil {
		return 0, wrapEngine("SPExecFloydWarshall", g, err)
	}

	return register(r), nil
}

// SPAllPairsGetPathBetweenVertices extracts one path from an all-pairs
// result. The null handle with a nil error means "no path".
func SPAllPairsGetPathBetweenVertices(r Handle, source, target int64) (Handle, error) {
	trace("SPAllPairsGetPathBetweenVertices", r)
	ap, e := resolve[*engine.AllPairsResult]("SPAllPairsGetPathBetweenVertices", r)
	if e != nil {
		return 0, e
	}
	path, err := ap.PathBetween(source, target)
	if err != nil {
		return 0, wrapEngine("SPAllPairsGetPathBetweenVertices", r, err)
	}
	if path == nil {
		return 0, nil
	}

	return register(path), nil
}

// SPAllPairsGetSingleSourceFromVertex extracts the single-source view
// rooted at source from an all-pairs result.
func SPAllPairsGetSingleSourceFromVertex(r Handle, source int64) (Handle, error) {
	trace("SPAllPairsGetSingleSourceFromVertex", r)
	ap, e := resolve[*engine.AllPairsResult]("SPAllPairsGetSingleSourceFromVertex", r)
	if e != nil {
		return 0, e
	}
	tree, err := ap.TreeFrom(source)
	if err != nil {
		return 0, wrapEngine("SPAllPairsGetSingleSourceFromVertex", r, err)
	}

	return register(tree), nil
}

// MultiSPExecMartins runs the multi-objective search from source over the
// fixed (weight, hops) criteria and returns the result handle.
func MultiSPExecMartins(g Handle, source int64) (Handle, error) {
	trace("MultiSPExecMartins", g)
	eg, e := resolve[*engine.Graph]("MultiSPExecMartins", g)
	if e != nil {
		return 0, e
	}
	r, err := eg.Martins(source)
	if err != nil {
		return 0, wrapEngine("MultiSPExecMartins", g, err)
	}

	return register(r), nil
}

// MultiSPGetPathsToVertex returns an object-iterator handle over the
// Pareto-optimal paths to target. Each ItNextObject yields a path handle.
func MultiSPGetPathsToVertex(r Handle, target int64) (Handle, error) {
	trace("MultiSPGetPathsToVertex", r)
	mo, e := resolve[*engine.MultiObjectiveResult]("MultiSPGetPathsToVertex", r)
	if e != nil {
		return 0, e
	}
	front, err := mo.PathsTo(target)
	if err != nil {
		return 0, wrapEngine("MultiSPGetPathsToVertex", r, err)
	}
	objs := make([]any, len(front))
	for i, p := range front {
		objs[i] = p
	}

	return register(engine.NewObjectIterator(objs)), nil
}

// MSTExecKruskal computes a minimum spanning forest with Kruskal's
// algorithm, returning the total weight and an iterator handle over the
// selected edge IDs.
func MSTExecKruskal(g Handle) (float64, Handle, error) {
	trace("MSTExecKruskal", g)
	eg, e := resolve[*engine.Graph]("MSTExecKruskal", g)
	if e != nil {
		return 0, 0, e
	}
	w, edges, err := eg.Kruskal()
	if err != nil {
		return 0, 0, wrapEngine("MSTExecKruskal", g, err)
	}

	return w, register(engine.NewLongIterator(edges)), nil
}

// MSTExecPrim computes a minimum spanning forest with Prim's algorithm,
// returning the total weight and an iterator handle over the selected edge
// IDs.
func MSTExecPrim(g Handle) (float64, Handle, error) {
	trace("MSTExecPrim", g)
	eg, e := resolve[*engine.Graph]("MSTExecPrim", g)
	if e != nil {
		return 0, 0, e
	}
	w, edges, err := eg.Prim()
	if err != nil {
		return 0, 0, wrapEngine("MSTExecPrim", g, err)
	}

	return w, register(engine.NewLongIterator(edges)), nil
}

// vcWeights zips the parallel (ids, ws) arrays into the engine's weight
// table; empty arrays mean the uniform unweighted case.
func vcWeights(op string, g Handle, ids []int64, ws []float64) (map[int64]float64, *Error) {
	if len(ids) != len(ws) {
		return nil, newError(op, g, StatusIllegalArgument, nil)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	weights := make(map[int64]float64, len(ids))
	for i, id := range ids {
		weights[id] = ws[i]
	}

	return weights, nil
}

// VCExecGreedy computes a greedy weighted vertex cover, returning its total
// weight and an iterator handle over the cover's vertex IDs.
func VCExecGreedy(g Handle, ids []int64, ws []float64) (float64, Handle, error) {
	trace("VCExecGreedy", g)
	eg, e := resolve[*engine.Graph]("VCExecGreedy", g)
	if e != nil {
		return 0, 0, e
	}
	weights, e := vcWeights("VCExecGreedy", g, ids, ws)
	if e != nil {
		return 0, 0, e
	}
	w, cover, err := eg.GreedyVertexCover(weights)
	if err != nil {
		return 0, 0, wrapEngine("VCExecGreedy", g, err)
	}

	return w, register(engine.NewLongIterator(cover)), nil
}

// VCExecClarkson computes Clarkson's 2-approximate weighted vertex cover.
func VCExecClarkson(g Handle, ids []int64, ws []float64) (float64, Handle, error) {
	trace("VCExecClarkson", g)
	eg, e := resolve[*engine.Graph]("VCExecClarkson", g)
	if e != nil {
		return 0, 0, e
	}
	weights, e := vcWeights("VCExecClarkson", g, ids, ws)
	if e != nil {
		return 0, 0, e
	}
	w, cover, err := eg.ClarksonVertexCover(weights)
	if err != nil {
		return 0, 0, wrapEngine("VCExecClarkson", g, err)
	}

	return w, register(engine.NewLongIterator(cover)), nil
}

// VCExecEdgeBased computes the maximal-matching 2-approximate vertex cover.
func VCExecEdgeBased(g Handle, ids []int64, ws []float64) (float64, Handle, error) {
	trace("VCExecEdgeBased", g)
	eg, e := resolve[*engine.Graph]("VCExecEdgeBased", g)
	if e != nil {
		return 0, 0, e
	}
	weights, e := vcWeights("VCExecEdgeBased", g, ids, ws)
	if e != nil {
		return 0, 0, e
	}
	w, cover, err := eg.EdgeBasedVertexCover(weights)
	if err != nil {
		return 0, 0, wrapEngine("VCExecEdgeBased", g, err)
	}

	return w, register(engine.NewLongIterator(cover)), nil
}
