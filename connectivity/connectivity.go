// connectivity.go — the reachability analyses: Connected, WeaklyConnected,
// StronglyConnected, Components. All of them run on a transient adjacency
// view assembled from a snapshot of the edge catalog; the input graph is
// never mutated.

package connectivity

import (
	"context"
	"sort"

	"github.com/katalvlaran/eulith/core"
)

// viewMode selects how edge direction is interpreted when assembling the
// transient adjacency view.
type viewMode int

const (
	forward viewMode = iota // follow edges From→To
	reverse                 // follow edges To→From
	erased                  // treat every edge as bidirectional
)

// Connected reports whether the undirected graph g is connected: a single
// breadth-first traversal from an arbitrary start vertex reaches every
// vertex. The check is strict — an isolated zero-degree vertex counts as a
// separate component and makes the verdict false.
//
// A graph with zero vertices is vacuously connected.
//
// Returns ErrGraphNil for a nil graph and ErrDirectedGraph for a directed
// one (use WeaklyConnected or StronglyConnected there).
//
// Complexity: O(V + E).
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return false, err
	}
	if g.Directed() {
		return false, ErrDirectedGraph
	}

	return spans(o.Ctx, g, forward)
}

// WeaklyConnected reports whether the directed graph g is connected once
// every edge is treated as bidirectional. The direction-erased adjacency is
// a transient view over the same vertex and edge catalog; g itself is not
// copied or mutated. The strict whole-graph policy of Connected applies.
//
// Returns ErrGraphNil for a nil graph and ErrUndirectedGraph for an
// undirected one.
//
// Complexity: O(V + E).
func WeaklyConnected(g *core.Graph, opts ...Option) (bool, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return false, err
	}
	if !g.Directed() {
		return false, ErrUndirectedGraph
	}

	return spans(o.Ctx, g, erased)
}

// StronglyConnected reports whether every vertex of the directed graph g is
// reachable from every other vertex following edge direction. It runs the
// standard linear-time double traversal: a forward pass from an arbitrary
// start vertex, then a pass over the edge-reversed view from the same start.
// The graph is strongly connected iff both passes span all vertices.
//
// The strict whole-graph policy applies: isolated vertices break the verdict.
// A graph with zero vertices is vacuously strongly connected.
//
// Returns ErrGraphNil for a nil graph and ErrUndirectedGraph for an
// undirected one.
//
// Complexity: O(V + E) — two traversals, two transient views.
func StronglyConnected(g *core.Graph, opts ...Option) (bool, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return false, err
	}
	if !g.Directed() {
		return false, ErrUndirectedGraph
	}

	ok, err := spans(o.Ctx, g, forward)
	if err != nil || !ok {
		return false, err
	}

	return spans(o.Ctx, g, reverse)
}

// Components returns the connected components of g, ignoring edge direction
// for directed graphs. Each component is a sorted slice of vertex IDs, and
// components are ordered by their smallest member, so output is fully
// deterministic. Isolated vertices form singleton components.
//
// Returns ErrGraphNil for a nil graph.
//
// Complexity: O(V + E) plus sorting of the output.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	verts := g.Vertices()
	adj := buildView(g, erased)
	seen := make(map[string]struct{}, len(verts))
	var comps [][]string

	// Vertices() is sorted, so each component is discovered from its
	// smallest member and member order within a BFS stays deterministic.
	for _, v := range verts {
		if _, ok := seen[v]; ok {
			continue
		}
		comp, err := bfs(o.Ctx, adj, v, seen)
		if err != nil {
			return nil, err
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// resolve validates the graph pointer and folds functional options.
func resolve(g *core.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// spans reports whether one traversal over the mode-resolved view, started
// from the smallest vertex ID, reaches every vertex of g. Zero vertices are
// vacuously spanned.
func spans(ctx context.Context, g *core.Graph, mode viewMode) (bool, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return true, nil
	}

	adj := buildView(g, mode)
	seen := make(map[string]struct{}, len(verts))
	if _, err := bfs(ctx, adj, verts[0], seen); err != nil {
		return false, err
	}

	return len(seen) == len(verts), nil
}

// buildView assembles a transient adjacency index from a snapshot of the
// edge catalog. Parallel edges yield duplicate neighbor entries (the seen
// set of the traversal absorbs them) and self-loops are kept — harmless,
// the vertex is already visited.
func buildView(g *core.Graph, mode viewMode) map[string][]string {
	edges := g.Edges()
	adj := make(map[string][]string, g.VertexCount())
	link := func(u, v string) {
		adj[u] = append(adj[u], v)
	}

	for _, e := range edges {
		switch {
		case !g.Directed() || mode == erased:
			link(e.From, e.To)
			link(e.To, e.From)
		case mode == forward:
			link(e.From, e.To)
		default: // reverse
			link(e.To, e.From)
		}
	}

	return adj
}

// bfs runs an iterative breadth-first traversal over adj from start,
// marking every reached vertex in seen and returning them in visit order
// (start first, then frontier by frontier). Duplicate neighbors from
// parallel edges are skipped via seen.
func bfs(ctx context.Context, adj map[string][]string, start string, seen map[string]struct{}) ([]string, error) {
	queue := []string{start}
	seen[start] = struct{}{}
	order := make([]string, 0, len(adj))

	for qi := 0; qi < len(queue); qi++ {
		// cancellation check once per dequeue
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		u := queue[qi]
		order = append(order, u)
		for _, v := range adj[u] {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return order, nil
}
