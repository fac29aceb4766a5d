// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, InNeighborIDs) and adjacency helpers.
// Determinism:
//   - NeighborIDs() / InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs reachable from id across
// one edge, sorted lexicographically ascending.
//
// Neighborhood policy:
//   - Directed graph: successors only (edges id→v).
//   - Undirected graph: all adjacent vertices (adjacency is mirrored).
//   - A self-loop makes a vertex its own neighbor.
//
// Parallel edges contribute a single entry; reachability is idempotent
// per neighbor.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d + k log k), where d is incident edges and k unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order muVert -> muEdgeAdj, same as mutators.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// InNeighborIDs returns the unique set of predecessor vertex IDs (vertices v
// with an edge v→id), sorted lexicographically ascending. This is the
// reversed-direction counterpart of NeighborIDs.
//
// Only meaningful for directed graphs; undirected incidence is symmetric and
// already covered by NeighborIDs.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrUndirectedGraph: if the graph is undirected.
//
// Complexity: O(E + k log k). The adjacency index is keyed by source, so
// predecessors require a full edge scan; no reverse index is maintained.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if !g.directed {
		return nil, ErrUndirectedGraph
	}
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	for _, e := range g.edges {
		if e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency guarantees that adjacency[from] and adjacency[from][to]
// are initialized. Must be called under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from the adjacency buckets of both endpoints,
// pruning buckets that become empty. Must be called under the muEdgeAdj
// write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !g.directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}
