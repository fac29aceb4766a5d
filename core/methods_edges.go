// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge catalog operations (add, query, remove, enumerate).
// Determinism:
//   - Edge IDs are "e1","e2",… in insertion order.
//   - Edges() returns the catalog sorted by Edge.ID asc.
// Concurrency:
//   - AddEdge/RemoveEdge take muVert then muEdgeAdj write locks.
//   - Queries take the muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
)

// AddEdge inserts an edge between from and to, creating missing endpoints
// automatically. In a directed graph the edge runs from→to; in an undirected
// graph it is mirrored into both adjacency buckets. Parallel edges and
// self-loops are honored or rejected according to the construction flags.
//
// Returns the generated edge ID ("e1","e2",…).
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint ID is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed: if an edge from→to (or to→from when undirected)
//     already exists and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:   "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From: from,
		To:   to,
	}
	g.edges[e.ID] = e

	ensureAdjacency(g, from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if !g.directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID from the catalog and adjacency.
//
// Errors:
//   - ErrEdgeNotFound: if no edge with that ID exists.
//
// Complexity: O(1) average.
func (g *Graph) RemoveEdge(edgeID string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, edgeID)

	return nil
}

// HasEdge reports whether at least one edge connects from to to.
// For undirected graphs the check is symmetric.
// Complexity: O(1) average.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID.
//
// Contract:
//   - The returned *Edge must be treated as read-only by callers.
//   - Errors are strict sentinels (checked via errors.Is).
//
// Complexity: O(1) average.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Parallel edges appear once each; nothing is collapsed.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges, counting each parallel edge.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
