// SPDX-License-Identifier: MIT
//
// File: methods_degree.go
// Role: Degree queries with classic graph-theory loop conventions.
// Policy:
//   - Undirected self-loop contributes +2 to Degree.
//   - Directed self-loop contributes +1 to InDegree and +1 to OutDegree.
//   - Parallel edges each contribute independently.
// Concurrency:
//   - All queries hold muVert and muEdgeAdj read locks.

package core

// Degree returns the number of edge endpoints incident to the given vertex.
//
// For an undirected graph this is the classic degree: every incident edge
// counts once and a self-loop counts twice. For a directed graph it is the
// total degree, in-degree plus out-degree (a directed self-loop therefore
// also counts twice).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E). The catalog is scanned; no per-vertex counters are kept,
// so degree queries never go stale under concurrent mutation patterns.
func (g *Graph) Degree(id string) (int, error) {
	return g.countEndpoints(id, true, true)
}

// InDegree returns the number of edges ending at the given vertex (e.To == id).
// A self-loop contributes 1.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrUndirectedGraph: if the graph is undirected.
//
// Complexity: O(E)
func (g *Graph) InDegree(id string) (int, error) {
	if !g.Directed() {
		return 0, ErrUndirectedGraph
	}

	return g.countEndpoints(id, false, true)
}

// OutDegree returns the number of edges starting at the given vertex
// (e.From == id). A self-loop contributes 1.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrUndirectedGraph: if the graph is undirected.
//
// Complexity: O(E)
func (g *Graph) OutDegree(id string) (int, error) {
	if !g.Directed() {
		return 0, ErrUndirectedGraph
	}

	return g.countEndpoints(id, true, false)
}

// countEndpoints scans the edge catalog and counts occurrences of id as a
// source (when countFrom) and/or destination (when countTo). With both flags
// set a self-loop naturally counts twice, matching the degree conventions.
func (g *Graph) countEndpoints(id string, countFrom, countTo bool) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	var n int
	for _, e := range g.edges {
		if countFrom && e.From == id {
			n++
		}
		if countTo && e.To == id {
			n++
		}
	}

	return n, nil
}
