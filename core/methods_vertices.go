// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex catalog operations (add, query, remove, enumerate).
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - Mutators take muVert (and muEdgeAdj when touching incident edges).
//   - Queries take read locks only.

package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Adding an existing ID is a no-op (the stored Vertex is kept).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E) worst case (incident edge scan).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock order muVert -> muEdgeAdj, same as all other mixed operations.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Collect incident edges first; deleting while ranging the catalog is unsafe.
	var doomed []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			doomed = append(doomed, e)
		}
	}
	for _, e := range doomed {
		removeAdjacency(g, e)
		delete(g.edges, e.ID)
	}

	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The slice is freshly allocated and safe to retain.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// ensureVertexLocked inserts id into the vertex catalog if absent.
// Must be called under muVert write lock.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	}
}
