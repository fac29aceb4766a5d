// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Structural copy and reset operations.
// Concurrency:
//   - Clone/CloneEmpty read-lock the source; the result is a fresh instance.
//   - Clear write-locks both catalogs.

package core

// CloneEmpty returns a new Graph carrying the same configuration flags
// (directedness, loops, multi-edges) but no vertices or edges.
// Complexity: O(1)
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return NewGraph(
		WithDirected(g.directed),
		func(c *Graph) { c.allowLoops = g.allowLoops },
		func(c *Graph) { c.allowMulti = g.allowMulti },
	)
}

// Clone returns a deep structural copy of the graph: fresh Vertex and Edge
// values, fresh adjacency buckets. Vertex Metadata maps are shared (shallow)
// by convention.
//
// Edge IDs are preserved, so views derived from the clone stay comparable
// with views derived from the original.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()

	// Lock order muVert -> muEdgeAdj, same as mutators.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
	}
	for id, e := range g.edges {
		c.edges[id] = &Edge{ID: id, From: e.From, To: e.To}
		ensureAdjacency(c, e.From, e.To)
		c.adjacency[e.From][e.To][id] = struct{}{}
		if !c.directed && e.From != e.To {
			ensureAdjacency(c, e.To, e.From)
			c.adjacency[e.To][e.From][id] = struct{}{}
		}
	}
	c.nextEdgeID = g.nextEdgeID

	return c
}

// Clear removes all vertices and edges, keeping configuration flags intact.
// Complexity: O(1) (old catalogs are released to the garbage collector).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	g.nextEdgeID = 0
}
