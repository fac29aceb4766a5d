// Package core provides a thread-safe in-memory multigraph with the exact
// incidence semantics Eulerian analysis depends on: parallel edges that each
// keep their identity, self-loops with classic degree conventions, and a
// per-graph orientation flag that never changes after construction.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected orientation (WithDirected), fixed per instance
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all return
//     sorted results, so analysis on top of core is fully reproducible.
//   - Honest multigraph semantics — two bridges between the same banks are
//     two bridges; nothing is collapsed.
//   - Clone support — CloneEmpty (flags only), Clone (deep structural copy).
//
// Degree conventions (classic graph theory):
//
//	Degree(v)    – undirected: incident edges, self-loop counts 2;
//	               directed: in-degree + out-degree.
//	InDegree(v)  – directed only: edges ending at v, self-loop counts 1.
//	OutDegree(v) – directed only: edges starting at v, self-loop counts 1.
//
// Neighborhood queries:
//
//	NeighborIDs(v)   – successors (directed) or all adjacent (undirected);
//	                   unique, sorted.
//	InNeighborIDs(v) – predecessors (directed only); the reversed-direction
//	                   view used by strong-connectivity analysis.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrUndirectedGraph     – direction-sensitive query on an undirected graph
//
// Mutating a graph while an analysis call is running on it is not supported;
// callers that share a graph across goroutines must either stop mutating for
// the duration of the call or analyze a Clone().
package core
