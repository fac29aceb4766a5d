// Package connectivity provides production-grade reachability analysis over
// a core.Graph: whole-graph connectivity for undirected graphs, weak and
// strong connectivity for directed graphs, and component enumeration.
//
// What
//
//   - Connected(g): one BFS from an arbitrary start must reach every vertex
//     of an undirected graph.
//   - WeaklyConnected(g): the same check for a directed graph with edge
//     direction erased (a transient bidirectional view; g is never mutated).
//   - StronglyConnected(g): the linear-time double traversal — forward BFS
//     plus a BFS over the edge-reversed view from the same start vertex —
//     equivalent to all-pairs mutual reachability.
//   - Components(g): direction-erased connected components, each sorted,
//     ordered by smallest member.
//
// Strictness policy
//
//	Every vertex counts, including isolated zero-degree vertices: a graph
//	made of one edge-bearing component plus one lone vertex is NOT
//	connected. The euler package builds its verdicts on exactly this
//	whole-graph predicate. A graph with zero vertices is vacuously
//	connected in every mode.
//
// Determinism
//
//	Adjacency views are assembled from core.Edges(), which is sorted by
//	edge ID, and traversal starts from the smallest vertex ID, so visit
//	order — and therefore Components output — is fully reproducible.
//
// Multigraph semantics
//
//	Parallel edges collapse to a single traversal step per neighbor
//	(reachability is idempotent); self-loops never extend reach. Degree
//	accounting is a separate concern and lives with the caller.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per mode (StronglyConnected runs two passes)
//   - Memory: O(V + E) for the transient adjacency view and visited set
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrDirectedGraph    if Connected is called on a directed graph.
//   - ErrUndirectedGraph  if WeaklyConnected/StronglyConnected is called on
//     an undirected graph.
//   - context.Canceled / DeadlineExceeded via WithContext.
package connectivity
