// Package euler decides Eulerian existence questions over a core.Graph:
// IsEulerian (closed walk over every edge exactly once) and HasEulerianPath
// (open or closed walk over every edge exactly once).
//
// What
//
//   - IsEulerian(g):
//     directed   — in-degree(v) == out-degree(v) for every v, AND strongly connected.
//     undirected — every degree even, AND connected.
//   - HasEulerianPath(g):
//     directed   — at most one vertex with out−in = 1, at most one with
//     in−out = 1, at most two unbalanced vertices, AND weakly connected.
//     undirected — zero or two odd-degree vertices, AND connected.
//   - Multigraphs and self-loops are first-class: parallel edges count
//     independently, an undirected self-loop adds 2 to its vertex's degree,
//     a directed one adds 1 to each of in/out.
//
// Why
//
//	Degree parity alone is not enough — the Seven Bridges of Königsberg
//	fail on parity, but a parity-perfect graph split into two islands
//	fails on connectivity. Both halves of Euler's theorem are checked,
//	in O(V + E) total.
//
// Connectivity policy
//
//	The connectivity half of each criterion uses the strict whole-graph
//	predicate from the connectivity package: every vertex, including
//	isolated zero-degree ones, must share one component. One lone extra
//	vertex therefore flips both verdicts to false.
//
// Edge cases (all pinned by tests)
//
//   - Zero vertices: vacuously connected, vacuously balanced → IsEulerian
//     and HasEulerianPath are both true. The upstream behavior for this
//     case is unspecified; "vacuously true" is this package's documented
//     choice.
//   - One vertex, zero edges: true for both.
//   - Two or more vertices, zero edges: false for both (disconnected).
//   - IsEulerian(g) == true implies HasEulerianPath(g) == true: a circuit
//     is a path, and strong connectivity implies weak connectivity.
//
// Existence only
//
//	The verdicts do not produce the walk itself; constructing one
//	(Hierholzer's algorithm) is a deliberate non-goal of this package.
//
// Errors
//
//   - ErrGraphNil for nil input; context errors via WithContext.
//     Every well-formed graph — empty included — yields a definite boolean.
package euler
