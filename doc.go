// Package eulith answers one classic question about your graphs:
// can you walk every edge exactly once?
//
// 🚀 What is eulith?
//
//	A compact, thread-safe, zero-dependency library for Eulerian analysis
//	of directed and undirected multigraphs:
//		• Core primitives: vertices, parallel edges, self-loops, degree queries
//		• Connectivity: connected / weakly connected / strongly connected, components
//		• Euler: IsEulerian (circuit) and HasEulerianPath (open walk) verdicts
//		• Builder: deterministic fixtures — cycles, paths, complete graphs,
//		  and the Seven Bridges of Königsberg themselves
//
// ✨ Why choose eulith?
//
//   - Exact semantics – degree bookkeeping and connectivity follow Euler's
//     theorem to the letter, multigraphs and self-loops included
//   - Rock-solid guarantees – R/W locks on mutation, read-only analysis,
//     deterministic sorted views everywhere
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	builder/      — deterministic topology constructors for tests & demos
//	connectivity/ — BFS-based reachability in all three modes
//	core/         — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	euler/        — the two decision functions
//
// Quick ASCII example — the bridges of Königsberg:
//
//	    A═══B        A has 5 bridges; B, C and D have 3 each:
//	    ║   │        four odd-degree land masses, so no walk
//	    C───D        crosses every bridge exactly once.
//
//	go get github.com/katalvlaran/eulith
package eulith
