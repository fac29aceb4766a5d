// Package builder assembles deterministic core.Graph topologies for tests,
// benchmarks, and examples.
//
// What
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator — create the graph
//     with core options, resolve builder options, apply constructors in order.
//   - Cycle(n), Path(n), Complete(n), Star(n): classic parametric families
//     with stable vertex IDs and stable edge emission order.
//   - Bridges(spec) with SevenBridges() / FiveBridges(): the Königsberg and
//     Kaliningrad bridge multigraphs, banks A–D, bridges in historical order.
//
// Determinism
//
//	Same options and constructor order produce byte-identical graphs:
//	vertex IDs come from the configured ID scheme (decimal by default,
//	override with WithIDScheme), and edges are emitted in documented order
//	so generated edge IDs ("e1","e2",…) are reproducible.
//
// Errors
//
//   - ErrTooFewVertices        – n below the constructor's minimum.
//   - ErrUnsupportedGraphMode  – constructor incompatible with graph flags
//     (e.g., Bridges on a directed graph, parallel bridges without
//     WithMultiEdges).
//   - ErrConstructFailed       – orchestration failure (nil constructor).
//
// Usage
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithMultiEdges()},
//	    nil,
//	    builder.Bridges(builder.SevenBridges()),
//	)
package builder
