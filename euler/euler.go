// euler.go — IsEulerian and HasEulerianPath plus the per-call degree sheet.
// Both entry points are pure functions of the graph: degree bookkeeping and
// connectivity verdicts are computed fresh per call and discarded, so
// concurrent calls over independent graphs need no coordination.

package euler

import (
	"github.com/katalvlaran/eulith/connectivity"
	"github.com/katalvlaran/eulith/core"
)

// Euler's theorem bounds for open walks: at most one candidate start vertex
// (out-degree exceeding in-degree by 1), at most one candidate end vertex
// (in-degree exceeding out-degree by 1), and no other unbalanced vertices.
// These are exact constants, not tunables.
const (
	maxSemibalanced = 1
	maxImbalanced   = 2
)

// IsEulerian reports whether g admits an Eulerian circuit — a closed walk
// traversing every edge exactly once.
//
// Criteria:
//   - Directed: every vertex has in-degree equal to out-degree, and the
//     graph is strongly connected.
//   - Undirected: every vertex has even degree, and the graph is connected.
//
// Connectivity is the strict whole-graph predicate: an isolated zero-degree
// vertex makes the verdict false even though it carries no edges. A graph
// with zero vertices is vacuously Eulerian; a zero-edge graph with exactly
// one vertex is Eulerian, with two or more it is not.
//
// The only error is ErrGraphNil for nil input (or a cancelled context via
// WithContext); every well-formed graph yields a definite verdict.
//
// Complexity: O(V + E).
func IsEulerian(g *core.Graph, opts ...Option) (bool, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return false, err
	}

	sheet := tally(g)
	if g.Directed() {
		if !sheet.balanced() {
			return false, nil
		}

		return connectivity.StronglyConnected(g, connectivity.WithContext(o.Ctx))
	}

	if sheet.oddCount() != 0 {
		return false, nil
	}

	return connectivity.Connected(g, connectivity.WithContext(o.Ctx))
}

// HasEulerianPath reports whether g admits an Eulerian path — a walk, open
// or closed, traversing every edge exactly once. Whenever IsEulerian is
// true, HasEulerianPath is true as well.
//
// Criteria:
//   - Directed: at most one vertex with out-degree − in-degree = 1
//     (candidate start), at most one with in-degree − out-degree = 1
//     (candidate end), at most two unbalanced vertices in total, and the
//     graph is weakly connected.
//   - Undirected: exactly zero or two vertices of odd degree, and the
//     graph is connected.
//
// The same strict whole-graph connectivity policy as IsEulerian applies.
//
// Complexity: O(V + E).
func HasEulerianPath(g *core.Graph, opts ...Option) (bool, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return false, err
	}

	sheet := tally(g)
	if g.Directed() {
		semiIn, semiOut, imbalanced := sheet.imbalance()
		if semiIn > maxSemibalanced || semiOut > maxSemibalanced || imbalanced > maxImbalanced {
			return false, nil
		}

		return connectivity.WeaklyConnected(g, connectivity.WithContext(o.Ctx))
	}

	if odd := sheet.oddCount(); odd != 0 && odd != 2 {
		return false, nil
	}

	return connectivity.Connected(g, connectivity.WithContext(o.Ctx))
}

// resolve validates the graph pointer and folds functional options.
func resolve(g *core.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// degreeSheet is the per-call degree bookkeeping: one entry for every
// vertex of the graph, zero-degree vertices included. For directed graphs
// in/out are populated; for undirected graphs deg is.
type degreeSheet struct {
	directed bool
	in       map[string]int
	out      map[string]int
	deg      map[string]int
}

// tally builds a fresh degreeSheet in one pass over the edge catalog.
// A self-loop contributes 2 to undirected degree and +1 to each of in/out
// for directed graphs. Parallel edges contribute independently.
//
// The sheet is seeded from Vertices() so vertices with no incident edges
// are represented with degree 0; they matter for the connectivity policy.
func tally(g *core.Graph) *degreeSheet {
	verts := g.Vertices()
	s := &degreeSheet{directed: g.Directed()}

	if s.directed {
		s.in = make(map[string]int, len(verts))
		s.out = make(map[string]int, len(verts))
		for _, v := range verts {
			s.in[v], s.out[v] = 0, 0
		}
		for _, e := range g.Edges() {
			s.out[e.From]++
			s.in[e.To]++
		}

		return s
	}

	s.deg = make(map[string]int, len(verts))
	for _, v := range verts {
		s.deg[v] = 0
	}
	for _, e := range g.Edges() {
		s.deg[e.From]++
		s.deg[e.To]++ // a self-loop hits both increments: degree +2
	}

	return s
}

// balanced reports whether every vertex has in-degree equal to out-degree.
func (s *degreeSheet) balanced() bool {
	for v, in := range s.in {
		if in != s.out[v] {
			return false
		}
	}

	return true
}

// imbalance counts the directed path-criterion quantities: vertices with
// in−out = 1 (semiIn, candidate walk ends), vertices with out−in = 1
// (semiOut, candidate walk starts), and all vertices with in ≠ out.
func (s *degreeSheet) imbalance() (semiIn, semiOut, imbalanced int) {
	for v, in := range s.in {
		out := s.out[v]
		switch {
		case in == out:
			continue
		case in-out == 1:
			semiIn++
		case out-in == 1:
			semiOut++
		}
		imbalanced++
	}

	return semiIn, semiOut, imbalanced
}

// oddCount returns the number of odd-degree vertices of an undirected graph.
// By the handshake lemma it is always even.
func (s *degreeSheet) oddCount() int {
	var n int
	for _, d := range s.deg {
		if d%2 == 1 {
			n++
		}
	}

	return n
}
