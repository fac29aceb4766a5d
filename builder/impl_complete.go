// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Undirected graphs: one edge per unordered pair, emitted i<j ascending.
//   - Directed graphs: both orientations per pair (complete digraph), so
//     every vertex keeps in-degree = out-degree = n-1.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulith/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n
// (or the complete digraph on n vertices when the graph is directed).
// K_n is Eulerian exactly when n is odd: every degree is n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(uID, vID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, uID, vID, err)
				}
				if directed {
					if _, err := g.AddEdge(vID, uID); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, vID, uID, err)
					}
				}
			}
		}

		return nil
	}
}
