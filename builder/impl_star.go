// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center vertex uses the fixed ID "Center"; the n-1 leaves use
//     cfg.idFn(1..n-1).
//   - Emits spokes in ascending leaf index order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulith/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenterID = "Center"
)

// Star returns a Constructor that builds a star S_n: one center and n-1
// leaves. With exactly two leaves the star is a path (Eulerian path); with
// three or more, the leaves outnumber the permissible odd-degree endpoints
// and no Eulerian walk exists.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(starCenterID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, starCenterID, err)
		}
		for i := 1; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, id, err)
			}
			if _, err := g.AddEdge(starCenterID, id); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, starCenterID, id, err)
			}
		}

		return nil
	}
}
