// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   - Honors core mode flags without silent degrade.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulith/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Every vertex ends with degree 2 (or in-degree = out-degree = 1 when the
// graph is directed), so a cycle is always Eulerian.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, uID, vID, err)
			}
		}

		return nil
	}
}
