// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> i+1 for i=0..n-2.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulith/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n. The two ends
// have odd degree and every interior vertex even, so a path always admits
// an Eulerian path but never an Eulerian circuit.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		for i := 0; i < n-1; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn(i+1)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, uID, vID, err)
			}
		}

		return nil
	}
}
