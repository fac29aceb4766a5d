// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// impl_bridges.go — implementation of Bridges(spec) and the canned
// Königsberg fixtures.
//
// Contract:
//   - Undirected graphs only (ErrUnsupportedGraphMode otherwise): a bridge
//     is crossed in either direction.
//   - Specs with repeated bank pairs require multi-edge mode
//     (ErrUnsupportedGraphMode otherwise).
//   - Bank IDs are taken verbatim from the BridgeSpec; cfg.idFn is not consulted.
//   - Bridges are emitted in BridgeSpec order, so edge IDs are stable.
//
// Complexity:
//   - Time: O(B) for B bridges. Space: O(B) for the duplicate check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulith/core"
)

const methodBridges = "Bridges"

// BridgeSpec describes a named undirected multigraph of land masses joined
// by bridges. Each entry of Bridges is an unordered pair of bank IDs;
// repeated pairs are distinct parallel bridges.
type BridgeSpec struct {
	// Name labels the fixture (diagnostics only).
	Name string

	// Bridges lists the bank pairs, one per physical bridge.
	Bridges [][2]string
}

// SevenBridges returns the classic Seven Bridges of Königsberg (1736):
// four land masses, seven bridges, four odd-degree banks — the multigraph
// Euler proved to admit no walk crossing every bridge exactly once.
func SevenBridges() BridgeSpec {
	return BridgeSpec{
		Name: "Königsberg",
		Bridges: [][2]string{
			{"A", "B"}, // Honey Bridge
			{"A", "B"}, // Blacksmith's Bridge
			{"A", "C"}, // Green Bridge
			{"A", "C"}, // Connecting Bridge
			{"A", "D"}, // Merchant's Bridge
			{"C", "D"}, // High Bridge
			{"B", "D"}, // Wooden Bridge
		},
	}
}

// FiveBridges returns the five bridges of present-day Kaliningrad: the two
// surviving banks pairs lose one bridge each, leaving exactly two
// odd-degree banks — an open Eulerian walk exists, a closed one does not.
func FiveBridges() BridgeSpec {
	return BridgeSpec{
		Name: "Kaliningrad",
		Bridges: [][2]string{
			{"A", "B"}, // Honey Bridge
			{"A", "C"}, // Green Bridge
			{"A", "D"}, // Merchant's Bridge
			{"C", "D"}, // High Bridge
			{"B", "D"}, // Wooden Bridge
		},
	}
}

// Bridges returns a Constructor that materializes the given BridgeSpec.
func Bridges(spec BridgeSpec) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s(%s): directed graph: %w", methodBridges, spec.Name, ErrUnsupportedGraphMode)
		}
		if !g.Multigraph() && hasParallel(spec.Bridges) {
			return fmt.Errorf("%s(%s): parallel bridges need multi-edge mode: %w",
				methodBridges, spec.Name, ErrUnsupportedGraphMode)
		}

		for _, b := range spec.Bridges {
			if _, err := g.AddEdge(b[0], b[1]); err != nil {
				return fmt.Errorf("%s(%s): AddEdge(%s–%s): %w", methodBridges, spec.Name, b[0], b[1], err)
			}
		}

		return nil
	}
}

// hasParallel reports whether any unordered bank pair occurs twice.
func hasParallel(bridges [][2]string) bool {
	seen := make(map[[2]string]struct{}, len(bridges))
	for _, b := range bridges {
		k := b
		if k[1] < k[0] {
			k[0], k[1] = k[1], k[0]
		}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
	}

	return false
}
