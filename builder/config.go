// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).

package builder

import "strconv"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
}

// BuilderOption mutates the builderConfig during resolution.
type BuilderOption func(*builderConfig)

// WithIDScheme overrides the vertex naming function used by index-based
// constructors (Cycle, Path, Complete, Star leaves). A nil fn is ignored.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID, // "0","1","2",...
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
