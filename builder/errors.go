// SPDX-License-Identifier: MIT
// Package: eulith/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping; sentinels stay bare.
//   - Constructors never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible
// with the current core.Graph mode (e.g., Bridges on a directed graph, or a
// multigraph fixture on a graph without multi-edges enabled).
// Usage: if errors.Is(err, ErrUnsupportedGraphMode) { /* switch graph mode */ }.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder could not construct the
// requested topology without breaking core invariants.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapped cause */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
