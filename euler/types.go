// types.go — options and error sentinels for Eulerian analysis.

package euler

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph pointer is passed to
// IsEulerian or HasEulerianPath.
var ErrGraphNil = errors.New("euler: graph is nil")

// Option configures an analysis call via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a single analysis call.
type Options struct {
	// Ctx allows cancellation and deadlines; it is threaded into the
	// underlying connectivity traversals. Defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
