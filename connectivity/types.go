// types.go — options and error sentinels for the reachability analyses.

package connectivity

import (
	"context"
	"errors"
)

// Sentinel errors for connectivity analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrDirectedGraph is returned when Connected is called on a directed
	// graph; use WeaklyConnected or StronglyConnected instead.
	ErrDirectedGraph = errors.New("connectivity: graph is directed")

	// ErrUndirectedGraph is returned when WeaklyConnected or
	// StronglyConnected is called on an undirected graph; use Connected.
	ErrUndirectedGraph = errors.New("connectivity: graph is undirected")
)

// Option configures connectivity analysis via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a connectivity run.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
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
