// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks and depth limiting.
package dfs

import (
	"context"
	"errors"
)

// ErrNilVisitor is returned when Search is called with a nil visitor.
var ErrNilVisitor = errors.New("dfs: visitor is nil")

// Visitor inspects state s. It returns the successors to explore and whether
// the search should stop immediately (with s recorded as the stopping state).
type Visitor[S comparable] func(s S) (next []S, stop bool)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits expansion to the given depth.
	// A depth of 0 visits only the start state. Default is -1 (no limit).
	MaxDepth int

	// OnVisit, if non-nil, is invoked when a state is first popped (pre-order),
	// with its depth. Returning an error aborts traversal with that error.
	OnVisit func(depth int) error
}

// DefaultOptions returns Options with a background context, no depth limit
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		OnVisit:  nil,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result captures the outcome of a depth-first traversal.
type Result[S comparable] struct {
	// Order records states in the sequence they were first visited (pre-order).
	Order []S

	// Visited flags which states were reached.
	Visited map[S]bool

	// Stopped reports whether the visitor ended the search early, at StoppedAt.
	Stopped   bool
	StoppedAt S
}
