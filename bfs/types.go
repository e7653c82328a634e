// Package bfs provides tunable options and error definitions
// for breadth-first search over labeled state spaces.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilExpander is returned if a nil expander is passed.
	ErrNilExpander = errors.New("bfs: expander is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when a path to an unreached state is requested.
	ErrNoPath = errors.New("bfs: no path to state")
)

// Arc is a labeled transition to state To.
type Arc[S comparable] struct {
	Label int
	To    S
}

// Expander lists the outgoing arcs of a state.
type Expander[S comparable] func(s S) []Arc[S]

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a state is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// Goal, if non-nil, stops the search at the first dequeued state
	// for which it returns true.
	Goal func(s S) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no goal (full exploration of the reachable space)
//   - no-op OnVisit
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		OnVisit:  func(S, int) error { return nil },
		Goal:     nil,
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithGoal stops the search at the first state satisfying fn.
func WithGoal[S comparable](fn func(s S) bool) Option[S] {
	return func(o *Options[S]) { o.Goal = fn }
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: distance (in arcs) of each reached state from the start.
//   - Parent / Via: predecessor state and arc label of the BFS tree.
//   - Found / Goal: whether a goal state was hit, and which.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Via    map[S]int

	Found bool
	Goal  S
}

// PathTo reconstructs the state path from the start to dest.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// LabelsTo reconstructs the arc labels along the path from the start to dest.
func (r *Result[S]) LabelsTo(dest S) ([]int, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	labels := make([]int, 0, len(path)-1)
	for _, s := range path[1:] {
		labels = append(labels, r.Via[s])
	}

	return labels, nil
}
