package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  Expander[S]
	opts  Options[S]
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]
}

// BFS runs breadth-first search from start, expanding states with next and
// applying any number of functional Options.
// Returns ErrNilExpander for a nil expander, ErrOptionViolation for bad
// options, ctx.Err() on cancellation, or any user-supplied hook error.
func BFS[S comparable](start S, next Expander[S], opts ...Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilExpander
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next: next,
		opts: o,
		ctx:  o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
			Via:    make(map[S]int),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[S]{state: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}
		if w.opts.Goal != nil && w.opts.Goal(item.state) {
			w.res.Found = true
			w.res.Goal = item.state

			return nil
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen successor of item within MaxDepth.
func (w *walker[S]) expand(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, arc := range w.next(item.state) {
		if _, seen := w.res.Depth[arc.To]; seen {
			continue
		}
		w.res.Depth[arc.To] = nextDepth
		w.res.Parent[arc.To] = item.state
		w.res.Via[arc.To] = arc.Label
		w.queue = append(w.queue, queueItem[S]{state: arc.To, depth: nextDepth})
	}
}
