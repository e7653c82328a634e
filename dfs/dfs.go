package dfs

import "fmt"

// frame is one pending stack entry.
type frame[S comparable] struct {
	state S
	depth int
}

// Search performs depth-first search from start. Successors returned by the
// visitor are explored in the order given (the first successor is visited
// first). A state is visited at most once.
func Search[S comparable](start S, visit Visitor[S], opts ...Option) (*Result[S], error) {
	// 1. Validate input
	if visit == nil {
		return nil, ErrNilVisitor
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result[S]{Visited: make(map[S]bool)}
	stack := []frame[S]{{state: start}}

	// 3. Pop until empty or stopped
	var next []S
	var stop bool
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited[top.state] {
			continue
		}
		res.Visited[top.state] = true
		res.Order = append(res.Order, top.state)

		if o.OnVisit != nil {
			if err := o.OnVisit(top.depth); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %v: %w", top.state, err)
			}
		}

		next, stop = visit(top.state)
		if stop {
			res.Stopped = true
			res.StoppedAt = top.state

			return res, nil
		}
		if o.MaxDepth >= 0 && top.depth >= o.MaxDepth {
			continue
		}

		// 4. Push in reverse so next[0] is popped first
		for i := len(next) - 1; i >= 0; i-- {
			if !res.Visited[next[i]] {
				stack = append(stack, frame[S]{state: next[i], depth: top.depth + 1})
			}
		}
	}

	return res, nil
}

// Reachable returns every state reachable from start under succ, in DFS
// pre-order.
func Reachable[S comparable](start S, succ func(S) []S) []S {
	res, _ := Search(start, func(s S) ([]S, bool) { return succ(s), false })

	return res.Order
}
