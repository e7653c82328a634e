// Package bfs provides a generic breadth-first search over implicitly defined
// state spaces whose arcs carry integer labels.
//
// dfaid uses it to explore product automata: states are pairs of automaton
// states, arc labels are symbol ids, and the first state satisfying a goal
// predicate yields a shortest word (the label path) reaching it.
//
// Key features:
//   - BFS(start, next, opts...): explore in increasing distance from start.
//   - WithGoal(fn): stop at the first dequeued state for which fn is true.
//   - WithMaxDepth(d): do not expand beyond depth d.
//   - WithOnVisit(fn): per-state hook; an error aborts traversal.
//   - WithContext(ctx): cancellation checked once per dequeue.
//   - Result.PathTo / Result.LabelsTo: reconstruct states / labels from start.
//
// Arcs are expanded in the order returned by the Expander, so for a
// deterministic Expander the discovered path is deterministic too: among all
// shortest paths it is the one whose label sequence comes first in the
// expander's order.
//
// Complexity:
//
//   - Time:   O(S + A) for S reachable states and A arcs, plus hook costs.
//   - Memory: O(S) for queue and parent maps.
//
// Errors:
//
//   - ErrNilExpander       if next is nil.
//   - ErrOptionViolation   for invalid options (negative depth).
//   - ErrNoPath            from PathTo/LabelsTo for unreached states.
//   - ctx.Err()            if the context is done.
//   - any error returned by OnVisit, wrapped.
package bfs
