// Package dfs implements an iterative, generic depth-first search over
// implicitly defined state spaces.
//
// What:
//
//   - Search(start, visit, opts...): pops states from an explicit stack, skips
//     states already visited (the space may contain cycles or reconverging
//     paths even when it is generated from a tree), and lets the visitor either
//     return successor states or stop the whole search.
//
// Why:
//   - The consistency-graph builder asks, for every pair of APTA nodes, whether
//     some reachable pair of nodes carries conflicting labels. That is a DFS
//     over node pairs with an early "refuted" exit, which is exactly Search
//     with a visitor that returns stop=true on conflict.
//   - No recursion: state spaces of a few hundred thousand pairs do not grow
//     the goroutine stack.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithMaxDepth(limit)       do not expand states deeper than limit (>=0).
//   - WithOnVisit(fn)           pre-order hook; error aborts traversal.
//
// Errors:
//
//   - ErrNilVisitor             if visit is nil.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
