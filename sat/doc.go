// Package sat is dfaid's boundary to boolean satisfiability solvers.
//
// Clauses are DIMACS-style: a clause is a slice of non-zero ints, a positive
// int v is the variable v, a negative int -v its negation. Variable ids start
// at 1 and are assigned by package codec.
//
// A Solver accepts clauses incrementally, answers Solve, and after a
// satisfiable answer exposes a model as an ordered slice of signed literals
// (model[v-1] is +v or -v). Successive distinct models are requested by
// adding blocking clauses and solving again.
//
// Backends:
//
//   - Gini       (github.com/go-air/gini)       incremental CDCL, the default.
//   - Gophersat  (github.com/crillab/gophersat) rebuilds the problem on every
//     Solve; useful as an independent cross-check.
//
// A single Solve call is not preemptible; callers impose time limits between
// calls.
package sat
