// Package search is dfaid's identification driver: it walks candidate
// automaton sizes, hands each codec to a SAT backend and lazily yields the
// decoded automata.
//
// Results are pulled from a Stream: every Next call may build a CNF instance
// and run one or more solver calls. A call is never interrupted; the context
// passed to Next is checked between solver calls, so deadlines are honored at
// those boundaries.
//
// Monolithic walk (FindModels, FindDFAs, FindDFA):
//
//  1. Build the APTA and, on the first Next, its consistency graph.
//  2. For k = 1, 2, ...: encode, solve. UNSAT advances k.
//  3. On SAT, yield every distinct automaton of size k by adding blocking
//     clauses over the transition and acceptance variables.
//  4. Without WithAllowUnminimized the stream ends after the first
//     satisfiable k; with it, the walk continues to k+1.
//
// The walk stops when k exceeds the APTA size (no larger automaton can
// succeed if that one failed) or WithMaxStates.
//
// Decomposed walk (FindDecomposedDFAs): the same loop over strictly
// increasing size tuples ordered by largest component, then total size, then
// lexicographically. A tuple that is component-wise at least an already
// satisfiable tuple is skipped unless WithAllowUnminimized, so the walk
// traces the Pareto frontier of component sizes.
//
// Stutter ordering (WithOrderByStutter): inside one size, automata are
// yielded by increasing number of non-self-loop transitions. The minimum is
// found by tightening a cardinality bound until UNSAT; the bound is then
// relaxed one step at a time, keeping every blocking clause.
//
// MinimalSize probes sizes concurrently with independent solvers.
package search
