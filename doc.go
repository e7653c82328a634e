// Package dfaid identifies deterministic finite automata from labeled
// example words by reduction to SAT, and learns them actively by querying an
// oracle for the words that separate the smallest consistent hypotheses.
//
// What is inside?
//
//	alphabet/     symbols, words, word enumeration
//	apta/         augmented prefix tree acceptor of the examples
//	consistency/  consistency graph: node pairs that can never be merged
//	codec/        CNF encoding of k-state and decomposed automata, decoding
//	sat/          SAT backends (gini, gophersat) and DIMACS export
//	search/       size walk, Pareto walk of decompositions, model streams
//	active/       distinguishing queries, active and decomposition learning
//	dfa/          automaton runtime: labels, products, language equality
//	core/         undirected int graph backing the consistency graph
//	bfs/, dfs/    generic traversals used by dfa/ and consistency/
//	cmd/dfaid     command-line front end over YAML example files
//
// Data flows one way: examples → APTA → consistency graph → CNF → model →
// automaton. The active learner rebuilds that pipeline after every query.
//
// Quick example:
//
//	d, err := search.FindDFA(ctx,
//		alphabet.Words("b", "ab", "bb"),   // accepting
//		alphabet.Words("", "a", "ba"))     // rejecting
//	// d: 2 states, "ends with b"
//
//	go get github.com/katalvlaran/dfaid
package dfaid
