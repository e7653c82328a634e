// Package core provides the small, thread-safe undirected graph that dfaid
// uses to store consistency graphs: vertices are dense integer ids 0..n-1
// (the APTA node ids), edges are unordered pairs, and every enumeration is
// returned in sorted order so downstream CNF generation is reproducible.
//
// The Graph G = (V,E) supports:
//
//   - Dense int vertices fixed up front (NewGraph(n)).
//   - Undirected simple edges; a second AddEdge(u,v) → ErrMultiEdgeNotAllowed,
//     AddEdge(v,v) → ErrLoopNotAllowed.
//   - A single sync.RWMutex guarding the adjacency sets, so read-only views may
//     be shared across goroutines (e.g. parallel size probes in package search).
//
// Core Methods:
//
//	VertexCount() int                  // O(1)
//	AddEdge(u, v int) error            // O(1)
//	HasEdge(u, v int) bool             // O(1)
//	Edges() []Edge                     // O(E·log E), sorted by (U,V)
//	EdgeCount() int                    // O(1)
//
// Errors:
//
//	ErrVertexNotFound      – vertex id out of range
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – duplicate edge
package core
