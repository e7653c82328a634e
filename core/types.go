// Package core defines the Graph and Edge types and their sentinel
// errors.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop; a node is always mergeable with itself.
//	ErrMultiEdgeNotAllowed - attempt to add an edge that already exists.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the edge is already present.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair, normalized so that U <= V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// Graph is an undirected simple graph over vertices 0..n-1.
//
// mu guards adj and edgeCount. Vertex ids are never reused or removed, which
// keeps ids aligned with the APTA node arena they mirror.
type Graph struct {
	mu sync.RWMutex

	// adj[v] is the neighbor set of v.
	adj       []map[int]struct{}
	edgeCount int
}

// NewGraph creates a Graph with n isolated vertices 0..n-1.
// Complexity: O(n)
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([]map[int]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}

	return g
}
