// File: methods_vertices.go
// Role: Vertex queries. Vertices are fixed at NewGraph.
//
// Concurrency:
//   - All methods take g.mu (read) for their whole duration.
package core

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// hasVertex reports whether v is a valid id; callers hold g.mu.
func (g *Graph) hasVertex(v int) bool {
	return v >= 0 && v < len(g.adj)
}
