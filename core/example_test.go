package core_test

import (
	"fmt"

	"github.com/katalvlaran/dfaid/core"
)

// ExampleGraph_Edges builds a small consistency-style graph and lists its
// edges in canonical order.
func ExampleGraph_Edges() {
	g := core.NewGraph(4)
	_ = g.AddEdge(3, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(2, 1)

	for _, e := range g.Edges() {
		fmt.Printf("%d-%d ", e.U, e.V)
	}
	fmt.Println()
	// Output: 0-2 1-2 1-3
}
