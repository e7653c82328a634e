package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/core"
)

// TestConcurrentAddEdge adds disjoint edges from many goroutines.
func TestConcurrentAddEdge(t *testing.T) {
	const n = 64
	g := core.NewGraph(n)

	var wg sync.WaitGroup
	for i := 0; i < n-1; i++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			_ = g.AddEdge(u, u+1)
			_ = g.HasEdge(u, u+1)
			_ = g.EdgeCount()
		}(i)
	}
	wg.Wait()

	require.Equal(t, n-1, g.EdgeCount())
	require.Len(t, g.Edges(), n-1)
}
