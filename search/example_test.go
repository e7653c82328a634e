package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/search"
)

// ExampleFindDFA identifies "ends with b" from a handful of examples.
func ExampleFindDFA() {
	accepting := alphabet.Words("b", "ab", "bb", "aab")
	rejecting := alphabet.Words("", "a", "ba", "aa")

	d, err := search.FindDFA(context.Background(), accepting, rejecting)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("states:", d.States())
	for _, w := range accepting {
		ok, _ := d.Label(w)
		fmt.Printf("%s:%v ", w, ok)
	}
	fmt.Println()
	// Output:
	// states: 2
	// b:true ab:true bb:true aab:true
}
