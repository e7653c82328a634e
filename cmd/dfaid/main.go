// Command dfaid identifies DFAs from labeled examples stored in a YAML file.
//
//	dfaid identify examples.yaml -n 3
//	dfaid decompose examples.yaml --components 2 --stutter
//	dfaid size examples.yaml --workers 4
//	dfaid query examples.yaml
//	dfaid cnf examples.yaml --states 3 > problem.cnf
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
