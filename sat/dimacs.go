package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDIMACS writes clauses in DIMACS CNF format with a "p cnf" header.
// nVars may exceed the largest variable used (unused variables are legal).
func WriteDIMACS(w io.Writer, nVars int, clauses [][]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", nVars, len(clauses)); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for _, c := range clauses {
		buf = buf[:0]
		for _, l := range c {
			buf = strconv.AppendInt(buf, int64(l), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0', '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
