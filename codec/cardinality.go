package codec

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// AtMost encodes "at most bound of lits are true" with a gini sorting
// network. Auxiliary variables are numbered from next; maxID is the largest
// id used.
func AtMost(lits []int, bound, next int) (clauses [][]int, maxID int) {
	n := len(lits)
	c := logic.NewC()
	ins := make([]z.Lit, n)
	for i := range ins {
		ins[i] = c.Lit()
	}
	root := c.CardSort(ins).Leq(bound)

	// Circuit var 1 is the constant, vars 2..n+1 are the inputs, the rest are
	// gates.
	sink := &clauseSink{lit: func(m z.Lit) int {
		v := int(m.Var())
		var d int
		switch {
		case v == 1:
			d = next
		case v <= n+1:
			d = lits[v-2]
		default:
			d = next + v - n - 1
		}
		if !m.IsPos() {
			d = -d
		}

		return d
	}}
	c.ToCnfFrom(sink, root)
	sink.Add(root)
	sink.Add(z.LitNull)

	return sink.clauses, next + c.Len() - n - 2
}

// clauseSink collects LitNull-terminated clauses from a gini circuit as
// DIMACS literals.
type clauseSink struct {
	lit     func(z.Lit) int
	cur     []int
	clauses [][]int
}

func (s *clauseSink) Add(m z.Lit) {
	if m == z.LitNull {
		s.clauses = append(s.clauses, s.cur)
		s.cur = nil

		return
	}
	s.cur = append(s.cur, s.lit(m))
}

// CountTrue returns how many of lits hold in model.
func CountTrue(model []int, lits []int) int {
	n := 0
	for _, l := range lits {
		v := l
		if v < 0 {
			v = -v
		}
		if v > len(model) {
			continue
		}
		if (model[v-1] > 0) == (l > 0) {
			n++
		}
	}

	return n
}
