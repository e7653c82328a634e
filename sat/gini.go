package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniSolver adapts go-air/gini to Solver. Clauses are added incrementally,
// so blocking clauses reuse everything the solver has learned.
type GiniSolver struct {
	g      *gini.Gini
	maxVar int
	sat    bool
	empty  bool
}

// NewGini returns an empty gini-backed solver.
func NewGini() *GiniSolver {
	return &GiniSolver{g: gini.New()}
}

// AddClause implements Solver.
func (s *GiniSolver) AddClause(lits ...int) error {
	max, err := maxAbs(s.maxVar, lits)
	if err != nil {
		return err
	}
	s.maxVar = max
	if len(lits) == 0 {
		s.empty = true

		return nil
	}
	for _, l := range lits {
		s.g.Add(z.Dimacs2Lit(l))
	}
	s.g.Add(z.LitNull)

	return nil
}

// Solve implements Solver.
func (s *GiniSolver) Solve() bool {
	s.sat = !s.empty && s.g.Solve() == 1

	return s.sat
}

// Model implements Solver.
func (s *GiniSolver) Model() ([]int, error) {
	if !s.sat {
		return nil, ErrNoModel
	}
	model := make([]int, s.maxVar)
	for v := 1; v <= s.maxVar; v++ {
		if s.g.Value(z.Dimacs2Lit(v)) {
			model[v-1] = v
		} else {
			model[v-1] = -v
		}
	}

	return model, nil
}

// MaxVar implements Solver.
func (s *GiniSolver) MaxVar() int { return s.maxVar }
