package sat

import "github.com/crillab/gophersat/solver"

// GophersatSolver adapts crillab/gophersat to Solver. gophersat problems are
// not extended in place here: the clause list is kept and re-parsed on each
// Solve.
type GophersatSolver struct {
	clauses [][]int
	maxVar  int
	model   []int
	empty   bool
}

// NewGophersat returns an empty gophersat-backed solver.
func NewGophersat() *GophersatSolver {
	return &GophersatSolver{}
}

// AddClause implements Solver.
func (s *GophersatSolver) AddClause(lits ...int) error {
	max, err := maxAbs(s.maxVar, lits)
	if err != nil {
		return err
	}
	s.maxVar = max
	if len(lits) == 0 {
		s.empty = true

		return nil
	}
	s.clauses = append(s.clauses, append([]int(nil), lits...))

	return nil
}

// Solve implements Solver.
func (s *GophersatSolver) Solve() bool {
	s.model = nil
	if s.empty {
		return false
	}
	if len(s.clauses) == 0 {
		s.model = make([]int, s.maxVar)
		for v := 1; v <= s.maxVar; v++ {
			s.model[v-1] = -v
		}

		return true
	}

	sv := solver.New(solver.ParseSlice(s.clauses))
	if sv.Solve() != solver.Sat {
		return false
	}
	bits := sv.Model()
	s.model = make([]int, s.maxVar)
	for v := 1; v <= s.maxVar; v++ {
		if v-1 < len(bits) && bits[v-1] {
			s.model[v-1] = v
		} else {
			s.model[v-1] = -v
		}
	}

	return true
}

// Model implements Solver.
func (s *GophersatSolver) Model() ([]int, error) {
	if s.model == nil {
		return nil, ErrNoModel
	}

	return append([]int(nil), s.model...), nil
}

// MaxVar implements Solver.
func (s *GophersatSolver) MaxVar() int { return s.maxVar }
