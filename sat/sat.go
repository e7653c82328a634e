package sat

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver construction and use.
var (
	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("sat: unknown backend")

	// ErrNoModel indicates Model was called without a preceding satisfiable Solve.
	ErrNoModel = errors.New("sat: no model available")

	// ErrZeroLiteral indicates a clause containing 0.
	ErrZeroLiteral = errors.New("sat: literal 0 is not a variable")
)

// Backend names a solver implementation.
type Backend string

const (
	// Gini is the go-air/gini CDCL solver.
	Gini Backend = "gini"
	// Gophersat is the crillab/gophersat CDCL solver.
	Gophersat Backend = "gophersat"
)

// Solver is the incremental CNF interface the search driver relies on.
type Solver interface {
	// AddClause appends one clause. An empty clause makes the formula unsatisfiable.
	AddClause(lits ...int) error

	// Solve reports satisfiability of all clauses added so far.
	Solve() bool

	// Model returns the assignment of variables 1..MaxVar() from the last
	// satisfiable Solve.
	Model() ([]int, error)

	// MaxVar returns the largest variable id mentioned so far.
	MaxVar() int
}

// New returns a fresh solver of the given backend. The empty backend selects Gini.
func New(b Backend) (Solver, error) {
	switch b {
	case Gini, "":
		return NewGini(), nil
	case Gophersat:
		return NewGophersat(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}

// AddAll adds every clause in cs to s.
func AddAll(s Solver, cs [][]int) error {
	for _, c := range cs {
		if err := s.AddClause(c...); err != nil {
			return err
		}
	}

	return nil
}

// Blocking returns the clause forbidding the assignment of vars found in model.
func Blocking(model []int, vars []int) []int {
	out := make([]int, 0, len(vars))
	for _, v := range vars {
		if Value(model, v) {
			out = append(out, -v)
		} else {
			out = append(out, v)
		}
	}

	return out
}

// Value reports the truth value of variable v (v > 0) in model. Variables
// beyond the model are false.
func Value(model []int, v int) bool {
	if v <= 0 || v > len(model) {
		return false
	}

	return model[v-1] > 0
}

func maxAbs(max int, lits []int) (int, error) {
	for _, l := range lits {
		if l == 0 {
			return max, ErrZeroLiteral
		}
		if l < 0 {
			l = -l
		}
		if l > max {
			max = l
		}
	}

	return max, nil
}
