package active

import (
	"context"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/dfa"
)

// Verdict is an oracle answer.
type Verdict int8

const (
	// Unknown adds no constraint.
	Unknown Verdict = iota
	// Accept marks the word accepting.
	Accept
	// Reject marks the word rejecting.
	Reject
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Oracle labels query words.
type Oracle interface {
	Query(ctx context.Context, w alphabet.Word) (Verdict, error)
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(w alphabet.Word) Verdict

// Query implements Oracle.
func (f OracleFunc) Query(_ context.Context, w alphabet.Word) (Verdict, error) {
	return f(w), nil
}

// FromDFA answers queries with d's labels.
func FromDFA(d *dfa.DFA) Oracle {
	return dfaOracle{d}
}

type dfaOracle struct{ d *dfa.DFA }

func (o dfaOracle) Query(_ context.Context, w alphabet.Word) (Verdict, error) {
	ok, err := o.d.Label(w)
	if err != nil {
		return Unknown, err
	}
	if ok {
		return Accept, nil
	}

	return Reject, nil
}
