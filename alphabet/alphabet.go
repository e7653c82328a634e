package alphabet

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for alphabet construction and lookups.
var (
	// ErrNullSymbol indicates the empty (absent) symbol was supplied.
	ErrNullSymbol = errors.New("alphabet: null symbol not allowed")

	// ErrUnknownSymbol indicates a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: symbol not in alphabet")
)

// Symbol is a single letter of an alphabet.
type Symbol = string

// keySep separates symbols inside Word.Key. It cannot appear in a
// well-formed symbol produced by FromString from printable text.
const keySep = "\x1f"

// Word is a finite sequence of symbols. The nil/empty word is valid.
type Word []Symbol

// FromString splits s into one-rune symbols.
func FromString(s string) Word {
	w := make(Word, 0, len(s))
	for _, r := range s {
		w = append(w, string(r))
	}

	return w
}

// Words converts each string with FromString.
func Words(ss ...string) []Word {
	out := make([]Word, len(ss))
	for i, s := range ss {
		out[i] = FromString(s)
	}

	return out
}

// Key returns a string that identifies w; distinct words have distinct keys.
func (w Word) Key() string {
	return strings.Join(w, keySep)
}

// String renders w for humans: single-rune words are concatenated, others are
// space separated. The empty word renders as "ε".
func (w Word) String() string {
	if len(w) == 0 {
		return "ε"
	}
	for _, s := range w {
		if len([]rune(s)) != 1 {
			return strings.Join(w, " ")
		}
	}

	return strings.Join(w, "")
}

// Equal reports whether w and o spell the same word.
func (w Word) Equal(o Word) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)

	return out
}

// Alphabet is an immutable, sorted set of symbols with a bijection to 0..n-1.
type Alphabet struct {
	symbols []Symbol
	index   map[Symbol]int
}

// New builds an Alphabet from symbols. Duplicates collapse; the result is
// sorted so the id assignment is stable across runs.
func New(symbols ...Symbol) (*Alphabet, error) {
	seen := make(map[Symbol]struct{}, len(symbols))
	uniq := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return nil, ErrNullSymbol
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	sort.Strings(uniq)

	a := &Alphabet{symbols: uniq, index: make(map[Symbol]int, len(uniq))}
	for i, s := range uniq {
		a.index[s] = i
	}

	return a, nil
}

// MustNew is New that panics on error; intended for literals in tests and examples.
func MustNew(symbols ...Symbol) *Alphabet {
	a, err := New(symbols...)
	if err != nil {
		panic(err)
	}

	return a
}

// Size returns |Σ|.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns a copy of the sorted symbol list.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// Symbol returns the symbol with id i. It panics if i is out of range.
func (a *Alphabet) Symbol(i int) Symbol { return a.symbols[i] }

// ID returns the id of s.
func (a *Alphabet) ID(s Symbol) (int, bool) {
	i, ok := a.index[s]

	return i, ok
}

// Contains reports membership of s.
func (a *Alphabet) Contains(s Symbol) bool {
	_, ok := a.index[s]

	return ok
}

// Encode maps w to symbol ids.
func (a *Alphabet) Encode(w Word) ([]int, error) {
	ids := make([]int, len(w))
	for i, s := range w {
		id, ok := a.index[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
		}
		ids[i] = id
	}

	return ids, nil
}

// Decode maps symbol ids back to a word. It panics on an out-of-range id.
func (a *Alphabet) Decode(ids []int) Word {
	w := make(Word, len(ids))
	for i, id := range ids {
		w[i] = a.symbols[id]
	}

	return w
}

// Equal reports whether a and o contain exactly the same symbols.
func (a *Alphabet) Equal(o *Alphabet) bool {
	if a == o {
		return true
	}
	if a == nil || o == nil || len(a.symbols) != len(o.symbols) {
		return false
	}
	for i := range a.symbols {
		if a.symbols[i] != o.symbols[i] {
			return false
		}
	}

	return true
}

// String renders the alphabet as {a, b, c}.
func (a *Alphabet) String() string {
	return "{" + strings.Join(a.symbols, ", ") + "}"
}
