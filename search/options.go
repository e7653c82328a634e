package search

import (
	"log/slog"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/sat"
)

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// OrderByStutter yields automata with more self-loops first within a size.
	OrderByStutter bool
	// AllowUnminimized continues past the first satisfiable size.
	AllowUnminimized bool
	// DecomposeVia selects the combination of decomposed components.
	DecomposeVia codec.Mode
	// Backend selects the SAT solver.
	Backend sat.Backend
	// MaxStates caps the (largest component) size; 0 means uncapped.
	MaxStates int
	// ProbeWorkers > 1 makes FindModels start at MinimalSize's answer.
	ProbeWorkers int

	Alphabet              *alphabet.Alphabet
	OrderedPreferences    []apta.WordPair
	EquivalentPreferences []apta.WordPair

	Logger *slog.Logger
}

// DefaultOptions returns conjunction decomposition on gini, logging to
// slog.Default().
func DefaultOptions() Options {
	return Options{
		DecomposeVia: codec.Conjunction,
		Backend:      sat.Gini,
		ProbeWorkers: 1,
		Logger:       slog.Default(),
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOrderByStutter enables stutter ordering.
func WithOrderByStutter(on bool) Option {
	return func(o *Options) { o.OrderByStutter = on }
}

// WithAllowUnminimized lets the walk continue to larger sizes.
func WithAllowUnminimized(on bool) Option {
	return func(o *Options) { o.AllowUnminimized = on }
}

// WithDecomposeVia selects Conjunction or Disjunction.
func WithDecomposeVia(m codec.Mode) Option {
	return func(o *Options) { o.DecomposeVia = m }
}

// WithBackend selects the SAT backend.
func WithBackend(b sat.Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithMaxStates caps the walk. Non-positive values remove the cap.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxStates = n
	}
}

// WithProbeWorkers sets the MinimalSize parallelism used to seed the walk.
func WithProbeWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.ProbeWorkers = n
	}
}

// WithAlphabet predeclares the alphabet.
func WithAlphabet(ab *alphabet.Alphabet) Option {
	return func(o *Options) { o.Alphabet = ab }
}

// WithOrderedPreferences adds (less preferred, more preferred) word pairs.
func WithOrderedPreferences(pairs ...apta.WordPair) Option {
	return func(o *Options) { o.OrderedPreferences = append(o.OrderedPreferences, pairs...) }
}

// WithEquivalentPreferences adds equally preferred word pairs.
func WithEquivalentPreferences(pairs ...apta.WordPair) Option {
	return func(o *Options) { o.EquivalentPreferences = append(o.EquivalentPreferences, pairs...) }
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) tree(accepting, rejecting []alphabet.Word) (*apta.APTA, error) {
	return apta.FromExamples(accepting, rejecting,
		apta.WithAlphabet(o.Alphabet),
		apta.WithOrderedPreferences(o.OrderedPreferences...),
		apta.WithEquivalentPreferences(o.EquivalentPreferences...),
	)
}
