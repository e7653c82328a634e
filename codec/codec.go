package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/core"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/sat"
)

// Sentinel errors for codec construction and decoding.
var (
	// ErrColors indicates a non-positive color count.
	ErrColors = errors.New("codec: color count must be positive")

	// ErrGraphSize indicates a consistency graph over a different node set.
	ErrGraphSize = errors.New("codec: consistency graph does not match tree")

	// ErrModelSize indicates a model shorter than the codec's variable range.
	ErrModelSize = errors.New("codec: model too short")

	// ErrSizeOrder indicates decomposition sizes that are not non-decreasing.
	ErrSizeOrder = errors.New("codec: component sizes must be non-decreasing")

	// ErrComponents indicates a decomposition with fewer than one component.
	ErrComponents = errors.New("codec: decomposition needs at least one component")

	// ErrMode indicates an unknown decomposition mode.
	ErrMode = errors.New("codec: unknown decomposition mode")
)

// Option configures New.
type Option func(*Options)

// Options holds codec parameters.
type Options struct {
	// Offset is added to every variable id.
	Offset int
	// Labels enables label and preference clauses. Components of a
	// decomposition are encoded without them.
	Labels bool
}

// DefaultOptions returns Offset 0 with labels enabled.
func DefaultOptions() Options {
	return Options{Labels: true}
}

// WithOffset shifts every variable id by off. Negative values are ignored.
func WithOffset(off int) Option {
	return func(o *Options) {
		if off >= 0 {
			o.Offset = off
		}
	}
}

// WithoutLabels drops label and preference clauses.
func WithoutLabels() Option {
	return func(o *Options) { o.Labels = false }
}

// Codec is the monolithic k-color encoding of one APTA.
type Codec struct {
	tree    *apta.APTA
	graph   *core.Graph
	colors  int
	symbols int
	offset  int
	labels  bool
}

// New returns a codec for t with the given number of colors. g may be nil,
// in which case no consistency-graph clauses are emitted.
func New(t *apta.APTA, g *core.Graph, colors int, opts ...Option) (*Codec, error) {
	if colors < 1 {
		return nil, fmt.Errorf("%w: %d", ErrColors, colors)
	}
	if g != nil && g.VertexCount() != t.Size() {
		return nil, fmt.Errorf("%w: %d vertices, %d nodes", ErrGraphSize, g.VertexCount(), t.Size())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Codec{
		tree:    t,
		graph:   g,
		colors:  colors,
		symbols: t.Alphabet().Size(),
		offset:  o.Offset,
		labels:  o.Labels,
	}, nil
}

// Tree returns the encoded APTA.
func (c *Codec) Tree() *apta.APTA { return c.tree }

// Colors returns the number of colors (automaton states).
func (c *Codec) Colors() int { return c.colors }

// Offset returns the id shift applied to every variable.
func (c *Codec) Offset() int { return c.offset }

// Color returns the variable x(v,i).
func (c *Codec) Color(v, i int) int {
	return c.offset + v*c.colors + i + 1
}

// Trans returns the variable y(a,i,j).
func (c *Codec) Trans(a, i, j int) int {
	k := c.colors

	return c.offset + c.tree.Size()*k + (a*k+i)*k + j + 1
}

// Acc returns the variable z(i).
func (c *Codec) Acc(i int) int {
	k := c.colors

	return c.offset + c.tree.Size()*k + c.symbols*k*k + i + 1
}

// MaxID returns the largest variable id of the codec.
func (c *Codec) MaxID() int {
	return c.Acc(c.colors - 1)
}

// Clauses returns the CNF encoding.
func (c *Codec) Clauses() [][]int {
	t, k := c.tree, c.colors
	n := t.Size()
	var cs [][]int

	// 1) Root color.
	cs = append(cs, []int{c.Color(apta.Root, 0)})

	// 2) Exactly one color per node.
	for v := 0; v < n; v++ {
		alo := make([]int, k)
		for i := 0; i < k; i++ {
			alo[i] = c.Color(v, i)
			for j := i + 1; j < k; j++ {
				cs = append(cs, []int{-c.Color(v, i), -c.Color(v, j)})
			}
		}
		cs = append(cs, alo)
	}

	// 3) Labels and 4) consistency edges.
	if c.labels {
		for _, v := range t.Accepting() {
			for i := 0; i < k; i++ {
				cs = append(cs, []int{-c.Color(v, i), c.Acc(i)})
			}
		}
		for _, v := range t.Rejecting() {
			for i := 0; i < k; i++ {
				cs = append(cs, []int{-c.Color(v, i), -c.Acc(i)})
			}
		}
	}
	if c.graph != nil {
		for _, e := range c.graph.Edges() {
			if c.labels && t.Label(e.U).Conflicts(t.Label(e.V)) {
				continue // already excluded by the label clauses
			}
			for i := 0; i < k; i++ {
				cs = append(cs, []int{-c.Color(e.U, i), -c.Color(e.V, i)})
			}
		}
	}

	// 5) Parent relation and 7) propagation.
	for _, tr := range t.Transitions() {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				cs = append(cs,
					[]int{-c.Color(tr.Parent, i), -c.Color(tr.Child, j), c.Trans(tr.Symbol, i, j)},
					[]int{-c.Color(tr.Parent, i), -c.Trans(tr.Symbol, i, j), c.Color(tr.Child, j)},
				)
			}
		}
	}

	// 6) y is functional and total.
	for a := 0; a < c.symbols; a++ {
		for i := 0; i < k; i++ {
			alo := make([]int, k)
			for j := 0; j < k; j++ {
				alo[j] = c.Trans(a, i, j)
				for h := j + 1; h < k; h++ {
					cs = append(cs, []int{-c.Trans(a, i, j), -c.Trans(a, i, h)})
				}
			}
			cs = append(cs, alo)
		}
	}

	// 8) Preferences.
	if c.labels {
		cs = append(cs, c.preferenceClauses()...)
	}

	return cs
}

func (c *Codec) preferenceClauses() [][]int {
	k := c.colors
	var cs [][]int
	implies := func(less, more int) {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				cs = append(cs, []int{-c.Color(less, i), -c.Color(more, j), -c.Acc(i), c.Acc(j)})
			}
		}
	}
	for _, p := range c.tree.OrderedPreferences() {
		implies(p.First, p.Second)
	}
	for _, p := range c.tree.EquivalentPreferences() {
		implies(p.First, p.Second)
		implies(p.Second, p.First)
	}

	return cs
}

// Blocking returns the clause excluding the automaton encoded by model: it
// ranges over the y and z variables only, so recolorings of the same
// automaton are excluded together.
func (c *Codec) Blocking(model []int) []int {
	return sat.Blocking(model, c.tableVars())
}

func (c *Codec) tableVars() []int {
	k := c.colors
	vars := make([]int, 0, c.symbols*k*k+k)
	for a := 0; a < c.symbols; a++ {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				vars = append(vars, c.Trans(a, i, j))
			}
		}
	}
	for i := 0; i < k; i++ {
		vars = append(vars, c.Acc(i))
	}

	return vars
}

// NonStutterLits returns one literal per (symbol, color) that is true iff
// the transition leaves the color: ¬y(a,i,i).
func (c *Codec) NonStutterLits() []int {
	lits := make([]int, 0, c.symbols*c.colors)
	for a := 0; a < c.symbols; a++ {
		for i := 0; i < c.colors; i++ {
			lits = append(lits, -c.Trans(a, i, i))
		}
	}

	return lits
}

// Colorings returns the color of every node in model.
func (c *Codec) Colorings(model []int) ([]int, error) {
	if len(model) < c.MaxID() {
		return nil, fmt.Errorf("%w: %d < %d", ErrModelSize, len(model), c.MaxID())
	}
	colors := make([]int, c.tree.Size())
	for v := range colors {
		colors[v] = dfa.None
		for i := 0; i < c.colors; i++ {
			if !sat.Value(model, c.Color(v, i)) {
				continue
			}
			if colors[v] != dfa.None {
				panic(fmt.Sprintf("codec: node %d has colors %d and %d", v, colors[v], i))
			}
			colors[v] = i
		}
		if colors[v] == dfa.None {
			panic(fmt.Sprintf("codec: node %d has no color", v))
		}
	}

	return colors, nil
}

// Decode reads the automaton encoded by model. The start state is the root's
// color and every color becomes a state.
func (c *Codec) Decode(model []int) (*dfa.DFA, error) {
	// 1) Node colors.
	colors, err := c.Colorings(model)
	if err != nil {
		return nil, err
	}
	k := c.colors

	// 2) Accepting colors and the transition function.
	accepting := make([]bool, k)
	delta := make([][]int, k)
	for i := 0; i < k; i++ {
		accepting[i] = sat.Value(model, c.Acc(i))
		delta[i] = make([]int, c.symbols)
		for a := 0; a < c.symbols; a++ {
			delta[i][a] = dfa.None
			for j := 0; j < k; j++ {
				if !sat.Value(model, c.Trans(a, i, j)) {
					continue
				}
				if delta[i][a] != dfa.None {
					panic(fmt.Sprintf("codec: δ(%d,%d) has targets %d and %d", i, a, delta[i][a], j))
				}
				delta[i][a] = j
			}
			if delta[i][a] == dfa.None {
				panic(fmt.Sprintf("codec: δ(%d,%d) undefined", i, a))
			}
		}
	}

	// 3) The coloring must agree with the table and the labels.
	for _, tr := range c.tree.Transitions() {
		if got := delta[colors[tr.Parent]][tr.Symbol]; got != colors[tr.Child] {
			panic(fmt.Sprintf("codec: node %d colored %d, table gives %d", tr.Child, colors[tr.Child], got))
		}
	}
	if c.labels {
		for _, v := range c.tree.Labeled() {
			if accepting[colors[v]] != (c.tree.Label(v) == apta.Accept) {
				panic(fmt.Sprintf("codec: node %d labeled %s on color %d", v, c.tree.Label(v), colors[v]))
			}
		}
	}

	return dfa.New(c.tree.Alphabet(), colors[apta.Root], accepting, delta)
}

// OffsetLits shifts every literal of lits by off, keeping its sign.
func OffsetLits(lits []int, off int) []int {
	out := make([]int, len(lits))
	for i, l := range lits {
		if l < 0 {
			out[i] = l - off
		} else {
			out[i] = l + off
		}
	}

	return out
}
