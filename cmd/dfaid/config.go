package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/sat"
	"github.com/katalvlaran/dfaid/search"
)

// Word is a YAML word: a string of one-rune symbols ("abba") or a list of
// symbols ([red, green]).
type Word alphabet.Word

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Word) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*w = Word(alphabet.FromString(s))
	case yaml.SequenceNode:
		var ss []string
		if err := n.Decode(&ss); err != nil {
			return err
		}
		*w = Word(ss)
	default:
		return fmt.Errorf("line %d: a word is a string or a list of symbols", n.Line)
	}

	return nil
}

// SearchConfig mirrors search.Options.
type SearchConfig struct {
	OrderByStutter   bool   `yaml:"order_by_stutter"`
	AllowUnminimized bool   `yaml:"allow_unminimized"`
	DecomposeVia     string `yaml:"decompose_via"`
	Backend          string `yaml:"backend"`
	MaxStates        int    `yaml:"max_states"`
	ProbeWorkers     int    `yaml:"probe_workers"`
}

// Config is an example file.
type Config struct {
	Alphabet              []string  `yaml:"alphabet"`
	Accepting             []Word    `yaml:"accepting"`
	Rejecting             []Word    `yaml:"rejecting"`
	OrderedPreferences    [][2]Word `yaml:"ordered_preferences"`
	EquivalentPreferences [][2]Word `yaml:"equivalent_preferences"`

	Search SearchConfig `yaml:"search"`
}

// LoadConfig reads and parses an example file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(raw)
}

// ParseConfig parses an example document.
func ParseConfig(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse examples: %w", err)
	}
	if c.Search.DecomposeVia == "" {
		c.Search.DecomposeVia = string(codec.Conjunction)
	}

	return &c, nil
}

func words(ws []Word) []alphabet.Word {
	out := make([]alphabet.Word, len(ws))
	for i, w := range ws {
		out[i] = alphabet.Word(w)
	}

	return out
}

func pairs(ps [][2]Word) []apta.WordPair {
	out := make([]apta.WordPair, len(ps))
	for i, p := range ps {
		out[i] = apta.WordPair{First: alphabet.Word(p[0]), Second: alphabet.Word(p[1])}
	}

	return out
}

// AcceptingWords returns the accepting examples.
func (c *Config) AcceptingWords() []alphabet.Word { return words(c.Accepting) }

// RejectingWords returns the rejecting examples.
func (c *Config) RejectingWords() []alphabet.Word { return words(c.Rejecting) }

// Options converts the file to search options.
func (c *Config) Options() ([]search.Option, error) {
	s := c.Search
	opts := []search.Option{
		search.WithOrderByStutter(s.OrderByStutter),
		search.WithAllowUnminimized(s.AllowUnminimized),
		search.WithDecomposeVia(codec.Mode(s.DecomposeVia)),
		search.WithMaxStates(s.MaxStates),
		search.WithProbeWorkers(s.ProbeWorkers),
		search.WithOrderedPreferences(pairs(c.OrderedPreferences)...),
		search.WithEquivalentPreferences(pairs(c.EquivalentPreferences)...),
	}
	if s.Backend != "" {
		opts = append(opts, search.WithBackend(sat.Backend(s.Backend)))
	}
	if len(c.Alphabet) > 0 {
		ab, err := alphabet.New(c.Alphabet...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithAlphabet(ab))
	}

	return opts, nil
}
