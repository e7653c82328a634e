package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dfaid/active"
	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/consistency"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/sat"
	"github.com/katalvlaran/dfaid/search"
)

// flags shared by the subcommands; set ones override the example file.
type flags struct {
	verbose     bool
	stutter     bool
	unminimized bool
	via         string
	backend     string
	maxStates   int
	workers     int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "dfaid",
		Short:        "Exact DFA identification from labeled examples via SAT",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log search progress")
	pf.BoolVar(&f.stutter, "stutter", false, "prefer automata with more self-loops")
	pf.BoolVar(&f.unminimized, "unminimized", false, "continue past the minimal size")
	pf.StringVar(&f.via, "via", string(codec.Conjunction), "decomposition mode: conjunction or disjunction")
	pf.StringVar(&f.backend, "backend", string(sat.Gini), "SAT backend: gini or gophersat")
	pf.IntVar(&f.maxStates, "max-states", 0, "largest size to try (0 = no cap)")
	pf.IntVar(&f.workers, "workers", 1, "parallel size probes")

	root.AddCommand(
		newIdentifyCmd(f),
		newDecomposeCmd(f),
		newSizeCmd(f),
		newQueryCmd(f),
		newCNFCmd(f),
	)

	return root
}

// load reads the example file and merges the flags that were set.
func load(cmd *cobra.Command, f *flags, path string) (*Config, []search.Option, error) {
	c, err := LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	pf := cmd.Flags()
	if pf.Changed("stutter") {
		c.Search.OrderByStutter = f.stutter
	}
	if pf.Changed("unminimized") {
		c.Search.AllowUnminimized = f.unminimized
	}
	if pf.Changed("via") {
		c.Search.DecomposeVia = f.via
	}
	if pf.Changed("backend") {
		c.Search.Backend = f.backend
	}
	if pf.Changed("max-states") {
		c.Search.MaxStates = f.maxStates
	}
	if pf.Changed("workers") {
		c.Search.ProbeWorkers = f.workers
	}
	opts, err := c.Options()
	if err != nil {
		return nil, nil, err
	}

	return c, append(opts, search.WithLogger(slog.Default())), nil
}

func newIdentifyCmd(f *flags) *cobra.Command {
	count := 1
	cmd := &cobra.Command{
		Use:   "identify FILE",
		Short: "Print the smallest automata consistent with the examples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := load(cmd, f, args[0])
			if err != nil {
				return err
			}
			s, err := search.FindDFAs(c.AcceptingWords(), c.RejectingWords(), opts...)
			if err != nil {
				return err
			}

			return printAll(cmd.Context(), cmd.OutOrStdout(), s, count, func(w io.Writer, d *dfa.DFA) {
				fmt.Fprintf(w, "states: %d\n%s", d.States(), d)
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of automata to print")

	return cmd
}

func newDecomposeCmd(f *flags) *cobra.Command {
	count, components := 1, 2
	cmd := &cobra.Command{
		Use:   "decompose FILE",
		Short: "Print decompositions into several smaller automata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := load(cmd, f, args[0])
			if err != nil {
				return err
			}
			s, err := search.FindDecomposedDFAs(c.AcceptingWords(), c.RejectingWords(), components, opts...)
			if err != nil {
				return err
			}

			return printAll(cmd.Context(), cmd.OutOrStdout(), s, count, func(w io.Writer, ds []*dfa.DFA) {
				for i, d := range ds {
					fmt.Fprintf(w, "component %d, states: %d\n%s", i, d.States(), d)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of decompositions to print")
	cmd.Flags().IntVarP(&components, "components", "k", 2, "number of component automata")

	return cmd
}

func newSizeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "size FILE",
		Short: "Print the minimal number of states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := load(cmd, f, args[0])
			if err != nil {
				return err
			}
			k, err := search.MinimalSize(cmd.Context(), c.AcceptingWords(), c.RejectingWords(), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)

			return nil
		},
	}
}

func newQueryCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "query FILE",
		Short: "Print the word to label next",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := load(cmd, f, args[0])
			if err != nil {
				return err
			}
			t, err := apta.FromExamples(c.AcceptingWords(), c.RejectingWords())
			if err != nil {
				return err
			}
			ab := t.Alphabet()
			if len(c.Alphabet) > 0 {
				if ab, err = alphabet.New(c.Alphabet...); err != nil {
					return err
				}
			}
			ex := active.Examples{Accepting: c.AcceptingWords(), Rejecting: c.RejectingWords()}
			w, err := active.DistinguishingQuery(cmd.Context(), ex, ab, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), w)

			return nil
		},
	}
}

func newCNFCmd(f *flags) *cobra.Command {
	states := 1
	cmd := &cobra.Command{
		Use:   "cnf FILE",
		Short: "Write the DIMACS encoding for a given number of states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := load(cmd, f, args[0])
			if err != nil {
				return err
			}
			var topts []apta.Option
			if len(c.Alphabet) > 0 {
				ab, err := alphabet.New(c.Alphabet...)
				if err != nil {
					return err
				}
				topts = append(topts, apta.WithAlphabet(ab))
			}
			topts = append(topts,
				apta.WithOrderedPreferences(pairs(c.OrderedPreferences)...),
				apta.WithEquivalentPreferences(pairs(c.EquivalentPreferences)...),
			)
			t, err := apta.FromExamples(c.AcceptingWords(), c.RejectingWords(), topts...)
			if err != nil {
				return err
			}
			g, err := consistency.Build(t, consistency.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			enc, err := codec.New(t, g, states)
			if err != nil {
				return err
			}

			return sat.WriteDIMACS(cmd.OutOrStdout(), enc.MaxID(), enc.Clauses())
		},
	}
	cmd.Flags().IntVarP(&states, "states", "k", 1, "number of states")

	return cmd
}

func printAll[T any](ctx context.Context, w io.Writer, s *search.Stream[T], n int, show func(io.Writer, T)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for i := 0; i < n; i++ {
		v, err := s.Next(ctx)
		if errors.Is(err, search.ErrExhausted) {
			if i == 0 {
				fmt.Fprintln(w, "no consistent automaton")
			}

			return nil
		}
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		show(w, v)
	}

	return nil
}
