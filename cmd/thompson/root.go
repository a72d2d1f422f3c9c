package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"thompson/internal/dfa"
	"thompson/internal/nfa"
	"thompson/internal/pattern"
)

// RootOptions holds global flags and the logger shared by subcommands.
type RootOptions struct {
	Verbose bool
	Logger  *slog.Logger
}

// NewRootCommand creates the thompson CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:   "thompson",
		Short: "Build DFAs from regular expressions",
		Long: `thompson compiles a regular expression into a Thompson NFA, determinises it
by subset construction, and lets you inspect or run the result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewMatchCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// compiled is one pattern carried through every construction stage.
type compiled struct {
	nfa  *nfa.NFA
	frag nfa.Fragment
	dfa  *dfa.DFA
}

func compile(log *slog.Logger, expr string) (*compiled, error) {
	n := nfa.New()
	f, err := pattern.Build(n, expr)
	if err != nil {
		return nil, err
	}
	d, err := n.ToDFA(f)
	if err != nil {
		return nil, err
	}
	log.Debug("compiled pattern", "expr", expr, "nfa_states", n.Len(), "dfa_states", d.Len())
	return &compiled{nfa: n, frag: f, dfa: d}, nil
}
