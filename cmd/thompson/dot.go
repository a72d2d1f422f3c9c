package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"thompson/internal/dfa"
	"thompson/internal/nfa"
)

type dotOptions struct {
	*RootOptions
	NFA    bool
	Output string
}

// NewDotCommand exports a pattern's automaton as Graphviz DOT.
func NewDotCommand(root *RootOptions) *cobra.Command {
	opts := &dotOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "dot <pattern>",
		Short: "Export the DFA (or NFA) of a pattern as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.NFA, "nfa", false, "export the Thompson NFA instead of the DFA")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "output file (- for stdout)")

	return cmd
}

func runDot(cmd *cobra.Command, opts *dotOptions, expr string) error {
	c, err := compile(opts.Logger, expr)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", opts.Output, err)
		}
		defer f.Close()
		w = f
	}

	if opts.NFA {
		err = nfa.WriteDOT(w, c.nfa, c.frag)
	} else {
		err = dfa.WriteDOT(w, c.dfa)
	}
	if err != nil {
		return err
	}
	if opts.Output != "-" {
		opts.Logger.Info("DOT written", "path", opts.Output)
	}
	return nil
}
