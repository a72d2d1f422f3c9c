package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	acceptLabel = color.New(color.FgGreen).SprintFunc()
	rejectLabel = color.New(color.FgRed).SprintFunc()
)

type matchOptions struct {
	*RootOptions
	Strict bool
}

// NewMatchCommand runs inputs through a pattern's DFA.
func NewMatchCommand(root *RootOptions) *cobra.Command {
	opts := &matchOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "match <pattern> <input>...",
		Short: "Report whether the pattern's DFA accepts each input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail if any input is rejected")

	return cmd
}

func runMatch(cmd *cobra.Command, opts *matchOptions, expr string, inputs []string) error {
	c, err := compile(opts.Logger, expr)
	if err != nil {
		return err
	}

	rejected := 0
	out := cmd.OutOrStdout()
	for _, in := range inputs {
		if c.dfa.Accepts(in) {
			fmt.Fprintf(out, "%s %q\n", acceptLabel("accept"), in)
			continue
		}
		rejected++
		fmt.Fprintf(out, "%s %q\n", rejectLabel("reject"), in)
	}
	if opts.Strict && rejected > 0 {
		return fmt.Errorf("%d of %d inputs rejected", rejected, len(inputs))
	}
	return nil
}
