package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thompson/internal/config"
)

// NewCheckCommand verifies every pattern of a suite file against its
// accept and reject examples.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <suite.yaml>",
		Short: "Verify a pattern suite's accept/reject examples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, opts *RootOptions, path string) error {
	suite, err := config.Load(path)
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, p := range suite.Patterns {
		problems, err := checkPattern(opts, p)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
		if len(problems) == 0 {
			fmt.Fprintf(out, "%s %s\n", acceptLabel("ok"), p.Name)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n", rejectLabel("FAIL"), p.Name)
		for _, msg := range problems {
			fmt.Fprintf(out, "    %s\n", msg)
		}
	}
	opts.Logger.Debug("suite checked", "path", path, "patterns", len(suite.Patterns), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d patterns failed", failed, len(suite.Patterns))
	}
	return nil
}

func checkPattern(opts *RootOptions, p config.Pattern) ([]string, error) {
	c, err := compile(opts.Logger, p.Expr)
	if err != nil {
		return nil, err
	}
	var problems []string
	for _, s := range p.Accept {
		if !c.dfa.Accepts(s) {
			problems = append(problems, fmt.Sprintf("should accept %q", s))
		}
	}
	for _, s := range p.Reject {
		if c.dfa.Accepts(s) {
			problems = append(problems, fmt.Sprintf("should reject %q", s))
		}
	}
	return problems, nil
}
