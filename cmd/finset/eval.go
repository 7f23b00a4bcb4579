package main

import (
	"github.com/spf13/cobra"

	"github.com/mazzegi/finset/expr"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate set expressions",
		Long: `Evaluate set expressions over integers.

Sets are written as literals {1, 2, 3}, range(n) or names from the config.
Operators: | union, & intersection, - difference.
Functions: insert(n, S), erase(n, S), image(fn, S) with fn one of
id, sq, neg, abs, inc, dec, half.
Statements: S, S == T, S <= T, n in S, card(S).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			rs, err := expr.EvalAll(args, s.scope)
			for i, r := range rs {
				if r.Kind == expr.KindNone {
					continue
				}
				s.out.printf("%s => %s\n", args[i], s.out.result(r))
			}
			return err
		},
	}
}
