package main

import (
	"github.com/spf13/cobra"

	"github.com/mazzegi/finset/expr"
	"github.com/mazzegi/finset/maps"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the named sets of the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			for _, name := range maps.OrderedKeys(s.scope) {
				r := expr.Result{Kind: expr.KindSet, Set: s.scope[name]}
				s.out.printf("%s = %s\n", name, s.out.result(r))
			}
			return nil
		},
	}
}
