package main

import (
	"fmt"

	"github.com/mazzegi/log"
	"github.com/spf13/cobra"

	"github.com/mazzegi/finset/expr"
	"github.com/mazzegi/finset/finset"
	"github.com/mazzegi/finset/laws"
	"github.com/mazzegi/finset/maps"
)

func newCheckCmd(opts *options) *cobra.Command {
	var imageFns []string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the set algebra laws on the configured sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if len(imageFns) != 2 {
				return fmt.Errorf("--image needs two functions, got %d", len(imageFns))
			}
			f, g := expr.Funcs[imageFns[0]], expr.Funcs[imageFns[1]]
			if f == nil || g == nil {
				return fmt.Errorf("%w: image functions %v", expr.ErrUnknown, imageFns)
			}

			samples := checkSamples(s.cfg.Sets)
			elems := s.cfg.Elements
			if len(elems) == 0 {
				elems = probeElements(samples)
			}
			log.Infof("checking laws on %d samples with %d elements", len(samples), len(elems))

			vs := laws.Check(samples, elems)
			vs = append(vs, laws.CheckImage(samples, f, g)...)
			witnesses := make([][]int, len(samples))
			for i, sm := range samples {
				witnesses[i] = sm.Values()
			}
			vs = append(vs, laws.CheckRepresentation[int, finset.Std[int]](witnesses, laws.Shuffles)...)

			for _, v := range vs {
				s.out.printf("violation: %s\n", v)
			}
			if len(vs) > 0 {
				return fmt.Errorf("%d law violations", len(vs))
			}
			s.out.printf("%d samples, %d elements: all laws hold\n", len(samples), len(elems))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&imageFns, "image", []string{"sq", "inc"}, "Two image functions for the functor laws")
	return cmd
}

// checkSamples returns the configured sets in name order, preceded by a few
// small ranges.
func checkSamples(sets map[string][]int) []finset.Set[int] {
	samples := []finset.Set[int]{
		finset.Range(0),
		finset.Range(1),
		finset.Range(3),
	}
	for _, name := range maps.OrderedKeys(sets) {
		samples = append(samples, finset.Of(sets[name]...))
	}
	return samples
}

// probeElements returns every member of the samples plus one value below
// and one above all of them.
func probeElements(samples []finset.Set[int]) []int {
	var all finset.Set[int]
	for _, sm := range samples {
		all = all.Union(sm)
	}
	vs := finset.Sorted(all)
	if len(vs) == 0 {
		return []int{0}
	}
	return append(append([]int{vs[0] - 1}, vs...), vs[len(vs)-1]+1)
}
