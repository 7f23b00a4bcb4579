package finset_test

import (
	"math/rand/v2"
	"testing"

	"github.com/mazzegi/finset/finset"
	"github.com/mazzegi/finset/laws"
	"github.com/mazzegi/finset/mathx"
)

type mod7 struct{}

func (mod7) Equal(a, b int) bool { return ((a%7)+7)%7 == ((b%7)+7)%7 }

func randomSlices(r *rand.Rand, count, maxLen, span int) [][]int {
	ls := make([][]int, count)
	for i := range ls {
		n := r.IntN(maxLen + 1)
		for range n {
			ls[i] = append(ls[i], r.IntN(2*span+1)-span)
		}
	}
	return ls
}

func samples[E finset.Eq[int]](ls [][]int) []finset.Finset[int, E] {
	ss := []finset.Finset[int, E]{finset.Empty[int, E]()}
	for _, l := range ls {
		ss = append(ss, finset.FromSlice[int, E](l))
	}
	return ss
}

func reportViolations(t *testing.T, vs []laws.Violation) {
	t.Helper()
	for i, v := range vs {
		if i == 10 {
			t.Fatalf("... and %d more", len(vs)-i)
		}
		t.Errorf("%s", v)
	}
}

func TestLawsStd(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	ss := samples[finset.Std[int]](randomSlices(r, 8, 6, 5))
	elems := finset.Range(11).Values()
	for i := range elems {
		elems[i] -= 5
	}
	reportViolations(t, laws.Check(ss, elems))
	reportViolations(t, laws.CheckImage(ss, func(x int) int { return x * x }, mathx.Abs[int]))
	reportViolations(t, laws.CheckImage(ss, func(x int) int { return x / 2 }, func(x int) int { return x + 1 }))
}

func TestLawsCustomEquality(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	ss := samples[mod7](randomSlices(r, 6, 8, 20))
	reportViolations(t, laws.Check(ss, []int{-8, -1, 0, 3, 7, 10, 14}))
	reportViolations(t, laws.CheckImage(ss, func(x int) int { return x * 3 }, func(x int) int { return x + 7 }))
}

func TestRepresentationIndependence(t *testing.T) {
	witnesses := [][]int{
		{},
		{1},
		{1, 2, 3},
		{2, 3, 4},
		{5, 3, 1, 4},
	}
	reportViolations(t, laws.CheckRepresentation[int, finset.Std[int]](witnesses, laws.Shuffles))
}

func TestDifferentWitnesses(t *testing.T) {
	pairs := [][2][]int{
		{{1, 2}, {8, 16}},
		{{0, 3, 5}, {-7, 10, 12}},
		{{6}, {-1}},
		{{4, 11}, {-3}},
		{{}, {}},
	}
	triple := func(x int) int { return x * 3 }
	low := func(x int) bool { return ((x%7)+7)%7 < 3 }
	reportViolations(t, laws.CheckWitnesses[int, mod7](pairs, triple, low))
}

func TestRangeCardinality(t *testing.T) {
	for n := 0; n < 20; n++ {
		if c := finset.Range(n).Card(); c != n {
			t.Fatalf("card(range(%d)) = %d", n, c)
		}
	}
}
