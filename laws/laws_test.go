package laws

import (
	"math"
	"strings"
	"testing"

	"github.com/mazzegi/finset/finset"
	"github.com/mazzegi/finset/testx"
)

// near is not transitive and therefore not a valid equality.
type near struct{}

func (near) Equal(a, b int) bool { return a-b <= 1 && b-a <= 1 }

func TestCheckHolds(t *testing.T) {
	ss := []finset.Set[int]{
		finset.Of[int](),
		finset.Of(1, 2),
		finset.Of(2, 3, 4),
		finset.Range(4),
	}
	vs := Check(ss, []int{0, 1, 2, 3, 4, 5})
	testx.AssertEqual(t, 0, len(vs))
	vs = CheckImage(ss, func(x int) int { return x % 2 }, func(x int) int { return -x })
	testx.AssertEqual(t, 0, len(vs))
}

func TestCheckDetectsBrokenEquality(t *testing.T) {
	ss := []finset.Finset[int, near]{
		finset.FromSlice[int, near]([]int{0, 2}),
	}
	// erasing 1 removes both 0 and 2
	vs := Check(ss, []int{1})
	testx.AssertTrue(t, len(vs) > 0)
	laws := map[string]bool{}
	for _, v := range vs {
		laws[v.Law] = true
	}
	testx.AssertTrue(t, laws["card-erase"])
}

func TestCheckRepresentationRejectsDuplicates(t *testing.T) {
	vs := CheckRepresentation[int, finset.Std[int]]([][]int{{1, 1}}, Shuffles)
	testx.AssertEqual(t, 1, len(vs))
	testx.AssertEqual(t, "nodup", vs[0].Law)
}

type caseless struct{}

func (caseless) Equal(a, b string) bool { return strings.EqualFold(a, b) }

func TestCheckWitnesses(t *testing.T) {
	pairs := [][2][]string{
		{{"Go", "rust"}, {"gO", "RUST"}},
		{{"zig"}, {"ZIG"}},
		{{}, {}},
	}
	short := func(s string) bool { return len(s) <= 2 }
	vs := CheckWitnesses[string, caseless](pairs, strings.ToLower, short)
	testx.AssertEqual(t, 0, len(vs))

	// both tell "rust" from "RUST"
	lower := func(s string) bool { return s == strings.ToLower(s) }
	mark := func(s string) string {
		if lower(s) {
			return s + "!"
		}
		return s
	}
	vs = CheckWitnesses[string, caseless](pairs, mark, lower)
	laws := map[string]bool{}
	for _, v := range vs {
		laws[v.Law] = true
	}
	testx.AssertTrue(t, laws["witness-image"])
	testx.AssertTrue(t, laws["witness-filter"])

	vs = CheckWitnesses[string, caseless]([][2][]string{{{"a"}, {"b"}}}, strings.ToLower, short)
	testx.AssertEqual(t, 1, len(vs))
	testx.AssertEqual(t, "witness", vs[0].Law)
}

func TestCheckDetectsNaN(t *testing.T) {
	ss := []finset.Set[float64]{
		finset.Of(1.0, math.NaN()),
	}
	vs := Check(ss, []float64{1})
	laws := map[string]bool{}
	for _, v := range vs {
		laws[v.Law] = true
	}
	testx.AssertTrue(t, laws["eq-refl"])
}

func TestShuffles(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(0, len(Shuffles(0)))
	tx.AssertEqual([][]int{{0}, {0}}, Shuffles(1))
	tx.AssertEqual([][]int{
		{0, 1, 2}, {2, 1, 0},
		{1, 2, 0}, {0, 2, 1},
		{2, 0, 1}, {1, 0, 2},
	}, Shuffles(3))
}
