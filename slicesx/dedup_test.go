package slicesx

import (
	"testing"

	"github.com/mazzegi/finset/testx"
)

func eqInt(a, b int) bool { return a == b }

func TestDedup(t *testing.T) {
	tests := map[string]struct {
		in  []int
		exp []int
	}{
		"empty":        {in: []int{}, exp: []int{}},
		"no_dups":      {in: []int{1, 2, 3}, exp: []int{1, 2, 3}},
		"first_wins":   {in: []int{3, 1, 2, 1, 3}, exp: []int{3, 1, 2}},
		"all_the_same": {in: []int{7, 7, 7}, exp: []int{7}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			testx.AssertEqual(t, test.exp, Dedup(test.in))
			testx.AssertEqual(t, test.exp, DedupFunc(test.in, eqInt))
		})
	}
}

func TestDedupFuncOracle(t *testing.T) {
	// equal modulo 10
	mod := func(a, b int) bool { return a%10 == b%10 }
	res := DedupFunc([]int{1, 11, 2, 21, 12, 3}, mod)
	testx.AssertEqual(t, []int{1, 2, 3}, res)
}

func TestNodup(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertTrue(IsNodupFunc([]int{}, eqInt))
	tx.AssertTrue(IsNodupFunc([]int{4, 2, 9}, eqInt))
	tx.AssertFalse(IsNodupFunc([]int{4, 2, 4}, eqInt))

	i, j, ok := DuplicateFunc([]int{5, 1, 2, 1, 5}, eqInt)
	tx.AssertTrue(ok)
	tx.AssertEqual(1, i)
	tx.AssertEqual(3, j)

	_, _, ok = DuplicateFunc([]int{1, 2}, eqInt)
	tx.AssertFalse(ok)
}
