package convert

import (
	"math"
	"testing"

	"github.com/mazzegi/finset/testx"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		v    any
		want int
		ok   bool
	}{
		{1, 1, true},
		{int64(-40), -40, true},
		{uint8(7), 7, true},
		{3.0, 3, true},
		{3.5, 0, false},
		{float32(2), 2, true},
		{" 12 ", 12, true},
		{"x", 0, false},
		{true, 0, false},
		{nil, 0, false},
		{uint(9), 9, true},
		{uint64(math.MaxUint64), 0, false},
		{uint64(math.MaxInt), math.MaxInt, true},
		{1e19, 0, false},
		{-1e19, 0, false},
		{math.Inf(1), 0, false},
		{math.NaN(), 0, false},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test struct {
		v    any
		want int
		ok   bool
	}) {
		n, ok := ToInt(test.v)
		tx.AssertEqual(test.ok, ok)
		tx.AssertEqual(test.want, n)
	})
}

func TestToInts(t *testing.T) {
	tx := testx.NewTx(t)
	ns, err := ToInts([]any{int64(1), "2", 3.0})
	tx.AssertNoErr(err)
	tx.AssertEqual([]int{1, 2, 3}, ns)

	_, err = ToInts([]any{int64(1), "two"})
	tx.AssertErr(err)
	tx.AssertEqual(`element 1: cannot convert "two" (string) to int`, err.Error())
}
