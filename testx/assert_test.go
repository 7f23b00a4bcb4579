package testx

import (
	"strings"
	"testing"
)

type mod3 int

func (m mod3) Equal(o mod3) bool {
	return m%3 == o%3
}

func TestAssertEqualer(t *testing.T) {
	AssertEqualer(t, mod3(1), mod3(4))
	AssertNotEqualer(t, mod3(1), mod3(5))
}

func TestChanges(t *testing.T) {
	type pair struct {
		A int    `diff:"A"`
		B string `diff:"B"`
	}
	out := changes(pair{A: 1, B: "x"}, pair{A: 2, B: "x"})
	AssertTrue(t, strings.Contains(out, "update A: 1 -> 2"))
	AssertEqual(t, "", changes(pair{A: 1}, pair{A: 1}))
}

func TestRunTests(t *testing.T) {
	var seen []int
	RunTests(t, []int{3, 4, 5}, func(tx *Tx, n int) {
		seen = append(seen, n)
	})
	AssertEqual(t, []int{3, 4, 5}, seen)
	AssertInRange(t, len(seen), 3, 3)
}
