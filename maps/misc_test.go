package maps

import (
	"testing"

	"github.com/mazzegi/finset/testx"
)

func TestOrderedKeys(t *testing.T) {
	m := map[string][]int{"b": nil, "a": {1}, "c": {2}}
	testx.AssertEqual(t, []string{"a", "b", "c"}, OrderedKeys(m))
	testx.AssertEqual(t, []int{}, OrderedKeys(map[int]bool{}))
}
