package testx

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/r3labs/diff/v3"
	"golang.org/x/exp/constraints"
)

// Equaler is implemented by value types that define their own equality,
// where reflect.DeepEqual would compare representations instead.
type Equaler[T any] interface {
	Equal(T) bool
}

func AssertEqual(t *testing.T, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	t.Fatalf("want %v, have %v%s", want, have, changes(want, have))
}

func AssertEqualer[T Equaler[T]](t *testing.T, want, have T) {
	t.Helper()
	if want.Equal(have) {
		return
	}
	t.Fatalf("want %v, have %v", want, have)
}

func AssertNotEqualer[T Equaler[T]](t *testing.T, v1, v2 T) {
	t.Helper()
	if !v1.Equal(v2) {
		return
	}
	t.Fatalf("expect %v and %v to differ", v1, v2)
}

func AssertTrue(t *testing.T, b bool) {
	t.Helper()
	if b {
		return
	}
	t.Fatalf("expect true; got false")
}

func AssertFalse(t *testing.T, b bool) {
	t.Helper()
	if !b {
		return
	}
	t.Fatalf("expect false; got true")
}

func AssertInRange[T constraints.Ordered](t *testing.T, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Fatalf("expect err; got none")
}

// changes renders the structural difference of want and have, or nothing if
// the values cannot be diffed.
func changes(want, have any) string {
	cl, err := diff.Diff(want, have)
	if err != nil || len(cl) == 0 {
		return ""
	}
	var sl []string
	for _, c := range cl {
		sl = append(sl, fmt.Sprintf("%s %s: %v -> %v", c.Type, strings.Join(c.Path, "."), c.From, c.To))
	}
	return "\n  " + strings.Join(sl, "\n  ")
}
