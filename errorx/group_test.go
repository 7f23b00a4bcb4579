package errorx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mazzegi/finset/testx"
)

var errBoom = errors.New("boom")

func TestGroup(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup(nil)
	tx.AssertTrue(g.IsEmpty())
	tx.AssertNoErr(g.Error())

	g.Append(fmt.Errorf("first: %w", errBoom), nil, errors.New("second"))
	tx.AssertEqual(2, g.Len())
	err := g.Error()
	tx.AssertErr(err)
	tx.AssertEqual("first: boom | second", err.Error())
	tx.AssertTrue(errors.Is(err, errBoom))
}

func TestReport(t *testing.T) {
	var sb strings.Builder
	report(&sb, errBoom, "/src/cmd/finset/main.go", 12)
	testx.AssertEqual(t, "ERROR (EXIT): boom - (main.go:12)\n", sb.String())
}
