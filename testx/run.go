package testx

import (
	"fmt"
	"testing"
)

func Name(i int) string {
	return fmt.Sprintf("test_%03d", i)
}

// RunTests runs every test case as a named subtest.
func RunTests[TEST any](t *testing.T, tests []TEST, runFnc func(tx *Tx, test TEST)) {
	t.Helper()
	for i, test := range tests {
		t.Run(Name(i), func(t *testing.T) {
			runFnc(NewTx(t), test)
		})
	}
}
