// Command finset evaluates expressions over finite integer sets and checks
// the set algebra laws against configured samples.
//
//	finset eval '{1, 2} | {2, 3}' 'card(range(5))'
//	finset --config sets.toml check
package main

import (
	"github.com/mazzegi/finset/errorx"
)

func main() {
	errorx.ExitWhen(newRootCmd().Execute())
}
