package testx

import (
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	AssertEqual(tx.t, want, have)
}

func (tx *Tx) AssertTrue(b bool) {
	tx.t.Helper()
	AssertTrue(tx.t, b)
}

func (tx *Tx) AssertFalse(b bool) {
	tx.t.Helper()
	AssertFalse(tx.t, b)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	AssertNoErr(tx.t, err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	AssertErr(tx.t, err)
}
