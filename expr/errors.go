package expr

import "errors"

var (
	ErrSyntax  = errors.New("syntax error")
	ErrUnknown = errors.New("unknown name")
)
