package errorx

import (
	"strings"
)

// Group collects errors of independent steps, e.g. one per evaluated
// expression.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Error returns nil for an empty group, otherwise a single error joining all
// messages. The collected errors stay reachable for errors.Is.
func (g *Group) Error() error {
	if len(g.errs) == 0 {
		return nil
	}
	var sl []string
	for _, err := range g.errs {
		sl = append(sl, err.Error())
	}
	return &joined{msg: strings.Join(sl, " | "), errs: g.errs}
}

func (g *Group) IsEmpty() bool {
	return len(g.errs) == 0
}

func (g *Group) Len() int {
	return len(g.errs)
}

type joined struct {
	msg  string
	errs []error
}

func (j *joined) Error() string {
	return j.msg
}

func (j *joined) Unwrap() []error {
	return j.errs
}
