// Package expr evaluates expressions over finite sets of integers.
//
//	stmt    = setexpr [("==" | "<=") setexpr] | int "in" setexpr | "card" "(" setexpr ")"
//	setexpr = term {("|" | "-") term}
//	term    = factor {"&" factor}
//	factor  = "{" [int {"," int}] "}" | "range" "(" int ")"
//	        | "insert" "(" int "," setexpr ")" | "erase" "(" int "," setexpr ")"
//	        | "image" "(" fn "," setexpr ")" | name | "(" setexpr ")"
//	int     = ["-"] digits
//
// "|" is union, "&" intersection, "-" difference, "<=" subset.
package expr

import (
	"fmt"
	"strconv"

	"github.com/mazzegi/log"

	"github.com/mazzegi/finset/errorx"
	"github.com/mazzegi/finset/finset"
	"github.com/mazzegi/finset/mathx"
)

// MaxRange bounds the argument of range(n).
const MaxRange = 1 << 20

// Funcs are the functions usable in image(fn, ...).
var Funcs = map[string]func(int) int{
	"id":   func(x int) int { return x },
	"sq":   func(x int) int { return x * x },
	"neg":  func(x int) int { return -x },
	"abs":  mathx.Abs[int],
	"inc":  func(x int) int { return x + 1 },
	"dec":  func(x int) int { return x - 1 },
	"half": func(x int) int { return x / 2 },
}

var keywords = map[string]bool{
	"in":     true,
	"card":   true,
	"range":  true,
	"insert": true,
	"erase":  true,
	"image":  true,
}

type parser struct {
	toks  []token
	pos   int
	scope Scope
}

func Eval(src string, scope Scope) (Result, error) {
	toks, err := lex(src)
	if err != nil {
		return Result{}, err
	}
	p := &parser{toks: toks, scope: scope}
	res, err := p.stmt()
	if err != nil {
		return Result{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return Result{}, p.errorf(t, "unexpected %s", t)
	}
	log.Debugf("eval %q => %s", src, res)
	return res, nil
}

// EvalAll evaluates every source. It returns the results of all statements
// and a joined error for those which failed; failed statements yield a
// Result of KindNone.
func EvalAll(srcs []string, scope Scope) ([]Result, error) {
	rs := make([]Result, len(srcs))
	g := errorx.NewGroup()
	for i, src := range srcs {
		r, err := Eval(src, scope)
		if err != nil {
			g.Append(fmt.Errorf("expr #%d: %w", i+1, err))
			continue
		}
		rs[i] = r
	}
	return rs, g.Error()
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isPunct(s string) bool {
	t := p.peek()
	return t.kind == tokPunct && t.text == s
}

func (p *parser) isIdent(s string) bool {
	t := p.peek()
	return t.kind == tokIdent && t.text == s
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return fmt.Errorf("%w at %d: %s", ErrSyntax, t.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expectPunct(s string) error {
	t := p.advance()
	if t.kind != tokPunct || t.text != s {
		return p.errorf(t, "expect %q, got %s", s, t)
	}
	return nil
}

func (p *parser) stmt() (Result, error) {
	switch {
	case p.peek().kind == tokInt || p.isPunct("-"):
		n, err := p.integer()
		if err != nil {
			return Result{}, err
		}
		if t := p.advance(); t.kind != tokIdent || t.text != "in" {
			return Result{}, p.errorf(t, "expect \"in\", got %s", t)
		}
		s, err := p.setexpr()
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindBool, Bool: s.Contains(n)}, nil
	case p.isIdent("card"):
		p.advance()
		s, err := p.parenthesized()
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindInt, Int: s.Card()}, nil
	}

	s, err := p.setexpr()
	if err != nil {
		return Result{}, err
	}
	switch {
	case p.isPunct("=="):
		p.advance()
		t, err := p.setexpr()
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindBool, Bool: s.Equal(t)}, nil
	case p.isPunct("<="):
		p.advance()
		t, err := p.setexpr()
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindBool, Bool: s.Subset(t)}, nil
	}
	return Result{Kind: KindSet, Set: s}, nil
}

func (p *parser) setexpr() (finset.Set[int], error) {
	s, err := p.term()
	if err != nil {
		return s, err
	}
	for p.isPunct("|") || p.isPunct("-") {
		op := p.advance()
		t, err := p.term()
		if err != nil {
			return s, err
		}
		if op.text == "|" {
			s = s.Union(t)
		} else {
			s = s.Difference(t)
		}
	}
	return s, nil
}

func (p *parser) term() (finset.Set[int], error) {
	s, err := p.factor()
	if err != nil {
		return s, err
	}
	for p.isPunct("&") {
		p.advance()
		t, err := p.factor()
		if err != nil {
			return s, err
		}
		s = s.Intersection(t)
	}
	return s, nil
}

func (p *parser) parenthesized() (finset.Set[int], error) {
	if err := p.expectPunct("("); err != nil {
		return finset.Set[int]{}, err
	}
	s, err := p.setexpr()
	if err != nil {
		return s, err
	}
	return s, p.expectPunct(")")
}

func (p *parser) factor() (finset.Set[int], error) {
	var none finset.Set[int]
	t := p.peek()
	switch {
	case p.isPunct("{"):
		return p.literal()
	case p.isPunct("("):
		return p.parenthesized()
	case t.kind != tokIdent:
		return none, p.errorf(t, "expect set, got %s", t)
	}

	p.advance()
	switch t.text {
	case "range":
		if err := p.expectPunct("("); err != nil {
			return none, err
		}
		nt := p.peek()
		n, err := p.integer()
		if err != nil {
			return none, err
		}
		if n > MaxRange {
			return none, p.errorf(nt, "range(%d) exceeds %d", n, MaxRange)
		}
		return finset.Range(n), p.expectPunct(")")
	case "insert", "erase":
		if err := p.expectPunct("("); err != nil {
			return none, err
		}
		n, err := p.integer()
		if err != nil {
			return none, err
		}
		if err := p.expectPunct(","); err != nil {
			return none, err
		}
		s, err := p.setexpr()
		if err != nil {
			return none, err
		}
		if err := p.expectPunct(")"); err != nil {
			return none, err
		}
		if t.text == "insert" {
			return s.Insert(n), nil
		}
		return s.Erase(n), nil
	case "image":
		if err := p.expectPunct("("); err != nil {
			return none, err
		}
		ft := p.advance()
		f, ok := Funcs[ft.text]
		if ft.kind != tokIdent || !ok {
			return none, fmt.Errorf("%w: function %s at %d", ErrUnknown, ft, ft.pos)
		}
		if err := p.expectPunct(","); err != nil {
			return none, err
		}
		s, err := p.setexpr()
		if err != nil {
			return none, err
		}
		return finset.Map(s, f), p.expectPunct(")")
	}
	if keywords[t.text] {
		return none, p.errorf(t, "unexpected keyword %s", t)
	}
	s, ok := p.scope[t.text]
	if !ok {
		return none, fmt.Errorf("%w: set %s at %d", ErrUnknown, t, t.pos)
	}
	return s, nil
}

func (p *parser) literal() (finset.Set[int], error) {
	var none finset.Set[int]
	if err := p.expectPunct("{"); err != nil {
		return none, err
	}
	var ns []int
	if p.isPunct("}") {
		p.advance()
		return finset.Of(ns...), nil
	}
	for {
		n, err := p.integer()
		if err != nil {
			return none, err
		}
		ns = append(ns, n)
		if p.isPunct(",") {
			p.advance()
			continue
		}
		if err := p.expectPunct("}"); err != nil {
			return none, err
		}
		return finset.Of(ns...), nil
	}
}

func (p *parser) integer() (int, error) {
	neg := false
	if p.isPunct("-") {
		p.advance()
		neg = true
	}
	t := p.advance()
	if t.kind != tokInt {
		return 0, p.errorf(t, "expect integer, got %s", t)
	}
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, p.errorf(t, "integer %s: %v", t, err)
	}
	if neg {
		n = -n
	}
	return n, nil
}
