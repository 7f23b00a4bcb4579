package expr

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokIdent
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

var puncts = []string{"==", "<=", "{", "}", "(", ")", ",", "|", "&", "-"}

func lex(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	i := 0
	// byte offsets for error positions
	offset := func(ri int) int {
		return len(string(rs[:ri]))
	}
next:
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}
			toks = append(toks, token{kind: tokInt, text: string(rs[start:i]), pos: offset(start)})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[start:i]), pos: offset(start)})
		default:
			for _, p := range puncts {
				if i+len(p) <= len(rs) && string(rs[i:i+len(p)]) == p {
					toks = append(toks, token{kind: tokPunct, text: p, pos: offset(i)})
					i += len(p)
					continue next
				}
			}
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, offset(i))
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}
