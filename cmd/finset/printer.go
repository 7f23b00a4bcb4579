package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mazzegi/finset/expr"
)

// printer writes command output, formatting numbers for a locale.
type printer struct {
	w io.Writer
	p *message.Printer
}

func newPrinter(w io.Writer, locale string) *printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &printer{w: w, p: message.NewPrinter(tag)}
}

func (p *printer) printf(format string, args ...any) {
	p.p.Fprintf(p.w, format, args...)
}

func (p *printer) result(r expr.Result) string {
	switch r.Kind {
	case expr.KindInt:
		return p.p.Sprintf("%d", r.Int)
	case expr.KindSet:
		return fmt.Sprintf("%s (card %s)", r, p.p.Sprintf("%d", r.Set.Card()))
	default:
		return r.String()
	}
}
