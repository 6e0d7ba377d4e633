// Package encode renders syntax trees back to source text.
//
// A lossless tree (trivia kept as tokens) is written exactly as its
// text. Trees built programmatically, without trivia, get a single
// separating space between adjacent atom tokens so the output lexes
// back to the same tree.
package encode

import (
	"io"

	"github.com/signadot/ted/parse"
	"github.com/signadot/ted/syntax"
)

type encState struct {
	colors *Colors
	w      io.Writer
	prev   *syntax.Element
	err    error
}

type Option func(*encState)

// WithColors colorizes token output.
func WithColors(c *Colors) Option {
	return func(es *encState) {
		es.colors = c
	}
}

// Encode writes the source text of el to w.
func Encode(el *syntax.Element, w io.Writer, opts ...Option) error {
	es := &encState{w: w}
	for _, opt := range opts {
		opt(es)
	}
	el.Visit(func(e *syntax.Element, isPost bool) bool {
		if es.err != nil || isPost || !e.IsToken() {
			return es.err == nil
		}
		es.token(e)
		return true
	})
	return es.err
}

func (es *encState) token(e *syntax.Element) {
	if sep := separator(es.prev, e); sep != "" {
		es.write(nil, sep)
	}
	es.write(e, e.TokenText())
	es.prev = e
}

func (es *encState) write(e *syntax.Element, s string) {
	if es.err != nil {
		return
	}
	if e != nil && es.colors != nil {
		s = es.colors.For(e.Kind())("%s", s)
	}
	_, es.err = io.WriteString(es.w, s)
}

// separator returns the text needed between prev and cur so they do
// not lex as one token when written adjacently.
func separator(prev, cur *syntax.Element) string {
	if prev == nil || cur.Kind() == parse.KindSpace {
		return ""
	}
	if prev.Kind() == parse.KindComment {
		// a comment runs to end of line
		return "\n"
	}
	if isAtom(prev.Kind()) && isAtom(cur.Kind()) {
		return " "
	}
	return ""
}

func isAtom(k syntax.Kind) bool {
	switch k {
	case parse.KindIdent, parse.KindNumber, parse.KindString:
		return true
	}
	return false
}
