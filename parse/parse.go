// Package parse provides lossless parsing of s-expression source into
// syntax trees. Whitespace and comments are kept as trivia tokens, so
// the text of a parsed tree reproduces the input byte for byte.
package parse

import (
	"github.com/signadot/ted/syntax"
)

// Element kinds produced by this package. A list node takes the text
// of its head identifier as its kind, so "(call f x)" parses to a
// node of kind "call"; headless lists get KindList.
const (
	KindSource  syntax.Kind = "source"
	KindList    syntax.Kind = "list"
	KindLParen  syntax.Kind = "lparen"
	KindRParen  syntax.Kind = "rparen"
	KindIdent   syntax.Kind = "ident"
	KindNumber  syntax.Kind = "number"
	KindString  syntax.Kind = "string"
	KindSpace   syntax.Kind = "space"
	KindComment syntax.Kind = "comment"
)

// Parse parses src into a syntax tree rooted at a KindSource node.
func Parse(src []byte) (*syntax.Element, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	var items []*syntax.Element
	for p.i < len(p.toks) {
		if p.toks[p.i].kind == KindRParen {
			return nil, errPos(src, p.toks[p.i].off, "unbalanced %q", ")")
		}
		el, err := p.item()
		if err != nil {
			return nil, err
		}
		items = append(items, el)
	}
	return syntax.NewNode(KindSource, items...), nil
}

type parser struct {
	src  []byte
	toks []tok
	i    int
}

func (p *parser) item() (*syntax.Element, error) {
	t := p.toks[p.i]
	if t.kind == KindLParen {
		return p.list()
	}
	p.i++
	return syntax.NewToken(t.kind, t.text), nil
}

func (p *parser) list() (*syntax.Element, error) {
	open := p.toks[p.i]
	p.i++
	kids := []*syntax.Element{syntax.NewToken(KindLParen, open.text)}
	kind := KindList
	named := false
	for {
		if p.i >= len(p.toks) {
			return nil, errPos(p.src, open.off, "unterminated list")
		}
		if t := p.toks[p.i]; t.kind == KindRParen {
			kids = append(kids, syntax.NewToken(KindRParen, t.text))
			p.i++
			break
		}
		el, err := p.item()
		if err != nil {
			return nil, err
		}
		if !named && !isTrivia(el) {
			// the first significant child names the list's kind
			if el.IsToken() && el.Kind() == KindIdent {
				kind = syntax.Kind(el.TokenText())
			}
			named = true
		}
		kids = append(kids, el)
	}
	return syntax.NewNode(kind, kids...), nil
}

func isTrivia(el *syntax.Element) bool {
	return el.IsToken() && (el.Kind() == KindSpace || el.Kind() == KindComment)
}
