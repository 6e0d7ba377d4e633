package parse

import (
	"github.com/signadot/ted/syntax"
)

type tok struct {
	kind syntax.Kind
	text string
	off  int
}

func lex(src []byte) ([]tok, error) {
	var toks []tok
	i := 0
	emit := func(kind syntax.Kind, start int) {
		toks = append(toks, tok{kind: kind, text: string(src[start:i]), off: start})
	}
	for i < len(src) {
		start := i
		c := src[i]
		switch {
		case c == '(':
			i++
			emit(KindLParen, start)
		case c == ')':
			i++
			emit(KindRParen, start)
		case isSpace(c):
			for i < len(src) && isSpace(src[i]) {
				i++
			}
			emit(KindSpace, start)
		case c == ';':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			emit(KindComment, start)
		case c == '"':
			i++
			for {
				if i >= len(src) || src[i] == '\n' {
					return nil, errPos(src, start, "unterminated string")
				}
				if src[i] == '\\' {
					if i+1 >= len(src) {
						return nil, errPos(src, start, "unterminated string")
					}
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
			emit(KindString, start)
		case c >= '0' && c <= '9':
			for i < len(src) && !isDelim(src[i]) {
				i++
			}
			emit(KindNumber, start)
		default:
			for i < len(src) && !isDelim(src[i]) {
				i++
			}
			emit(KindIdent, start)
		}
	}
	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelim(c byte) bool {
	return c == '(' || c == ')' || c == ';' || c == '"' || isSpace(c)
}
