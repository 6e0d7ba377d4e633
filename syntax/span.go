package syntax

// Span is a half-open byte range [Start, End) into the text of the
// root the span was computed from.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Spans returns the byte span of every element under root, relative
// to root.Text(). A node's span covers all of its children; an empty
// node has a zero-width span at its position.
//
// An element shared between several positions of the tree keeps the
// span of its last occurrence; lossless parse trees have no such
// sharing.
func Spans(root *Element) map[*Element]Span {
	spans := make(map[*Element]Span)
	off := 0
	var walk func(e *Element)
	walk = func(e *Element) {
		start := off
		if e.token {
			off += len(e.text)
		} else {
			for _, c := range e.children {
				walk(c)
			}
		}
		spans[e] = Span{Start: start, End: off}
	}
	walk(root)
	return spans
}
