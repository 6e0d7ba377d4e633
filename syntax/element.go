package syntax

import "strings"

// Kind labels an element. Kinds are opaque to this package; two
// elements have the same label exactly when their kinds are equal.
type Kind string

// Element is a node or token in a syntax tree. The zero value is not
// a valid element; use NewNode and NewToken.
type Element struct {
	kind     Kind
	token    bool
	text     string
	children []*Element
}

// NewToken returns a token element with the given kind and literal text.
func NewToken(kind Kind, text string) *Element {
	return &Element{kind: kind, token: true, text: text}
}

// NewNode returns a node element with the given kind and children.
// The children slice is copied.
func NewNode(kind Kind, children ...*Element) *Element {
	kids := make([]*Element, len(children))
	copy(kids, children)
	return &Element{kind: kind, children: kids}
}

func (e *Element) Kind() Kind { return e.kind }

// IsToken reports whether e is a token. An element that is not a
// token is a node.
func (e *Element) IsToken() bool { return e.token }

// Children returns the ordered children of a node, nil for a token.
// Callers must not modify the returned slice.
func (e *Element) Children() []*Element { return e.children }

// TokenText returns the literal text of a token, "" for a node.
func (e *Element) TokenText() string {
	if e.token {
		return e.text
	}
	return ""
}

// Text returns the full text of the element: the literal text of a
// token, or the concatenation of the children's texts for a node.
func (e *Element) Text() string {
	if e.token {
		return e.text
	}
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	if e.token {
		sb.WriteString(e.text)
		return
	}
	for _, c := range e.children {
		c.writeText(sb)
	}
}

// TextLen returns len(e.Text()) without building the string.
func (e *Element) TextLen() int {
	if e.token {
		return len(e.text)
	}
	n := 0
	for _, c := range e.children {
		n += c.TextLen()
	}
	return n
}

// Visit walks the tree rooted at e in document order. f is called
// once before an element's children (isPost false) and once after
// (isPost true); returning false from the pre call skips the
// children.
func (e *Element) Visit(f func(e *Element, isPost bool) bool) {
	if f(e, false) {
		for _, c := range e.children {
			c.Visit(f)
		}
	}
	f(e, true)
}

// Equal reports deep structural and textual equality. It is
// independent of identity: two separately built trees with the same
// shape, kinds and token texts are Equal.
func Equal(a, b *Element) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.token != b.token {
		return false
	}
	if a.token {
		return a.text == b.text
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
