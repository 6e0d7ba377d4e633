package syntax

import (
	"testing"
)

func TestText(t *testing.T) {
	tree := NewNode("source",
		NewToken("lparen", "("),
		NewToken("ident", "add"),
		NewToken("space", " "),
		NewNode("list",
			NewToken("lparen", "("),
			NewToken("number", "1"),
			NewToken("rparen", ")"),
		),
		NewToken("rparen", ")"),
	)
	want := "(add (1))"
	if got := tree.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got := tree.TextLen(); got != len(want) {
		t.Errorf("TextLen() = %d, want %d", got, len(want))
	}
}

func TestTokenAccess(t *testing.T) {
	token := NewToken("ident", "x")
	if !token.IsToken() {
		t.Errorf("token.IsToken() = false")
	}
	if token.TokenText() != "x" {
		t.Errorf("TokenText() = %q, want %q", token.TokenText(), "x")
	}
	if token.Children() != nil {
		t.Errorf("token has children")
	}

	node := NewNode("list", token)
	if node.IsToken() {
		t.Errorf("node.IsToken() = true")
	}
	if node.TokenText() != "" {
		t.Errorf("node.TokenText() = %q, want empty", node.TokenText())
	}
}

func TestNewNodeCopiesChildren(t *testing.T) {
	kids := []*Element{NewToken("ident", "a"), NewToken("ident", "b")}
	node := NewNode("list", kids...)
	kids[0] = NewToken("ident", "z")
	if node.Children()[0].TokenText() != "a" {
		t.Errorf("node children aliased the caller's slice")
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Element {
		return NewNode("block",
			NewToken("ident", "a"),
			NewNode("call", NewToken("ident", "f")),
		)
	}
	a, b := mk(), mk()
	if a == b {
		t.Fatal("separately built trees share identity")
	}
	if !Equal(a, b) {
		t.Errorf("Equal(a, b) = false for identical structure")
	}
	if !Equal(a, a) {
		t.Errorf("Equal(a, a) = false")
	}
	c := NewNode("block", NewToken("ident", "a"))
	if Equal(a, c) {
		t.Errorf("Equal(a, c) = true for different structure")
	}
	d := NewNode("block",
		NewToken("ident", "a"),
		NewNode("call", NewToken("ident", "g")),
	)
	if Equal(a, d) {
		t.Errorf("Equal(a, d) = true for different token text")
	}
}

func TestVisitOrder(t *testing.T) {
	tree := NewNode("a",
		NewToken("t", "1"),
		NewNode("b", NewToken("t", "2")),
	)
	var pre, post []string
	tree.Visit(func(e *Element, isPost bool) bool {
		label := string(e.Kind())
		if e.IsToken() {
			label = e.TokenText()
		}
		if isPost {
			post = append(post, label)
		} else {
			pre = append(pre, label)
		}
		return true
	})
	wantPre := []string{"a", "1", "b", "2"}
	wantPost := []string{"1", "2", "b", "a"}
	for i, w := range wantPre {
		if pre[i] != w {
			t.Errorf("pre[%d] = %q, want %q", i, pre[i], w)
		}
	}
	for i, w := range wantPost {
		if post[i] != w {
			t.Errorf("post[%d] = %q, want %q", i, post[i], w)
		}
	}
}

func TestSpans(t *testing.T) {
	one := NewToken("number", "1")
	list := NewNode("list",
		NewToken("lparen", "("),
		one,
		NewToken("rparen", ")"),
	)
	root := NewNode("source", NewToken("ident", "ab"), list)
	// text: "ab(1)"
	spans := Spans(root)
	if got := spans[root]; got != (Span{0, 5}) {
		t.Errorf("root span = %v, want {0 5}", got)
	}
	if got := spans[list]; got != (Span{2, 5}) {
		t.Errorf("list span = %v, want {2 5}", got)
	}
	if got := spans[one]; got != (Span{3, 4}) {
		t.Errorf("token span = %v, want {3 4}", got)
	}
}

func TestSpansEmptyNode(t *testing.T) {
	empty := NewNode("list")
	root := NewNode("source", NewToken("ident", "x"), empty)
	spans := Spans(root)
	if got := spans[empty]; got != (Span{1, 1}) {
		t.Errorf("empty node span = %v, want {1 1}", got)
	}
}

func TestPath(t *testing.T) {
	f := NewToken("ident", "f")
	call := NewNode("call", f)
	root := NewNode("source", NewToken("ident", "a"), call)

	if got, ok := Path(root, root); !ok || got != "$" {
		t.Errorf("Path(root, root) = %q, %v", got, ok)
	}
	if got, ok := Path(root, call); !ok || got != "$/call[1]" {
		t.Errorf("Path(root, call) = %q, %v", got, ok)
	}
	if got, ok := Path(root, f); !ok || got != "$/call[1]/ident[0]" {
		t.Errorf("Path(root, f) = %q, %v", got, ok)
	}
	if _, ok := Path(root, NewToken("ident", "zzz")); ok {
		t.Errorf("Path found an element not in the tree")
	}
}
