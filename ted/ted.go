package ted

import (
	"github.com/signadot/ted/align"
	"github.com/signadot/ted/debug"
	"github.com/signadot/ted/syntax"
)

// Edits aligns from and to as single-element forests and returns the
// normalized edit script transforming one into the other.
func Edits(from, to *syntax.Element) []TreeEdit {
	raw := align.Diff(project(from), project(to))
	edits := Normalize(raw)
	if debug.Edits() {
		debug.Logf("edits %s -> %s: %v\n", from.Kind(), to.Kind(), edits)
	}
	return edits
}

// project maps a syntax element to its comparison node: nodes carry
// their kind, tokens their literal text, every element weighs the
// same. The "n"/"t" prefixes keep node kinds and token texts in
// disjoint discriminant namespaces.
func project(e *syntax.Element) *align.Node {
	if e.IsToken() {
		return &align.Node{Discriminant: "t\x00" + e.TokenText()}
	}
	kids := e.Children()
	n := &align.Node{
		Discriminant: "n\x00" + string(e.Kind()),
		Children:     make([]*align.Node, len(kids)),
	}
	for i, c := range kids {
		n.Children[i] = project(c)
	}
	return n
}
