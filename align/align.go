package align

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ted/debug"
)

// Node is the comparison projection of a syntax element: a
// discriminant string and the projected children. Discriminants are
// opaque; equality of discriminants is the only notion of sameness
// at a given level.
type Node struct {
	Discriminant string
	Children     []*Node
}

// Op is the kind of a raw edit.
type Op int

const (
	// OpInsert inserts one element from the right sequence.
	OpInsert Op = iota
	// OpRemove removes one element from the left sequence.
	OpRemove
	// OpReplace pairs one left and one right element; Nested is the
	// script aligning the pair's children.
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpReplace:
		return "replace"
	}
	return "unknown"
}

// Edit is one step of a raw edit script. One Edit corresponds to one
// position in a sibling sequence.
type Edit struct {
	Op     Op
	Nested []Edit
}

// Diff aligns two roots, treating each as a single-element forest.
func Diff(from, to *Node) []Edit {
	return Forests([]*Node{from}, []*Node{to})
}

// Forests returns the edit script transforming the sibling sequence
// from into to. Two empty forests yield an empty script.
func Forests(from, to []*Node) []Edit {
	intern := map[string]rune{}
	fromRunes := internDiscriminants(intern, from)
	toRunes := internDiscriminants(intern, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	if debug.Align() {
		debug.Logf("align: %dx%d siblings, %d runs\n", len(from), len(to), len(diffs))
	}

	var edits []Edit
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				edits = append(edits, Edit{Op: OpRemove})
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				edits = append(edits, Edit{Op: OpInsert})
				ti++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				edits = append(edits, Edit{
					Op:     OpReplace,
					Nested: Forests(from[fi].Children, to[ti].Children),
				})
				fi++
				ti++
			}
		}
	}
	return edits
}

func internDiscriminants(m map[string]rune, forest []*Node) []rune {
	rs := make([]rune, len(forest))
	for i, n := range forest {
		r, ok := m[n.Discriminant]
		if !ok {
			r = rune(len(m))
			m[n.Discriminant] = r
		}
		rs[i] = r
	}
	return rs
}
