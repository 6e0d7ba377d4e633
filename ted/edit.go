package ted

import (
	"fmt"

	"github.com/signadot/ted/align"
)

// EditOp is the kind of a normalized tree edit.
type EditOp int

const (
	// EditSame leaves the element at this position unchanged; both
	// sequences advance.
	EditSame EditOp = iota
	// EditInsert inserts N consecutive right elements immediately
	// after the left element last consumed.
	EditInsert
	// EditInsertFirst inserts N consecutive right elements as the
	// first children of the current parent.
	EditInsertFirst
	// EditRemove deletes the next left element.
	EditRemove
	// EditReplace pairs the next left and right elements; Nested is
	// the normalized script for their children.
	EditReplace
	// EditRemoveInsert replaces the next left element wholesale by
	// the next right element.
	EditRemoveInsert
)

func (o EditOp) String() string {
	switch o {
	case EditSame:
		return "same"
	case EditInsert:
		return "insert"
	case EditInsertFirst:
		return "insert-first"
	case EditRemove:
		return "remove"
	case EditReplace:
		return "replace"
	case EditRemoveInsert:
		return "remove-insert"
	}
	return "unknown"
}

// TreeEdit is one step of a normalized edit script. Read left to
// right, a script consumes the left and right sibling sequences in
// lock-step, except that EditInsert and EditInsertFirst consume only
// the right sequence.
type TreeEdit struct {
	Op     EditOp
	N      int        // EditInsert, EditInsertFirst: number of right elements
	Nested []TreeEdit // EditReplace only
}

func (e TreeEdit) String() string {
	switch e.Op {
	case EditInsert, EditInsertFirst:
		return fmt.Sprintf("%s(%d)", e.Op, e.N)
	case EditReplace:
		return fmt.Sprintf("%s%v", e.Op, e.Nested)
	}
	return e.Op.String()
}

// Normalize rewrites a raw alignment script into a normalized edit
// script, recursing through nested replace scripts.
func Normalize(raw []align.Edit) []TreeEdit {
	edits := coalesceInserts(fuse(mapEdits(raw)))
	if len(edits) > 0 && edits[0].Op == EditInsert {
		// no left sibling exists yet to anchor an "after" position
		edits[0].Op = EditInsertFirst
	}
	return edits
}

// mapEdits translates raw edits one to one. A replace whose
// normalized nested script is empty or all-same pairs two subtrees
// that are structurally and textually identical, and collapses to
// same rather than reporting a no-op replacement.
func mapEdits(raw []align.Edit) []TreeEdit {
	res := make([]TreeEdit, 0, len(raw))
	for i := range raw {
		switch raw[i].Op {
		case align.OpInsert:
			res = append(res, TreeEdit{Op: EditInsert, N: 1})
		case align.OpRemove:
			res = append(res, TreeEdit{Op: EditRemove})
		case align.OpReplace:
			nested := Normalize(raw[i].Nested)
			if allSame(nested) {
				res = append(res, TreeEdit{Op: EditSame})
			} else {
				res = append(res, TreeEdit{Op: EditReplace, Nested: nested})
			}
		}
	}
	return res
}

func allSame(edits []TreeEdit) bool {
	for _, e := range edits {
		if e.Op != EditSame {
			return false
		}
	}
	return true
}

// fuse collapses an adjacent remove/insert pair, in either order,
// into a single remove-insert: a positional replacement rather than
// an independent delete plus insert. Pairs fuse left to right and a
// fused entry does not fuse again.
func fuse(edits []TreeEdit) []TreeEdit {
	res := make([]TreeEdit, 0, len(edits))
	for _, e := range edits {
		if n := len(res); n > 0 {
			a, b := res[n-1].Op, e.Op
			if (a == EditRemove && b == EditInsert) || (a == EditInsert && b == EditRemove) {
				res[n-1] = TreeEdit{Op: EditRemoveInsert}
				continue
			}
		}
		res = append(res, e)
	}
	return res
}

// coalesceInserts groups maximal runs of single insertions into one
// batched insertion; everything else passes through in order.
func coalesceInserts(edits []TreeEdit) []TreeEdit {
	res := make([]TreeEdit, 0, len(edits))
	for _, e := range edits {
		if e.Op == EditInsert {
			if n := len(res); n > 0 && res[n-1].Op == EditInsert {
				res[n-1].N += e.N
				continue
			}
		}
		res = append(res, e)
	}
	return res
}
