package ted

import (
	"github.com/signadot/ted/debug"
	"github.com/signadot/ted/syntax"
)

// PosKind discriminates the two kinds of insertion position.
type PosKind int

const (
	// PosAfter inserts immediately after a sibling element.
	PosAfter PosKind = iota
	// PosFirstChild inserts as the first children of a parent element.
	PosFirstChild
)

func (k PosKind) String() string {
	if k == PosFirstChild {
		return "as-first-child"
	}
	return "after"
}

// InsertPos anchors a batch of inserted elements to an element that
// exists in the original tree: either immediately after a sibling, or
// as the first children of a parent. Anchors never reference target
// tree elements or other insertions.
type InsertPos struct {
	Kind PosKind
	El   *syntax.Element
}

// Replacement substitutes New, a target tree element, for Old, an
// original tree element, along with Old's whole subtree.
type Replacement struct {
	Old *syntax.Element
	New *syntax.Element
}

// Insertion places Elements, in order, at Pos.
type Insertion struct {
	Pos      InsertPos
	Elements []*syntax.Element
}

// TreeDiff is a structural diff between two trees. Replacements keys
// are unique: each original element is replaced at most once.
// Deletions are in left-to-right document order. The slices preserve
// insertion order.
type TreeDiff struct {
	Replacements []Replacement
	Deletions    []*syntax.Element
	Insertions   []Insertion
}

// IsEmpty reports whether the diff records no changes.
func (d *TreeDiff) IsEmpty() bool {
	return len(d.Replacements) == 0 && len(d.Deletions) == 0 && len(d.Insertions) == 0
}

// Diff finds a fine-grained diff which, applied to from, results in
// to. It is a total function over well-formed trees; diffing a tree
// against itself yields an empty diff.
func Diff(from, to *syntax.Element) *TreeDiff {
	d := &TreeDiff{}
	buildDiff(d, Edits(from, to), nil,
		[]*syntax.Element{from}, []*syntax.Element{to})
	if debug.Diff() {
		debug.Logf("diff: %d replacements, %d deletions, %d insertions\n",
			len(d.Replacements), len(d.Deletions), len(d.Insertions))
	}
	return d
}

// buildDiff walks one level of the normalized script in lock-step
// with the left and right child sequences, maintaining the most
// recently consumed left element as the insertion anchor, and
// recursing through replace entries. A script that over-consumes
// either sequence is a contract breach with the aligner and panics.
func buildDiff(d *TreeDiff, edits []TreeEdit, parent *syntax.Element, left, right []*syntax.Element) {
	var current *syntax.Element
	li, ri := 0, 0

	takeRight := func(n int) []*syntax.Element {
		// tolerate exhaustion here: take what remains
		if rem := len(right) - ri; n > rem {
			n = rem
		}
		els := right[ri : ri+n]
		ri += n
		return els
	}

	for i := range edits {
		e := &edits[i]
		switch e.Op {
		case EditSame:
			current = left[li]
			li++
			ri++
		case EditRemoveInsert:
			current = left[li]
			li++
			d.Replacements = append(d.Replacements, Replacement{Old: current, New: right[ri]})
			ri++
		case EditRemove:
			current = left[li]
			li++
			d.Deletions = append(d.Deletions, current)
		case EditInsert:
			if current == nil {
				panic("ted: insertion with no left anchor")
			}
			d.Insertions = append(d.Insertions, Insertion{
				Pos:      InsertPos{Kind: PosAfter, El: current},
				Elements: takeRight(e.N),
			})
		case EditInsertFirst:
			if parent == nil {
				panic("ted: insert-first with no parent context")
			}
			d.Insertions = append(d.Insertions, Insertion{
				Pos:      InsertPos{Kind: PosFirstChild, El: parent},
				Elements: takeRight(e.N),
			})
		case EditReplace:
			current = left[li]
			li++
			rightEl := right[ri]
			ri++
			buildDiff(d, e.Nested, current, current.Children(), rightEl.Children())
		}
	}
}
