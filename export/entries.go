package export

import (
	"strings"

	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

// Entry operations.
const (
	OpReplace     = "replace"
	OpDelete      = "delete"
	OpInsertAfter = "insert-after"
	OpInsertFirst = "insert-first"
)

// Entry is one diff edit in path-addressed form. Path and Kind
// describe the original tree element the edit is addressed to: the
// replaced or deleted element, or the insertion anchor.
type Entry struct {
	Op   string `yaml:"op" json:"op"`
	Path string `yaml:"path" json:"path"`
	Kind string `yaml:"kind" json:"kind"`
	Old  string `yaml:"old,omitempty" json:"old,omitempty"`
	New  string `yaml:"new,omitempty" json:"new,omitempty"`
}

// Entries flattens d into path-addressed entries, replacements first,
// then deletions, then insertions, each group in diff order.
func Entries(from *syntax.Element, d *ted.TreeDiff) []Entry {
	var entries []Entry
	path := func(el *syntax.Element) string {
		p, _ := syntax.Path(from, el)
		return p
	}
	for _, r := range d.Replacements {
		entries = append(entries, Entry{
			Op:   OpReplace,
			Path: path(r.Old),
			Kind: string(r.Old.Kind()),
			Old:  r.Old.Text(),
			New:  r.New.Text(),
		})
	}
	for _, el := range d.Deletions {
		entries = append(entries, Entry{
			Op:   OpDelete,
			Path: path(el),
			Kind: string(el.Kind()),
			Old:  el.Text(),
		})
	}
	for _, ins := range d.Insertions {
		op := OpInsertAfter
		if ins.Pos.Kind == ted.PosFirstChild {
			op = OpInsertFirst
		}
		var sb strings.Builder
		for _, el := range ins.Elements {
			sb.WriteString(el.Text())
		}
		entries = append(entries, Entry{
			Op:   op,
			Path: path(ins.Pos.El),
			Kind: string(ins.Pos.El.Kind()),
			New:  sb.String(),
		})
	}
	return entries
}
