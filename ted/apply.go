package ted

import (
	"github.com/signadot/ted/syntax"
)

// Apply returns the tree that results from applying d to from. The
// input tree is not modified: unchanged subtrees are shared between
// from and the result, changed nodes are rebuilt.
func Apply(from *syntax.Element, d *TreeDiff) *syntax.Element {
	ap := newApplier(d)
	if r, ok := ap.repl[from]; ok {
		return r
	}
	return ap.rebuild(from)
}

type applier struct {
	repl     map[*syntax.Element]*syntax.Element
	del      map[*syntax.Element]bool
	insAfter map[*syntax.Element][]*syntax.Element
	insFirst map[*syntax.Element][]*syntax.Element
}

func newApplier(d *TreeDiff) *applier {
	ap := &applier{
		repl:     make(map[*syntax.Element]*syntax.Element, len(d.Replacements)),
		del:      make(map[*syntax.Element]bool, len(d.Deletions)),
		insAfter: make(map[*syntax.Element][]*syntax.Element),
		insFirst: make(map[*syntax.Element][]*syntax.Element),
	}
	for _, r := range d.Replacements {
		ap.repl[r.Old] = r.New
	}
	for _, el := range d.Deletions {
		ap.del[el] = true
	}
	for _, ins := range d.Insertions {
		switch ins.Pos.Kind {
		case PosAfter:
			ap.insAfter[ins.Pos.El] = append(ap.insAfter[ins.Pos.El], ins.Elements...)
		case PosFirstChild:
			ap.insFirst[ins.Pos.El] = append(ap.insFirst[ins.Pos.El], ins.Elements...)
		}
	}
	return ap
}

func (ap *applier) rebuild(e *syntax.Element) *syntax.Element {
	if e.IsToken() {
		return e
	}
	kids := e.Children()
	out := make([]*syntax.Element, 0, len(kids))
	changed := false
	if first := ap.insFirst[e]; len(first) > 0 {
		out = append(out, first...)
		changed = true
	}
	for _, c := range kids {
		switch {
		case ap.del[c]:
			changed = true
		case ap.repl[c] != nil:
			out = append(out, ap.repl[c])
			changed = true
		default:
			rc := ap.rebuild(c)
			if rc != c {
				changed = true
			}
			out = append(out, rc)
		}
		if ins := ap.insAfter[c]; len(ins) > 0 {
			out = append(out, ins...)
			changed = true
		}
	}
	if !changed {
		return e
	}
	return syntax.NewNode(e.Kind(), out...)
}
