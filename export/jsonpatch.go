package export

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

// jsonToken and jsonNode are the JSON projection of syntax elements.
// Nodes always carry a children array so JSON Pointer paths into
// empty nodes stay addressable.
type jsonToken struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type jsonNode struct {
	Kind     string `json:"kind"`
	Children []any  `json:"children"`
}

// ToJSON returns the JSON projection of a syntax tree.
func ToJSON(e *syntax.Element) ([]byte, error) {
	return json.Marshal(jsonTree(e))
}

func jsonTree(e *syntax.Element) any {
	if e.IsToken() {
		return jsonToken{Kind: string(e.Kind()), Text: e.TokenText()}
	}
	kids := e.Children()
	children := make([]any, len(kids))
	for i, c := range kids {
		children[i] = jsonTree(c)
	}
	return jsonNode{Kind: string(e.Kind()), Children: children}
}

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// JSONPatch lowers d to an RFC 6902 patch over ToJSON(from).
// Operations are emitted right to left within each parent so the
// index-based pointer paths stay valid as the patch is applied in
// order. The result round-trips through jsonpatch.DecodePatch for
// validation.
func JSONPatch(from *syntax.Element, d *ted.TreeDiff) ([]byte, error) {
	repl := make(map[*syntax.Element]*syntax.Element, len(d.Replacements))
	for _, r := range d.Replacements {
		repl[r.Old] = r.New
	}
	del := make(map[*syntax.Element]bool, len(d.Deletions))
	for _, el := range d.Deletions {
		del[el] = true
	}
	insAfter := make(map[*syntax.Element][]*syntax.Element)
	insFirst := make(map[*syntax.Element][]*syntax.Element)
	for _, ins := range d.Insertions {
		m := insAfter
		if ins.Pos.Kind == ted.PosFirstChild {
			m = insFirst
		}
		m[ins.Pos.El] = append(m[ins.Pos.El], ins.Elements...)
	}

	ops := []patchOp{}
	if r, ok := repl[from]; ok {
		ops = append(ops, patchOp{Op: "replace", Path: "", Value: jsonTree(r)})
	} else {
		var walk func(e *syntax.Element, path string)
		walk = func(e *syntax.Element, path string) {
			kids := e.Children()
			for i := len(kids) - 1; i >= 0; i-- {
				c := kids[i]
				cpath := fmt.Sprintf("%s/children/%d", path, i)
				if ins := insAfter[c]; len(ins) > 0 {
					addPath := fmt.Sprintf("%s/children/%d", path, i+1)
					for j := len(ins) - 1; j >= 0; j-- {
						ops = append(ops, patchOp{Op: "add", Path: addPath, Value: jsonTree(ins[j])})
					}
				}
				switch {
				case repl[c] != nil:
					ops = append(ops, patchOp{Op: "replace", Path: cpath, Value: jsonTree(repl[c])})
				case del[c]:
					ops = append(ops, patchOp{Op: "remove", Path: cpath})
				default:
					walk(c, cpath)
				}
			}
			if ins := insFirst[e]; len(ins) > 0 {
				addPath := path + "/children/0"
				for j := len(ins) - 1; j >= 0; j-- {
					ops = append(ops, patchOp{Op: "add", Path: addPath, Value: jsonTree(ins[j])})
				}
			}
		}
		walk(from, "")
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	if _, err := jsonpatch.DecodePatch(data); err != nil {
		return nil, fmt.Errorf("generated invalid patch: %w", err)
	}
	return data, nil
}
