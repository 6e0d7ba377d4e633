package export

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

func checkPatch(t *testing.T, from, to *syntax.Element) {
	t.Helper()
	patch, err := JSONPatch(from, ted.Diff(from, to))
	if err != nil {
		t.Fatalf("JSONPatch: %v", err)
	}
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		t.Fatalf("DecodePatch(%s): %v", patch, err)
	}
	doc, err := ToJSON(from)
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Apply(doc)
	if err != nil {
		t.Fatalf("Apply(%s): %v", patch, err)
	}
	want, err := ToJSON(to)
	if err != nil {
		t.Fatal(err)
	}
	var gotDoc, wantDoc any
	if err := json.Unmarshal(got, &gotDoc); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(want, &wantDoc); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantDoc, gotDoc); diff != "" {
		t.Errorf("patched document mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONPatchApplies(t *testing.T) {
	tests := []struct {
		name string
		from *syntax.Element
		to   *syntax.Element
	}{
		{
			"replace token",
			syntax.NewNode("block", tok("a")),
			syntax.NewNode("block", tok("z")),
		},
		{
			"delete",
			syntax.NewNode("block", tok("a"), tok("b")),
			syntax.NewNode("block", tok("b")),
		},
		{
			"insert after",
			syntax.NewNode("block", tok("a"), tok("c")),
			syntax.NewNode("block", tok("a"), tok("b"), tok("c")),
		},
		{
			"insert batch",
			syntax.NewNode("block", tok("a"), tok("b")),
			syntax.NewNode("block", tok("a"), tok("x"), tok("y"), tok("b")),
		},
		{
			"insert first",
			syntax.NewNode("block"),
			syntax.NewNode("block", tok("a"), tok("b")),
		},
		{
			"nested replace",
			syntax.NewNode("block", syntax.NewNode("call", tok("f"))),
			syntax.NewNode("block", syntax.NewNode("call", tok("g"))),
		},
		{
			"mixed edits",
			syntax.NewNode("block",
				tok("a"),
				syntax.NewNode("call", tok("f"), tok("x")),
				tok("b"),
				tok("c"),
			),
			syntax.NewNode("block",
				tok("a"),
				tok("n1"),
				syntax.NewNode("call", tok("g"), tok("x"), tok("y")),
				tok("c"),
				tok("n2"),
				tok("n3"),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkPatch(t, tt.from, tt.to)
		})
	}
}

func TestJSONPatchEmpty(t *testing.T) {
	tree := syntax.NewNode("block", tok("a"))
	patch, err := JSONPatch(tree, ted.Diff(tree, tree))
	if err != nil {
		t.Fatal(err)
	}
	if string(patch) != "[]" {
		t.Errorf("got %s for identical trees, want []", patch)
	}
}

func TestJSONPatchRootReplace(t *testing.T) {
	from := syntax.NewNode("block", tok("a"))
	to := syntax.NewNode("list", tok("a"))
	patch, err := JSONPatch(from, ted.Diff(from, to))
	if err != nil {
		t.Fatal(err)
	}
	var ops []patchOp
	if err := json.Unmarshal(patch, &ops); err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0].Op != "replace" || ops[0].Path != "" {
		t.Errorf("got %+v, want a single replace of the whole document", ops)
	}
}

func TestToJSONShape(t *testing.T) {
	tree := syntax.NewNode("call", tok("f"), syntax.NewNode("list"))
	data, err := ToJSON(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"call","children":[{"kind":"tok","text":"f"},{"kind":"list","children":[]}]}`
	if string(data) != want {
		t.Errorf("ToJSON = %s, want %s", data, want)
	}
}
