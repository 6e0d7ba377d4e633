package align

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func leaf(d string) *Node {
	return &Node{Discriminant: d}
}

func node(d string, children ...*Node) *Node {
	return &Node{Discriminant: d, Children: children}
}

func ops(edits []Edit) []Op {
	res := make([]Op, len(edits))
	for i, e := range edits {
		res[i] = e.Op
	}
	return res
}

func TestForests(t *testing.T) {
	tests := []struct {
		name     string
		from, to []*Node
		want     []Op
	}{
		{"empty forests", nil, nil, nil},
		{
			"identical",
			[]*Node{leaf("a"), leaf("b")},
			[]*Node{leaf("a"), leaf("b")},
			[]Op{OpReplace, OpReplace},
		},
		{
			"insert only",
			nil,
			[]*Node{leaf("a"), leaf("b")},
			[]Op{OpInsert, OpInsert},
		},
		{
			"remove only",
			[]*Node{leaf("a")},
			nil,
			[]Op{OpRemove},
		},
		{
			"insert in the middle",
			[]*Node{leaf("a"), leaf("b")},
			[]*Node{leaf("a"), leaf("x"), leaf("b")},
			[]Op{OpReplace, OpInsert, OpReplace},
		},
		{
			"different discriminants never pair",
			[]*Node{leaf("a")},
			[]*Node{leaf("b")},
			[]Op{OpRemove, OpInsert},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ops(Forests(tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Forests() ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForestsRecursesIntoPairs(t *testing.T) {
	from := []*Node{node("call", leaf("f"), leaf("x"))}
	to := []*Node{node("call", leaf("g"), leaf("x"))}

	edits := Forests(from, to)
	if len(edits) != 1 || edits[0].Op != OpReplace {
		t.Fatalf("got %v, want one replace", edits)
	}
	nested := ops(edits[0].Nested)
	want := []Op{OpRemove, OpInsert, OpReplace}
	if diff := cmp.Diff(want, nested); diff != "" {
		t.Errorf("nested ops mismatch (-want +got):\n%s", diff)
	}
}

func TestForestsShallowComparison(t *testing.T) {
	// pairing at one level ignores content below it; the difference
	// surfaces in the nested script instead
	from := []*Node{node("call", leaf("f"))}
	to := []*Node{node("call", leaf("g"))}

	edits := Forests(from, to)
	if len(edits) != 1 || edits[0].Op != OpReplace {
		t.Fatalf("got %v, want one replace at the outer level", edits)
	}
}
