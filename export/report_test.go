package export

import (
	"strings"
	"testing"

	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

func TestReportYAML(t *testing.T) {
	from := syntax.NewNode("block", tok("a"), tok("b"))
	to := syntax.NewNode("block", tok("a"), tok("z"))

	var buf strings.Builder
	if err := NewReport(from, ted.Diff(from, to)).EncodeYAML(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"edits:", "op: replace", "$/tok[1]", "old: b", "new: z"} {
		if !strings.Contains(out, want) {
			t.Errorf("report %q missing %q", out, want)
		}
	}
}

func TestReportYAMLEmpty(t *testing.T) {
	tree := syntax.NewNode("block", tok("a"))

	var buf strings.Builder
	if err := NewReport(tree, ted.Diff(tree, tree)).EncodeYAML(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "edits:") {
		t.Errorf("report %q missing edits key", buf.String())
	}
}
