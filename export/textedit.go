package export

import (
	"sort"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

// TextEdits lowers d to LSP text edits over the source text of the
// original tree. Replacements and deletions cover the old element's
// span; insertions are zero-width at the anchor's end (or at the
// parent's start for first-child insertions). Positions are
// line/column with byte-offset columns.
func TextEdits(from *syntax.Element, d *ted.TreeDiff) []protocol.TextEdit {
	spans := syntax.Spans(from)
	lines := newLineIndex(from.Text())
	var edits []protocol.TextEdit
	for _, r := range d.Replacements {
		edits = append(edits, protocol.TextEdit{
			Range:   lines.rng(spans[r.Old]),
			NewText: r.New.Text(),
		})
	}
	for _, el := range d.Deletions {
		edits = append(edits, protocol.TextEdit{
			Range: lines.rng(spans[el]),
		})
	}
	for _, ins := range d.Insertions {
		sp := spans[ins.Pos.El]
		off := sp.End
		if ins.Pos.Kind == ted.PosFirstChild {
			off = sp.Start
		}
		var sb strings.Builder
		for _, el := range ins.Elements {
			sb.WriteString(el.Text())
		}
		edits = append(edits, protocol.TextEdit{
			Range:   lines.rng(syntax.Span{Start: off, End: off}),
			NewText: sb.String(),
		})
	}
	return edits
}

// lineIndex maps byte offsets to line/column positions.
type lineIndex struct {
	// starts[i] is the byte offset of line i
	starts []int
}

func newLineIndex(text string) *lineIndex {
	li := &lineIndex{starts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			li.starts = append(li.starts, i+1)
		}
	}
	return li
}

func (li *lineIndex) pos(off int) protocol.Position {
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > off
	}) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(off - li.starts[line]),
	}
}

func (li *lineIndex) rng(sp syntax.Span) protocol.Range {
	return protocol.Range{Start: li.pos(sp.Start), End: li.pos(sp.End)}
}
