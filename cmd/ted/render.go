package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ted/export"
)

func renderText(w io.Writer, entries []export.Entry, useColor, chars bool) error {
	red := sprintfOr(useColor, color.New(color.FgRed).SprintfFunc())
	green := sprintfOr(useColor, color.New(color.FgGreen).SprintfFunc())
	yellow := sprintfOr(useColor, color.New(color.FgYellow).SprintfFunc())
	for _, e := range entries {
		switch e.Op {
		case export.OpReplace:
			fmt.Fprintf(w, "%s %s (%s)\n", yellow("~"), e.Path, e.Kind)
			if chars {
				fmt.Fprintf(w, "  %s\n", charDiff(e.Old, e.New, red, green))
			} else {
				fmt.Fprintf(w, "  %s %s\n  %s %s\n", red("-"), e.Old, green("+"), e.New)
			}
		case export.OpDelete:
			fmt.Fprintf(w, "%s %s (%s) %s\n", red("-"), e.Path, e.Kind, e.Old)
		case export.OpInsertAfter:
			fmt.Fprintf(w, "%s after %s (%s) %s\n", green("+"), e.Path, e.Kind, e.New)
		case export.OpInsertFirst:
			fmt.Fprintf(w, "%s first in %s (%s) %s\n", green("+"), e.Path, e.Kind, e.New)
		}
	}
	return nil
}

// charDiff renders a character-level diff of the replaced text.
func charDiff(a, b string, red, green func(string, ...any) string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := ""
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			res += red("[-%s]", d.Text)
		case diffpatch.DiffInsert:
			res += green("[+%s]", d.Text)
		case diffpatch.DiffEqual:
			res += d.Text
		}
	}
	return res
}

func sprintfOr(useColor bool, f func(string, ...any) string) func(string, ...any) string {
	if useColor {
		return f
	}
	return fmt.Sprintf
}
