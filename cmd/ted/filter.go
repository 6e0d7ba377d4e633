package main

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/ted/export"
)

// filterEntries keeps the entries for which the expression evaluates
// to true. The expression sees op, path, kind, old and new.
func filterEntries(src string, entries []export.Entry) ([]export.Entry, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	var res []export.Entry
	for _, e := range entries {
		env := map[string]any{
			"op":   e.Op,
			"path": e.Path,
			"kind": e.Kind,
			"old":  e.Old,
			"new":  e.New,
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", src, err)
		}
		if keep, ok := out.(bool); ok && keep {
			res = append(res, e)
		}
	}
	return res, nil
}
