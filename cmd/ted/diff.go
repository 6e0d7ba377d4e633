package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ted/export"
	"github.com/signadot/ted/parse"
	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("diff expects two files, got %d args", len(args))
	}
	fromTree, err := parseFile(args[0])
	if err != nil {
		return err
	}
	toTree, err := parseFile(args[1])
	if err != nil {
		return err
	}
	d := ted.Diff(fromTree, toTree)

	switch cfg.Output {
	case "text", "yaml":
		entries := export.Entries(fromTree, d)
		if cfg.Filter != "" {
			entries, err = filterEntries(cfg.Filter, entries)
			if err != nil {
				return err
			}
		}
		if cfg.Output == "yaml" {
			return (&export.Report{Edits: entries}).EncodeYAML(cc.Out)
		}
		return renderText(cc.Out, entries, useColor(cfg.Color), cfg.Chars)
	case "json-patch":
		data, err := export.JSONPatch(fromTree, d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", data)
		return nil
	case "edits":
		edits := export.TextEdits(fromTree, d)
		data, err := json.MarshalIndent(edits, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", data)
		return nil
	}
	return fmt.Errorf("unknown output format %q", cfg.Output)
}

func parseFile(name string) (*syntax.Element, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	tree, err := parse.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tree, nil
}

func useColor(force bool) bool {
	return force || isatty.IsTerminal(os.Stdout.Fd())
}
