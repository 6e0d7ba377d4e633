package main

import (
	"github.com/scott-cotton/cli"
)

const usageText = `ted - structural diff for syntax trees

Usage:
  ted diff [opts] <from> <to>   Structurally diff two files
  ted fmt [opts] [file]         Parse and re-encode a file
  ted serve [opts]              Run the jsonrpc2 diff server on stdio

Examples:
  ted diff old.sx new.sx
  ted diff -o yaml old.sx new.sx
  ted diff -o json-patch old.sx new.sx
  ted diff -filter 'op == "replace" && kind == "ident"' old.sx new.sx
  ted fmt -color file.sx
  ted serve -gops`

// Root returns the root ted command.
func Root() *cli.Command {
	return cli.NewCommand("ted").
		WithSynopsis("ted - structural diff for syntax trees").
		WithDescription(usageText).
		WithSubs(
			DiffCommand(),
			FmtCommand(),
			ServeCommand(),
		)
}

type DiffConfig struct {
	*cli.Command
	Color  bool   `cli:"name=color desc='colorize output'"`
	Output string `cli:"name=o desc='output format: text, yaml, json-patch, edits'"`
	Filter string `cli:"name=filter desc='expr filter over diff entries'"`
	Chars  bool   `cli:"name=chars desc='character-level diff of replaced text'"`
}

func DiffCommand() *cli.Command {
	cfg := &DiffConfig{Output: "text"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <from> <to>").
		WithDescription("structurally diff two files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

type FmtConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='colorize output'"`
}

func FmtCommand() *cli.Command {
	cfg := &FmtConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [opts] [file]").
		WithDescription("parse a file (stdin by default) and re-encode it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runFmt(cfg, cc, args)
		})
}

type ServeConfig struct {
	*cli.Command
	Gops bool `cli:"name=gops desc='start gops diagnostics agent'"`
}

func ServeCommand() *cli.Command {
	cfg := &ServeConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "serve").
		WithSynopsis("serve [opts]").
		WithDescription("serve ted/diff requests over jsonrpc2 on stdio").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runServe(cfg, cc, args)
		})
}
