package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ted/encode"
	"github.com/signadot/ted/parse"
)

func runFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	var src []byte
	name := "<stdin>"
	switch len(args) {
	case 0:
		src, err = io.ReadAll(os.Stdin)
	case 1:
		name = args[0]
		src, err = os.ReadFile(name)
	default:
		return fmt.Errorf("fmt expects at most one file, got %d args", len(args))
	}
	if err != nil {
		return err
	}
	tree, err := parse.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var opts []encode.Option
	if useColor(cfg.Color) {
		opts = append(opts, encode.WithColors(encode.NewColors()))
	}
	if err := encode.Encode(tree, cc.Out, opts...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
