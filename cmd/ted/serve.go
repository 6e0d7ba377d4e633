package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/signadot/ted/export"
	"github.com/signadot/ted/parse"
	"github.com/signadot/ted/ted"
)

func runServe(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Parse(cc, args); err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, handleRequest)
	<-conn.Done()
	return nil
}

// diffParams are the "ted/diff" request parameters: two source texts.
type diffParams struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func handleRequest(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case "ted/diff":
		var params diffParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
		}
		edits, err := diffTexts(params.From, params.To)
		return reply(ctx, edits, err)
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

// diffTexts parses both texts and returns the diff as LSP text edits
// over the first.
func diffTexts(from, to string) ([]protocol.TextEdit, error) {
	fromTree, err := parse.Parse([]byte(from))
	if err != nil {
		return nil, err
	}
	toTree, err := parse.Parse([]byte(to))
	if err != nil {
		return nil, err
	}
	return export.TextEdits(fromTree, ted.Diff(fromTree, toTree)), nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
