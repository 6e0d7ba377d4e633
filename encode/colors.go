package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/signadot/ted/parse"
	"github.com/signadot/ted/syntax"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[syntax.Kind]func(string, ...any) string
}

// For returns the formatting function for token kind k.
func (c *Colors) For(k syntax.Kind) func(string, ...any) string {
	if f, ok := c.Map[k]; ok {
		return f
	}
	return c.Default
}

// NewColors returns the default color scheme for token kinds.
func NewColors() *Colors {
	return &Colors{
		Default: noColor,
		Map: map[syntax.Kind]func(string, ...any) string{
			parse.KindLParen:  color.RGB(255, 0, 196).SprintfFunc(),
			parse.KindRParen:  color.RGB(255, 0, 196).SprintfFunc(),
			parse.KindIdent:   color.RGB(128, 168, 196).SprintfFunc(),
			parse.KindNumber:  color.RGB(128, 216, 236).SprintfFunc(),
			parse.KindString:  color.RGB(8, 196, 16).SprintfFunc(),
			parse.KindComment: color.BlueString,
		},
	}
}

func noColor(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
