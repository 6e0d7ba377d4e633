package debug

import (
	"fmt"
	"os"

	"github.com/signadot/ted/syntax"
)

// Logf writes a debug message to stderr. Arguments that are syntax
// elements are rendered as their source text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *syntax.Element:
			args[i] = Elem{x}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Elem wraps a syntax element for readable printing.
type Elem struct{ *syntax.Element }

func (e Elem) String() string {
	if e.Element == nil {
		return "<nil>"
	}
	if e.IsToken() {
		return fmt.Sprintf("%s(%q)", e.Kind(), e.TokenText())
	}
	return fmt.Sprintf("%s(%q)", e.Kind(), e.Text())
}
