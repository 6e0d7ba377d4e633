package parse

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// errPos wraps ErrParse with 1-based line:column position derived
// from the byte offset.
func errPos(src []byte, off int, format string, args ...any) error {
	line, col := 1, 1
	for _, c := range src[:off] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Errorf("%w: %d:%d: %s", ErrParse, line, col, fmt.Sprintf(format, args...))
}
