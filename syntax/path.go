package syntax

import (
	"fmt"
	"strings"
)

// Path returns a kinded path from root to target, such as
// "$/list[1]/ident[0]": each step is the child's kind and its index
// among its siblings. The root is "$". Returns "", false when target
// is not under root.
func Path(root, target *Element) (string, bool) {
	if root == target {
		return "$", true
	}
	var steps []string
	var find func(e *Element) bool
	find = func(e *Element) bool {
		for i, c := range e.Children() {
			if c == target || find(c) {
				steps = append(steps, fmt.Sprintf("%s[%d]", c.Kind(), i))
				return true
			}
		}
		return false
	}
	if !find(root) {
		return "", false
	}
	// steps were collected bottom-up
	var sb strings.Builder
	sb.WriteString("$")
	for i := len(steps) - 1; i >= 0; i-- {
		sb.WriteString("/")
		sb.WriteString(steps[i])
	}
	return sb.String(), true
}
