package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Align bool
	Edits bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Align = boolEnv("TED_DEBUG_ALIGN")
	d.Edits = boolEnv("TED_DEBUG_EDITS")
	d.Diff = boolEnv("TED_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Align() bool {
	return d.Align
}
func Edits() bool {
	return d.Edits
}
func Diff() bool {
	return d.Diff
}
