package export

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ted/syntax"
	"github.com/signadot/ted/ted"
)

// Report is a serializable summary of a diff.
type Report struct {
	Edits []Entry `yaml:"edits" json:"edits"`
}

// NewReport builds a report from d over the original tree.
func NewReport(from *syntax.Element, d *ted.TreeDiff) *Report {
	return &Report{Edits: Entries(from, d)}
}

// EncodeYAML writes the report as YAML.
func (r *Report) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}
