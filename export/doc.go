// Package export lowers tree diffs into external representations:
// path-addressed entries and YAML reports, LSP text edits, and RFC
// 6902 JSON Patch over the tree's JSON projection.
package export
