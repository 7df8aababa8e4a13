// Package output formats comparison reports for display or machine consumption.
//
// Three formats are supported:
//   - text: git-style terminal output, coloured when stdout is a terminal (default)
//   - json: the full [compare.Report]
//   - yaml: the same structure as yaml
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*compare.Report]. [WriteReport]
// handles destination selection.
package output
