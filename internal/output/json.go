package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/csvcmp/internal/compare"
)

// JSONWriter outputs the full report as indented JSON. Column values are
// written verbatim, so "&", "<" and ">" are not escaped.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *compare.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
