package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/csvcmp/internal/compare"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *compare.Report) error
}

// GetWriter returns a writer for the specified format. noColor only affects text.
func GetWriter(format string, noColor bool) (Writer, error) {
	switch format {
	case "", "text":
		return &TextWriter{NoColor: noColor}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml":
		return &YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
// Files never receive colour codes.
func WriteReport(report *compare.Report, format, outPath string, noColor bool) error {
	writer, err := GetWriter(format, noColor || outPath != "")
	if err != nil {
		return err
	}
	return toDestination(outPath, func(w io.Writer) error {
		return writer.Write(w, report)
	})
}

// WriteValues writes one value per line to the specified output.
func WriteValues(values []string, outPath string) error {
	return toDestination(outPath, func(w io.Writer) error {
		ew := &errWriter{w: w}
		for _, v := range values {
			ew.println(v)
		}
		return ew.err
	})
}

func toDestination(outPath string, write func(io.Writer) error) error {
	if outPath == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
