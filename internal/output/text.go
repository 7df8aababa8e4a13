package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dshills/csvcmp/internal/compare"
)

// TextWriter outputs a git-style diff. Identical inputs produce no output.
type TextWriter struct {
	NoColor bool
}

func (t *TextWriter) Write(w io.Writer, report *compare.Report) error {
	ew := &errWriter{w: w}
	p := newPalette(t.NoColor)

	switch report.Mode {
	case compare.ModeUnified:
		writeUnified(ew, p, report)
	default:
		for _, v := range report.SrcOnly {
			ew.println(p.insert.Sprint("+ " + v))
		}
		for _, v := range report.DstOnly {
			ew.println(p.delete.Sprint("- " + v))
		}
	}

	return ew.err
}

func writeUnified(ew *errWriter, p palette, report *compare.Report) {
	if len(report.Hunks) == 0 {
		return
	}
	ew.println(p.title.Sprintf("diff a/%s b/%s", report.Src, report.Dst))
	ew.println(p.title.Sprintf("--- a/%s", report.Src))
	ew.println(p.title.Sprintf("+++ b/%s", report.Dst))
	for _, h := range report.Hunks {
		ew.println(p.hunk.Sprint(h.Header))
		for _, e := range h.Entries {
			line := e.Tag.Marker() + e.Text
			switch e.Tag {
			case compare.TagInsert:
				line = p.insert.Sprint(line)
			case compare.TagDelete:
				line = p.delete.Sprint(line)
			}
			ew.println(line)
		}
	}
}

type palette struct {
	title  *color.Color
	hunk   *color.Color
	insert *color.Color
	delete *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title:  color.New(color.Bold),
		hunk:   color.New(color.FgCyan),
		insert: color.New(color.FgGreen),
		delete: color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.hunk, p.insert, p.delete} {
			c.DisableColor()
		}
	}
	return p
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
