package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/dshills/csvcmp/internal/compare"
)

func TestTextWriter_Set(t *testing.T) {
	report := compare.NewSetReport("a.csv", "b.csv",
		[]string{"r1", "r2", "r3"},
		[]string{"r2", "r3", "r4"},
		compare.MatchExact,
	)

	var buf bytes.Buffer
	w := &TextWriter{NoColor: true}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	want := "+ r1\n- r4\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextWriter_SetNoDifferences(t *testing.T) {
	report := compare.NewSetReport("a.csv", "b.csv",
		[]string{"x"}, []string{"x"}, compare.MatchExact)

	var buf bytes.Buffer
	w := &TextWriter{NoColor: true}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestTextWriter_Unified(t *testing.T) {
	report := compare.NewUnifiedReport("a.csv", "b.csv",
		[]string{"a", "b", "c"},
		[]string{"a", "x", "c"},
		compare.DefaultContext,
	)

	var buf bytes.Buffer
	w := &TextWriter{NoColor: true}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	want := strings.Join([]string{
		"diff a/a.csv b/b.csv",
		"--- a/a.csv",
		"+++ b/b.csv",
		"@@ -1,3 +1,3 @@",
		" a",
		"-b",
		"+x",
		" c",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextWriter_UnifiedIdentical(t *testing.T) {
	report := compare.NewUnifiedReport("a.csv", "b.csv",
		[]string{"a", "b"}, []string{"a", "b"}, compare.DefaultContext)

	var buf bytes.Buffer
	w := &TextWriter{NoColor: true}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestTextWriter_Colour(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })

	report := compare.NewSetReport("a.csv", "b.csv",
		[]string{"r1"}, []string{"r4"}, compare.MatchExact)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[32m+ r1") {
		t.Errorf("insert line should be green, got %q", out)
	}
	if !strings.Contains(out, "\x1b[31m- r4") {
		t.Errorf("delete line should be red, got %q", out)
	}

	buf.Reset()
	if err := (&TextWriter{NoColor: true}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("NoColor output contains escape codes: %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errTest }

func TestTextWriter_WriteError(t *testing.T) {
	report := compare.NewSetReport("a.csv", "b.csv",
		[]string{"r1", "r2"}, nil, compare.MatchExact)
	if err := (&TextWriter{NoColor: true}).Write(failWriter{}, report); err != errTest {
		t.Errorf("Write error = %v, want %v", err, errTest)
	}
}
