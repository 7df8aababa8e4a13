package compare

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of equal lines kept around each change.
const DefaultContext = 3

// Unified diffs a against b and groups the result into hunks with context
// lines of surrounding equal entries. A negative context selects
// DefaultContext. Identical inputs produce no hunks.
func Unified(a, b []string, context int) []Hunk {
	if context < 0 {
		context = DefaultContext
	}

	// Autojunk treats frequent lines as noise on long inputs, which makes
	// manifests with repeated values diff badly.
	m := difflib.NewMatcherWithJunk(a, b, false, nil)

	groups := m.GetGroupedOpCodes(context)
	hunks := make([]Hunk, 0, len(groups))
	for _, group := range groups {
		hunks = append(hunks, buildHunk(a, b, group))
	}
	return hunks
}

func buildHunk(a, b []string, group []difflib.OpCode) Hunk {
	first, last := group[0], group[len(group)-1]

	h := Hunk{
		OldLines: last.I2 - first.I1,
		NewLines: last.J2 - first.J1,
	}
	h.OldStart = rangeStart(first.I1, h.OldLines)
	h.NewStart = rangeStart(first.J1, h.NewLines)
	h.Header = fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)

	for _, op := range group {
		switch op.Tag {
		case 'e':
			h.Entries = appendEntries(h.Entries, TagEqual, a[op.I1:op.I2])
		case 'd':
			h.Entries = appendEntries(h.Entries, TagDelete, a[op.I1:op.I2])
		case 'i':
			h.Entries = appendEntries(h.Entries, TagInsert, b[op.J1:op.J2])
		case 'r':
			h.Entries = appendEntries(h.Entries, TagDelete, a[op.I1:op.I2])
			h.Entries = appendEntries(h.Entries, TagInsert, b[op.J1:op.J2])
		}
	}
	return h
}

// rangeStart converts a 0-based offset to the 1-based start line used in
// hunk headers. An empty range points at the line before it.
func rangeStart(offset, length int) int {
	if length == 0 {
		return offset
	}
	return offset + 1
}

func appendEntries(entries []Entry, tag Tag, lines []string) []Entry {
	for _, line := range lines {
		entries = append(entries, Entry{Tag: tag, Text: line})
	}
	return entries
}
