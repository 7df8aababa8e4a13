package compare

// Mode names the kind of comparison a Report holds.
type Mode string

const (
	ModeSet     Mode = "set"
	ModeUnified Mode = "unified"
)

// Tag classifies a single diff entry.
type Tag string

const (
	TagEqual  Tag = "equal"
	TagInsert Tag = "insert"
	TagDelete Tag = "delete"
)

// Marker returns the unified-diff line prefix for the tag.
func (t Tag) Marker() string {
	switch t {
	case TagInsert:
		return "+"
	case TagDelete:
		return "-"
	default:
		return " "
	}
}

// Entry is one line of a hunk.
type Entry struct {
	Tag  Tag    `json:"tag" yaml:"tag"`
	Text string `json:"text" yaml:"text"`
}

// Hunk is a contiguous block of changes plus surrounding context.
type Hunk struct {
	Header   string  `json:"header" yaml:"header"`
	OldStart int     `json:"oldStart" yaml:"oldStart"`
	OldLines int     `json:"oldLines" yaml:"oldLines"`
	NewStart int     `json:"newStart" yaml:"newStart"`
	NewLines int     `json:"newLines" yaml:"newLines"`
	Entries  []Entry `json:"entries" yaml:"entries"`
}

// Report is the result of comparing a source and a destination column.
type Report struct {
	Mode     Mode     `json:"mode" yaml:"mode"`
	Src      string   `json:"src" yaml:"src"`
	Dst      string   `json:"dst" yaml:"dst"`
	SrcCount int      `json:"srcCount" yaml:"srcCount"`
	DstCount int      `json:"dstCount" yaml:"dstCount"`
	Match    string   `json:"match,omitempty" yaml:"match,omitempty"`
	SrcOnly  []string `json:"srcOnly,omitempty" yaml:"srcOnly,omitempty"`
	DstOnly  []string `json:"dstOnly,omitempty" yaml:"dstOnly,omitempty"`
	Hunks    []Hunk   `json:"hunks,omitempty" yaml:"hunks,omitempty"`
}

// HasDifferences reports whether the comparison found anything.
func (r *Report) HasDifferences() bool {
	return len(r.SrcOnly) > 0 || len(r.DstOnly) > 0 || len(r.Hunks) > 0
}

// NewSetReport runs SetDiff in both directions.
func NewSetReport(src, dst string, a, b []string, policy MatchPolicy) *Report {
	return &Report{
		Mode:     ModeSet,
		Src:      src,
		Dst:      dst,
		SrcCount: len(a),
		DstCount: len(b),
		Match:    string(policy.normalize()),
		SrcOnly:  SetDiff(a, b, policy),
		DstOnly:  SetDiff(b, a, policy),
	}
}

// NewUnifiedReport diffs a against b with the given context radius.
func NewUnifiedReport(src, dst string, a, b []string, context int) *Report {
	return &Report{
		Mode:     ModeUnified,
		Src:      src,
		Dst:      dst,
		SrcCount: len(a),
		DstCount: len(b),
		Hunks:    Unified(a, b, context),
	}
}
