package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDiff_Exact(t *testing.T) {
	a := []string{"1", "2"}
	b := []string{"1", "3"}

	assert.Equal(t, []string{"2"}, SetDiff(a, b, MatchExact))
	assert.Equal(t, []string{"3"}, SetDiff(b, a, MatchExact))
}

func TestSetDiff_Contains(t *testing.T) {
	src := []string{"1", "1", "2"}
	dst := []string{"1", "1", "3"}

	assert.Equal(t, []string{"2"}, SetDiff(src, dst, MatchContains))
	assert.Equal(t, []string{"3"}, SetDiff(dst, src, MatchContains))
}

func TestSetDiff_ContainsMatchesSubstring(t *testing.T) {
	a := []string{"some/path", "other/path"}
	b := []string{"x/some/path/y"}

	assert.Equal(t, []string{"other/path"}, SetDiff(a, b, MatchContains))
	assert.Equal(t, []string{"some/path", "other/path"}, SetDiff(a, b, MatchExact))
	// Containment is not symmetric.
	assert.Equal(t, []string{"x/some/path/y"}, SetDiff(b, a, MatchContains))
}

func TestSetDiff_DuplicatesTestedIndependently(t *testing.T) {
	a := []string{"z", "a", "z"}
	b := []string{"a"}

	for _, policy := range []MatchPolicy{MatchExact, MatchContains} {
		assert.Equal(t, []string{"z", "z"}, SetDiff(a, b, policy), "policy %s", policy)
	}
}

func TestSetDiff_SelfIsEmpty(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"a", "b", "a"},
		{"dist/app.js", "dist/app.css", "README"},
	}
	for _, a := range inputs {
		for _, policy := range []MatchPolicy{MatchExact, MatchContains} {
			assert.Empty(t, SetDiff(a, a, policy), "SetDiff(%v, itself, %s)", a, policy)
		}
	}
}

func TestSetDiff_ExactPartition(t *testing.T) {
	a := []string{"a", "b", "c", "b", "d"}
	b := []string{"b", "d", "e"}

	diff := SetDiff(a, b, MatchExact)

	inB := make(map[string]bool)
	for _, v := range b {
		inB[v] = true
	}
	var matched []string
	for _, v := range a {
		if inB[v] {
			matched = append(matched, v)
		}
	}
	assert.Equal(t, len(a), len(diff)+len(matched))
	for _, v := range diff {
		assert.False(t, inB[v], "%q is in b but reported as missing", v)
	}
}

func TestSetDiff_EmptyOther(t *testing.T) {
	a := []string{"x", "y"}
	assert.Equal(t, a, SetDiff(a, nil, MatchExact))
	assert.Equal(t, a, SetDiff(a, nil, MatchContains))
}

func TestParseMatchPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchPolicy
		wantErr bool
	}{
		{"", MatchContains, false},
		{"contains", MatchContains, false},
		{"EXACT", MatchExact, false},
		{" exact ", MatchExact, false},
		{"fuzzy", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMatchPolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseMatchPolicy(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewSetReport(t *testing.T) {
	r := NewSetReport("a.csv", "b.csv", []string{"1", "2"}, []string{"1", "3"}, MatchExact)

	assert.Equal(t, ModeSet, r.Mode)
	assert.Equal(t, "exact", r.Match)
	assert.Equal(t, 2, r.SrcCount)
	assert.Equal(t, 2, r.DstCount)
	assert.Equal(t, []string{"2"}, r.SrcOnly)
	assert.Equal(t, []string{"3"}, r.DstOnly)
	assert.True(t, r.HasDifferences())

	same := NewSetReport("a.csv", "b.csv", []string{"1"}, []string{"1"}, "")
	assert.Equal(t, "contains", same.Match)
	assert.False(t, same.HasDifferences())
}
