package compare

import (
	"fmt"
	"strings"
)

// MatchPolicy decides when an element counts as present in the other list.
type MatchPolicy string

const (
	// MatchExact requires an identical element.
	MatchExact MatchPolicy = "exact"
	// MatchContains accepts any element that contains the value as a
	// substring, so "some/path" is found in "x/some/path/y".
	MatchContains MatchPolicy = "contains"
)

// ParseMatchPolicy validates a policy name. The empty string selects
// MatchContains.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchContains:
		return MatchContains, nil
	case MatchExact:
		return MatchExact, nil
	default:
		return "", fmt.Errorf("unknown match policy %q (want exact or contains)", s)
	}
}

func (p MatchPolicy) normalize() MatchPolicy {
	if p == MatchExact {
		return MatchExact
	}
	return MatchContains
}

// SetDiff returns the elements of a that have no match in b, in the order of
// a. Duplicates in a are tested independently.
func SetDiff(a, b []string, policy MatchPolicy) []string {
	if policy.normalize() == MatchExact {
		return exactDiff(a, b)
	}
	return containsDiff(a, b)
}

func exactDiff(a, b []string) []string {
	present := make(map[string]struct{}, len(b))
	for _, v := range b {
		present[v] = struct{}{}
	}
	var out []string
	for _, v := range a {
		if _, ok := present[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

func containsDiff(a, b []string) []string {
	var out []string
	for _, v := range a {
		found := false
		for _, other := range b {
			if strings.Contains(other, v) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}
