// Package compare computes differences between two extracted column lists.
//
// [SetDiff] reports the elements of one list that have no match in the other,
// under either exact or substring-containment matching. It is one-sided; a
// full report runs it in both directions (see [NewSetReport]).
//
// [Unified] computes a line diff over whole values and groups it into
// unified-diff hunks with a configurable number of context lines.
package compare
