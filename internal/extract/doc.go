// Package extract pulls a single column out of a CSV source.
//
// Rows are read with encoding/csv and may have differing field counts. The
// column is addressed by a 1-based index. When a prefix is set, only values
// starting with it are kept and each kept value is cut after the first
// delimiter (see [Strip]). Rows that are too short for the column either
// abort the extraction with [ErrIndexNotFound] or are skipped, depending on
// [Options.StrictIndex].
package extract
