// Csvcmp compares one column of two CSV files.
//
// It extracts the chosen column from a source and a destination file,
// optionally keeps only values with a given prefix (stripping everything up
// to the first "/"), asks for confirmation, and prints either the set
// difference in both directions or a unified diff.
//
// Usage:
//
//	csvcmp set -s a.csv -d b.csv --src-index 2          # values missing on either side
//	csvcmp unified -s a.csv -d b.csv --src-index 2 -y   # unified diff, no prompt
//	csvcmp extract -s a.csv --src-index 2 -w key         # show the extracted column
//	csvcmp config show                                   # effective configuration
package main
