// Package cli wires together the Cobra command tree for the csvcmp binary.
//
// It defines the root command and all subcommands (set, unified, extract,
// config, version), binds flags, reads configuration, runs the extraction
// and comparison, and returns deterministic exit codes for scripting.
package cli
