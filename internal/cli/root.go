package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/csvcmp/internal/config"
	"github.com/dshills/csvcmp/internal/logging"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitDifferences  = 1
	ExitUsageError   = 2
	ExitAborted      = 3
	ExitRuntimeError = 4
)

// Global flags
var (
	flagConfig    string
	flagVerbose   bool
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "csvcmp",
	Short: "Compare one column of two CSV files",
	Long: "csvcmp extracts a column from two CSV files, optionally filtered by a prefix, " +
		"and reports the difference as a set difference or a unified diff.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	exitCode = ExitSuccess
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// fail reports err on stderr and records the exit code.
func fail(code int, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = code
}

// overrideKeys maps flag names to config keys.
var overrideKeys = map[string]string{
	"format":       "format",
	"match":        "match",
	"context":      "context",
	"strict-index": "strict_index",
	"with-headers": "with_headers",
	"delimiter":    "delimiter",
	"no-color":     "no_color",
	"log-format":   "log.format",
}

// buildOverrides collects the config-backed flags the user actually set.
// Only flags whose Changed is set count; a reused FlagSet still lists
// flags from earlier parses in Visit.
func buildOverrides(fs *pflag.FlagSet) map[string]any {
	m := make(map[string]any)
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if key, ok := overrideKeys[f.Name]; ok {
			m[key] = f.Value.String()
		}
	})
	if flagVerbose {
		m["log.level"] = "debug"
	}
	return m
}

// loadConfig resolves the effective config for cmd and installs the logger.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig, buildOverrides(cmd.Flags()))
	if err != nil {
		return config.Config{}, err
	}
	logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print csvcmp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "csvcmp version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unifiedCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
