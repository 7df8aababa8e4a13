package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/csvcmp/internal/compare"
	"github.com/dshills/csvcmp/internal/config"
	"github.com/dshills/csvcmp/internal/confirm"
	"github.com/dshills/csvcmp/internal/extract"
	"github.com/dshills/csvcmp/internal/output"
)

// Shared extraction flags
var (
	flagSrc         string
	flagSrcIndex    int
	flagPrefix      string
	flagWithHeaders bool
	flagStrictIndex bool
	flagDelimiter   string
	flagFormat      string
	flagOut         string
	flagNoColor     bool
)

// Compare-only flags
var (
	flagDst      string
	flagDstIndex int
	flagYes      bool
	flagExitCode bool
	flagMatch    string
	flagContext  int
)

// newGate builds the confirmation gate used when --yes is absent.
var newGate = func() confirm.Gate { return confirm.NewPrompt() }

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagSrc, "src", "s", "", "Source CSV file")
	cmd.Flags().IntVar(&flagSrcIndex, "src-index", 0, "1-based column index in the source file")
	cmd.Flags().StringVarP(&flagPrefix, "with-prefix", "w", "", "Keep only values with this prefix and strip up to the first delimiter")
	cmd.Flags().BoolVar(&flagWithHeaders, "with-headers", false, "Treat the first row as a header and skip it")
	cmd.Flags().BoolVar(&flagStrictIndex, "strict-index", true, "Fail on rows shorter than the column index")
	cmd.Flags().StringVar(&flagDelimiter, "delimiter", "", "Separator used when stripping prefixed values (default \"/\")")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file path (default: stdout)")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("src-index")
}

func addCompareFlags(cmd *cobra.Command) {
	addExtractFlags(cmd)
	cmd.Flags().StringVarP(&flagDst, "dst", "d", "", "Destination CSV file")
	cmd.Flags().IntVar(&flagDstIndex, "dst-index", 0, "1-based column index in the destination file (default: --src-index)")
	cmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	cmd.Flags().BoolVar(&flagExitCode, "exit-code", false, "Exit with 1 when differences are found")
	_ = cmd.MarkFlagRequired("dst")
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Report values missing from either side",
	Long: "Print every source value with no match in the destination (+) and every " +
		"destination value with no match in the source (-).",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCompare(cmd, compare.ModeSet)
	},
}

var unifiedCmd = &cobra.Command{
	Use:   "unified",
	Short: "Print a unified diff of the two columns",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCompare(cmd, compare.ModeUnified)
	},
}

// extractOptions builds extraction options for one column from flags and config.
func extractOptions(cmd *cobra.Command, cfg config.Config, column int) extract.Options {
	return extract.Options{
		Column:      column,
		Prefix:      flagPrefix,
		PrefixSet:   cmd.Flags().Changed("with-prefix"),
		HasHeader:   cfg.WithHeaders,
		StrictIndex: cfg.StrictIndex,
		Delimiter:   cfg.Delimiter,
	}
}

func validateIndex(name string, index int) error {
	if index < 1 {
		return fmt.Errorf("--%s must be 1 or greater, got %d", name, index)
	}
	return nil
}

func runCompare(cmd *cobra.Command, mode compare.Mode) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(ExitUsageError, err)
		return
	}

	dstIndex := flagDstIndex
	if !cmd.Flags().Changed("dst-index") {
		dstIndex = flagSrcIndex
	}
	if err := validateIndex("src-index", flagSrcIndex); err != nil {
		fail(ExitUsageError, err)
		return
	}
	if err := validateIndex("dst-index", dstIndex); err != nil {
		fail(ExitUsageError, err)
		return
	}

	var policy compare.MatchPolicy
	if mode == compare.ModeSet {
		policy, err = compare.ParseMatchPolicy(cfg.Match)
		if err != nil {
			fail(ExitUsageError, err)
			return
		}
	}

	slog.Debug("comparing columns",
		"mode", mode,
		"src", flagSrc, "srcIndex", flagSrcIndex,
		"dst", flagDst, "dstIndex", dstIndex,
	)

	a, err := extract.File(flagSrc, extractOptions(cmd, cfg, flagSrcIndex))
	if err != nil {
		fail(ExitRuntimeError, err)
		return
	}
	b, err := extract.File(flagDst, extractOptions(cmd, cfg, dstIndex))
	if err != nil {
		fail(ExitRuntimeError, err)
		return
	}

	gate := confirm.Always(true)
	if !flagYes {
		gate = newGate()
	}
	if err := confirm.Check(gate, confirm.NewSummary(a, b)); err != nil {
		if errors.Is(err, confirm.ErrUserAborted) {
			fail(ExitAborted, err)
			return
		}
		fail(ExitRuntimeError, err)
		return
	}

	var report *compare.Report
	switch mode {
	case compare.ModeUnified:
		report = compare.NewUnifiedReport(flagSrc, flagDst, a, b, cfg.Context)
	default:
		report = compare.NewSetReport(flagSrc, flagDst, a, b, policy)
	}

	if err := output.WriteReport(report, cfg.Format, flagOut, cfg.NoColor); err != nil {
		fail(ExitRuntimeError, fmt.Errorf("writing output: %w", err))
		return
	}

	slog.Info("comparison complete",
		"srcOnly", len(report.SrcOnly),
		"dstOnly", len(report.DstOnly),
		"hunks", len(report.Hunks),
	)

	if flagExitCode && report.HasDifferences() {
		exitCode = ExitDifferences
	}
}

func init() {
	addCompareFlags(setCmd)
	addCompareFlags(unifiedCmd)

	// Set-specific flags
	setCmd.Flags().StringVar(&flagMatch, "match", "", "Match policy (exact, contains)")

	// Unified-specific flags
	unifiedCmd.Flags().IntVarP(&flagContext, "context", "U", 0, "Number of context lines around each change (default 3)")
}
