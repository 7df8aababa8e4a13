package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/csvcmp/internal/extract"
	"github.com/dshills/csvcmp/internal/output"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the extracted column of one CSV file",
	Long: "Print the values csvcmp would compare for --src, one per line, after " +
		"header skipping, prefix filtering and stripping.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fail(ExitUsageError, err)
			return
		}
		if err := validateIndex("src-index", flagSrcIndex); err != nil {
			fail(ExitUsageError, err)
			return
		}

		values, err := extract.File(flagSrc, extractOptions(cmd, cfg, flagSrcIndex))
		if err != nil {
			fail(ExitRuntimeError, err)
			return
		}
		if err := output.WriteValues(values, flagOut); err != nil {
			fail(ExitRuntimeError, fmt.Errorf("writing output: %w", err))
		}
	},
}

func init() {
	addExtractFlags(extractCmd)
}
