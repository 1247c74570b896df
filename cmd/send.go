package cmd

import (
	"github.com/NSBTW/courier/core"
	"github.com/NSBTW/courier/internal/contract"
	"github.com/spf13/cobra"
)

// sendCmd runs the batch dispatch pipeline.
var sendCmd = &cobra.Command{
	Use:   "send [items-path]",
	Short: "Validate, sign, and dispatch every item in a folder.",
	Long: `Run every *.json item in a folder through the dispatch pipeline.

Each item passes four gates independently:
- Recognition of the JSON envelope (format, created, body)
- Format version allow-list check
- Freshness window check against the creation timestamp
- Signing and delivery into the outbox folder

A failing item is skipped; it never aborts the rest of the batch. The command
exits non-zero when any item was skipped, so it can gate CI pipelines.

Examples:
  # Dispatch the items in ./inbox using the default settings
  courier send ./inbox

  # Accept only version 4.0 envelopes and allow three months of age
  courier send ./inbox --formats 4.0 --freshness 3

  # Export the dispatch report for tracking
  courier send ./inbox --output parquet --output-file report.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCourierSend(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot dispatch batch", err)
		}
	},
}
