package cmd

import (
	"github.com/NSBTW/courier/core"
	"github.com/NSBTW/courier/internal/contract"
	"github.com/spf13/cobra"
)

// formatsCmd displays the accepted formats and freshness window.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Show the accepted envelope formats and freshness window.",
	Long: `Display the validation configuration the dispatch pipeline applies.

This is a static display that does not read any items.`,
	PreRunE: resolveSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCourierFormats(cfg); err != nil {
			contract.LogFatal("Cannot show formats", err)
		}
	},
}
