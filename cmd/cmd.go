// Package cmd defines the command-line interface for courier.
package cmd

import (
	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("formats", contract.DefaultFormats, "Comma-separated list of accepted envelope format versions")
	rootCmd.PersistentFlags().Int("freshness", contract.DefaultFreshnessMonths, "Freshness window in calendar months")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("outbox", contract.DefaultOutboxPath, "Folder receiving signed payloads")
	rootCmd.PersistentFlags().String("registry", contract.DefaultRegistryPath, "Folder holding one registry value file per key")
	rootCmd.PersistentFlags().String("signing-key", "", "Signing key material (prefer COURIER_SIGNING_KEY)")
	rootCmd.PersistentFlags().String("key-id", contract.DefaultKeyID, "Identifier of the signing key")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
