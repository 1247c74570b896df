package cmd

import (
	"github.com/NSBTW/courier/core"
	"github.com/NSBTW/courier/internal/contract"
	"github.com/spf13/cobra"
)

// resolveCmd resolves registry keys through the memoizing cache.
var resolveCmd = &cobra.Command{
	Use:   "resolve <key> [<key>...]",
	Short: "Resolve registry keys through the lookup cache.",
	Long: `Resolve one or more keys against the registry folder.

Lookups go through an in-memory memoization layer: repeated keys within one
invocation hit the registry at most once. An unresolved key is retried on
every request; a resolved key, even one with an empty value, is served from
the cache.

Examples:
  # Resolve a single key
  courier resolve TheDress

  # Resolve several keys in one pass
  courier resolve alpha beta alpha --registry ./registry`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: resolveSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteCourierResolve(rootCtx, cfg, args); err != nil {
			contract.LogFatal("Cannot resolve keys", err)
		}
	},
}

// resolveSetup runs sharedSetup without treating the first key as a path.
func resolveSetup(cmd *cobra.Command, _ []string) error {
	return sharedSetup(cmd, nil)
}
