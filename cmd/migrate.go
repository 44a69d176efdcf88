package cmd

import (
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/scanstore"
	"github.com/spf13/cobra"
)

// migrateCmd runs database migrations for the scan store.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the scan storage backend.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  skillscope migrate

  # Migrate to specific version
  skillscope migrate --target-version 1

  # Rollback to initial state
  skillscope migrate --target-version 0`,
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		targetVersion, _ := cmd.Flags().GetInt("target-version")
		if err := scanstore.Migrate(cfg.Backend, cfg.ConnStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
