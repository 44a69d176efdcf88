// Package cmd defines the command-line interface for skillscope.
package cmd

import (
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scansCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the scans subcommands to the parent scans command
	scansCmd.AddCommand(scansListCmd)
	scansCmd.AddCommand(scansViewCmd)
	scansCmd.AddCommand(scansDeleteCmd)
	scansCmd.AddCommand(scansStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detailed", false, "Mine git history for repository roots (slower, richer)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Scan storage backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Bool("save", false, "Persist the scan report to the storage backend")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("mine-timeout", "", "Per-repository mining ceiling (e.g., 30s, 2m)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Command-local flags are read directly from Cobra in each RunE
	analyzeCmd.Flags().String("view", string(schema.RankingsView), "Report view: rankings or chronology or leaderboard or full")
	scansViewCmd.Flags().String("view", string(schema.FullView), "Report view: rankings or chronology or leaderboard or full")
	portfolioCmd.Flags().Int64("scan-id", 0, "Build the portfolio from a stored scan instead of analyzing")
	portfolioCmd.Flags().String("dir", "", "Directory to write per-contributor Markdown portfolios to")
	exportCmd.Flags().Int64("scan-id", 0, "ID of the stored scan to export")
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
}
