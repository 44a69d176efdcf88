package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/parquet"
	"github.com/spf13/cobra"
)

// exportCmd exports a stored scan to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored scan to Parquet for analytics tools.",
	Long: `Export one stored scan to Parquet format.

Writes two datasets next to each other:
- <name>.projects.parquet    one row per scored project
- <name>.leaderboard.parquet one row per contributor

Parquet enables fast querying with DuckDB, pandas or Spark and direct
import into BI tools.

Requires: --scan-id and --output-file

Examples:
  skillscope export --scan-id 2 --output-file scan2.parquet
  duckdb -c "SELECT * FROM read_parquet('scan2.projects.parquet') LIMIT 10"`,
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		scanID, _ := cmd.Flags().GetInt64("scan-id")
		if scanID <= 0 {
			contract.LogFatal("Cannot export scan", fmt.Errorf("--scan-id is required"))
		}
		if cfg.OutputFile == "" {
			contract.LogFatal("Cannot export scan", fmt.Errorf("--output-file is required"))
		}

		store, err := openStore()
		if err != nil {
			contract.LogFatal("Cannot open scan storage", err)
		}
		defer func() { _ = store.Close() }()

		report, err := store.GetScan(scanID)
		if err != nil {
			contract.LogFatal("Cannot export scan", err)
		}

		base := strings.TrimSuffix(cfg.OutputFile, ".parquet")
		projectsPath := base + ".projects.parquet"
		leaderboardPath := base + ".leaderboard.parquet"

		if err := parquet.WriteProjectSummariesParquet(parquet.SummaryRows(report, scanID), projectsPath); err != nil {
			contract.LogFatal("Cannot write project summaries", err)
		}
		if err := parquet.WriteLeaderboardParquet(parquet.LeaderboardRows(report, scanID), leaderboardPath); err != nil {
			contract.LogFatal("Cannot write leaderboard", err)
		}

		fmt.Fprintf(os.Stderr, "💾 Scan %d to %s and %s\n", scanID, projectsPath, leaderboardPath)
	},
}
