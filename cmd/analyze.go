package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/skillscope/core"
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/outwriter"
	"github.com/huangsam/skillscope/schema"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full attribution pipeline against an archive or directory.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <archive-or-dir>",
	Short: "Classify, group and score the projects inside an archive.",
	Long: `Analyze a zip archive or directory tree of source code.

Every file is classified by activity (code, test, documentation, design),
files are grouped into projects, and each project receives a composite
score. With --detailed, git history is mined from every repository found
inside the input, and scores are distributed across contributors.

Examples:
  # Rank the projects of a code dump
  skillscope analyze dump.zip

  # Mine git history and show the contributor leaderboard
  skillscope analyze dump.zip --detailed --view leaderboard

  # Persist the scan for later inspection
  skillscope analyze dump.zip --detailed --save

  # Export rankings to CSV
  skillscope analyze ./workspace --output csv --output-file rankings.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		viewStr, _ := cmd.Flags().GetString("view")
		view := schema.ReportView(viewStr)
		if _, ok := schema.ValidReportViews[view]; !ok {
			contract.LogFatal("Cannot run analysis", fmt.Errorf("invalid view %q. must be rankings, chronology, leaderboard, full", viewStr))
		}

		start := time.Now()
		out, err := core.AnalyzeArtifact(rootCtx, cfg.ArchivePath, cfg)
		if err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
		elapsed := time.Since(start)

		for _, failure := range out.Report.Failures {
			fmt.Fprintf(os.Stderr, "⚠️  Skipped %s: %s\n", failure.Path, failure.Reason)
		}
		for _, failure := range out.Report.MiningFailures {
			fmt.Fprintf(os.Stderr, "⚠️  Could not mine %s: %s\n", failure.RootPath, failure.Reason)
		}

		if err := renderView(out.Report, view, elapsed); err != nil {
			contract.LogFatal("Cannot write results", err)
		}

		if cfg.Save {
			store, err := openStore()
			if err != nil {
				contract.LogFatal("Cannot save scan", err)
			}
			defer func() { _ = store.Close() }()

			id, err := store.SaveScan(out.Report)
			if err != nil {
				contract.LogFatal("Cannot save scan", err)
			}
			fmt.Fprintf(os.Stderr, "📦 Saved scan %d to %s backend\n", id, cfg.Backend)
		}
	},
}

// renderView writes one slice of a scan report with the configured output
// mode and destination.
func renderView(report *schema.ScanReport, view schema.ReportView, elapsed time.Duration) error {
	ow := outwriter.NewOutWriter()
	switch view {
	case schema.RankingsView:
		return ow.WriteRankings(report.ProjectSummaries, cfg, elapsed)
	case schema.ChronologyView:
		return ow.WriteChronology(report.ProjectsChronological, report.SkillsChronological, cfg)
	case schema.LeaderboardView:
		return ow.WriteLeaderboard(report.Leaderboard, cfg)
	default:
		return ow.WriteReport(report, cfg)
	}
}
