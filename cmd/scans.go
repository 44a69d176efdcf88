package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/outwriter"
	"github.com/huangsam/skillscope/schema"
	"github.com/spf13/cobra"
)

// parseScanID parses the positional scan ID argument.
func parseScanID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid scan ID %q: expected a positive integer", arg)
	}
	return id, nil
}

// scansCmd manages stored scan reports.
var scansCmd = &cobra.Command{
	Use:   "scans",
	Short: "Manage stored scan reports",
	Long: `Inspect and manage scan reports persisted with 'analyze --save'.

Subcommands:
  list    - List stored scans, newest first
  view    - Render one stored scan
  delete  - Remove one stored scan
  status  - Show storage backend statistics

Examples:
  # See what has been saved
  skillscope scans list

  # Re-render the leaderboard of scan 3
  skillscope scans view 3 --view leaderboard

  # Drop an old scan
  skillscope scans delete 1`,
}

// scansListCmd lists stored scans.
var scansListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored scans, newest first",
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openStore()
		if err != nil {
			contract.LogFatal("Cannot open scan storage", err)
		}
		defer func() { _ = store.Close() }()

		metas, err := store.ListScans()
		if err != nil {
			contract.LogFatal("Cannot list scans", err)
		}
		if len(metas) == 0 {
			fmt.Println("No scans stored yet. Run 'skillscope analyze <archive> --save' first.")
			return
		}
		for _, meta := range metas {
			fmt.Printf("%4d  %-25s  %-8s  %d projects\n", meta.ID, meta.Timestamp, meta.AnalysisMode, meta.ProjectCount)
		}
	},
}

// scansViewCmd renders one stored scan.
var scansViewCmd = &cobra.Command{
	Use:     "view <scan-id>",
	Short:   "Render one stored scan report",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseScanID(args[0])
		if err != nil {
			contract.LogFatal("Cannot view scan", err)
		}

		viewStr, _ := cmd.Flags().GetString("view")
		view := schema.ReportView(viewStr)
		if _, ok := schema.ValidReportViews[view]; !ok {
			contract.LogFatal("Cannot view scan", fmt.Errorf("invalid view %q. must be rankings, chronology, leaderboard, full", viewStr))
		}

		store, err := openStore()
		if err != nil {
			contract.LogFatal("Cannot open scan storage", err)
		}
		defer func() { _ = store.Close() }()

		report, err := store.GetScan(id)
		if err != nil {
			contract.LogFatal("Cannot view scan", err)
		}
		if err := renderView(report, view, time.Duration(0)); err != nil {
			contract.LogFatal("Cannot write results", err)
		}
	},
}

// scansDeleteCmd removes one stored scan.
var scansDeleteCmd = &cobra.Command{
	Use:     "delete <scan-id>",
	Short:   "Remove one stored scan report",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		id, err := parseScanID(args[0])
		if err != nil {
			contract.LogFatal("Cannot delete scan", err)
		}

		store, err := openStore()
		if err != nil {
			contract.LogFatal("Cannot open scan storage", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.DeleteScan(id); err != nil {
			contract.LogFatal("Cannot delete scan", err)
		}
		fmt.Printf("Scan %d deleted.\n", id)
	},
}

// scansStatusCmd shows storage backend statistics.
var scansStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show scan storage statistics and connection details",
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openStore()
		if err != nil {
			contract.LogFatal("Cannot open scan storage", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get storage status", err)
		}
		outwriter.PrintStoreStatus(status)
	},
}
