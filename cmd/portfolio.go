package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/skillscope/core"
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/resume"
	"github.com/huangsam/skillscope/schema"
	"github.com/spf13/cobra"
)

// portfolioCmd builds career artifacts from a scan.
var portfolioCmd = &cobra.Command{
	Use:   "portfolio [archive-or-dir]",
	Short: "Generate a resume and per-contributor portfolios from a scan.",
	Long: `Turn a scan into career artifacts.

Writes a plain-text resume built from ranked projects and their timeline,
and optionally one Markdown portfolio per contributor. Works either
directly from an archive or from a scan stored with 'analyze --save'.

Examples:
  # Resume straight from an archive
  skillscope portfolio dump.zip --detailed

  # Resume plus per-contributor portfolios
  skillscope portfolio dump.zip --detailed --dir ./portfolios

  # Rebuild artifacts from stored scan 2
  skillscope portfolio --scan-id 2 --output-file resume.txt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		scanID, _ := cmd.Flags().GetInt64("scan-id")
		portfolioDir, _ := cmd.Flags().GetString("dir")

		report, err := loadOrAnalyze(scanID)
		if err != nil {
			contract.LogFatal("Cannot build portfolio", err)
		}

		if err := resume.WriteResumeText(report, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write resume", err)
		}

		if portfolioDir != "" {
			written, err := resume.WritePortfolios(report, portfolioDir)
			if err != nil {
				contract.LogFatal("Cannot write portfolios", err)
			}
			fmt.Fprintf(os.Stderr, "💾 %d portfolios to %s\n", len(written), portfolioDir)
		}
	},
}

// loadOrAnalyze resolves the report either from the scan store or by
// running a fresh analysis of the archive path.
func loadOrAnalyze(scanID int64) (*schema.ScanReport, error) {
	if scanID > 0 {
		store, err := openStore()
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
		return store.GetScan(scanID)
	}

	if cfg.ArchivePath == "" {
		return nil, fmt.Errorf("provide an archive path or --scan-id")
	}
	out, err := core.AnalyzeArtifact(rootCtx, cfg.ArchivePath, cfg)
	if err != nil {
		return nil, err
	}
	return out.Report, nil
}
