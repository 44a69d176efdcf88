// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRankings prints ranked project results using the configured output
// format.
func (ow *OutWriter) WriteRankings(summaries []schema.ProjectSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteProjectRankings(summaries, cfg, duration)
}

// WriteChronology prints the chronological project and skill views using
// the configured output format.
func (ow *OutWriter) WriteChronology(projects []schema.ProjectSpan, skills []schema.SkillUsage, cfg *contract.Config) error {
	return WriteChronologyViews(projects, skills, cfg)
}

// WriteLeaderboard prints the contributor leaderboard using the configured
// output format.
func (ow *OutWriter) WriteLeaderboard(entries []schema.LeaderboardEntry, cfg *contract.Config) error {
	return WriteLeaderboardEntries(entries, cfg)
}

// WriteReport prints a full scan report as indented JSON regardless of the
// configured format. Used for scan inspection, where partial views would
// lose information.
func (ow *OutWriter) WriteReport(report *schema.ScanReport, cfg *contract.Config) error {
	return WriteFullReport(report, cfg)
}
