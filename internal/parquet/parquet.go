// Package parquet exports scan results as columnar Parquet files for
// downstream analytics, using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/skillscope/schema"
)

// ProjectSummaryRow is the flattened columnar view of one scored project.
type ProjectSummaryRow struct {
	// ScanID references the stored scan this row belongs to (0 for
	// unsaved runs)
	ScanID int64 `parquet:"scan_id,snappy"`

	// Project is the project name assigned during grouping
	Project string `parquet:"project,snappy"`

	Score       float64 `parquet:"score,snappy"`
	TotalFiles  int32   `parquet:"total_files,snappy"`
	CodeFiles   int32   `parquet:"code_files,snappy"`
	TestFiles   int32   `parquet:"test_files,snappy"`
	DocFiles    int32   `parquet:"doc_files,snappy"`
	DesignFiles int32   `parquet:"design_files,snappy"`

	// Languages and Skills are pipe-joined for columnar friendliness
	Languages string `parquet:"languages,snappy"`
	Skills    string `parquet:"skills,snappy"`

	DurationDays    int32  `parquet:"duration_days,snappy"`
	IsCollaborative bool   `parquet:"is_collaborative,snappy"`
	FirstModified   string `parquet:"first_modified,snappy"`
	LastModified    string `parquet:"last_modified,snappy"`

	// Repository facts; empty/zero when the project had no mined history
	RepoName        *string `parquet:"repo_name,optional,snappy"`
	BranchCount     int32   `parquet:"branch_count,snappy"`
	HasMerges       bool    `parquet:"has_merges,snappy"`
	CommitFrequency *string `parquet:"commit_frequency,optional,snappy"`
}

// LeaderboardRow is the columnar view of one leaderboard entry.
type LeaderboardRow struct {
	ScanID       int64   `parquet:"scan_id,snappy"`
	Identity     string  `parquet:"identity,snappy"`
	ProjectCount int32   `parquet:"project_count,snappy"`
	TotalScore   float64 `parquet:"total_score,snappy"`
	TotalPct     float64 `parquet:"total_pct,snappy"`
}

// SummaryRows flattens a report's ranked summaries into parquet rows.
func SummaryRows(report *schema.ScanReport, scanID int64) []ProjectSummaryRow {
	rows := make([]ProjectSummaryRow, 0, len(report.ProjectSummaries))
	for _, s := range report.ProjectSummaries {
		row := ProjectSummaryRow{
			ScanID:          scanID,
			Project:         s.Project,
			Score:           s.Score,
			TotalFiles:      int32(s.TotalFiles),
			CodeFiles:       int32(s.CodeFiles),
			TestFiles:       int32(s.TestFiles),
			DocFiles:        int32(s.DocFiles),
			DesignFiles:     int32(s.DesignFiles),
			Languages:       strings.Join(s.Languages, "|"),
			Skills:          strings.Join(s.Skills, "|"),
			DurationDays:    int32(s.DurationDays),
			IsCollaborative: s.IsCollaborative,
			FirstModified:   s.FirstModified,
			LastModified:    s.LastModified,
			BranchCount:     int32(s.BranchCount),
			HasMerges:       s.HasMerges,
		}
		if s.RepoName != "" {
			name := s.RepoName
			row.RepoName = &name
		}
		if s.CommitFrequency != "" {
			freq := s.CommitFrequency
			row.CommitFrequency = &freq
		}
		rows = append(rows, row)
	}
	return rows
}

// LeaderboardRows flattens a report's leaderboard into parquet rows.
func LeaderboardRows(report *schema.ScanReport, scanID int64) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(report.Leaderboard))
	for _, e := range report.Leaderboard {
		rows = append(rows, LeaderboardRow{
			ScanID:       scanID,
			Identity:     e.Identity,
			ProjectCount: int32(e.ProjectCount),
			TotalScore:   e.TotalScore,
			TotalPct:     e.TotalPct,
		})
	}
	return rows
}

// WriteProjectSummariesParquet writes project summary rows to a Parquet file.
func WriteProjectSummariesParquet(data []ProjectSummaryRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteLeaderboardParquet writes leaderboard rows to a Parquet file.
func WriteLeaderboardParquet(data []LeaderboardRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row slice using struct schema inference. The
// schema is derived from the row struct's parquet tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
