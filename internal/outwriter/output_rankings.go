package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// WriteProjectRankings outputs ranked project summaries, dispatching based
// on the output format configured.
func WriteProjectRankings(summaries []schema.ProjectSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	if len(summaries) > cfg.ResultLimit {
		summaries = summaries[:cfg.ResultLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsJSON(w, summaries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsCSV(w, summaries, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingsTable(summaries, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeRankingsTable generates and writes the human-readable table.
func writeRankingsTable(summaries []schema.ProjectSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Project", "Score", "Label", "Files", "Skills"}
	if cfg.Detailed {
		headers = append(headers, "Authors", "Branches", "Freq")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	for i, s := range summaries {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(s.Project, nameWidth),
			fmtFloat(s.Score),
			scoreLabel(s.Score, cfg),
			fmt.Sprintf(intFmt, s.TotalFiles),
			strings.Join(s.Skills, ", "),
		}
		if cfg.Detailed {
			row = append(row,
				fmt.Sprintf(intFmt, len(s.Authors)),
				fmt.Sprintf(intFmt, s.BranchCount),
				s.CommitFrequency,
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalFiles := 0
	for _, s := range summaries {
		totalFiles += s.TotalFiles
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d projects (total files: %d)\n", len(summaries), totalFiles); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Storage backend: %s\n", duration, cfg.Backend); err != nil {
		return err
	}
	return nil
}

// writeRankingsCSV writes ranked summaries in CSV format.
func writeRankingsCSV(w io.Writer, summaries []schema.ProjectSummary, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"project",
		"score",
		"label",
		"total_files",
		"code_files",
		"test_files",
		"doc_files",
		"design_files",
		"languages",
		"skills",
		"frameworks",
		"duration_days",
		"collaborative",
		"first_modified",
		"last_modified",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, s := range summaries {
			rec := []string{
				strconv.Itoa(i + 1),
				s.Project,
				fmtFloat(s.Score),
				contract.GetPlainLabel(s.Score),
				fmt.Sprintf(intFmt, s.TotalFiles),
				fmt.Sprintf(intFmt, s.CodeFiles),
				fmt.Sprintf(intFmt, s.TestFiles),
				fmt.Sprintf(intFmt, s.DocFiles),
				fmt.Sprintf(intFmt, s.DesignFiles),
				strings.Join(s.Languages, "|"),
				strings.Join(s.Skills, "|"),
				strings.Join(s.Frameworks, "|"),
				fmt.Sprintf(intFmt, s.DurationDays),
				strconv.FormatBool(s.IsCollaborative),
				s.FirstModified,
				s.LastModified,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRankingsJSON writes ranked summaries in JSON format with rank and
// label added.
func writeRankingsJSON(w io.Writer, summaries []schema.ProjectSummary) error {
	type JSONProjectSummary struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ProjectSummary
	}

	output := make([]JSONProjectSummary, len(summaries))
	for i, s := range summaries {
		output[i] = JSONProjectSummary{
			Rank:           i + 1,
			Label:          contract.GetPlainLabel(s.Score),
			ProjectSummary: s,
		}
	}
	return writeJSON(w, output)
}
