package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// WriteLeaderboardEntries outputs the contributor leaderboard, dispatching
// based on the output format configured.
func WriteLeaderboardEntries(entries []schema.LeaderboardEntry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	if len(entries) > cfg.ResultLimit {
		entries = entries[:cfg.ResultLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardCSV(w, entries, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardTable(w, entries, cfg, fmtFloat)
		}, "Wrote table")
	}
}

func writeLeaderboardTable(w io.Writer, entries []schema.LeaderboardEntry, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Contributor", "Projects", "Total Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Identity,
			strconv.Itoa(e.ProjectCount),
			fmtFloat(e.TotalScore),
			scoreLabel(e.TotalScore, cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d contributors\n", len(entries))
	return err
}

func writeLeaderboardCSV(w io.Writer, entries []schema.LeaderboardEntry, fmtFloat func(float64) string) error {
	header := []string{"rank", "identity", "project_count", "total_score", "total_pct", "label"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, e := range entries {
			rec := []string{
				strconv.Itoa(i + 1),
				e.Identity,
				strconv.Itoa(e.ProjectCount),
				fmtFloat(e.TotalScore),
				fmtFloat(e.TotalPct),
				contract.GetPlainLabel(e.TotalScore),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeLeaderboardJSON(w io.Writer, entries []schema.LeaderboardEntry) error {
	type JSONLeaderboardEntry struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.LeaderboardEntry
	}

	output := make([]JSONLeaderboardEntry, len(entries))
	for i, e := range entries {
		output[i] = JSONLeaderboardEntry{
			Rank:             i + 1,
			Label:            contract.GetPlainLabel(e.TotalScore),
			LeaderboardEntry: e,
		}
	}
	return writeJSON(w, output)
}

// WriteFullReport writes a complete scan report as indented JSON.
func WriteFullReport(report *schema.ScanReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}
