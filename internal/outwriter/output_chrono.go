package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// WriteChronologyViews outputs the chronological project list and the
// skill timeline, dispatching based on the output format configured.
func WriteChronologyViews(projects []schema.ProjectSpan, skills []schema.SkillUsage, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Projects []schema.ProjectSpan `json:"projects_chronological"`
				Skills   []schema.SkillUsage  `json:"skills_chronological"`
			}{projects, skills})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChronologyCSV(w, projects, skills)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChronologyTables(w, projects, skills)
		}, "Wrote table")
	}
}

func writeChronologyTables(w io.Writer, projects []schema.ProjectSpan, skills []schema.SkillUsage) error {
	if _, err := fmt.Fprintln(w, "Projects by first activity:"); err != nil {
		return err
	}

	projectTable := tablewriter.NewWriter(w)
	projectTable.Header([]string{"Project", "First Activity", "Last Activity"})
	for _, p := range projects {
		if err := projectTable.Append([]string{p.Name, orUnknown(p.FirstUsed), orUnknown(p.LastUsed)}); err != nil {
			return err
		}
	}
	if err := projectTable.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nSkills by first use:"); err != nil {
		return err
	}

	skillTable := tablewriter.NewWriter(w)
	skillTable.Header([]string{"Skill", "First Used", "Last Used", "Files"})
	for _, s := range skills {
		row := []string{s.Skill, orUnknown(s.FirstUsed), orUnknown(s.LastUsed), strconv.Itoa(s.FileCount)}
		if err := skillTable.Append(row); err != nil {
			return err
		}
	}
	return skillTable.Render()
}

func writeChronologyCSV(w io.Writer, projects []schema.ProjectSpan, skills []schema.SkillUsage) error {
	header := []string{"kind", "name", "first", "last", "file_count"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range projects {
			if err := csvWriter.Write([]string{"project", p.Name, p.FirstUsed, p.LastUsed, ""}); err != nil {
				return err
			}
		}
		for _, s := range skills {
			if err := csvWriter.Write([]string{"skill", s.Skill, s.FirstUsed, s.LastUsed, strconv.Itoa(s.FileCount)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// orUnknown substitutes a placeholder for absent timestamps in tables.
func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
