// Package resume renders scan reports as human-readable career artifacts:
// a plain-text project resume and per-contributor Markdown portfolios.
package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// orUnknown substitutes a placeholder for empty timestamp strings.
func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// ProjectLine builds one resume bullet for a project summary.
func ProjectLine(s *schema.ProjectSummary) string {
	var pieces []string

	main := fmt.Sprintf("Contributed to project '%s'", s.Project)
	if s.ProjectType != "" {
		main = fmt.Sprintf("Contributed to %s project '%s'", strings.ToLower(string(s.ProjectType)), s.Project)
	}
	if len(s.Languages) > 0 {
		main += " using " + strings.Join(s.Languages, ", ")
	}
	pieces = append(pieces, main)

	var details []string
	if s.CodeFiles > 0 {
		details = append(details, fmt.Sprintf("%d code files", s.CodeFiles))
	}
	if s.TestFiles > 0 {
		details = append(details, fmt.Sprintf("%d test files", s.TestFiles))
	}
	if s.DurationDays > 0 {
		details = append(details, fmt.Sprintf("over %d days", s.DurationDays))
	}
	if len(details) > 0 {
		pieces = append(pieces, "worked on "+strings.Join(details, ", "))
	}

	if len(s.Frameworks) > 0 {
		pieces = append(pieces, "with frameworks such as "+strings.Join(s.Frameworks, ", "))
	}

	return strings.Join(pieces, "; ") + "."
}

// ResumeText renders the whole report as a plain-text portfolio summary.
// Projects appear highest score first.
func ResumeText(report *schema.ScanReport) string {
	ranked := make([]schema.ProjectSummary, len(report.ProjectSummaries))
	copy(ranked, report.ProjectSummaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var b strings.Builder
	b.WriteString("PROJECT PORTFOLIO SUMMARY\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("Top Projects\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for i := range ranked {
		b.WriteString("- " + ProjectLine(&ranked[i]) + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Chronological Project Timeline\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, span := range report.ProjectsChronological {
		fmt.Fprintf(&b, "- %s: %s -> %s\n", span.Name, orUnknown(span.FirstUsed), orUnknown(span.LastUsed))
	}
	b.WriteString("\n")

	b.WriteString("Skills Used Over Time\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, usage := range report.SkillsChronological {
		fmt.Fprintf(&b, "- %s: %s -> %s\n", usage.Skill, orUnknown(usage.FirstUsed), orUnknown(usage.LastUsed))
	}
	b.WriteString("\n")

	return b.String()
}

// WriteResumeText writes the plain-text resume to the given path, or to
// stdout when the path is empty.
func WriteResumeText(report *schema.ScanReport, filePath string) error {
	file, err := contract.SelectOutputFile(filePath)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer file.Close()
	}
	if _, err := file.WriteString(ResumeText(report)); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 Resume to %s\n", filePath)
	}
	return nil
}

// PortfolioMarkdown renders one contributor's cross-project portfolio as
// Markdown. Projects appear highest score first.
func PortfolioMarkdown(identity string, profile schema.ContributorProfile, report *schema.ScanReport) string {
	summaries := make(map[string]*schema.ProjectSummary, len(report.ProjectSummaries))
	for i := range report.ProjectSummaries {
		summaries[report.ProjectSummaries[i].Project] = &report.ProjectSummaries[i]
	}

	projects := make([]schema.ProjectParticipation, len(profile.Projects))
	copy(projects, profile.Projects)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].AdjustedScore > projects[j].AdjustedScore
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio: %s\n\n", identity)

	b.WriteString("## Global Skills\n")
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&b, "**%s**\n\n", strings.Join(profile.Skills, ", "))
	} else {
		b.WriteString("No specific skills detected.\n\n")
	}

	b.WriteString("## Project Showcase\n")
	if len(projects) == 0 {
		b.WriteString("No projects found.\n")
	}
	for _, part := range projects {
		summary := summaries[part.Name]
		if summary == nil {
			continue
		}

		fmt.Fprintf(&b, "### %s\n", part.Name)
		fmt.Fprintf(&b, "- **Role/Contribution:** %.1f%% of codebase\n", part.Pct)
		if len(summary.Skills) > 0 {
			fmt.Fprintf(&b, "- **Tech Stack:** %s\n", strings.Join(summary.Skills, ", "))
		}
		fmt.Fprintf(&b, "- **Impact Score:** %.1f\n", summary.Score)
		fmt.Fprintf(&b, "- **Duration:** %d days\n", summary.DurationDays)
		if part.CommitCount > 0 {
			fmt.Fprintf(&b, "- **Commits:** %d\n", part.CommitCount)
		}
		if part.Insertions > 0 || part.Deletions > 0 {
			fmt.Fprintf(&b, "- **Lines:** +%d / -%d\n", part.Insertions, part.Deletions)
		}
		if breakdown := fileBreakdown(&part); breakdown != "" {
			fmt.Fprintf(&b, "- **File Breakdown:** %s\n", breakdown)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// fileBreakdown summarizes a contributor's file activity within one project.
func fileBreakdown(part *schema.ProjectParticipation) string {
	var details []string
	if part.CodeFiles > 0 {
		details = append(details, fmt.Sprintf("%d code", part.CodeFiles))
	}
	if part.TestFiles > 0 {
		details = append(details, fmt.Sprintf("%d test", part.TestFiles))
	}
	if part.DocFiles > 0 {
		details = append(details, fmt.Sprintf("%d doc", part.DocFiles))
	}
	if part.DesignFiles > 0 {
		details = append(details, fmt.Sprintf("%d design", part.DesignFiles))
	}
	return strings.Join(details, ", ")
}

// WritePortfolios renders one Markdown portfolio per contributor into the
// given directory, returning the list of written file paths.
func WritePortfolios(report *schema.ScanReport, dir string) ([]string, error) {
	if len(report.ContributorProfiles) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create portfolio directory: %w", err)
	}

	identities := make([]string, 0, len(report.ContributorProfiles))
	for identity := range report.ContributorProfiles {
		identities = append(identities, identity)
	}
	sort.Strings(identities)

	var written []string
	for _, identity := range identities {
		content := PortfolioMarkdown(identity, report.ContributorProfiles[identity], report)
		target := filepath.Join(dir, sanitizeFilename(identity)+".md")
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write portfolio for %s: %w", identity, err)
		}
		written = append(written, target)
	}
	return written, nil
}

// sanitizeFilename maps a contributor identity onto a safe file stem.
func sanitizeFilename(identity string) string {
	var b strings.Builder
	for _, r := range identity {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
