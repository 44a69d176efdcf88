package resume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/skillscope/schema"
)

func sampleReport() *schema.ScanReport {
	return &schema.ScanReport{
		GeneratedAt:  "2023-07-01T00:00:00Z",
		AnalysisMode: "detailed",
		ProjectSummaries: []schema.ProjectSummary{
			{
				Project:      "scripts",
				CodeFiles:    2,
				DurationDays: 3,
				Languages:    []string{"Python"},
				Skills:       []string{"Python Programming"},
				Score:        14.0,
			},
			{
				Project:      "webapp",
				CodeFiles:    6,
				TestFiles:    2,
				DurationDays: 30,
				Languages:    []string{"JavaScript", "TypeScript"},
				Frameworks:   []string{"React"},
				Skills:       []string{"Frontend Development", "Web Development"},
				ProjectType:  schema.CollaborativeProject,
				Score:        76.0,
			},
		},
		ProjectsChronological: []schema.ProjectSpan{
			{Name: "scripts", FirstUsed: "2022-12-01T00:00:00Z", LastUsed: "2022-12-04T00:00:00Z"},
			{Name: "webapp", FirstUsed: "2023-01-01T00:00:00Z"},
		},
		SkillsChronological: []schema.SkillUsage{
			{Skill: "Web Development", FirstUsed: "2023-01-01T00:00:00Z", LastUsed: "2023-01-31T00:00:00Z", FileCount: 8},
		},
		ContributorProfiles: map[string]schema.ContributorProfile{
			"alice@example.com": {
				Skills: []string{"Frontend Development", "Web Development"},
				Projects: []schema.ProjectParticipation{
					{
						Name:          "webapp",
						Pct:           60.0,
						AdjustedScore: 45.6,
						FilesWorked:   5,
						CodeFiles:     4,
						TestFiles:     1,
						Insertions:    120,
						Deletions:     30,
						CommitCount:   9,
					},
				},
			},
			"bob@example.com": {
				Skills: []string{"Web Development"},
				Projects: []schema.ProjectParticipation{
					{Name: "webapp", Pct: 40.0, AdjustedScore: 30.4, CommitCount: 6},
				},
			},
		},
	}
}

func TestProjectLine(t *testing.T) {
	report := sampleReport()

	line := ProjectLine(&report.ProjectSummaries[1])
	assert.Equal(t,
		"Contributed to collaborative project 'webapp' using JavaScript, TypeScript; "+
			"worked on 6 code files, 2 test files, over 30 days; "+
			"with frameworks such as React.",
		line)

	line = ProjectLine(&report.ProjectSummaries[0])
	assert.Equal(t, "Contributed to project 'scripts' using Python; worked on 2 code files, over 3 days.", line)
}

func TestResumeText(t *testing.T) {
	text := ResumeText(sampleReport())

	assert.Contains(t, text, "PROJECT PORTFOLIO SUMMARY")

	// Ranked section lists the higher-scoring project first.
	webapp := "Contributed to collaborative project 'webapp'"
	scripts := "Contributed to project 'scripts'"
	assert.Less(t, strings.Index(text, webapp), strings.Index(text, scripts))

	assert.Contains(t, text, "- scripts: 2022-12-01T00:00:00Z -> 2022-12-04T00:00:00Z")
	assert.Contains(t, text, "- webapp: 2023-01-01T00:00:00Z -> unknown")
	assert.Contains(t, text, "- Web Development: 2023-01-01T00:00:00Z -> 2023-01-31T00:00:00Z")
}

func TestPortfolioMarkdown(t *testing.T) {
	report := sampleReport()

	md := PortfolioMarkdown("alice@example.com", report.ContributorProfiles["alice@example.com"], report)

	assert.Contains(t, md, "# Portfolio: alice@example.com")
	assert.Contains(t, md, "**Frontend Development, Web Development**")
	assert.Contains(t, md, "### webapp")
	assert.Contains(t, md, "- **Role/Contribution:** 60.0% of codebase")
	assert.Contains(t, md, "- **Tech Stack:** Frontend Development, Web Development")
	assert.Contains(t, md, "- **Impact Score:** 76.0")
	assert.Contains(t, md, "- **Duration:** 30 days")
	assert.Contains(t, md, "- **Commits:** 9")
	assert.Contains(t, md, "- **Lines:** +120 / -30")
	assert.Contains(t, md, "- **File Breakdown:** 4 code, 1 test")
}

func TestPortfolioMarkdownNoProjects(t *testing.T) {
	report := sampleReport()

	md := PortfolioMarkdown("carol@example.com", schema.ContributorProfile{}, report)

	assert.Contains(t, md, "No specific skills detected.")
	assert.Contains(t, md, "No projects found.")
}

func TestWritePortfolios(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "portfolios")

	written, err := WritePortfolios(sampleReport(), dir)
	require.NoError(t, err)
	require.Len(t, written, 2)

	assert.Equal(t, filepath.Join(dir, "alice_example.com.md"), written[0])
	assert.Equal(t, filepath.Join(dir, "bob_example.com.md"), written[1])

	content, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Portfolio: alice@example.com")
}

func TestWritePortfoliosEmpty(t *testing.T) {
	written, err := WritePortfolios(&schema.ScanReport{}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestWriteResumeText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")

	require.NoError(t, WriteResumeText(sampleReport(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "PROJECT PORTFOLIO SUMMARY")
}
