package schema

import "time"

// ProjectSummary is the storage-facing view of a Project: every aggregate
// except the raw file list, with timestamps as RFC 3339 strings.
type ProjectSummary struct {
	Project     string `json:"project"`
	TotalFiles  int    `json:"total_files"`
	CodeFiles   int    `json:"code_files"`
	TestFiles   int    `json:"test_files"`
	DocFiles    int    `json:"doc_files"`
	DesignFiles int    `json:"design_files"`

	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Skills     []string `json:"skills"`

	FirstModified string `json:"first_modified"`
	LastModified  string `json:"last_modified"`
	DurationDays  int    `json:"duration_days"`

	IsCollaborative bool    `json:"is_collaborative"`
	Score           float64 `json:"score"`

	RepoName         string      `json:"repo_name,omitempty"`
	RepoRoot         string      `json:"repo_root,omitempty"`
	Authors          []string    `json:"authors,omitempty"`
	BranchCount      int         `json:"branch_count"`
	HasMerges        bool        `json:"has_merges"`
	ProjectType      ProjectType `json:"project_type,omitempty"`
	RepoDurationDays int         `json:"repo_duration_days"`
	CommitFrequency  string      `json:"commit_frequency,omitempty"`

	ContributorScores map[string]float64 `json:"per_contributor_scores,omitempty"`
	ContributorPct    map[string]float64 `json:"per_contributor_pct,omitempty"`
}

// ProjectSpan is one entry in the chronological project list.
type ProjectSpan struct {
	Name      string `json:"name"`
	FirstUsed string `json:"first_used"`
	LastUsed  string `json:"last_used"`
}

// SkillUsage tracks when a skill was first and last exercised and how many
// files resolved to it across the whole run.
type SkillUsage struct {
	Skill     string `json:"skill"`
	FirstUsed string `json:"first_used"`
	LastUsed  string `json:"last_used"`
	FileCount int    `json:"file_count"`
}

// LeaderboardEntry is one row of the contributor leaderboard: summed
// adjusted score and percentage across projects where the contributor's
// percentage was above zero.
type LeaderboardEntry struct {
	Identity     string  `json:"identity"`
	ProjectCount int     `json:"project_count"`
	TotalScore   float64 `json:"total_score"`
	TotalPct     float64 `json:"total_pct"`
}

// RunFailure records one input record that was skipped, with the reason.
type RunFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ScanReport is the serializable outcome of one engine run. It is the
// structure handed to the scan store and to the resume generator.
type ScanReport struct {
	GeneratedAt  string `json:"generated_at"` // RFC 3339
	AnalysisMode string `json:"analysis_mode"`

	ProjectSummaries      []ProjectSummary              `json:"project_summaries"`
	ProjectsChronological []ProjectSpan                 `json:"projects_chronological"`
	SkillsChronological   []SkillUsage                  `json:"skills_chronological"`
	Leaderboard           []LeaderboardEntry            `json:"leaderboard"`
	ContributorProfiles   map[string]ContributorProfile `json:"contributor_profiles"`

	Failures       []RunFailure    `json:"failures,omitempty"`
	MiningFailures []MiningFailure `json:"mining_failures,omitempty"`
}

// NewProjectSummary flattens a Project into its storage-facing view.
func NewProjectSummary(p *Project) ProjectSummary {
	s := ProjectSummary{
		Project:           p.Name,
		TotalFiles:        p.TotalFiles,
		CodeFiles:         p.CodeFiles,
		TestFiles:         p.TestFiles,
		DocFiles:          p.DocFiles,
		DesignFiles:       p.DesignFiles,
		Languages:         p.Languages,
		Frameworks:        p.Frameworks,
		Skills:            p.Skills,
		FirstModified:     FormatTime(p.FirstModified),
		LastModified:      FormatTime(p.LastModified),
		DurationDays:      p.DurationDays,
		IsCollaborative:   p.IsCollaborative,
		Score:             p.Score,
		ContributorScores: p.ContributorScores,
		ContributorPct:    p.ContributorPct,
	}
	if p.Repo != nil {
		s.RepoName = p.Repo.Name
		s.RepoRoot = p.Repo.RootPath
		s.Authors = p.Repo.Authors
		s.BranchCount = p.Repo.BranchCount
		s.HasMerges = p.Repo.HasMerges
		s.ProjectType = p.Repo.ProjectType
		s.RepoDurationDays = p.Repo.DurationDays
		s.CommitFrequency = p.Repo.CommitFrequency
	}
	return s
}

// FormatTime renders a timestamp as an RFC 3339 string. The zero time
// renders as the empty string so absent timestamps stay absent on disk.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseTime is the inverse of FormatTime. Unparseable or empty input yields
// the zero time rather than an error.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
