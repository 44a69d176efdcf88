package schema

import "time"

// Project is the grouping unit produced by the engine: all member files
// sharing a common root, plus derived aggregates, repository facts when a
// working copy was detected, and the attribution maps filled by scoring.
// A Project is built once per grouping key per run and is read-only for
// the reporter.
type Project struct {
	Name  string
	Files []ClassifiedFile
	Repo  *RepositoryFacts // nil when no version-control metadata is available

	TotalFiles  int
	CodeFiles   int
	TestFiles   int
	DocFiles    int
	DesignFiles int

	Languages  []string // sorted distinct
	Frameworks []string // sorted distinct
	Skills     []string // sorted distinct

	FirstModified time.Time
	LastModified  time.Time
	DurationDays  int

	IsCollaborative bool
	Score           float64

	ContributorScores map[string]float64 // identity -> score * pct/100
	ContributorPct    map[string]float64 // identity -> contribution percentage
}

// ProjectParticipation is one contributor's stake in one project,
// accumulated into their cross-project profile.
type ProjectParticipation struct {
	Name          string  `json:"name"`
	Pct           float64 `json:"pct"`
	AdjustedScore float64 `json:"adjusted_score"`
	FilesWorked   int     `json:"files_worked"`
	CodeFiles     int     `json:"code_files"`
	TestFiles     int     `json:"test_files"`
	DocFiles      int     `json:"doc_files"`
	DesignFiles   int     `json:"design_files"`
	Insertions    int     `json:"insertions"`
	Deletions     int     `json:"deletions"`
	CommitCount   int     `json:"commit_count"`
}

// ContributorProfile accumulates one identity's skills and participation
// records across every project of a run. Skills are sorted and distinct.
type ContributorProfile struct {
	Skills   []string               `json:"skills"`
	Projects []ProjectParticipation `json:"projects"`
}
