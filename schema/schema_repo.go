package schema

// LineDelta holds summed line-level change counts.
type LineDelta struct {
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

// ContributorFacts captures per-author statistics mined from one
// repository's commit history.
type ContributorFacts struct {
	Identity        string               `json:"identity"` // normalized email where available
	CommitCount     int                  `json:"commit_count"`
	ContributionPct float64              `json:"contribution_percentage"` // share of total commits, 1 decimal
	FilesEdited     []string             `json:"files_edited"`            // sorted union of touched paths
	Insertions      int                  `json:"insertions"`
	Deletions       int                  `json:"deletions"`
	LOCByExtension  map[string]LineDelta `json:"loc_by_extension"`
}

// RepositoryFacts captures repository-level statistics mined from a
// version-control working copy.
type RepositoryFacts struct {
	Name            string             `json:"name"`
	RootPath        string             `json:"root_path"`
	Authors         []string           `json:"authors"` // sorted distinct identities
	Contributors    []ContributorFacts `json:"contributors"`
	BranchCount     int                `json:"branch_count"`
	HasMerges       bool               `json:"has_merges"`
	ProjectType     ProjectType        `json:"project_type"`
	DurationDays    int                `json:"duration_days"`    // inclusive span, minimum 1 with commits
	CommitFrequency string             `json:"commit_frequency"` // e.g. "5.0 commits/week"
	TotalCommits    int                `json:"total_commits"`
}

// MiningFailure records one repository root whose history could not be
// mined. The project it belongs to degrades to path-based grouping;
// the failure never aborts the run.
type MiningFailure struct {
	RootPath string `json:"root_path"`
	Reason   string `json:"reason"`
}
