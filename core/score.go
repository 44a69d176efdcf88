package core

import (
	"math"

	"github.com/huangsam/skillscope/schema"
)

// Scoring weights and caps. Downstream ranking and leaderboard ordering
// depend on these values bit-for-bit, so treat any change as a breaking
// one.
const (
	volumeCap    = 60.0
	durationCap  = 90.0
	commitCap    = 30.0
	codeWeight   = 3.0
	testWeight   = 2.0
	docWeight    = 1.0
	designWeight = 1.0
	skillWeight  = 2.0
	langWeight   = 1.5
	durationRate = 0.5
	collabBonus  = 8.0
	branchCap    = 5.0
	branchRate   = 1.5
	mergeBonus   = 5.0
	commitRate   = 0.2
)

// Score computes the composite project score: a deterministic weighted sum
// of volume, activity mix, variety, duration and collaboration signals.
func Score(p *schema.Project) float64 {
	volume := math.Min(float64(p.TotalFiles), volumeCap)

	activity := codeWeight*float64(p.CodeFiles) +
		testWeight*float64(p.TestFiles) +
		docWeight*float64(p.DocFiles) +
		designWeight*float64(p.DesignFiles)

	variety := skillWeight*float64(len(p.Skills)) + langWeight*float64(len(p.Languages))

	duration := math.Min(float64(p.DurationDays), durationCap) * durationRate

	var collab, branch, merge, commit float64
	if p.IsCollaborative {
		collab = collabBonus
	}
	if p.Repo != nil {
		branch = math.Min(float64(p.Repo.BranchCount), branchCap) * branchRate
		if p.Repo.HasMerges {
			merge = mergeBonus
		}
		// An unparseable frequency string drops the bonus to 0 rather
		// than failing the run.
		commit = math.Min(schema.ParseCommitRate(p.Repo.CommitFrequency), commitCap) * commitRate
	}

	return volume + activity + variety + duration + collab + branch + merge + commit
}
