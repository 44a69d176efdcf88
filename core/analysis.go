package core

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// Analysis modes recorded on the report.
const (
	BasicMode    = "basic"    // path-based grouping only
	DetailedMode = "detailed" // with version-control mining
)

// AnalysisOutput bundles everything one engine run produces.
type AnalysisOutput struct {
	Projects []*schema.Project
	Report   *schema.ScanReport
}

// Run executes the full batch computation over one set of extracted file
// records: validate, classify, mine, group, score, attribute, report.
// Mining failures and malformed records degrade the affected project or
// record only; the run itself fails only when no usable record remains.
func Run(ctx context.Context, records []schema.FileRecord, cfg *contract.Config, miner contract.RepoMiner) (*AnalysisOutput, error) {
	var failures []schema.RunFailure
	valid := make([]schema.FileRecord, 0, len(records))
	for _, rec := range records {
		if reason := validateRecord(rec); reason != "" {
			failures = append(failures, schema.RunFailure{Path: rec.Path, Reason: reason})
			continue
		}
		valid = append(valid, rec)
	}
	if len(valid) == 0 {
		return nil, errors.New("no usable file records")
	}

	classified := make([]schema.ClassifiedFile, 0, len(valid))
	for _, rec := range valid {
		classified = append(classified, Classify(rec, cfg.Filters))
	}

	mode := BasicMode
	var repos map[string]*schema.RepositoryFacts
	var miningFailures []schema.MiningFailure
	if cfg.Detailed && miner != nil {
		mode = DetailedMode
		repos, miningFailures = miner.MineAll(ctx, RepositoryRoots(classified))
	}

	projects := GroupProjects(classified, repos)

	// Per-project arithmetic completes before anything is folded into
	// the cross-project accumulators.
	profiles := NewProfileSet()
	for _, p := range projects {
		p.Score = Score(p)
		AttributeContributors(p, cfg.Filters, profiles)
	}

	report := BuildReport(projects, profiles, failures, miningFailures, mode, time.Now())
	return &AnalysisOutput{Projects: projects, Report: report}, nil
}

// validateRecord returns a non-empty reason when a record is malformed and
// must be skipped.
func validateRecord(rec schema.FileRecord) string {
	if strings.TrimSpace(rec.Path) == "" {
		return "missing path"
	}
	if rec.Size < 0 {
		return "negative size"
	}
	return ""
}

// RepositoryRoots extracts the working-copy roots marked by ".git"
// directory entries, deduplicated and sorted. A marker at the top of the
// tree yields the root "." so an input that is itself a working copy
// still gets mined.
func RepositoryRoots(files []schema.ClassifiedFile) []string {
	seen := make(map[string]struct{})
	for _, f := range files {
		if f.Category != schema.RepositoryCategory || !f.IsDir {
			continue
		}
		root := path.Dir(strings.TrimSuffix(f.Path, "/"))
		if root == "/" {
			continue
		}
		seen[root] = struct{}{}
	}

	roots := make([]string, 0, len(seen))
	for root := range seen {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}
