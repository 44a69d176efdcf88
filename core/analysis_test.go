package core

import (
	"context"
	"testing"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
	"github.com/stretchr/testify/assert"
)

// stubMiner serves canned repository facts per root and reports every
// other root as a mining failure.
type stubMiner struct {
	facts map[string]*schema.RepositoryFacts
}

func (m *stubMiner) Mine(_ context.Context, root string) (*schema.RepositoryFacts, error) {
	if facts, ok := m.facts[root]; ok {
		return facts, nil
	}
	return nil, assert.AnError
}

func (m *stubMiner) MineAll(ctx context.Context, roots []string) (map[string]*schema.RepositoryFacts, []schema.MiningFailure) {
	out := make(map[string]*schema.RepositoryFacts)
	var failures []schema.MiningFailure
	for _, root := range roots {
		facts, err := m.Mine(ctx, root)
		if err != nil {
			failures = append(failures, schema.MiningFailure{RootPath: root, Reason: err.Error()})
			continue
		}
		out[root] = facts
	}
	return out, failures
}

// TestRepositoryRoots tests root extraction from classified entries.
func TestRepositoryRoots(t *testing.T) {
	files := classifyAll(t, []schema.FileRecord{
		{Path: "dump/app/.git", Extension: ".git", IsDir: true},
		{Path: "dump/lib/.git/", Extension: ".git", IsDir: true},
		{Path: "dump/app/.git", Extension: ".git", IsDir: true},
		{Path: "dump/app/main.go", Extension: ".go"},
	})

	assert.Equal(t, []string{"dump/app", "dump/lib"}, RepositoryRoots(files))
}

// TestRepositoryRootsWholeTree tests that a marker at the top of the tree
// resolves to the root ".".
func TestRepositoryRootsWholeTree(t *testing.T) {
	files := classifyAll(t, []schema.FileRecord{
		{Path: ".git", Extension: ".git", IsDir: true},
		{Path: "src/main.go", Extension: ".go"},
	})

	assert.Equal(t, []string{"."}, RepositoryRoots(files))
}

// TestRunBasicMode tests a full run without any miner.
func TestRunBasicMode(t *testing.T) {
	cfg := &contract.Config{Filters: schema.DefaultFilters()}
	records := []schema.FileRecord{
		{Path: "alpha/main.py", Extension: ".py", Size: 100},
		{Path: "alpha/README.md", Extension: ".md", Size: 50},
		{Path: "", Size: 10},
	}

	out, err := Run(context.Background(), records, cfg, nil)
	assert.NoError(t, err)
	assert.Equal(t, BasicMode, out.Report.AnalysisMode)
	assert.Len(t, out.Projects, 1)
	assert.Greater(t, out.Projects[0].Score, 0.0)

	// The malformed record is reported, never fatal.
	assert.Len(t, out.Report.Failures, 1)
	assert.Equal(t, "missing path", out.Report.Failures[0].Reason)
}

// TestRunDetailedMode tests mining integration and per-root failure
// isolation.
func TestRunDetailedMode(t *testing.T) {
	cfg := &contract.Config{Detailed: true, Filters: schema.DefaultFilters()}
	records := []schema.FileRecord{
		{Path: "dump/good/.git", Extension: ".git", IsDir: true},
		{Path: "dump/good/main.go", Extension: ".go", Size: 100},
		{Path: "dump/bad/.git", Extension: ".git", IsDir: true},
		{Path: "dump/bad/app.py", Extension: ".py", Size: 100},
	}

	miner := &stubMiner{facts: map[string]*schema.RepositoryFacts{
		"dump/good": {
			Name:         "good",
			RootPath:     "dump/good",
			TotalCommits: 4,
			Contributors: []schema.ContributorFacts{
				{Identity: "alice@example.com", CommitCount: 4, ContributionPct: 100.0},
			},
		},
	}}

	out, err := Run(context.Background(), records, cfg, miner)
	assert.NoError(t, err)
	assert.Equal(t, DetailedMode, out.Report.AnalysisMode)

	byName := make(map[string]*schema.Project)
	for _, p := range out.Projects {
		byName[p.Name] = p
	}

	// The minable root gets full attribution.
	good := byName["good"]
	assert.NotNil(t, good)
	assert.InDelta(t, good.Score, good.ContributorScores["alice@example.com"], 1e-9)

	// The broken root degrades to path grouping with empty attribution.
	bad := byName["dump"]
	assert.NotNil(t, bad)
	assert.Nil(t, bad.Repo)
	assert.Empty(t, bad.ContributorScores)

	assert.Len(t, out.Report.MiningFailures, 1)
	assert.Equal(t, "dump/bad", out.Report.MiningFailures[0].RootPath)
}

// TestRunDetailedModeWholeTree tests mining when the input itself is a
// working copy: every file lands in the repository's project.
func TestRunDetailedModeWholeTree(t *testing.T) {
	cfg := &contract.Config{Detailed: true, Filters: schema.DefaultFilters()}
	records := []schema.FileRecord{
		{Path: ".git", Extension: ".git", IsDir: true},
		{Path: "src/main.go", Extension: ".go", Size: 100},
		{Path: "docs/usage.md", Extension: ".md", Size: 50},
	}

	miner := &stubMiner{facts: map[string]*schema.RepositoryFacts{
		".": {
			Name:         "workspace",
			RootPath:     ".",
			TotalCommits: 2,
			Contributors: []schema.ContributorFacts{
				{Identity: "alice@example.com", CommitCount: 2, ContributionPct: 100.0},
			},
		},
	}}

	out, err := Run(context.Background(), records, cfg, miner)
	assert.NoError(t, err)
	assert.Empty(t, out.Report.MiningFailures)
	assert.Len(t, out.Projects, 1)

	p := out.Projects[0]
	assert.Equal(t, "workspace", p.Name)
	assert.Equal(t, 2, p.TotalFiles)
	assert.NotNil(t, p.Repo)
	assert.InDelta(t, p.Score, p.ContributorScores["alice@example.com"], 1e-9)
}

// TestRunNoUsableRecords tests the only fatal outcome of a run.
func TestRunNoUsableRecords(t *testing.T) {
	cfg := &contract.Config{Filters: schema.DefaultFilters()}

	_, err := Run(context.Background(), []schema.FileRecord{{Path: " "}}, cfg, nil)
	assert.Error(t, err)
}
