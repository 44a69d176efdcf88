// Package gitminer extracts repository facts from on-disk git working
// copies using go-git. Mining is best-effort per root: a corrupt or absent
// repository yields a failure record, never an aborted batch.
package gitminer

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/huangsam/skillscope/schema"
)

// Miner mines git metadata for repository roots discovered in a scan.
// Roots are archive-relative; Base anchors them on the filesystem.
type Miner struct {
	Base    string
	Timeout time.Duration
}

// New returns a miner anchored at base with a per-root time ceiling.
func New(base string, timeout time.Duration) *Miner {
	return &Miner{Base: base, Timeout: timeout}
}

// MineAll mines every root independently. Failing roots are collected,
// not fatal; the caller degrades those projects to path-based grouping.
func (m *Miner) MineAll(ctx context.Context, roots []string) (map[string]*schema.RepositoryFacts, []schema.MiningFailure) {
	facts := make(map[string]*schema.RepositoryFacts, len(roots))
	var failures []schema.MiningFailure

	for _, root := range roots {
		result, err := m.Mine(ctx, root)
		if err != nil {
			failures = append(failures, schema.MiningFailure{RootPath: root, Reason: err.Error()})
			continue
		}
		facts[root] = result
	}
	return facts, failures
}

// Mine opens the working copy under root and walks its full history across
// all branch refs, producing contributor facts and repo-level aggregates.
func (m *Miner) Mine(ctx context.Context, root string) (*schema.RepositoryFacts, error) {
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	repoPath := root
	if m.Base != "" {
		repoPath = filepath.Join(m.Base, filepath.FromSlash(root))
	}

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open git repo at %s: %w", repoPath, err)
	}

	iter, err := repo.Log(&git.LogOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}
	defer iter.Close()

	type tally struct {
		commits    int
		insertions int
		deletions  int
		files      map[string]struct{}
		byExt      map[string]schema.LineDelta
	}
	tallies := make(map[string]*tally)

	var (
		totalCommits int
		hasMerges    bool
		firstCommit  time.Time
		lastCommit   time.Time
	)

	err = iter.ForEach(func(c *object.Commit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		identity := commitIdentity(c)
		t := tallies[identity]
		if t == nil {
			t = &tally{files: make(map[string]struct{}), byExt: make(map[string]schema.LineDelta)}
			tallies[identity] = t
		}
		t.commits++
		totalCommits++

		when := c.Author.When
		if firstCommit.IsZero() || when.Before(firstCommit) {
			firstCommit = when
		}
		if when.After(lastCommit) {
			lastCommit = when
		}

		if c.NumParents() > 1 {
			// Merge stats double-count the merged work, so only the
			// merge itself is recorded.
			hasMerges = true
			return nil
		}

		stats, err := c.Stats()
		if err != nil {
			// Binary-heavy or truncated objects: keep the commit count,
			// skip the line accounting.
			return nil
		}
		for _, fs := range stats {
			t.files[fs.Name] = struct{}{}
			t.insertions += fs.Addition
			t.deletions += fs.Deletion

			ext := strings.ToLower(path.Ext(fs.Name))
			delta := t.byExt[ext]
			delta.Insertions += fs.Addition
			delta.Deletions += fs.Deletion
			t.byExt[ext] = delta
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate commits: %w", err)
	}

	facts := &schema.RepositoryFacts{
		Name:         repoName(root, repoPath),
		RootPath:     root,
		BranchCount:  branchCount(repo),
		HasMerges:    hasMerges,
		TotalCommits: totalCommits,
	}

	for identity, t := range tallies {
		var pct float64
		if totalCommits > 0 {
			pct = schema.RoundPct(float64(t.commits) / float64(totalCommits) * 100)
		}
		files := make([]string, 0, len(t.files))
		for f := range t.files {
			files = append(files, f)
		}
		sort.Strings(files)

		facts.Authors = append(facts.Authors, identity)
		facts.Contributors = append(facts.Contributors, schema.ContributorFacts{
			Identity:        identity,
			CommitCount:     t.commits,
			ContributionPct: pct,
			FilesEdited:     files,
			Insertions:      t.insertions,
			Deletions:       t.deletions,
			LOCByExtension:  t.byExt,
		})
	}
	sort.Strings(facts.Authors)
	sort.Slice(facts.Contributors, func(i, j int) bool {
		return facts.Contributors[i].Identity < facts.Contributors[j].Identity
	})

	if len(tallies) > 1 {
		facts.ProjectType = schema.CollaborativeProject
	} else {
		facts.ProjectType = schema.IndividualProject
	}

	if totalCommits > 0 {
		facts.DurationDays = schema.InclusiveDays(firstCommit, lastCommit)
		weeks := float64(facts.DurationDays) / 7
		if weeks < 1 {
			weeks = 1
		}
		facts.CommitFrequency = schema.FormatCommitRate(float64(totalCommits) / weeks)
	} else {
		facts.CommitFrequency = schema.FormatCommitRate(0)
	}

	return facts, nil
}

// repoName derives a project name from the mined root. The root "." has
// no path segment of its own, so the name falls back to the directory the
// repository was opened from.
func repoName(root, repoPath string) string {
	if name := path.Base(root); name != "." && name != "/" {
		return name
	}
	if abs, err := filepath.Abs(repoPath); err == nil {
		return filepath.Base(abs)
	}
	return filepath.Base(repoPath)
}

// commitIdentity prefers the author email; names are far less stable
// across machines.
func commitIdentity(c *object.Commit) string {
	if email := schema.NormalizeIdentity(c.Author.Email); email != "" {
		return email
	}
	return schema.NormalizeIdentity(c.Author.Name)
}

// branchCount counts local branch refs. Errors count as zero branches.
func branchCount(repo *git.Repository) int {
	branches, err := repo.Branches()
	if err != nil {
		return 0
	}
	defer branches.Close()

	count := 0
	for {
		if _, err := branches.Next(); err != nil {
			break
		}
		count++
	}
	return count
}
