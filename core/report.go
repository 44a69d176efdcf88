package core

import (
	"sort"
	"time"

	"github.com/huangsam/skillscope/schema"
)

// RankProjects orders projects by score descending. The sort is stable:
// ties keep their original encounter order.
func RankProjects(projects []*schema.Project) []*schema.Project {
	ranked := make([]*schema.Project, len(projects))
	copy(ranked, projects)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// ChronologicalProjects orders projects by first-modified timestamp
// ascending. Projects with no timestamp sort last.
func ChronologicalProjects(projects []*schema.Project) []schema.ProjectSpan {
	sorted := make([]*schema.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].FirstModified, sorted[j].FirstModified
		if ti.IsZero() {
			return false
		}
		if tj.IsZero() {
			return true
		}
		return ti.Before(tj)
	})

	spans := make([]schema.ProjectSpan, 0, len(sorted))
	for _, p := range sorted {
		spans = append(spans, schema.ProjectSpan{
			Name:      p.Name,
			FirstUsed: schema.FormatTime(p.FirstModified),
			LastUsed:  schema.FormatTime(p.LastModified),
		})
	}
	return spans
}

// SkillTimeline tracks, for every skill observed anywhere, the first and
// last timestamp of a file resolving to it and how many files did, sorted
// ascending by first use.
func SkillTimeline(projects []*schema.Project) []schema.SkillUsage {
	type span struct {
		first, last time.Time
		count       int
	}
	usage := make(map[string]*span)

	for _, p := range projects {
		for _, f := range p.Files {
			if f.Skill == "" {
				continue
			}
			ts := f.ModifiedOrZero()
			s := usage[f.Skill]
			if s == nil {
				s = &span{first: ts, last: ts}
				usage[f.Skill] = s
			}
			s.count++
			if !ts.IsZero() && (s.first.IsZero() || ts.Before(s.first)) {
				s.first = ts
			}
			if ts.After(s.last) {
				s.last = ts
			}
		}
	}

	timeline := make([]schema.SkillUsage, 0, len(usage))
	for skill, s := range usage {
		timeline = append(timeline, schema.SkillUsage{
			Skill:     skill,
			FirstUsed: schema.FormatTime(s.first),
			LastUsed:  schema.FormatTime(s.last),
			FileCount: s.count,
		})
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		ti, tj := schema.ParseTime(timeline[i].FirstUsed), schema.ParseTime(timeline[j].FirstUsed)
		if !ti.Equal(tj) {
			if ti.IsZero() {
				return false
			}
			if tj.IsZero() {
				return true
			}
			return ti.Before(tj)
		}
		return timeline[i].Skill < timeline[j].Skill
	})
	return timeline
}

// Leaderboard sums adjusted scores and contribution percentages per
// identity across all projects where the identity's percentage was above
// zero, excluding automation accounts, sorted by total score descending.
func Leaderboard(projects []*schema.Project) []schema.LeaderboardEntry {
	type totals struct {
		score, pct float64
		count      int
	}
	byIdentity := make(map[string]*totals)

	for _, p := range projects {
		identities := make(map[string]struct{})
		for id := range p.ContributorScores {
			identities[id] = struct{}{}
		}
		for id := range p.ContributorPct {
			identities[id] = struct{}{}
		}

		for id := range identities {
			if schema.IsNoiseIdentity(id) {
				continue
			}
			pct := p.ContributorPct[id]
			if pct <= 0 {
				continue
			}
			t := byIdentity[id]
			if t == nil {
				t = &totals{}
				byIdentity[id] = t
			}
			t.count++
			t.score += p.ContributorScores[id]
			t.pct += pct
		}
	}

	board := make([]schema.LeaderboardEntry, 0, len(byIdentity))
	for id, t := range byIdentity {
		board = append(board, schema.LeaderboardEntry{
			Identity:     id,
			ProjectCount: t.count,
			TotalScore:   t.score,
			TotalPct:     t.pct,
		})
	}
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].TotalScore != board[j].TotalScore {
			return board[i].TotalScore > board[j].TotalScore
		}
		return board[i].Identity < board[j].Identity
	})
	return board
}

// BuildReport assembles the serializable outcome of one run. It reads the
// project and profile collections without mutating them.
func BuildReport(projects []*schema.Project, profiles *ProfileSet, failures []schema.RunFailure, miningFailures []schema.MiningFailure, mode string, now time.Time) *schema.ScanReport {
	ranked := RankProjects(projects)
	summaries := make([]schema.ProjectSummary, 0, len(ranked))
	for _, p := range ranked {
		summaries = append(summaries, schema.NewProjectSummary(p))
	}

	return &schema.ScanReport{
		GeneratedAt:           schema.FormatTime(now),
		AnalysisMode:          mode,
		ProjectSummaries:      summaries,
		ProjectsChronological: ChronologicalProjects(projects),
		SkillsChronological:   SkillTimeline(projects),
		Leaderboard:           Leaderboard(projects),
		ContributorProfiles:   profiles.Profiles(),
		Failures:              failures,
		MiningFailures:        miningFailures,
	}
}
