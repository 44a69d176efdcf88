package core

import (
	"path"
	"sort"
	"strings"

	"github.com/huangsam/skillscope/schema"
)

// IsJunkEntry reports whether an archive entry should be dropped before
// grouping: directory placeholders, macOS resource forks, and archive-tool
// bookkeeping folders carry no real content.
func IsJunkEntry(rec schema.FileRecord) bool {
	if rec.IsDir {
		return true
	}
	if strings.HasPrefix(rec.Path, "__MACOSX/") || strings.Contains(rec.Path, "/__MACOSX/") {
		return true
	}
	if strings.HasPrefix(path.Base(rec.Path), "._") {
		return true
	}
	return false
}

// fallbackProjectKey derives a synthetic project name from the first path
// segment. Files with no segment at all fall into the default bucket.
func fallbackProjectKey(filePath string) string {
	p := strings.ReplaceAll(filePath, "\\", "/")
	if idx := strings.Index(p, "/"); idx > 0 {
		return p[:idx]
	}
	return schema.DefaultProjectName
}

// GroupProjects partitions classified files into projects. Files under a
// mined repository root take that repository's name; the longest matching
// root wins when roots nest. Everything else groups by top-level folder.
// Junk entries are filtered first, and projects left empty after filtering
// are dropped entirely.
func GroupProjects(files []schema.ClassifiedFile, repos map[string]*schema.RepositoryFacts) []*schema.Project {
	// Longest roots first so nested working copies match most-specific.
	roots := make([]string, 0, len(repos))
	for root := range repos {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		if len(roots[i]) != len(roots[j]) {
			return len(roots[i]) > len(roots[j])
		}
		return roots[i] < roots[j]
	})

	groups := make(map[string][]schema.ClassifiedFile)
	groupRepo := make(map[string]*schema.RepositoryFacts)
	var order []string // encounter order keeps output deterministic

	for _, f := range files {
		if IsJunkEntry(f.FileRecord) {
			continue
		}

		key := ""
		var facts *schema.RepositoryFacts
		for _, root := range roots {
			// Root "." is the whole tree and sorts last, so any
			// nested working copy still wins on specificity.
			if root == "." || f.Path == root || strings.HasPrefix(f.Path, root+"/") {
				facts = repos[root]
				key = facts.Name
				break
			}
		}
		if key == "" {
			key = fallbackProjectKey(f.Path)
		}

		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], f)
		if facts != nil {
			groupRepo[key] = facts
		}
	}

	projects := make([]*schema.Project, 0, len(order))
	for _, key := range order {
		projects = append(projects, buildProject(key, groups[key], groupRepo[key]))
	}
	return projects
}

// buildProject computes a project's derived aggregates from its member
// files and optional repository facts. The score and attribution maps are
// filled later by the scoring stage.
func buildProject(name string, files []schema.ClassifiedFile, repo *schema.RepositoryFacts) *schema.Project {
	p := &schema.Project{
		Name:  name,
		Files: files,
		Repo:  repo,
	}

	languages := make(map[string]struct{})
	frameworks := make(map[string]struct{})
	skills := make(map[string]struct{})
	hasRepoMarker := false

	for _, f := range files {
		p.TotalFiles++
		switch f.Activity {
		case schema.CodeActivity:
			p.CodeFiles++
		case schema.TestActivity:
			p.TestFiles++
		case schema.DocumentationActivity:
			p.DocFiles++
		case schema.DesignActivity:
			p.DesignFiles++
		}

		if f.Language != schema.UndefinedLanguage {
			languages[f.Language] = struct{}{}
		}
		if f.Framework != "" {
			frameworks[f.Framework] = struct{}{}
		}
		if f.Skill != "" {
			skills[f.Skill] = struct{}{}
		}
		if f.Category == schema.RepositoryCategory || strings.Contains(f.Path, ".git/") {
			hasRepoMarker = true
		}

		if ts := f.ModifiedOrZero(); !ts.IsZero() {
			if p.FirstModified.IsZero() || ts.Before(p.FirstModified) {
				p.FirstModified = ts
			}
			if ts.After(p.LastModified) {
				p.LastModified = ts
			}
		}
	}

	p.Languages = schema.SortedKeys(languages)
	p.Frameworks = schema.SortedKeys(frameworks)
	p.Skills = schema.SortedKeys(skills)
	p.DurationDays = schema.InclusiveDays(p.FirstModified, p.LastModified)

	// A version-control marker alone counts as collaboration evidence;
	// mined facts imply a marker, so the author-count clause only widens
	// the net here for completeness.
	p.IsCollaborative = hasRepoMarker || repo != nil

	return p
}
