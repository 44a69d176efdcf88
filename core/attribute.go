package core

import (
	"path"
	"strings"

	"github.com/huangsam/skillscope/schema"
)

// ProfileSet accumulates contributor profiles across all projects of one
// run. It is constructed fresh per run and is the only cross-project
// mutable state in the engine; entries are append-only and keyed by
// normalized identity.
type ProfileSet struct {
	skills   map[string]map[string]struct{}
	projects map[string][]schema.ProjectParticipation
}

// NewProfileSet returns an empty accumulator.
func NewProfileSet() *ProfileSet {
	return &ProfileSet{
		skills:   make(map[string]map[string]struct{}),
		projects: make(map[string][]schema.ProjectParticipation),
	}
}

func (s *ProfileSet) addSkill(identity, skill string) {
	if s.skills[identity] == nil {
		s.skills[identity] = make(map[string]struct{})
	}
	s.skills[identity][skill] = struct{}{}
}

func (s *ProfileSet) addParticipation(identity string, rec schema.ProjectParticipation) {
	if s.skills[identity] == nil {
		s.skills[identity] = make(map[string]struct{})
	}
	s.projects[identity] = append(s.projects[identity], rec)
}

// Profiles renders the accumulated state as serializable profiles, with
// skills sorted and distinct.
func (s *ProfileSet) Profiles() map[string]schema.ContributorProfile {
	out := make(map[string]schema.ContributorProfile, len(s.skills))
	for identity, skillSet := range s.skills {
		out[identity] = schema.ContributorProfile{
			Skills:   schema.SortedKeys(skillSet),
			Projects: s.projects[identity],
		}
	}
	return out
}

// AttributeContributors distributes a scored project's composite score
// across its contributors proportional to their mined contribution
// percentage, and folds each contributor's skills and participation record
// into the cross-project profile set. Projects without repository facts
// get empty attribution maps.
func AttributeContributors(p *schema.Project, filters *schema.Filters, profiles *ProfileSet) {
	p.ContributorScores = make(map[string]float64)
	p.ContributorPct = make(map[string]float64)
	if p.Repo == nil {
		return
	}

	for _, c := range p.Repo.Contributors {
		identity := schema.NormalizeIdentity(c.Identity)
		if identity == "" {
			continue
		}

		p.ContributorPct[identity] = c.ContributionPct
		p.ContributorScores[identity] = p.Score * (c.ContributionPct / 100.0)

		// Skills this contributor exercised here, from the extensions
		// they actually touched.
		for ext := range c.LOCByExtension {
			if skill := SkillForExtension(ext, filters); skill != "" {
				profiles.addSkill(identity, skill)
			}
		}

		// Touched-file breakdown by activity kind, re-classified from
		// the touched paths.
		var code, test, doc, design int
		for _, fp := range c.FilesEdited {
			ext := strings.ToLower(path.Ext(fp))
			switch DetectActivity(filters.CategoryFor(ext), fp) {
			case schema.CodeActivity:
				code++
			case schema.TestActivity:
				test++
			case schema.DocumentationActivity:
				doc++
			case schema.DesignActivity:
				design++
			}
		}

		profiles.addParticipation(identity, schema.ProjectParticipation{
			Name:          p.Name,
			Pct:           c.ContributionPct,
			AdjustedScore: p.Score * (c.ContributionPct / 100.0),
			FilesWorked:   len(c.FilesEdited),
			CodeFiles:     code,
			TestFiles:     test,
			DocFiles:      doc,
			DesignFiles:   design,
			Insertions:    c.Insertions,
			Deletions:     c.Deletions,
			CommitCount:   c.CommitCount,
		})
	}

	// Authors that appear in the history without structured facts are
	// recorded at zero so the roster stays complete; they contribute
	// nothing to the totals.
	for _, author := range p.Repo.Authors {
		identity := schema.NormalizeIdentity(author)
		if identity == "" {
			continue
		}
		if _, ok := p.ContributorPct[identity]; !ok {
			p.ContributorPct[identity] = 0
			p.ContributorScores[identity] = 0
		}
	}
}
