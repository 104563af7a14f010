package usecase

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type searchUsecase struct {
	searchRepo domain.SearchRepository
}

func NewSearchUsecase(searchRepo domain.SearchRepository) domain.SearchUsecase {
	return &searchUsecase{searchRepo: searchRepo}
}

// Search fans one query out across all ten content sections in parallel.
// The result is best-effort: a section whose query fails is reported under
// Errors while every other section still returns its hits.
func (u *searchUsecase) Search(ctx context.Context, query string) (*domain.SearchResults, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, apperror.BadRequest("Search query is required")
	}

	res := &domain.SearchResults{
		Profile:         []domain.FieldMatch{},
		Projects:        []domain.ProjectMatch{},
		Skills:          []domain.SkillMatch{},
		Education:       []domain.FieldMatch{},
		Experience:      []domain.FieldMatch{},
		LearningJourney: []domain.FieldMatch{},
		GrowthMindset:   []domain.FieldMatch{},
		Experiments:     []domain.FieldMatch{},
		Contact:         []domain.FieldMatch{},
		Footer:          []domain.FieldMatch{},
	}

	var mu sync.Mutex
	g := new(errgroup.Group)

	section := func(name string, fn func() error) {
		g.Go(func() error {
			if err := fn(); err != nil {
				logger.Log.Warn("section search failed", "section", name, "error", err)
				mu.Lock()
				if res.Errors == nil {
					res.Errors = map[string]string{}
				}
				res.Errors[name] = "search failed for this section"
				mu.Unlock()
			}
			return nil
		})
	}

	section("profile", func() error {
		doc, err := u.searchRepo.MatchProfile(ctx, q)
		if err != nil {
			return err
		}
		hits := profileHits(doc, q)
		mu.Lock()
		res.Profile = hits
		mu.Unlock()
		return nil
	})
	section("projects", func() error {
		docs, err := u.searchRepo.MatchProjects(ctx, q)
		if err != nil {
			return err
		}
		hits := projectHits(docs, q)
		mu.Lock()
		res.Projects = hits
		mu.Unlock()
		return nil
	})
	section("skills", func() error {
		docs, err := u.searchRepo.MatchSkills(ctx, q)
		if err != nil {
			return err
		}
		hits := skillHits(docs, q)
		mu.Lock()
		res.Skills = hits
		mu.Unlock()
		return nil
	})
	section("education", func() error {
		doc, err := u.searchRepo.MatchEducation(ctx, q)
		if err != nil {
			return err
		}
		hits := educationHits(doc, q)
		mu.Lock()
		res.Education = hits
		mu.Unlock()
		return nil
	})
	section("experience", func() error {
		doc, err := u.searchRepo.MatchExperience(ctx, q)
		if err != nil {
			return err
		}
		hits := experienceHits(doc, q)
		mu.Lock()
		res.Experience = hits
		mu.Unlock()
		return nil
	})
	section("learning_journey", func() error {
		docs, err := u.searchRepo.MatchJourney(ctx, q)
		if err != nil {
			return err
		}
		hits := journeyHits(docs, q)
		mu.Lock()
		res.LearningJourney = hits
		mu.Unlock()
		return nil
	})
	section("growth_mindset", func() error {
		doc, err := u.searchRepo.MatchGrowthMindset(ctx, q)
		if err != nil {
			return err
		}
		hits := growthHits(doc, q)
		mu.Lock()
		res.GrowthMindset = hits
		mu.Unlock()
		return nil
	})
	section("experiments", func() error {
		doc, err := u.searchRepo.MatchExperiments(ctx, q)
		if err != nil {
			return err
		}
		hits := experimentsHits(doc, q)
		mu.Lock()
		res.Experiments = hits
		mu.Unlock()
		return nil
	})
	section("contact", func() error {
		doc, err := u.searchRepo.MatchContactSection(ctx, q)
		if err != nil {
			return err
		}
		hits := contactHits(doc, q)
		mu.Lock()
		res.Contact = hits
		mu.Unlock()
		return nil
	})
	section("footer", func() error {
		doc, err := u.searchRepo.MatchFooter(ctx, q)
		if err != nil {
			return err
		}
		hits := footerHits(doc, q)
		mu.Lock()
		res.Footer = hits
		mu.Unlock()
		return nil
	})

	// Section closures never return errors; failures land in res.Errors.
	_ = g.Wait()

	return res, nil
}

// matchesFold reports whether s contains q ignoring case. Unicode simple
// folding keeps pairs like final sigma/sigma equal, which a ToLower+Contains
// comparison would miss and the store's case-insensitive regex would accept.
func matchesFold(s, q string) bool {
	rs := []rune(s)
	rq := []rune(q)
	if len(rq) == 0 || len(rq) > len(rs) {
		return false
	}
	for i := 0; i+len(rq) <= len(rs); i++ {
		if runesEqualFold(rs[i:i+len(rq)], rq) {
			return true
		}
	}
	return false
}

func runesEqualFold(a, b []rune) bool {
	for i := range a {
		if !runeEqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

type labeledField struct {
	label string
	value string
}

func fieldHits(fields []labeledField, q string) []domain.FieldMatch {
	hits := []domain.FieldMatch{}
	for _, f := range fields {
		if matchesFold(f.value, q) {
			hits = append(hits, domain.FieldMatch{Field: f.label, Value: f.value})
		}
	}
	return hits
}

func profileHits(p *domain.Profile, q string) []domain.FieldMatch {
	if p == nil {
		return []domain.FieldMatch{}
	}
	return fieldHits([]labeledField{
		{"Name", p.Name},
		{"Headline", p.Headline},
		{"Bio", p.Bio},
		{"Highlights", p.Highlights},
		{"Email", p.Email},
		{"LinkedIn", p.LinkedIn},
		{"Location", p.Location},
	}, q)
}

func projectHits(projects []domain.Project, q string) []domain.ProjectMatch {
	hits := []domain.ProjectMatch{}
	seen := map[string]bool{}
	for _, p := range projects {
		if seen[p.ID] {
			continue
		}
		matches := []string{}
		if matchesFold(p.Title, q) {
			matches = append(matches, "Title")
		}
		if matchesFold(p.Description, q) {
			matches = append(matches, "Description")
		}
		if matchesFold(p.Status, q) {
			matches = append(matches, "Status")
		}
		for _, tech := range p.Technologies {
			if matchesFold(tech, q) {
				matches = append(matches, "Technology: "+tech)
			}
		}
		if len(matches) > 0 {
			seen[p.ID] = true
			hits = append(hits, domain.ProjectMatch{ID: p.ID, Title: p.Title, Matches: matches})
		}
	}
	return hits
}

func skillHits(categories []domain.SkillCategory, q string) []domain.SkillMatch {
	hits := []domain.SkillMatch{}
	seenCategory := map[string]bool{}
	seenSkill := map[string]bool{}
	for _, c := range categories {
		if matchesFold(c.Category, q) && !seenCategory[c.Category] {
			seenCategory[c.Category] = true
			hits = append(hits, domain.SkillMatch{
				Type:     "category",
				Name:     c.Category,
				Category: c.Category,
			})
		}
		for _, s := range c.Skills {
			key := c.Category + "\x00" + s.Name
			if matchesFold(s.Name, q) && !seenSkill[key] {
				seenSkill[key] = true
				hits = append(hits, domain.SkillMatch{
					Type:        "skill",
					Name:        s.Name,
					Category:    c.Category,
					Proficiency: s.Proficiency,
				})
			}
		}
	}
	return hits
}

func educationHits(e *domain.Education, q string) []domain.FieldMatch {
	if e == nil {
		return []domain.FieldMatch{}
	}
	return fieldHits([]labeledField{
		{"Degree", e.Degree},
		{"Institution", e.Institution},
		{"Year", e.Year},
	}, q)
}

func experienceHits(e *domain.Experience, q string) []domain.FieldMatch {
	if e == nil {
		return []domain.FieldMatch{}
	}
	fields := []labeledField{
		{"Main Title", e.MainTitle},
		{"Main Message", e.MainMessage},
	}
	for _, g := range e.Goals {
		fields = append(fields,
			labeledField{"Goal Title", g.Title},
			labeledField{"Goal Description", g.Description})
	}
	fields = append(fields,
		labeledField{"CTA Title", e.CTATitle},
		labeledField{"CTA Message", e.CTAMessage})
	return fieldHits(fields, q)
}

func journeyHits(phases []domain.LearningPhase, q string) []domain.FieldMatch {
	hits := []domain.FieldMatch{}
	for _, p := range phases {
		if matchesFold(p.Phase, q) {
			hits = append(hits, domain.FieldMatch{Field: "Phase", Value: p.Phase})
		}
		for _, skill := range p.Skills {
			if matchesFold(skill, q) {
				hits = append(hits, domain.FieldMatch{Field: "Skill in " + p.Phase, Value: skill})
			}
		}
		if matchesFold(p.Status, q) {
			hits = append(hits, domain.FieldMatch{Field: "Status of " + p.Phase, Value: p.Status})
		}
	}
	return hits
}

func growthHits(g *domain.GrowthMindset, q string) []domain.FieldMatch {
	if g == nil {
		return []domain.FieldMatch{}
	}
	return fieldHits([]labeledField{
		{"Title", g.Title},
		{"Quote", g.Quote},
	}, q)
}

func experimentsHits(s *domain.ExperimentsSection, q string) []domain.FieldMatch {
	if s == nil {
		return []domain.FieldMatch{}
	}
	fields := []labeledField{
		{"Header Title", s.HeaderTitle},
		{"Header Description", s.HeaderDescription},
	}
	for _, f := range s.LabFeatures {
		fields = append(fields,
			labeledField{"Lab Feature", f.Title},
			labeledField{"Lab Feature Description", f.Description})
	}
	for _, e := range s.Experiments {
		fields = append(fields,
			labeledField{"Experiment", e.Title},
			labeledField{"Experiment Description", e.Description},
			labeledField{"Experiment Status", e.Status})
	}
	return fieldHits(fields, q)
}

func contactHits(s *domain.ContactSection, q string) []domain.FieldMatch {
	if s == nil {
		return []domain.FieldMatch{}
	}
	hits := fieldHits([]labeledField{
		{"Header Title", s.HeaderTitle},
		{"Header Description", s.HeaderDescription},
		{"Connect Title", s.ConnectTitle},
		{"Connect Description", s.ConnectDescription},
		{"Get In Touch Title", s.GetInTouchTitle},
		{"Get In Touch Description", s.GetInTouchDescription},
	}, q)
	for _, link := range s.ContactLinks {
		if matchesFold(link.Name, q) || matchesFold(link.Value, q) {
			hits = append(hits, domain.FieldMatch{Field: link.Name, Value: link.Value, Icon: link.Icon})
		}
	}
	return hits
}

func footerHits(f *domain.Footer, q string) []domain.FieldMatch {
	if f == nil {
		return []domain.FieldMatch{}
	}
	hits := fieldHits([]labeledField{
		{"Brand Name", f.BrandName},
		{"Brand Description", f.BrandDescription},
	}, q)
	for _, link := range f.QuickLinks {
		if matchesFold(link.Name, q) {
			hits = append(hits, domain.FieldMatch{Field: "Quick Link", Value: link.Name})
		}
	}
	if matchesFold(f.BottomText, q) {
		hits = append(hits, domain.FieldMatch{Field: "Bottom Text", Value: f.BottomText})
	}
	return hits
}
