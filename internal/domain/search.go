package domain

import "context"

// FieldMatch is one search hit inside a content document: a human-readable
// field label and the matched value. Contact link hits also carry the icon.
type FieldMatch struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// ProjectMatch groups all hits inside one project, deduplicated by project
// id; Matches names the fields that matched ("Title", "Technology: Go", ...).
type ProjectMatch struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Matches []string `json:"matches"`
}

// SkillMatch is a hit on a skill category name (type "category") or on an
// individual skill (type "skill").
type SkillMatch struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency,omitempty"`
}

// SearchResults always carries all ten section keys; sections without hits
// hold empty lists. Errors maps a section name to a failure note when that
// section's query failed - the rest of the result is still returned.
type SearchResults struct {
	Profile         []FieldMatch      `json:"profile"`
	Projects        []ProjectMatch    `json:"projects"`
	Skills          []SkillMatch      `json:"skills"`
	Education       []FieldMatch      `json:"education"`
	Experience      []FieldMatch      `json:"experience"`
	LearningJourney []FieldMatch      `json:"learning_journey"`
	GrowthMindset   []FieldMatch      `json:"growth_mindset"`
	Experiments     []FieldMatch      `json:"experiments"`
	Contact         []FieldMatch      `json:"contact"`
	Footer          []FieldMatch      `json:"footer"`
	Errors          map[string]string `json:"errors,omitempty"`
}

// SearchRepository runs one case-insensitive substring query per collection
// against that collection's fixed searchable field set. Singleton matchers
// return (nil, nil) when the document is absent or does not match.
type SearchRepository interface {
	MatchProfile(ctx context.Context, query string) (*Profile, error)
	MatchProjects(ctx context.Context, query string) ([]Project, error)
	MatchSkills(ctx context.Context, query string) ([]SkillCategory, error)
	MatchEducation(ctx context.Context, query string) (*Education, error)
	MatchExperience(ctx context.Context, query string) (*Experience, error)
	MatchJourney(ctx context.Context, query string) ([]LearningPhase, error)
	MatchGrowthMindset(ctx context.Context, query string) (*GrowthMindset, error)
	MatchExperiments(ctx context.Context, query string) (*ExperimentsSection, error)
	MatchContactSection(ctx context.Context, query string) (*ContactSection, error)
	MatchFooter(ctx context.Context, query string) (*Footer, error)
}

type SearchUsecase interface {
	Search(ctx context.Context, query string) (*SearchResults, error)
}
