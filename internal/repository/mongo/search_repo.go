package mongo

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// searchRepo runs the per-collection substring queries behind the content
// search. Each matcher filters on that collection's fixed searchable field
// set; ranking and per-field hit extraction happen in the usecase.
type searchRepo struct {
	db *mongo.Database
}

func NewSearchRepository(db *mongo.Database) domain.SearchRepository {
	return &searchRepo{db: db}
}

func (r *searchRepo) MatchProfile(ctx context.Context, query string) (*domain.Profile, error) {
	filter := containsFilter(query,
		"name", "headline", "bio", "highlights", "email", "linkedin", "location")
	return findOneMatch[domain.Profile](ctx, r.db.Collection(CollProfile), filter)
}

func (r *searchRepo) MatchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	filter := containsFilter(query, "title", "description", "status", "technologies")
	cursor, err := r.db.Collection(CollProjects).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var projects []domain.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Normalize()
	}
	return projects, nil
}

func (r *searchRepo) MatchSkills(ctx context.Context, query string) ([]domain.SkillCategory, error) {
	filter := containsFilter(query, "category", "skills.name")
	cursor, err := r.db.Collection(CollSkills).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var categories []domain.SkillCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *searchRepo) MatchEducation(ctx context.Context, query string) (*domain.Education, error) {
	filter := containsFilter(query, "degree", "institution", "year")
	return findOneMatch[domain.Education](ctx, r.db.Collection(CollEducation), filter)
}

func (r *searchRepo) MatchExperience(ctx context.Context, query string) (*domain.Experience, error) {
	filter := containsFilter(query,
		"main_title", "main_message", "goals.title", "goals.description",
		"cta_title", "cta_message")
	return findOneMatch[domain.Experience](ctx, r.db.Collection(CollExperience), filter)
}

func (r *searchRepo) MatchJourney(ctx context.Context, query string) ([]domain.LearningPhase, error) {
	filter := containsFilter(query, "phase", "skills", "status")
	cursor, err := r.db.Collection(CollLearningJourney).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var phases []domain.LearningPhase
	if err := cursor.All(ctx, &phases); err != nil {
		return nil, err
	}
	for i := range phases {
		phases[i].Normalize()
	}
	return phases, nil
}

func (r *searchRepo) MatchGrowthMindset(ctx context.Context, query string) (*domain.GrowthMindset, error) {
	filter := containsFilter(query, "title", "quote")
	return findOneMatch[domain.GrowthMindset](ctx, r.db.Collection(CollGrowthMindset), filter)
}

func (r *searchRepo) MatchExperiments(ctx context.Context, query string) (*domain.ExperimentsSection, error) {
	filter := containsFilter(query,
		"header_title", "header_description",
		"lab_features.title", "lab_features.description",
		"experiments.title", "experiments.description", "experiments.status")
	return findOneMatch[domain.ExperimentsSection](ctx, r.db.Collection(CollExperiments), filter)
}

func (r *searchRepo) MatchContactSection(ctx context.Context, query string) (*domain.ContactSection, error) {
	filter := containsFilter(query,
		"header_title", "header_description", "connect_title", "connect_description",
		"get_in_touch_title", "get_in_touch_description",
		"contact_links.name", "contact_links.value")
	return findOneMatch[domain.ContactSection](ctx, r.db.Collection(CollContactSection), filter)
}

func (r *searchRepo) MatchFooter(ctx context.Context, query string) (*domain.Footer, error) {
	filter := containsFilter(query,
		"brand_name", "brand_description", "quick_links.name", "bottom_text")
	return findOneMatch[domain.Footer](ctx, r.db.Collection(CollFooter), filter)
}

// findOneMatch runs a singleton-collection filter; no match is (nil, nil).
func findOneMatch[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
