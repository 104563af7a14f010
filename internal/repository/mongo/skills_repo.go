package mongo

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type skillsRepo struct {
	coll *mongo.Collection
}

func NewSkillsRepository(db *mongo.Database) domain.SkillsRepository {
	return &skillsRepo{coll: db.Collection(CollSkills)}
}

// GetAll returns every category keyed by name. Skill lists are never nil.
func (r *skillsRepo) GetAll(ctx context.Context) (map[string][]domain.Skill, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var categories []domain.SkillCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	out := make(map[string][]domain.Skill, len(categories))
	for _, c := range categories {
		skills := c.Skills
		if skills == nil {
			skills = []domain.Skill{}
		}
		out[c.Category] = skills
	}
	return out, nil
}

func (r *skillsRepo) ReplaceCategory(ctx context.Context, category string, skills []domain.Skill) error {
	doc := bson.M{
		"category":  category,
		"skills":    skills,
		"updatedAt": time.Now().UTC(),
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"category": category}, doc,
		options.Replace().SetUpsert(true))
	return err
}

func (r *skillsRepo) DeleteCategory(ctx context.Context, category string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"category": category})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *skillsRepo) CountCategories(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
