package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill is one named skill with a 0-100 proficiency.
type Skill struct {
	Name        string `bson:"name" json:"name" validate:"required"`
	Proficiency int    `bson:"proficiency" json:"proficiency" validate:"min=0,max=100"`
}

// SkillCategory is one skills document; the collection holds one per category.
type SkillCategory struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"-" json:"id"`
	Category  string             `bson:"category" json:"category"`
	Skills    []Skill            `bson:"skills" json:"skills"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateSkillsRequest replaces the skill list of one category.
type UpdateSkillsRequest struct {
	Skills []Skill `json:"skills" binding:"required"`
}

// SkillsRepository is the skills data access contract. Categories are
// addressed by name; ReplaceCategory upserts so a new category name
// creates its document.
type SkillsRepository interface {
	GetAll(ctx context.Context) (map[string][]Skill, error)
	ReplaceCategory(ctx context.Context, category string, skills []Skill) error
	DeleteCategory(ctx context.Context, category string) (bool, error)
	CountCategories(ctx context.Context) (int64, error)
}

type SkillsUsecase interface {
	GetSkills(ctx context.Context) (map[string][]Skill, error)
	UpdateCategory(ctx context.Context, category string, skills []Skill) error
	DeleteCategory(ctx context.Context, category string) error
}
