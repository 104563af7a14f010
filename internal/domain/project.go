package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusComingSoon = "coming-soon"
)

// Project is one portfolio project document.
type Project struct {
	OID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           string             `bson:"-" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Status       string             `bson:"status" json:"status"`
	Image        string             `bson:"image" json:"image"`
	LiveURL      string             `bson:"liveUrl" json:"liveUrl"`
	GithubURL    string             `bson:"githubUrl" json:"githubUrl"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Project) Normalize() {
	if !p.OID.IsZero() {
		p.ID = p.OID.Hex()
	}
}

// CreateProjectRequest is the admin payload for a new project.
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Status       string   `json:"status" binding:"required,oneof=completed coming-soon"`
	Image        string   `json:"image"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Technologies []string `json:"technologies"`
}

// UpdateProjectRequest is a partial patch; only non-nil fields are applied.
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Status       *string   `json:"status" binding:"omitempty,oneof=completed coming-soon"`
	Image        *string   `json:"image"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Technologies *[]string `json:"technologies"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdateProjectRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil &&
		r.Image == nil && r.LiveURL == nil && r.GithubURL == nil &&
		r.Technologies == nil
}

// ProjectRepository is the projects data access contract. List returns
// newest-first; Update applies only the patch's non-nil fields and reports
// whether the id matched a document.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Insert(ctx context.Context, project *Project) (string, error)
	Update(ctx context.Context, id string, patch UpdateProjectRequest, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (string, error)
	Update(ctx context.Context, id string, patch UpdateProjectRequest) error
	Delete(ctx context.Context, id string) error
}
