package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Learning phase statuses
const (
	PhaseStatusCompleted  = "completed"
	PhaseStatusInProgress = "in-progress"
	PhaseStatusPlanned    = "planned"
)

// LearningPhase is one phase of the learning journey timeline, ordered by
// the explicit order field.
type LearningPhase struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"-" json:"id"`
	Phase     string             `bson:"phase" json:"phase"`
	Skills    []string           `bson:"skills" json:"skills"`
	Status    string             `bson:"status" json:"status"`
	Order     int                `bson:"order" json:"order"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *LearningPhase) Normalize() {
	if !p.OID.IsZero() {
		p.ID = p.OID.Hex()
	}
}

// CreatePhaseRequest is the admin payload for a new learning phase.
type CreatePhaseRequest struct {
	Phase  string   `json:"phase" binding:"required"`
	Skills []string `json:"skills" binding:"required"`
	Status string   `json:"status" binding:"required,oneof=completed in-progress planned"`
	Order  int      `json:"order"`
}

// UpdatePhaseRequest is a partial patch; only non-nil fields are applied.
type UpdatePhaseRequest struct {
	Phase  *string   `json:"phase"`
	Skills *[]string `json:"skills"`
	Status *string   `json:"status" binding:"omitempty,oneof=completed in-progress planned"`
	Order  *int      `json:"order"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdatePhaseRequest) IsEmpty() bool {
	return r.Phase == nil && r.Skills == nil && r.Status == nil && r.Order == nil
}

// JourneyRepository is the learning_journey data access contract.
// List returns phases sorted by order ascending.
type JourneyRepository interface {
	List(ctx context.Context) ([]LearningPhase, error)
	Insert(ctx context.Context, phase *LearningPhase) (string, error)
	Update(ctx context.Context, id string, patch UpdatePhaseRequest, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type JourneyUsecase interface {
	List(ctx context.Context) ([]LearningPhase, error)
	Create(ctx context.Context, req CreatePhaseRequest) (string, error)
	Update(ctx context.Context, id string, patch UpdatePhaseRequest) error
	Delete(ctx context.Context, id string) error
}
