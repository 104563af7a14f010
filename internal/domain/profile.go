package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the single public-facing identity document.
type Profile struct {
	OID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           string             `bson:"-" json:"id"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Headline     string             `bson:"headline" json:"headline" binding:"required"`
	Bio          string             `bson:"bio" json:"bio" binding:"required"`
	Highlights   string             `bson:"highlights" json:"highlights"`
	ProfileImage string             `bson:"profileImage" json:"profileImage"`
	Email        string             `bson:"email" json:"email" binding:"required,email"`
	LinkedIn     string             `bson:"linkedin" json:"linkedin"`
	Location     string             `bson:"location" json:"location"`
	ResumeURL    string             `bson:"resume_url" json:"resume_url"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Profile) Normalize() {
	if !p.OID.IsZero() {
		p.ID = p.OID.Hex()
	}
}

func (p *Profile) Stamp(now time.Time) { p.UpdatedAt = now }
