package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Education is the single education document.
type Education struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"-" json:"id"`
	Degree      string             `bson:"degree" json:"degree" binding:"required"`
	Institution string             `bson:"institution" json:"institution" binding:"required"`
	Year        string             `bson:"year" json:"year" binding:"required"`
	Progress    int                `bson:"progress" json:"progress" binding:"min=0,max=100"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Education) Normalize() {
	if !e.OID.IsZero() {
		e.ID = e.OID.Hex()
	}
}

func (e *Education) Stamp(now time.Time) { e.UpdatedAt = now }

// Goal is one "what I'm looking for" entry in the experience section.
type Goal struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Experience is the single experience-section document.
type Experience struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"-" json:"id"`
	MainTitle   string             `bson:"main_title" json:"main_title" binding:"required"`
	MainMessage string             `bson:"main_message" json:"main_message" binding:"required"`
	Goals       []Goal             `bson:"goals" json:"goals"`
	CTATitle    string             `bson:"cta_title" json:"cta_title"`
	CTAMessage  string             `bson:"cta_message" json:"cta_message"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Experience) Normalize() {
	if !e.OID.IsZero() {
		e.ID = e.OID.Hex()
	}
}

func (e *Experience) Stamp(now time.Time) { e.UpdatedAt = now }

// GrowthMindset is the single quote card shown on the learning journey page.
type GrowthMindset struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"-" json:"id"`
	Title     string             `bson:"title" json:"title" binding:"required"`
	Quote     string             `bson:"quote" json:"quote" binding:"required"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (g *GrowthMindset) Normalize() {
	if !g.OID.IsZero() {
		g.ID = g.OID.Hex()
	}
}

func (g *GrowthMindset) Stamp(now time.Time) { g.UpdatedAt = now }

// QuickLink is one footer navigation link.
type QuickLink struct {
	Name string `bson:"name" json:"name"`
	Href string `bson:"href" json:"href"`
}

// Footer is the single footer document.
type Footer struct {
	OID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID               string             `bson:"-" json:"id"`
	BrandName        string             `bson:"brand_name" json:"brand_name" binding:"required"`
	BrandDescription string             `bson:"brand_description" json:"brand_description"`
	QuickLinks       []QuickLink        `bson:"quick_links" json:"quick_links"`
	BottomText       string             `bson:"bottom_text" json:"bottom_text"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (f *Footer) Normalize() {
	if !f.OID.IsZero() {
		f.ID = f.OID.Hex()
	}
}

func (f *Footer) Stamp(now time.Time) { f.UpdatedAt = now }

// LabFeature is one feature bullet in the experiments "lab" header.
type LabFeature struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Experiment is one entry in the experiments list.
type Experiment struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Status      string `bson:"status" json:"status"` // 'active', 'planning'
}

// ExperimentsSection is the single experiments-page document.
type ExperimentsSection struct {
	OID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID                string             `bson:"-" json:"id"`
	HeaderTitle       string             `bson:"header_title" json:"header_title" binding:"required"`
	HeaderDescription string             `bson:"header_description" json:"header_description"`
	LabFeatures       []LabFeature       `bson:"lab_features" json:"lab_features"`
	Experiments       []Experiment       `bson:"experiments" json:"experiments"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (s *ExperimentsSection) Normalize() {
	if !s.OID.IsZero() {
		s.ID = s.OID.Hex()
	}
}

func (s *ExperimentsSection) Stamp(now time.Time) { s.UpdatedAt = now }

// ContentUsecase covers the seven replace-wholesale content documents.
type ContentUsecase interface {
	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error

	GetEducation(ctx context.Context) (*Education, error)
	UpdateEducation(ctx context.Context, education *Education) error

	GetExperience(ctx context.Context) (*Experience, error)
	UpdateExperience(ctx context.Context, experience *Experience) error

	GetGrowthMindset(ctx context.Context) (*GrowthMindset, error)
	UpdateGrowthMindset(ctx context.Context, gm *GrowthMindset) error

	GetFooter(ctx context.Context) (*Footer, error)
	UpdateFooter(ctx context.Context, footer *Footer) error

	GetContactSection(ctx context.Context) (*ContactSection, error)
	UpdateContactSection(ctx context.Context, section *ContactSection) error

	GetExperiments(ctx context.Context) (*ExperimentsSection, error)
	UpdateExperiments(ctx context.Context, section *ExperimentsSection) error
}
