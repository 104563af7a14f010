package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactLink is one way-to-reach-me entry in the contact section.
type ContactLink struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
	Icon  string `bson:"icon" json:"icon"`
	Color string `bson:"color" json:"color"`
}

// ContactSection is the single contact-page document.
type ContactSection struct {
	OID                   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID                    string             `bson:"-" json:"id"`
	HeaderTitle           string             `bson:"header_title" json:"header_title" binding:"required"`
	HeaderDescription     string             `bson:"header_description" json:"header_description"`
	ConnectTitle          string             `bson:"connect_title" json:"connect_title"`
	ConnectDescription    string             `bson:"connect_description" json:"connect_description"`
	GetInTouchTitle       string             `bson:"get_in_touch_title" json:"get_in_touch_title"`
	GetInTouchDescription string             `bson:"get_in_touch_description" json:"get_in_touch_description"`
	ContactLinks          []ContactLink      `bson:"contact_links" json:"contact_links"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (s *ContactSection) Normalize() {
	if !s.OID.IsZero() {
		s.ID = s.OID.Hex()
	}
}

func (s *ContactSection) Stamp(now time.Time) { s.UpdatedAt = now }

// ContactMessage is a message submitted by a visitor through the contact form.
type ContactMessage struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"-" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (m *ContactMessage) Normalize() {
	if !m.OID.IsZero() {
		m.ID = m.OID.Hex()
	}
}

// CreateMessageRequest is the public contact form payload.
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// MessageRepository is the contact_messages data access contract.
// Point updates and deletes report whether a document matched.
type MessageRepository interface {
	Insert(ctx context.Context, msg *ContactMessage) (string, error)
	List(ctx context.Context) ([]ContactMessage, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Counts(ctx context.Context) (total int64, unread int64, err error)
	Recent(ctx context.Context, limit int64) ([]ContactMessage, error)
}

type MessageUsecase interface {
	Submit(ctx context.Context, req CreateMessageRequest) (string, error)
	List(ctx context.Context) ([]ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
