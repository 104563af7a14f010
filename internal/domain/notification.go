package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types shown in the admin panel bell.
const (
	NotifyMessage = "message" // visitor contact message
	NotifyContent = "content" // singleton content edits
	NotifyProject = "project" // project create/update/delete
	NotifySkill   = "skill"   // skill category changes
	NotifyAdmin   = "admin"   // admin account management
	NotifyAuth    = "auth"    // login/logout events
)

// NotificationTTL is the store-level retention window; documents expire
// this long after createdAt via a TTL index.
const NotificationTTL = 10 * 24 * time.Hour

// Notification is one short-lived audit record.
type Notification struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"-" json:"id"`
	Message   string             `bson:"message" json:"message"`
	Type      string             `bson:"type" json:"type"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (n *Notification) Normalize() {
	if !n.OID.IsZero() {
		n.ID = n.OID.Hex()
	}
}

// NotificationRepository is the notifications data access contract.
type NotificationRepository interface {
	Insert(ctx context.Context, n *Notification) error
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) error
	Clear(ctx context.Context) error
	UnreadCount(ctx context.Context) (int64, error)
}

// Notifier records audit notifications for admin and visitor actions.
// Recording is observability-only: implementations log failures and never
// propagate them to the caller.
type Notifier interface {
	Record(ctx context.Context, notifType, message string)
}

type NotificationUsecase interface {
	Notifier
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Clear(ctx context.Context) error
}
