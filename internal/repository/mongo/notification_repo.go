package mongo

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationRepo struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) domain.NotificationRepository {
	return &notificationRepo{coll: db.Collection(CollNotifications)}
}

func (r *notificationRepo) Insert(ctx context.Context, n *domain.Notification) error {
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *notificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	notifications := []domain.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	for i := range notifications {
		notifications[i].Normalize()
	}
	return notifications, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"read": false}, bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *notificationRepo) Clear(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}

func (r *notificationRepo) UnreadCount(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"read": false})
}
