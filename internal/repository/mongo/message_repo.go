package mongo

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepo struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) domain.MessageRepository {
	return &messageRepo{coll: db.Collection(CollContactMessages)}
}

func (r *messageRepo) Insert(ctx context.Context, msg *domain.ContactMessage) (string, error) {
	res, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *messageRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *messageRepo) MarkRead(ctx context.Context, id string) (bool, error) {
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

func (r *messageRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *messageRepo) Counts(ctx context.Context) (int64, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, 0, err
	}
	unread, err := r.coll.CountDocuments(ctx, bson.M{"read": false})
	if err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}

func (r *messageRepo) Recent(ctx context.Context, limit int64) ([]domain.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, opts)
}

func (r *messageRepo) find(ctx context.Context, opts *options.FindOptions) ([]domain.ContactMessage, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	messages := []domain.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	for i := range messages {
		messages[i].Normalize()
	}
	return messages, nil
}
